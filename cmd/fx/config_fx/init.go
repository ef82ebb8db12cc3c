package configfx

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var Module = fx.Provide(ProvideConfig)

// Config is built once at process start; nothing reads the environment after
// this.
type Config struct {
	Port               string
	GenerationProvider string
	GeminiAPIKey       string
	GeminiModel        string
	OpenAIAPIKey       string
	OpenAIModel        string
	PlacesAPIKey       string
}

// ProvideConfig reads configuration from environment variables. Missing
// provider credentials are a startup failure, not a per-request error.
func ProvideConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := &Config{
		Port:               getEnvWithDefault("PORT", "5000"),
		GenerationProvider: getEnvWithDefault("GENERATION_PROVIDER", "gemini"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        getEnvWithDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:        os.Getenv("OPENAI_MODEL"),
		PlacesAPIKey:       os.Getenv("GOOGLE_PLACES_API_KEY"),
	}

	switch strings.ToLower(cfg.GenerationProvider) {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	default:
		log.Fatalf("Unsupported generation provider: %s. Use 'gemini' or 'openai'", cfg.GenerationProvider)
	}

	if cfg.PlacesAPIKey == "" {
		log.Fatal("GOOGLE_PLACES_API_KEY is required")
	}

	return cfg
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
