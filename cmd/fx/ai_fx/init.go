package aifx

import (
	"fmt"
	"log"
	"strings"

	"go.uber.org/fx"

	"tripweaver/cmd/fx/config_fx"
	"tripweaver/pkg/utils"
)

var Module = fx.Provide(ProvideGenerationClient)

// ProvideGenerationClient creates the text-generation client for the
// configured provider.
func ProvideGenerationClient(cfg *configfx.Config) (utils.GenerationClientInterface, error) {
	log.Printf("Initializing %s generation client", cfg.GenerationProvider)

	switch strings.ToLower(cfg.GenerationProvider) {
	case "gemini":
		client, err := utils.NewGeminiGenerationClient(cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	case "openai":
		return utils.NewOpenAIGenerationClient(cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
	default:
		return nil, fmt.Errorf("unsupported generation provider: %s. Use 'gemini' or 'openai'", cfg.GenerationProvider)
	}
}
