package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"tripweaver/cmd/fx/ai_fx"
	"tripweaver/cmd/fx/config_fx"
	"tripweaver/cmd/fx/places_fx"
	"tripweaver/cmd/fx/templates_fx"
	"tripweaver/cmd/fx/trip_fx"
	"tripweaver/internal/api/controllers"
	"tripweaver/pkg/middleware"
)

func main() {
	app := fx.New(
		configfx.Module,
		aifx.Module,
		placesfx.Module,
		templatesfx.Module,
		tripfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *configfx.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	tripController *controllers.TripController,
	placesController *controllers.PlacesController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, tripController, placesController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripController *controllers.TripController,
	placesController *controllers.PlacesController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.POST("/plan-trip", tripController.PlanTripHandler)
	api.GET("/predefined-trips/:tripId", tripController.GetPredefinedTripHandler)
	api.GET("/places/search", placesController.SearchPlacesHandler)
}
