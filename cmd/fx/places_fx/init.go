package placesfx

import (
	"go.uber.org/fx"

	"tripweaver/cmd/fx/config_fx"
	"tripweaver/internal/services"
)

var Module = fx.Provide(ProvidePlacesService)

func ProvidePlacesService(cfg *configfx.Config) services.PlacesServiceInterface {
	return services.NewGooglePlacesClient(cfg.PlacesAPIKey)
}
