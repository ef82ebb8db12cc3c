package tripfx

import (
	"go.uber.org/fx"

	"tripweaver/internal/api/controllers"
	"tripweaver/internal/repositories"
	"tripweaver/internal/services"
	"tripweaver/pkg/utils"
)

var Module = fx.Provide(
	ProvidePlannerService,
	ProvideEnrichmentService,
	ProvideTripService,
	ProvideTripController,
	ProvidePlacesController,
)

func ProvidePlannerService(ai utils.GenerationClientInterface) services.PlannerServiceInterface {
	return services.NewPlannerService(ai)
}

func ProvideEnrichmentService(places services.PlacesServiceInterface) services.EnrichmentServiceInterface {
	return services.NewEnrichmentService(places)
}

func ProvideTripService(
	planner services.PlannerServiceInterface,
	enricher services.EnrichmentServiceInterface,
	templates repositories.TemplateRepository,
) services.TripServiceInterface {
	return services.NewTripService(planner, enricher, templates)
}

func ProvideTripController(tripService services.TripServiceInterface) *controllers.TripController {
	return controllers.NewTripController(tripService)
}

func ProvidePlacesController(placesService services.PlacesServiceInterface) *controllers.PlacesController {
	return controllers.NewPlacesController(placesService)
}
