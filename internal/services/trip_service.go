package services

import (
	"context"
	"time"

	"tripweaver/internal/models/request_models"
	"tripweaver/internal/models/response_models"
	"tripweaver/internal/repositories"
	"tripweaver/pkg/utils"
)

type TripServiceInterface interface {
	PlanTrip(ctx context.Context, req *request_models.TripPlanRequest) (*response_models.ItineraryDocument, error)
	GetPredefinedTrip(ctx context.Context, tripID, startDate string) (*response_models.ItineraryDocument, error)
}

// TripService wires the planning pipeline: validate, synthesize, enrich. The
// predefined path skips synthesis and only shifts template dates.
type TripService struct {
	planner   PlannerServiceInterface
	enricher  EnrichmentServiceInterface
	templates repositories.TemplateRepository
}

func NewTripService(
	planner PlannerServiceInterface,
	enricher EnrichmentServiceInterface,
	templates repositories.TemplateRepository,
) TripServiceInterface {
	return &TripService{
		planner:   planner,
		enricher:  enricher,
		templates: templates,
	}
}

func (t *TripService) PlanTrip(ctx context.Context, req *request_models.TripPlanRequest) (*response_models.ItineraryDocument, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	doc, err := t.planner.SynthesizeItinerary(ctx, req)
	if err != nil {
		return nil, err
	}

	t.enricher.EnrichItinerary(ctx, doc)

	return doc, nil
}

func (t *TripService) GetPredefinedTrip(ctx context.Context, tripID, startDate string) (*response_models.ItineraryDocument, error) {
	template, ok := t.templates.FindByID(tripID)
	if !ok {
		return nil, utils.ErrTripTemplateNotFound
	}

	start := utils.StartOfDay(time.Now())
	if startDate != "" {
		parsed, err := utils.ParseTripDate(startDate)
		if err != nil {
			return nil, utils.ErrInvalidStartDate
		}
		start = parsed
	}
	if start.Before(utils.StartOfDay(time.Now())) {
		return nil, utils.ErrStartDateInPast
	}

	end := utils.AddDays(start, template.Duration-1)

	doc := &response_models.ItineraryDocument{
		TripID:      template.TripID,
		Destination: template.Destination,
		StartDate:   utils.FormatTripDate(start),
		EndDate:     utils.FormatTripDate(end),
		Itinerary:   template.Itinerary,
		GeneralTips: template.GeneralTips,
		Hotels:      template.Hotels,
	}

	for i := range doc.Itinerary {
		doc.Itinerary[i].Date = utils.FormatTripDate(utils.AddDays(start, i))
	}

	t.enricher.EnrichItinerary(ctx, doc)

	return doc, nil
}
