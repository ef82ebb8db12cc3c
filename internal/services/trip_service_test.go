package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"tripweaver/internal/models/request_models"
	"tripweaver/internal/models/response_models"
	"tripweaver/internal/repositories"
	"tripweaver/pkg/utils"
)

type fakePlannerService struct {
	doc   *response_models.ItineraryDocument
	err   error
	calls int
}

func (f *fakePlannerService) SynthesizeItinerary(ctx context.Context, req *request_models.TripPlanRequest) (*response_models.ItineraryDocument, error) {
	f.calls++
	return f.doc, f.err
}

func newTripService(planner PlannerServiceInterface, places PlacesServiceInterface) TripServiceInterface {
	return NewTripService(planner, NewEnrichmentService(places), repositories.NewTemplateRepository())
}

func TestPlanTripValidatesBeforeSynthesis(t *testing.T) {
	planner := &fakePlannerService{}
	svc := newTripService(planner, &fakePlacesService{})

	req := &request_models.TripPlanRequest{
		Destination:  "Rome, Italy",
		StartDate:    "2026-10-05",
		EndDate:      "2026-10-01",
		NumTravelers: 2,
		Interests:    []string{"History"},
	}

	_, err := svc.PlanTrip(context.Background(), req)

	var validationErr *utils.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if validationErr.Field != "endDate" {
		t.Fatalf("expected endDate violation, got %q", validationErr.Field)
	}
	if planner.calls != 0 {
		t.Fatal("synthesis must not run for invalid input")
	}
}

func TestPlanTripEnrichesSynthesizedDocument(t *testing.T) {
	doc := sampleDocument()
	planner := &fakePlannerService{doc: doc}
	places := &fakePlacesService{details: map[string]*response_models.PlaceDetails{
		"Colosseum": details("Colosseum"),
	}}
	svc := newTripService(planner, places)

	got, err := svc.PlanTrip(context.Background(), &request_models.TripPlanRequest{
		Destination:  "Rome, Italy",
		StartDate:    "2026-10-01",
		EndDate:      "2026-10-02",
		NumTravelers: 2,
		Interests:    []string{"History"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Itinerary[0].Activities[0].PlaceDetails == nil {
		t.Fatal("expected synthesized document to be enriched")
	}
}

func TestPlanTripPropagatesSynthesisError(t *testing.T) {
	synthErr := &utils.SynthesisError{Kind: utils.SynthesisUnparseableOutput, RawOutput: "garbage"}
	svc := newTripService(&fakePlannerService{err: synthErr}, &fakePlacesService{})

	_, err := svc.PlanTrip(context.Background(), &request_models.TripPlanRequest{
		Destination:  "Rome, Italy",
		StartDate:    "2026-10-01",
		EndDate:      "2026-10-02",
		NumTravelers: 1,
		Interests:    []string{"Food"},
	})

	var got *utils.SynthesisError
	if !errors.As(err, &got) || got.RawOutput != "garbage" {
		t.Fatalf("expected synthesis error with raw output, got %v", err)
	}
}

func TestGetPredefinedTripShiftsDates(t *testing.T) {
	svc := newTripService(&fakePlannerService{}, &fakePlacesService{})

	start := utils.StartOfDay(time.Now()).AddDate(0, 0, 14)
	doc, err := svc.GetPredefinedTrip(context.Background(), "paris-adventure", utils.FormatTripDate(start))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.Itinerary) != 5 {
		t.Fatalf("expected 5 days, got %d", len(doc.Itinerary))
	}
	for i, day := range doc.Itinerary {
		want := utils.FormatTripDate(start.AddDate(0, 0, i))
		if day.Date != want {
			t.Fatalf("day %d: expected date %s, got %s", i+1, want, day.Date)
		}
		if day.Day != i+1 {
			t.Fatalf("day index mismatch at %d: %d", i, day.Day)
		}
	}
	if doc.StartDate != utils.FormatTripDate(start) {
		t.Fatalf("bad startDate %s", doc.StartDate)
	}
	if want := utils.FormatTripDate(start.AddDate(0, 0, 4)); doc.EndDate != want {
		t.Fatalf("expected endDate %s, got %s", want, doc.EndDate)
	}
	if len(doc.Hotels) != 3 {
		t.Fatalf("expected 3 template hotels, got %d", len(doc.Hotels))
	}
}

func TestGetPredefinedTripDefaultsToToday(t *testing.T) {
	svc := newTripService(&fakePlannerService{}, &fakePlacesService{})

	doc, err := svc.GetPredefinedTrip(context.Background(), "bali-paradise", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := utils.FormatTripDate(time.Now()); doc.StartDate != want {
		t.Fatalf("expected startDate %s, got %s", want, doc.StartDate)
	}
}

func TestGetPredefinedTripRejectsPastStartDate(t *testing.T) {
	svc := newTripService(&fakePlannerService{}, &fakePlacesService{})

	yesterday := utils.FormatTripDate(time.Now().AddDate(0, 0, -1))
	_, err := svc.GetPredefinedTrip(context.Background(), "paris-adventure", yesterday)
	if !errors.Is(err, utils.ErrStartDateInPast) {
		t.Fatalf("expected ErrStartDateInPast, got %v", err)
	}
}

func TestGetPredefinedTripRejectsMalformedStartDate(t *testing.T) {
	svc := newTripService(&fakePlannerService{}, &fakePlacesService{})

	_, err := svc.GetPredefinedTrip(context.Background(), "paris-adventure", "next tuesday")
	if !errors.Is(err, utils.ErrInvalidStartDate) {
		t.Fatalf("expected ErrInvalidStartDate, got %v", err)
	}
}

func TestGetPredefinedTripUnknownTemplate(t *testing.T) {
	svc := newTripService(&fakePlannerService{}, &fakePlacesService{})

	_, err := svc.GetPredefinedTrip(context.Background(), "atlantis-cruise", "")
	if !errors.Is(err, utils.ErrTripTemplateNotFound) {
		t.Fatalf("expected ErrTripTemplateNotFound, got %v", err)
	}
}

func TestGetPredefinedTripEnrichesTemplateItems(t *testing.T) {
	places := &fakePlacesService{details: map[string]*response_models.PlaceDetails{
		"Eiffel Tower":           details("Eiffel Tower"),
		"Hotel Le Bristol Paris": details("Hotel Le Bristol Paris"),
	}}
	svc := newTripService(&fakePlannerService{}, places)

	doc, err := svc.GetPredefinedTrip(context.Background(), "paris-adventure", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Itinerary[1].Activities[0].PlaceDetails == nil {
		t.Fatal("expected Eiffel Tower activity to be enriched")
	}
	if doc.Hotels[0].PlaceDetails == nil {
		t.Fatal("expected first hotel to be enriched")
	}
}
