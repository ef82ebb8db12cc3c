package repositories

import "tripweaver/internal/models/response_models"

// TripTemplate is a hand-authored itinerary with a fixed duration. Dates are
// filled in per request by the predefined-trip path.
type TripTemplate struct {
	TripID         string
	Destination    string
	Duration       int
	NumTravelers   int
	Interests      []string
	Budget         string
	TravelStyle    string
	FoodPreference string
	Itinerary      []response_models.DayPlan
	Hotels         []response_models.Hotel
	GeneralTips    []string
}

type TemplateRepository interface {
	// FindByID returns a private copy of the template; callers may mutate it
	// freely (the enrichment pass writes into activity and hotel slots).
	FindByID(id string) (*TripTemplate, bool)
	ListIDs() []string
}

type templateRepository struct {
	templates map[string]TripTemplate
}

func NewTemplateRepository() TemplateRepository {
	return &templateRepository{templates: predefinedTrips()}
}

func (r *templateRepository) FindByID(id string) (*TripTemplate, bool) {
	template, ok := r.templates[id]
	if !ok {
		return nil, false
	}
	return template.clone(), true
}

func (r *templateRepository) ListIDs() []string {
	ids := make([]string, 0, len(r.templates))
	for id := range r.templates {
		ids = append(ids, id)
	}
	return ids
}

func (t TripTemplate) clone() *TripTemplate {
	copied := t

	copied.Interests = append([]string(nil), t.Interests...)
	copied.GeneralTips = append([]string(nil), t.GeneralTips...)
	copied.Hotels = append([]response_models.Hotel(nil), t.Hotels...)

	copied.Itinerary = make([]response_models.DayPlan, len(t.Itinerary))
	for i, day := range t.Itinerary {
		copied.Itinerary[i] = day
		copied.Itinerary[i].Activities = append([]response_models.Activity(nil), day.Activities...)
	}

	return &copied
}
