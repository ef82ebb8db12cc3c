package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tripweaver/internal/models/request_models"
	"tripweaver/internal/models/response_models"
	"tripweaver/pkg/utils"
)

type PlannerServiceInterface interface {
	SynthesizeItinerary(ctx context.Context, req *request_models.TripPlanRequest) (*response_models.ItineraryDocument, error)
}

// PlannerService turns a validated trip request into a candidate itinerary by
// prompting the generative model and parsing its JSON output.
type PlannerService struct {
	ai utils.GenerationClientInterface
}

func NewPlannerService(ai utils.GenerationClientInterface) PlannerServiceInterface {
	return &PlannerService{ai: ai}
}

func (p *PlannerService) SynthesizeItinerary(ctx context.Context, req *request_models.TripPlanRequest) (*response_models.ItineraryDocument, error) {
	prompt := BuildItineraryPrompt(req)

	raw, err := p.ai.GenerateItinerary(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrAIServiceUnavailable, err)
	}

	cleaned := utils.CleanJSONResponse(raw)

	var doc response_models.ItineraryDocument
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, &utils.SynthesisError{
			Kind:      utils.SynthesisUnparseableOutput,
			Message:   err.Error(),
			RawOutput: raw,
		}
	}

	// The hotel contract is checked before enrichment so a non-compliant
	// document never triggers place lookups.
	if err := validateHotels(doc.Hotels, req.BudgetOrDefault(), raw); err != nil {
		return nil, err
	}

	if doc.TripID == "" {
		doc.TripID = uuid.New().String()
	}
	if doc.Destination == "" {
		doc.Destination = req.Destination
	}

	return &doc, nil
}

// validateHotels enforces the structural contract: exactly three hotels, each
// priced at the requested budget tier.
func validateHotels(hotels []response_models.Hotel, budgetLevel, raw string) error {
	if len(hotels) != 3 {
		return &utils.SynthesisError{
			Kind:      utils.SynthesisContractViolation,
			Message:   fmt.Sprintf("expected exactly 3 hotels for %s budget level, got %d", budgetLevel, len(hotels)),
			RawOutput: raw,
		}
	}

	for i, hotel := range hotels {
		if hotel.PriceRange != budgetLevel {
			return &utils.SynthesisError{
				Kind:      utils.SynthesisContractViolation,
				Message:   fmt.Sprintf("hotel %d priceRange (%s) does not match requested budget level (%s)", i+1, hotel.PriceRange, budgetLevel),
				RawOutput: raw,
			}
		}
	}

	return nil
}

// BuildItineraryPrompt embeds the trip parameters and the structural contract
// the model output must satisfy.
func BuildItineraryPrompt(req *request_models.TripPlanRequest) string {
	budgetLevel := req.BudgetOrDefault()

	var b strings.Builder
	fmt.Fprintf(&b, "Generate a detailed, day-by-day travel itinerary for a trip to %s\nfrom %s to %s for %d people.\n",
		req.Destination, req.StartDate, req.EndDate, req.NumTravelers)
	fmt.Fprintf(&b, "The travelers are interested in %s.\n", strings.Join(req.Interests, ", "))
	fmt.Fprintf(&b, "Their budget is %s.\n", budgetLevel)
	if req.TravelStyle != "" {
		fmt.Fprintf(&b, "They prefer a %s travel style.\n", req.TravelStyle)
	}
	if req.FoodPreference != "" {
		fmt.Fprintf(&b, "They prefer %s food.\n", req.FoodPreference)
	}
	if len(req.PlacesToVisit) > 0 {
		fmt.Fprintf(&b, "They specifically want to visit these places: %s.\n", strings.Join(req.PlacesToVisit, ", "))
	}

	fmt.Fprintf(&b, `
For each day, include morning, lunch, afternoon, and evening activities, including specific locations and brief descriptions.
Also, provide a few general travel tips for %s.

IMPORTANT: Suggest EXACTLY THREE hotels in the %s price range. Each hotel MUST be %s level.
For each hotel, include:
- Name
- Price range (must be %s)
- Brief description
- Location
- Website URL if available

Format the response as a JSON object with the following structure:
{
  "tripId": "unique-id",
  "destination": "string",
  "startDate": "YYYY-MM-DD",
  "endDate": "YYYY-MM-DD",
  "itinerary": [
    {
      "date": "YYYY-MM-DD",
      "day": number,
      "activities": [
        {
          "timeOfDay": "Morning|Lunch|Afternoon|Evening",
          "description": "string",
          "location": "string",
          "notes": "string"
        }
      ]
    }
  ],
  "generalTips": ["string"],
  "hotels": [
    {
      "name": "string",
      "priceRange": "%s",
      "description": "string",
      "location": "string",
      "website": "string (optional)"
    }
  ]
}

Return JSON only. No comments, no markdown.`,
		req.Destination, budgetLevel, budgetLevel, budgetLevel, budgetLevel)

	return b.String()
}
