package request_models

import (
	"strings"

	"tripweaver/pkg/utils"
)

const (
	BudgetFriendly = "budget-friendly"
	BudgetMidRange = "mid-range"
	BudgetLuxury   = "luxury"
)

var (
	budgetLevels = []string{BudgetFriendly, BudgetMidRange, BudgetLuxury}
	travelStyles = []string{"fast-paced", "relaxed", "family-friendly"}
	foodChoices  = []string{"veg", "non-veg", "vegan", "not-specified"}
)

type TripPlanRequest struct {
	Destination    string   `json:"destination"`
	StartDate      string   `json:"startDate"`
	EndDate        string   `json:"endDate"`
	NumTravelers   int      `json:"numTravelers"`
	Interests      []string `json:"interests"`
	Budget         string   `json:"budget"`
	TravelStyle    string   `json:"travelStyle"`
	FoodPreference string   `json:"foodPreference"`
	PlacesToVisit  []string `json:"placesToVisit"`
}

// Validate checks the request field by field and reports the first violation.
// It runs before any external call is made.
func (r *TripPlanRequest) Validate() *utils.ValidationError {
	if strings.TrimSpace(r.Destination) == "" {
		return &utils.ValidationError{Field: "destination", Message: "destination is required"}
	}

	if r.StartDate == "" {
		return &utils.ValidationError{Field: "startDate", Message: "startDate is required"}
	}
	start, err := utils.ParseTripDate(r.StartDate)
	if err != nil {
		return &utils.ValidationError{Field: "startDate", Message: "startDate must be an ISO date (YYYY-MM-DD)"}
	}

	if r.EndDate == "" {
		return &utils.ValidationError{Field: "endDate", Message: "endDate is required"}
	}
	end, err := utils.ParseTripDate(r.EndDate)
	if err != nil {
		return &utils.ValidationError{Field: "endDate", Message: "endDate must be an ISO date (YYYY-MM-DD)"}
	}
	if end.Before(start) {
		return &utils.ValidationError{Field: "endDate", Message: "endDate must not be before startDate"}
	}

	if r.NumTravelers < 1 {
		return &utils.ValidationError{Field: "numTravelers", Message: "numTravelers must be a positive integer"}
	}

	if len(r.Interests) == 0 {
		return &utils.ValidationError{Field: "interests", Message: "at least one interest is required"}
	}
	for _, interest := range r.Interests {
		if strings.TrimSpace(interest) == "" {
			return &utils.ValidationError{Field: "interests", Message: "interests must be non-empty strings"}
		}
	}

	if r.Budget != "" && !contains(budgetLevels, r.Budget) {
		return &utils.ValidationError{Field: "budget", Message: "budget must be one of budget-friendly, mid-range, luxury"}
	}
	if r.TravelStyle != "" && !contains(travelStyles, r.TravelStyle) {
		return &utils.ValidationError{Field: "travelStyle", Message: "travelStyle must be one of fast-paced, relaxed, family-friendly"}
	}
	if r.FoodPreference != "" && !contains(foodChoices, r.FoodPreference) {
		return &utils.ValidationError{Field: "foodPreference", Message: "foodPreference must be one of veg, non-veg, vegan, not-specified"}
	}

	for _, place := range r.PlacesToVisit {
		if strings.TrimSpace(place) == "" {
			return &utils.ValidationError{Field: "placesToVisit", Message: "placesToVisit must be non-empty strings"}
		}
	}

	return nil
}

// BudgetOrDefault falls back to mid-range when no budget tier is given.
func (r *TripPlanRequest) BudgetOrDefault() string {
	if r.Budget == "" {
		return BudgetMidRange
	}
	return r.Budget
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
