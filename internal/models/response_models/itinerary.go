package response_models

type ItineraryDocument struct {
	TripID      string    `json:"tripId"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Itinerary   []DayPlan `json:"itinerary"`
	GeneralTips []string  `json:"generalTips"`
	Hotels      []Hotel   `json:"hotels"`
}

type DayPlan struct {
	Date       string     `json:"date"`
	Day        int        `json:"day"`
	Activities []Activity `json:"activities"`
}

type Activity struct {
	TimeOfDay    string        `json:"timeOfDay"`
	Description  string        `json:"description"`
	Location     string        `json:"location"`
	Notes        string        `json:"notes"`
	PlaceDetails *PlaceDetails `json:"placeDetails,omitempty"`
}

type Hotel struct {
	Name         string        `json:"name"`
	PriceRange   string        `json:"priceRange"`
	Description  string        `json:"description"`
	Location     string        `json:"location"`
	Website      string        `json:"website,omitempty"`
	PlaceDetails *PlaceDetails `json:"placeDetails,omitempty"`
}
