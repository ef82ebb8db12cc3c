package response_models

// PlaceDetails is value data attached to a single activity or hotel by the
// enrichment pass. IsOpen is tri-state: nil means the provider did not say.
type PlaceDetails struct {
	Name       string        `json:"name"`
	Address    string        `json:"address"`
	PhotoURL   string        `json:"photoUrl,omitempty"`
	Website    string        `json:"website,omitempty"`
	Rating     float64       `json:"rating"`
	PriceLevel *string       `json:"priceLevel"`
	IsOpen     *bool         `json:"isOpen"`
	Stats      PlaceStats    `json:"stats"`
	Reviews    []PlaceReview `json:"reviews"`
}

type PlaceStats struct {
	TotalRatings int `json:"totalRatings"`
}

type PlaceReview struct {
	Author string  `json:"author"`
	Rating float64 `json:"rating"`
	Text   string  `json:"text"`
	Time   int64   `json:"time"`
}

// PlacePrediction mirrors one autocomplete entry from the places provider.
type PlacePrediction struct {
	Description string   `json:"description"`
	PlaceID     string   `json:"place_id"`
	Types       []string `json:"types"`
}
