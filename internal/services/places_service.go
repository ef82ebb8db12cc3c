package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"tripweaver/internal/models/request_models"
	"tripweaver/internal/models/response_models"
)

const (
	SearchTypeDestination   = "destination"
	SearchTypeEstablishment = "establishment"
)

type PlacesServiceInterface interface {
	// GetPlaceDetails looks a place up by free-text name near a destination
	// and returns its metadata. A nil result with nil error means the
	// provider had no match.
	GetPlaceDetails(ctx context.Context, placeName, destination string) (*response_models.PlaceDetails, error)
	AutocompletePlaces(ctx context.Context, query, location, searchType string) ([]response_models.PlacePrediction, error)
}

// GooglePlacesClient talks to the Google Places REST API.
type GooglePlacesClient struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string
}

func NewGooglePlacesClient(apiKey string) *GooglePlacesClient {
	return &GooglePlacesClient{
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		APIKey:  apiKey,
		BaseURL: "https://maps.googleapis.com/maps/api/place",
	}
}

type textSearchResponse struct {
	Results []struct {
		PlaceID string `json:"place_id"`
	} `json:"results"`
}

type placeDetailsResponse struct {
	Result struct {
		Name             string  `json:"name"`
		FormattedAddress string  `json:"formatted_address"`
		Website          string  `json:"website"`
		URL              string  `json:"url"`
		Rating           float64 `json:"rating"`
		PriceLevel       *int    `json:"price_level"`
		UserRatingsTotal int     `json:"user_ratings_total"`
		Photos           []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
		OpeningHours *struct {
			OpenNow *bool `json:"open_now"`
		} `json:"opening_hours"`
		Reviews []struct {
			AuthorName string  `json:"author_name"`
			Rating     float64 `json:"rating"`
			Text       string  `json:"text"`
			Time       int64   `json:"time"`
		} `json:"reviews"`
	} `json:"result"`
}

type autocompleteResponse struct {
	Predictions []response_models.PlacePrediction `json:"predictions"`
}

func (c *GooglePlacesClient) GetPlaceDetails(ctx context.Context, placeName, destination string) (*response_models.PlaceDetails, error) {
	q := url.Values{}
	q.Set("query", fmt.Sprintf("%s %s", placeName, destination))
	q.Set("key", c.APIKey)

	var search textSearchResponse
	if err := c.getJSON(ctx, "/textsearch/json", q, &search); err != nil {
		return nil, fmt.Errorf("places textsearch: %w", err)
	}
	if len(search.Results) == 0 {
		return nil, nil
	}

	q = url.Values{}
	q.Set("place_id", search.Results[0].PlaceID)
	q.Set("fields", "name,formatted_address,photos,website,rating,price_level,user_ratings_total,url,opening_hours,reviews")
	q.Set("key", c.APIKey)

	var details placeDetailsResponse
	if err := c.getJSON(ctx, "/details/json", q, &details); err != nil {
		return nil, fmt.Errorf("places details: %w", err)
	}

	result := details.Result

	var photoURL string
	if len(result.Photos) > 0 {
		photoURL = fmt.Sprintf("%s/photo?maxwidth=800&photoreference=%s&key=%s",
			c.BaseURL, result.Photos[0].PhotoReference, c.APIKey)
	}

	website := result.Website
	if website == "" {
		website = result.URL
	}

	var isOpen *bool
	if result.OpeningHours != nil {
		isOpen = result.OpeningHours.OpenNow
	}

	reviews := make([]response_models.PlaceReview, 0, 3)
	for _, review := range result.Reviews {
		if len(reviews) == 3 {
			break
		}
		reviews = append(reviews, response_models.PlaceReview{
			Author: review.AuthorName,
			Rating: review.Rating,
			Text:   review.Text,
			Time:   review.Time,
		})
	}

	return &response_models.PlaceDetails{
		Name:       result.Name,
		Address:    result.FormattedAddress,
		PhotoURL:   photoURL,
		Website:    website,
		Rating:     result.Rating,
		PriceLevel: mapPriceLevel(result.PriceLevel),
		IsOpen:     isOpen,
		Stats:      response_models.PlaceStats{TotalRatings: result.UserRatingsTotal},
		Reviews:    reviews,
	}, nil
}

func (c *GooglePlacesClient) AutocompletePlaces(ctx context.Context, query, location, searchType string) ([]response_models.PlacePrediction, error) {
	q := url.Values{}
	q.Set("input", query)
	q.Set("key", c.APIKey)

	if searchType == SearchTypeDestination {
		q.Set("types", "geocode")
	} else {
		q.Set("types", "establishment")
		if location != "" {
			q.Set("location", location)
			q.Set("radius", "50000")
		}
	}

	var resp autocompleteResponse
	if err := c.getJSON(ctx, "/autocomplete/json", q, &resp); err != nil {
		return nil, fmt.Errorf("places autocomplete: %w", err)
	}

	predictions := resp.Predictions
	if searchType == SearchTypeDestination {
		filtered := make([]response_models.PlacePrediction, 0, len(predictions))
		for _, prediction := range predictions {
			if isDestinationPrediction(prediction.Types) {
				filtered = append(filtered, prediction)
			}
		}
		predictions = filtered
	}

	return predictions, nil
}

func (c *GooglePlacesClient) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("bad status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

// mapPriceLevel converts the provider's numeric tier (1/2/3+) to the budget
// tier enum. Zero or absent means unknown.
func mapPriceLevel(level *int) *string {
	if level == nil || *level == 0 {
		return nil
	}
	var tier string
	switch *level {
	case 1:
		tier = request_models.BudgetFriendly
	case 2:
		tier = request_models.BudgetMidRange
	default:
		tier = request_models.BudgetLuxury
	}
	return &tier
}

// Destination searches only surface administrative areas.
func isDestinationPrediction(types []string) bool {
	for _, t := range types {
		switch t {
		case "locality", "country", "administrative_area_level_1":
			return true
		}
	}
	return false
}
