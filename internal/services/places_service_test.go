package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func newTestPlacesClient(handler http.Handler) (*GooglePlacesClient, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewGooglePlacesClient("test-key")
	client.HTTP = server.Client()
	client.BaseURL = server.URL
	return client, server
}

func placesHandler(t *testing.T, searchResults string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/textsearch/json", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("query"); !strings.Contains(got, "Rome") {
			t.Errorf("textsearch query missing destination: %q", got)
		}
		w.Write([]byte(searchResults))
	})
	mux.HandleFunc("/details/json", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("place_id"); got != "place-1" {
			t.Errorf("unexpected place_id %q", got)
		}
		w.Write([]byte(`{"result":{
			"name": "Colosseum",
			"formatted_address": "Piazza del Colosseo, 1, Rome",
			"website": "https://colosseo.it",
			"url": "https://maps.google.com/?cid=1",
			"rating": 4.7,
			"price_level": 1,
			"user_ratings_total": 358000,
			"photos": [{"photo_reference": "photo-ref-1"}, {"photo_reference": "photo-ref-2"}],
			"opening_hours": {"open_now": true},
			"reviews": [
				{"author_name": "A", "rating": 5, "text": "great", "time": 1700000001},
				{"author_name": "B", "rating": 4, "text": "good", "time": 1700000002},
				{"author_name": "C", "rating": 3, "text": "ok", "time": 1700000003},
				{"author_name": "D", "rating": 2, "text": "meh", "time": 1700000004}
			]
		}}`))
	})
	return mux
}

func TestGetPlaceDetailsMapsProviderFields(t *testing.T) {
	client, server := newTestPlacesClient(placesHandler(t, `{"results":[{"place_id":"place-1"}]}`))
	defer server.Close()

	got, err := client.GetPlaceDetails(context.Background(), "Colosseum", "Rome, Italy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected details")
	}

	if got.Name != "Colosseum" || got.Address != "Piazza del Colosseo, 1, Rome" {
		t.Fatalf("bad identity mapping: %+v", got)
	}
	if got.Website != "https://colosseo.it" {
		t.Fatalf("bad website %q", got.Website)
	}
	if got.Rating != 4.7 || got.Stats.TotalRatings != 358000 {
		t.Fatalf("bad rating mapping: %+v", got)
	}
	if got.PriceLevel == nil || *got.PriceLevel != "budget-friendly" {
		t.Fatalf("price level 1 must map to budget-friendly, got %v", got.PriceLevel)
	}
	if got.IsOpen == nil || !*got.IsOpen {
		t.Fatalf("expected isOpen=true, got %v", got.IsOpen)
	}
	if len(got.Reviews) != 3 {
		t.Fatalf("reviews must be truncated to 3, got %d", len(got.Reviews))
	}
	if got.Reviews[0].Author != "A" || got.Reviews[0].Time != 1700000001 {
		t.Fatalf("bad review projection: %+v", got.Reviews[0])
	}
	if !strings.Contains(got.PhotoURL, "/photo?maxwidth=800&photoreference=photo-ref-1") {
		t.Fatalf("bad photo url %q", got.PhotoURL)
	}
}

func TestGetPlaceDetailsNoResults(t *testing.T) {
	client, server := newTestPlacesClient(placesHandler(t, `{"results":[]}`))
	defer server.Close()

	got, err := client.GetPlaceDetails(context.Background(), "Colosseum", "Rome, Italy")
	if err != nil {
		t.Fatalf("no results must not be an error, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil details, got %+v", got)
	}
}

func TestGetPlaceDetailsBadStatus(t *testing.T) {
	client, server := newTestPlacesClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	if _, err := client.GetPlaceDetails(context.Background(), "Colosseum", "Rome, Italy"); err == nil {
		t.Fatal("expected error on provider failure")
	}
}

func TestMapPriceLevelTiers(t *testing.T) {
	levels := map[int]string{1: "budget-friendly", 2: "mid-range", 3: "luxury", 4: "luxury"}
	for level, want := range levels {
		l := level
		got := mapPriceLevel(&l)
		if got == nil || *got != want {
			t.Fatalf("level %d: expected %q, got %v", level, want, got)
		}
	}

	zero := 0
	if mapPriceLevel(&zero) != nil || mapPriceLevel(nil) != nil {
		t.Fatal("absent or zero price level must map to nil")
	}
}

func TestAutocompleteDestinationFilter(t *testing.T) {
	var gotQuery url.Values
	client, server := newTestPlacesClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"predictions":[
			{"description": "Paris, France", "place_id": "p1", "types": ["locality", "political"]},
			{"description": "Paris Hilton Suite", "place_id": "p2", "types": ["lodging", "establishment"]},
			{"description": "France", "place_id": "p3", "types": ["country", "political"]},
			{"description": "Île-de-France", "place_id": "p4", "types": ["administrative_area_level_1"]}
		]}`))
	}))
	defer server.Close()

	predictions, err := client.AutocompletePlaces(context.Background(), "Paris", "", SearchTypeDestination)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotQuery.Get("types") != "geocode" {
		t.Fatalf("destination search must use types=geocode, got %q", gotQuery.Get("types"))
	}
	if len(predictions) != 3 {
		t.Fatalf("expected 3 administrative predictions, got %d", len(predictions))
	}
	for _, prediction := range predictions {
		if prediction.PlaceID == "p2" {
			t.Fatal("establishment prediction must be filtered out")
		}
	}
}

func TestAutocompleteEstablishmentLocationBias(t *testing.T) {
	var gotQuery url.Values
	client, server := newTestPlacesClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"predictions":[]}`))
	}))
	defer server.Close()

	if _, err := client.AutocompletePlaces(context.Background(), "museum", "48.85,2.35", SearchTypeEstablishment); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotQuery.Get("types") != "establishment" {
		t.Fatalf("expected types=establishment, got %q", gotQuery.Get("types"))
	}
	if gotQuery.Get("location") != "48.85,2.35" || gotQuery.Get("radius") != "50000" {
		t.Fatalf("expected location bias with 50km radius, got location=%q radius=%q",
			gotQuery.Get("location"), gotQuery.Get("radius"))
	}
}
