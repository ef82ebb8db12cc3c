package services

import (
	"context"
	"log"
	"sync"

	"tripweaver/internal/models/response_models"
)

type EnrichmentServiceInterface interface {
	EnrichItinerary(ctx context.Context, doc *response_models.ItineraryDocument)
}

// EnrichmentService attaches place metadata to every activity and hotel of an
// itinerary. Lookups are issued concurrently, one per item; a failed or empty
// lookup leaves that item without metadata and never fails the pass.
type EnrichmentService struct {
	places PlacesServiceInterface
}

func NewEnrichmentService(places PlacesServiceInterface) EnrichmentServiceInterface {
	return &EnrichmentService{places: places}
}

func (e *EnrichmentService) EnrichItinerary(ctx context.Context, doc *response_models.ItineraryDocument) {
	var wg sync.WaitGroup

	for i := range doc.Itinerary {
		for j := range doc.Itinerary[i].Activities {
			activity := &doc.Itinerary[i].Activities[j]
			if activity.Location == "" {
				continue
			}

			wg.Add(1)
			go func(activity *response_models.Activity) {
				defer wg.Done()
				activity.PlaceDetails = e.lookup(ctx, activity.Location, doc.Destination)
			}(activity)
		}
	}

	for i := range doc.Hotels {
		hotel := &doc.Hotels[i]
		if hotel.Name == "" {
			continue
		}

		wg.Add(1)
		go func(hotel *response_models.Hotel) {
			defer wg.Done()
			hotel.PlaceDetails = e.lookup(ctx, hotel.Name, doc.Destination)
		}(hotel)
	}

	wg.Wait()
}

// lookup absorbs per-item failures: each goroutine writes only its own slot,
// so a nil return just leaves that slot empty.
func (e *EnrichmentService) lookup(ctx context.Context, name, destination string) *response_models.PlaceDetails {
	details, err := e.places.GetPlaceDetails(ctx, name, destination)
	if err != nil {
		log.Printf("Error fetching place details for %q: %v", name, err)
		return nil
	}
	return details
}
