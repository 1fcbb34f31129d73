// Package seed loads the demo catalog and package used by local setups.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Eursukkul/partywknd/internal/models"
	"github.com/Eursukkul/partywknd/internal/service"
	"gorm.io/datatypes"
)

const DemoPackageID = "package-demo"

func day(y int, m time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func demoEvents() []models.Event {
	return []models.Event{
		{
			ID:    "event-concert",
			Title: "Skyline Rooftop Concert",
			City:  "Los Angeles",
			Venue: "Downtown Loft",
			Date:  day(2025, time.December, 24),
			Price: 120,
			Tags:  []string{"live-music", "rooftop", "vip"},
		},
		{
			ID:    "event-comedy",
			Title: "Late Night Comedy",
			City:  "New York",
			Venue: "Laugh Club",
			Date:  day(2025, time.December, 25),
			Price: 75,
			Tags:  []string{"comedy", "downtown"},
		},
	}
}

func demoLodgings() []models.Lodging {
	return []models.Lodging{
		{ID: "lodging-01", Name: "City Hotel", Location: "New York", Price: 220},
		{ID: "lodging-02", Name: "Beach Bungalow", Location: "Los Angeles", Price: 320},
	}
}

// Run upserts the demo data. Running it again leaves the same rows behind.
func Run(ctx context.Context, catalog service.CatalogService, packages service.PackageService) error {
	var eventIDs []string
	for _, e := range demoEvents() {
		stored, err := catalog.UpsertEvent(ctx, &e)
		if err != nil {
			return fmt.Errorf("seed event %s: %w", e.ID, err)
		}
		eventIDs = append(eventIDs, stored.ID)
	}

	lodgings := demoLodgings()
	for _, l := range lodgings {
		if _, err := catalog.UpsertLodging(ctx, &l); err != nil {
			return fmt.Errorf("seed lodging %s: %w", l.ID, err)
		}
	}

	lodgingID := lodgings[0].ID
	if _, err := packages.UpdatePackage(ctx, DemoPackageID, &service.PackageUpdate{
		LodgingID: &lodgingID,
		EventIDs:  eventIDs,
	}); err != nil {
		return fmt.Errorf("seed package: %w", err)
	}

	_, err := packages.ChangeStatus(ctx, DemoPackageID, models.PackageActive)
	switch {
	case errors.Is(err, service.ErrInvalidTransition):
		log.Printf("[Seed] %s was cancelled, leaving its status alone", DemoPackageID)
	case err != nil:
		return fmt.Errorf("activate package: %w", err)
	}

	log.Printf("[Seed] loaded %d events, %d lodgings and %s", len(eventIDs), len(lodgings), DemoPackageID)
	return nil
}
