package service

import (
	"context"
	"strings"
	"time"

	"github.com/Eursukkul/partywknd/internal/models"
	"github.com/Eursukkul/partywknd/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogService manages the events and lodgings that packages are built from.
type CatalogService interface {
	UpsertEvent(ctx context.Context, event *models.Event) (*models.Event, error)
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	ListEvents(ctx context.Context, city string) ([]models.Event, error)
	UpsertLodging(ctx context.Context, lodging *models.Lodging) (*models.Lodging, error)
	GetLodging(ctx context.Context, id string) (*models.Lodging, error)
	ListLodgings(ctx context.Context, location string) ([]models.Lodging, error)
}

type catalogService struct {
	eventRepo   repository.EventRepository
	lodgingRepo repository.LodgingRepository
}

func NewCatalogService(eventRepo repository.EventRepository, lodgingRepo repository.LodgingRepository) CatalogService {
	return &catalogService{eventRepo: eventRepo, lodgingRepo: lodgingRepo}
}

func (s *catalogService) UpsertEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	if strings.TrimSpace(event.Title) == "" || strings.TrimSpace(event.City) == "" || strings.TrimSpace(event.Venue) == "" {
		return nil, invalidInput("title, city and venue are required")
	}
	if time.Time(event.Date).IsZero() {
		return nil, invalidInput("date is required")
	}
	if event.Price < 0 {
		return nil, invalidInput("price must not be negative")
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	var result *models.Event
	err := s.eventRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.eventRepo.Upsert(ctx, tx, event); err != nil {
			return storageError(err)
		}
		stored, err := s.eventRepo.FindByID(ctx, tx, event.ID)
		if err != nil {
			return err
		}
		result = stored
		return nil
	})
	return result, err
}

func (s *catalogService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, nil, id)
	if err != nil {
		return nil, lookupError(err, ErrEventNotFound)
	}
	return event, nil
}

func (s *catalogService) ListEvents(ctx context.Context, city string) ([]models.Event, error) {
	return s.eventRepo.FindAll(ctx, city)
}

func (s *catalogService) UpsertLodging(ctx context.Context, lodging *models.Lodging) (*models.Lodging, error) {
	if strings.TrimSpace(lodging.Name) == "" || strings.TrimSpace(lodging.Location) == "" {
		return nil, invalidInput("name and location are required")
	}
	if lodging.Price < 0 {
		return nil, invalidInput("price must not be negative")
	}
	if lodging.ID == "" {
		lodging.ID = uuid.NewString()
	}

	var result *models.Lodging
	err := s.eventRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.lodgingRepo.Upsert(ctx, tx, lodging); err != nil {
			return storageError(err)
		}
		stored, err := s.lodgingRepo.FindByID(ctx, tx, lodging.ID)
		if err != nil {
			return err
		}
		result = stored
		return nil
	})
	return result, err
}

func (s *catalogService) GetLodging(ctx context.Context, id string) (*models.Lodging, error) {
	lodging, err := s.lodgingRepo.FindByID(ctx, nil, id)
	if err != nil {
		return nil, lookupError(err, ErrLodgingNotFound)
	}
	return lodging, nil
}

func (s *catalogService) ListLodgings(ctx context.Context, location string) ([]models.Lodging, error) {
	return s.lodgingRepo.FindAll(ctx, location)
}
