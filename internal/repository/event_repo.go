package repository

import (
	"context"

	"github.com/Eursukkul/partywknd/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepository interface {
	// Upsert inserts the event or overwrites every column of an existing row with the same id.
	Upsert(ctx context.Context, tx *gorm.DB, event *models.Event) error
	FindByID(ctx context.Context, tx *gorm.DB, id string) (*models.Event, error)
	FindByIDs(ctx context.Context, tx *gorm.DB, ids []string) ([]models.Event, error)
	FindAll(ctx context.Context, city string) ([]models.Event, error)
	GetDB() *gorm.DB
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *eventRepository) Upsert(ctx context.Context, tx *gorm.DB, event *models.Event) error {
	return conn(tx, r.db).WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(models.EventUpsertColumns),
	}).Create(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, tx *gorm.DB, id string) (*models.Event, error) {
	var event models.Event
	if err := conn(tx, r.db).WithContext(ctx).First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) FindByIDs(ctx context.Context, tx *gorm.DB, ids []string) ([]models.Event, error) {
	events := []models.Event{}
	if len(ids) == 0 {
		return events, nil
	}
	if err := conn(tx, r.db).WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) FindAll(ctx context.Context, city string) ([]models.Event, error) {
	var events []models.Event
	q := r.db.WithContext(ctx)
	if city != "" {
		q = q.Where("city = ?", city)
	}
	if err := q.Order("date ASC, id ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
