package repository

import (
	"context"

	"github.com/Eursukkul/partywknd/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LodgingRepository interface {
	Upsert(ctx context.Context, tx *gorm.DB, lodging *models.Lodging) error
	FindByID(ctx context.Context, tx *gorm.DB, id string) (*models.Lodging, error)
	FindAll(ctx context.Context, location string) ([]models.Lodging, error)
}

type lodgingRepository struct {
	db *gorm.DB
}

func NewLodgingRepository(db *gorm.DB) LodgingRepository {
	return &lodgingRepository{db: db}
}

func (r *lodgingRepository) Upsert(ctx context.Context, tx *gorm.DB, lodging *models.Lodging) error {
	return conn(tx, r.db).WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(models.LodgingUpsertColumns),
	}).Create(lodging).Error
}

func (r *lodgingRepository) FindByID(ctx context.Context, tx *gorm.DB, id string) (*models.Lodging, error) {
	var lodging models.Lodging
	if err := conn(tx, r.db).WithContext(ctx).First(&lodging, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &lodging, nil
}

func (r *lodgingRepository) FindAll(ctx context.Context, location string) ([]models.Lodging, error) {
	var lodgings []models.Lodging
	q := r.db.WithContext(ctx)
	if location != "" {
		q = q.Where("location = ?", location)
	}
	if err := q.Order("id ASC").Find(&lodgings).Error; err != nil {
		return nil, err
	}
	return lodgings, nil
}
