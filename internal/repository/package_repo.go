package repository

import (
	"context"

	"github.com/Eursukkul/partywknd/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PackageRepository interface {
	FindByID(ctx context.Context, tx *gorm.DB, id string) (*models.Package, error)
	// Load returns the package with its lodging and events attached.
	Load(ctx context.Context, tx *gorm.DB, id string) (*models.Package, error)
	FindAll(ctx context.Context, status *models.PackageStatus) ([]models.Package, error)
	Create(ctx context.Context, tx *gorm.DB, pkg *models.Package) error
	Save(ctx context.Context, tx *gorm.DB, pkg *models.Package) error
	// ReplaceEvents makes the package's event set exactly eventIDs.
	ReplaceEvents(ctx context.Context, tx *gorm.DB, packageID string, eventIDs []string) error
	UpdateStatus(ctx context.Context, tx *gorm.DB, id string, status models.PackageStatus) error
	GetDB() *gorm.DB
}

type packageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepository{db: db}
}

func (r *packageRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *packageRepository) FindByID(ctx context.Context, tx *gorm.DB, id string) (*models.Package, error) {
	var pkg models.Package
	if err := conn(tx, r.db).WithContext(ctx).First(&pkg, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *packageRepository) Load(ctx context.Context, tx *gorm.DB, id string) (*models.Package, error) {
	var pkg models.Package
	err := withGraph(conn(tx, r.db).WithContext(ctx)).First(&pkg, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *packageRepository) FindAll(ctx context.Context, status *models.PackageStatus) ([]models.Package, error) {
	var pkgs []models.Package
	q := withGraph(r.db.WithContext(ctx))
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if err := q.Order("created_at ASC, id ASC").Find(&pkgs).Error; err != nil {
		return nil, err
	}
	return pkgs, nil
}

func (r *packageRepository) Create(ctx context.Context, tx *gorm.DB, pkg *models.Package) error {
	return conn(tx, r.db).WithContext(ctx).Omit(clause.Associations).Create(pkg).Error
}

func (r *packageRepository) Save(ctx context.Context, tx *gorm.DB, pkg *models.Package) error {
	return conn(tx, r.db).WithContext(ctx).Omit(clause.Associations).Save(pkg).Error
}

func (r *packageRepository) ReplaceEvents(ctx context.Context, tx *gorm.DB, packageID string, eventIDs []string) error {
	q := conn(tx, r.db).WithContext(ctx)

	stale := q.Where("package_id = ?", packageID)
	if len(eventIDs) > 0 {
		stale = stale.Where("event_id NOT IN ?", eventIDs)
	}
	if err := stale.Delete(&models.PackageEvent{}).Error; err != nil {
		return err
	}
	if len(eventIDs) == 0 {
		return nil
	}

	rows := make([]models.PackageEvent, len(eventIDs))
	for i, id := range eventIDs {
		rows[i] = models.PackageEvent{PackageID: packageID, EventID: id}
	}
	return q.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "package_id"}, {Name: "event_id"}},
		DoNothing: true,
	}).Create(&rows).Error
}

func (r *packageRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, id string, status models.PackageStatus) error {
	return conn(tx, r.db).WithContext(ctx).
		Model(&models.Package{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func withGraph(q *gorm.DB) *gorm.DB {
	return q.Preload("Lodging").Preload("Events", func(db *gorm.DB) *gorm.DB {
		return db.Order("events.id ASC")
	})
}
