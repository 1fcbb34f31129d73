package repository

import (
	"context"

	"github.com/Eursukkul/partywknd/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingFilter struct {
	UserID    string
	PackageID string
	Status    *models.BookingStatus
}

type BookingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	FindByID(ctx context.Context, tx *gorm.DB, id string) (*models.Booking, error)
	FindAll(ctx context.Context, filter BookingFilter) ([]models.Booking, error)
	// MarkCancelled sets the status without checking that the row exists.
	// It returns the number of rows changed.
	MarkCancelled(ctx context.Context, tx *gorm.DB, id string) (int64, error)
	GetDB() *gorm.DB
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return conn(tx, r.db).WithContext(ctx).Omit(clause.Associations).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, tx *gorm.DB, id string) (*models.Booking, error) {
	var booking models.Booking
	if err := conn(tx, r.db).WithContext(ctx).First(&booking, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, filter BookingFilter) ([]models.Booking, error) {
	var bookings []models.Booking
	q := r.db.WithContext(ctx)
	if filter.UserID != "" {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if filter.PackageID != "" {
		q = q.Where("package_id = ?", filter.PackageID)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if err := q.Order("created_at ASC, id ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) MarkCancelled(ctx context.Context, tx *gorm.DB, id string) (int64, error) {
	res := conn(tx, r.db).WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND status <> ?", id, models.StatusCancelled).
		Update("status", models.StatusCancelled)
	return res.RowsAffected, res.Error
}
