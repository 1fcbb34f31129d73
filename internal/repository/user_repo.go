package repository

import (
	"context"

	"github.com/Eursukkul/partywknd/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	// EnsureUser returns the user with the given id, inserting a placeholder
	// record first if none exists. created reports whether a row was inserted.
	EnsureUser(ctx context.Context, tx *gorm.DB, id string) (user *models.User, created bool, err error)
	Create(ctx context.Context, tx *gorm.DB, user *models.User) error
	FindByID(ctx context.Context, tx *gorm.DB, id string) (*models.User, error)
	GetDB() *gorm.DB
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *userRepository) EnsureUser(ctx context.Context, tx *gorm.DB, id string) (*models.User, bool, error) {
	q := conn(tx, r.db).WithContext(ctx)

	placeholder := models.PlaceholderUser(id)
	res := q.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(&placeholder)
	if res.Error != nil {
		return nil, false, res.Error
	}

	var user models.User
	if err := q.First(&user, "id = ?", id).Error; err != nil {
		return nil, false, err
	}
	return &user, res.RowsAffected > 0, nil
}

func (r *userRepository) Create(ctx context.Context, tx *gorm.DB, user *models.User) error {
	return conn(tx, r.db).WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, tx *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := conn(tx, r.db).WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
