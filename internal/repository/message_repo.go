package repository

import (
	"context"

	"github.com/Eursukkul/partywknd/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MessageFilter struct {
	// UserID matches either the sender or the receiver.
	UserID    string
	PackageID string
}

// MessageRepository has no update or delete: messages are append-only.
type MessageRepository interface {
	Create(ctx context.Context, tx *gorm.DB, msg *models.Message) error
	FindAll(ctx context.Context, filter MessageFilter) ([]models.Message, error)
	GetDB() *gorm.DB
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *messageRepository) Create(ctx context.Context, tx *gorm.DB, msg *models.Message) error {
	return conn(tx, r.db).WithContext(ctx).Omit(clause.Associations).Create(msg).Error
}

func (r *messageRepository) FindAll(ctx context.Context, filter MessageFilter) ([]models.Message, error) {
	var msgs []models.Message
	q := r.db.WithContext(ctx)
	if filter.UserID != "" {
		q = q.Where("sender_id = ? OR receiver_id = ?", filter.UserID, filter.UserID)
	}
	if filter.PackageID != "" {
		q = q.Where("package_id = ?", filter.PackageID)
	}
	if err := q.Order("created_at ASC, id ASC").Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}
