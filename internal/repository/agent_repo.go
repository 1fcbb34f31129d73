package repository

import (
	"context"

	"github.com/Eursukkul/partywknd/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AgentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, agent *models.Agent) error
	FindByID(ctx context.Context, tx *gorm.DB, id string) (*models.Agent, error)
}

type agentRepository struct {
	db *gorm.DB
}

func NewAgentRepository(db *gorm.DB) AgentRepository {
	return &agentRepository{db: db}
}

func (r *agentRepository) Create(ctx context.Context, tx *gorm.DB, agent *models.Agent) error {
	return conn(tx, r.db).WithContext(ctx).Omit(clause.Associations).Create(agent).Error
}

func (r *agentRepository) FindByID(ctx context.Context, tx *gorm.DB, id string) (*models.Agent, error) {
	var agent models.Agent
	if err := conn(tx, r.db).WithContext(ctx).Preload("User").First(&agent, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &agent, nil
}

type AdminUserRepository interface {
	Create(ctx context.Context, tx *gorm.DB, admin *models.AdminUser) error
	FindByEmail(ctx context.Context, tx *gorm.DB, email string) (*models.AdminUser, error)
	GetDB() *gorm.DB
}

type adminUserRepository struct {
	db *gorm.DB
}

func NewAdminUserRepository(db *gorm.DB) AdminUserRepository {
	return &adminUserRepository{db: db}
}

func (r *adminUserRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *adminUserRepository) Create(ctx context.Context, tx *gorm.DB, admin *models.AdminUser) error {
	return conn(tx, r.db).WithContext(ctx).Create(admin).Error
}

func (r *adminUserRepository) FindByEmail(ctx context.Context, tx *gorm.DB, email string) (*models.AdminUser, error) {
	var admin models.AdminUser
	if err := conn(tx, r.db).WithContext(ctx).First(&admin, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
