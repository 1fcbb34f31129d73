package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/Eursukkul/partywknd/internal/auth"
	"github.com/Eursukkul/partywknd/internal/models"
	"github.com/Eursukkul/partywknd/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultAdminRole = "admin"

// AdminService covers the administrative identity flows: explicit user
// creation, agents, admin accounts and admin login.
type AdminService interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	CreateAgent(ctx context.Context, agent *models.Agent) (*models.Agent, error)
	GetAgent(ctx context.Context, id string) (*models.Agent, error)
	CreateAdmin(ctx context.Context, email, password string, role *string) (*models.AdminUser, error)
	// EnsureAdmin creates the account only if the email is not registered yet.
	EnsureAdmin(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) (*auth.Token, error)
}

type adminService struct {
	userRepo   repository.UserRepository
	agentRepo  repository.AgentRepository
	adminRepo  repository.AdminUserRepository
	issuer     *auth.Issuer
	bcryptCost int
}

func NewAdminService(
	userRepo repository.UserRepository,
	agentRepo repository.AgentRepository,
	adminRepo repository.AdminUserRepository,
	issuer *auth.Issuer,
	bcryptCost int,
) AdminService {
	return &adminService{
		userRepo:   userRepo,
		agentRepo:  agentRepo,
		adminRepo:  adminRepo,
		issuer:     issuer,
		bcryptCost: bcryptCost,
	}
}

func (s *adminService) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if strings.TrimSpace(user.ID) == "" || strings.TrimSpace(user.Email) == "" {
		return nil, invalidInput("id and email are required")
	}
	if user.Name == "" {
		user.Name = models.PlaceholderUser(user.ID).Name
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.IsActive = true

	if err := s.userRepo.Create(ctx, nil, user); err != nil {
		return nil, storageError(err)
	}
	return user, nil
}

func (s *adminService) CreateAgent(ctx context.Context, agent *models.Agent) (*models.Agent, error) {
	if strings.TrimSpace(agent.DisplayName) == "" {
		return nil, invalidInput("display_name is required")
	}
	if agent.ID == "" {
		agent.ID = uuid.NewString()
	}
	if agent.UserID != nil && *agent.UserID == "" {
		agent.UserID = nil
	}

	var result *models.Agent
	err := s.userRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if agent.UserID != nil {
			if _, err := s.userRepo.FindByID(ctx, tx, *agent.UserID); err != nil {
				return lookupError(err, ErrUserNotFound)
			}
		}
		if err := s.agentRepo.Create(ctx, tx, agent); err != nil {
			return storageError(err)
		}
		stored, err := s.agentRepo.FindByID(ctx, tx, agent.ID)
		if err != nil {
			return err
		}
		result = stored
		return nil
	})
	return result, err
}

func (s *adminService) GetAgent(ctx context.Context, id string) (*models.Agent, error) {
	agent, err := s.agentRepo.FindByID(ctx, nil, id)
	if err != nil {
		return nil, lookupError(err, ErrAgentNotFound)
	}
	return agent, nil
}

func (s *adminService) CreateAdmin(ctx context.Context, email, password string, role *string) (*models.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, invalidInput("email and password are required")
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	admin := &models.AdminUser{
		ID:             uuid.NewString(),
		Email:          email,
		HashedPassword: hash,
		Role:           role,
	}
	if err := s.adminRepo.Create(ctx, nil, admin); err != nil {
		return nil, storageError(err)
	}
	return admin, nil
}

func (s *adminService) EnsureAdmin(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	_, err := s.adminRepo.FindByEmail(ctx, nil, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if _, err := s.CreateAdmin(ctx, email, password, nil); err != nil {
		return err
	}
	log.Printf("[AdminService] bootstrap admin %s created", email)
	return nil
}

func (s *adminService) Login(ctx context.Context, email, password string) (*auth.Token, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, nil, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.VerifyPassword(admin.HashedPassword, password) {
		return nil, auth.ErrInvalidCredentials
	}

	role := defaultAdminRole
	if admin.Role != nil && *admin.Role != "" {
		role = *admin.Role
	}
	return s.issuer.Issue(auth.Identity{
		ID:    admin.ID,
		Email: admin.Email,
		Role:  role,
		Kind:  auth.KindAdmin,
	})
}
