package service

import (
	"context"
	"strings"

	"github.com/Eursukkul/partywknd/internal/models"
	"github.com/Eursukkul/partywknd/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SendMessageInput struct {
	SenderID      string
	ReceiverID    string
	PackageID     *string
	MessageText   string
	AttachmentURL *string
}

type MessageService interface {
	SendMessage(ctx context.Context, in SendMessageInput) (*models.Message, error)
	ListMessages(ctx context.Context, filter repository.MessageFilter) ([]models.Message, error)
}

type messageService struct {
	messageRepo repository.MessageRepository
	packageRepo repository.PackageRepository
	userRepo    repository.UserRepository
	publisher   Publisher
}

func NewMessageService(
	messageRepo repository.MessageRepository,
	packageRepo repository.PackageRepository,
	userRepo repository.UserRepository,
	publisher Publisher,
) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		packageRepo: packageRepo,
		userRepo:    userRepo,
		publisher:   publisher,
	}
}

func (s *messageService) SendMessage(ctx context.Context, in SendMessageInput) (*models.Message, error) {
	if strings.TrimSpace(in.SenderID) == "" {
		return nil, invalidInput("sender_id is required")
	}
	if strings.TrimSpace(in.ReceiverID) == "" {
		return nil, invalidInput("receiver_id is required")
	}
	if in.PackageID != nil && *in.PackageID == "" {
		in.PackageID = nil
	}

	var result *models.Message
	err := s.messageRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, id := range []string{in.SenderID, in.ReceiverID} {
			if _, _, err := s.userRepo.EnsureUser(ctx, tx, id); err != nil {
				return storageError(err)
			}
		}

		if in.PackageID != nil {
			if _, err := s.packageRepo.FindByID(ctx, tx, *in.PackageID); err != nil {
				return lookupError(err, ErrPackageNotFound)
			}
		}

		msg := &models.Message{
			ID:            uuid.NewString(),
			SenderID:      in.SenderID,
			ReceiverID:    in.ReceiverID,
			PackageID:     in.PackageID,
			MessageText:   in.MessageText,
			AttachmentURL: in.AttachmentURL,
		}
		if err := s.messageRepo.Create(ctx, tx, msg); err != nil {
			return storageError(err)
		}
		result = msg
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(s.publisher, KeyMessageSent, MessageEvent{
		MessageID:  result.ID,
		SenderID:   result.SenderID,
		ReceiverID: result.ReceiverID,
		PackageID:  result.PackageID,
	})
	return result, nil
}

func (s *messageService) ListMessages(ctx context.Context, filter repository.MessageFilter) ([]models.Message, error) {
	return s.messageRepo.FindAll(ctx, filter)
}
