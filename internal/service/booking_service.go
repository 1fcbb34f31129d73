package service

import (
	"context"
	"log"
	"strings"

	"github.com/Eursukkul/partywknd/internal/models"
	"github.com/Eursukkul/partywknd/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Cancellation struct {
	Status    string `json:"status"`
	BookingID string `json:"booking_id"`
}

type BookingService interface {
	CreateBooking(ctx context.Context, packageID, userID, paymentToken string) (*models.Booking, error)
	// CancelBooking succeeds even when no booking has the given id.
	CancelBooking(ctx context.Context, bookingID string) (*Cancellation, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookings(ctx context.Context, filter repository.BookingFilter) ([]models.Booking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	packageRepo repository.PackageRepository
	userRepo    repository.UserRepository
	publisher   Publisher
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	packageRepo repository.PackageRepository,
	userRepo repository.UserRepository,
	publisher Publisher,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		packageRepo: packageRepo,
		userRepo:    userRepo,
		publisher:   publisher,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, packageID, userID, paymentToken string) (*models.Booking, error) {
	if strings.TrimSpace(packageID) == "" {
		return nil, invalidInput("package_id is required")
	}
	if strings.TrimSpace(userID) == "" {
		return nil, invalidInput("user_id is required")
	}

	var result *models.Booking
	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. The package must already exist
		if _, err := s.packageRepo.FindByID(ctx, tx, packageID); err != nil {
			return lookupError(err, ErrPackageNotFound)
		}

		// 2. Unknown users get a placeholder record
		if _, _, err := s.userRepo.EnsureUser(ctx, tx, userID); err != nil {
			return storageError(err)
		}

		// 3. Confirm immediately; no payment step sits in between
		booking := &models.Booking{
			ID:           uuid.NewString(),
			PackageID:    packageID,
			UserID:       userID,
			PaymentToken: paymentToken,
			Status:       models.StatusConfirmed,
		}
		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			return storageError(err)
		}
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(s.publisher, KeyBookingConfirmed, BookingEvent{
		BookingID: result.ID,
		PackageID: result.PackageID,
		UserID:    result.UserID,
		Status:    string(result.Status),
	})
	return result, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) (*Cancellation, error) {
	if strings.TrimSpace(bookingID) == "" {
		return nil, invalidInput("booking id is required")
	}

	var affected int64
	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.bookingRepo.MarkCancelled(ctx, tx, bookingID)
		affected = n
		return err
	})
	if err != nil {
		return nil, err
	}

	if affected == 0 {
		log.Printf("[BookingService] booking %s is unknown or already cancelled", bookingID)
	} else {
		publish(s.publisher, KeyBookingCancelled, BookingEvent{
			BookingID: bookingID,
			Status:    string(models.StatusCancelled),
		})
	}
	return &Cancellation{Status: string(models.StatusCancelled), BookingID: bookingID}, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, nil, id)
	if err != nil {
		return nil, lookupError(err, ErrBookingNotFound)
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, filter repository.BookingFilter) ([]models.Booking, error) {
	return s.bookingRepo.FindAll(ctx, filter)
}
