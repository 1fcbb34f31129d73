package handler

import (
	"context"

	"github.com/Eursukkul/partywknd/internal/models"
	"github.com/Eursukkul/partywknd/internal/repository"
	"github.com/Eursukkul/partywknd/internal/service"
)

// --- Mock PackageService ---

type mockPackageService struct {
	updateFn func(ctx context.Context, id string, update *service.PackageUpdate) (*models.Package, error)
	getFn    func(ctx context.Context, id string) (*models.Package, error)
	listFn   func(ctx context.Context, status *models.PackageStatus) ([]models.Package, error)
	statusFn func(ctx context.Context, id string, status models.PackageStatus) (*models.Package, error)
	changeFn func(ctx context.Context, id, notes string) (*service.ChangeRequest, error)
}

func (m *mockPackageService) UpdatePackage(ctx context.Context, id string, update *service.PackageUpdate) (*models.Package, error) {
	return m.updateFn(ctx, id, update)
}
func (m *mockPackageService) GetPackage(ctx context.Context, id string) (*models.Package, error) {
	return m.getFn(ctx, id)
}
func (m *mockPackageService) ListPackages(ctx context.Context, status *models.PackageStatus) ([]models.Package, error) {
	return m.listFn(ctx, status)
}
func (m *mockPackageService) ChangeStatus(ctx context.Context, id string, status models.PackageStatus) (*models.Package, error) {
	return m.statusFn(ctx, id, status)
}
func (m *mockPackageService) RequestChange(ctx context.Context, id, notes string) (*service.ChangeRequest, error) {
	return m.changeFn(ctx, id, notes)
}

// --- Mock BookingService ---

type mockBookingService struct {
	createFn func(ctx context.Context, packageID, userID, paymentToken string) (*models.Booking, error)
	cancelFn func(ctx context.Context, bookingID string) (*service.Cancellation, error)
	getFn    func(ctx context.Context, id string) (*models.Booking, error)
	listFn   func(ctx context.Context, filter repository.BookingFilter) ([]models.Booking, error)
}

func (m *mockBookingService) CreateBooking(ctx context.Context, packageID, userID, paymentToken string) (*models.Booking, error) {
	return m.createFn(ctx, packageID, userID, paymentToken)
}
func (m *mockBookingService) CancelBooking(ctx context.Context, bookingID string) (*service.Cancellation, error) {
	return m.cancelFn(ctx, bookingID)
}
func (m *mockBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return m.getFn(ctx, id)
}
func (m *mockBookingService) ListBookings(ctx context.Context, filter repository.BookingFilter) ([]models.Booking, error) {
	return m.listFn(ctx, filter)
}

// --- Mock MessageService ---

type mockMessageService struct {
	sendFn func(ctx context.Context, in service.SendMessageInput) (*models.Message, error)
	listFn func(ctx context.Context, filter repository.MessageFilter) ([]models.Message, error)
}

func (m *mockMessageService) SendMessage(ctx context.Context, in service.SendMessageInput) (*models.Message, error) {
	return m.sendFn(ctx, in)
}
func (m *mockMessageService) ListMessages(ctx context.Context, filter repository.MessageFilter) ([]models.Message, error) {
	return m.listFn(ctx, filter)
}
