package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Eursukkul/partywknd/internal/auth"
	"github.com/Eursukkul/partywknd/internal/models"
	"github.com/Eursukkul/partywknd/internal/repository"
	"github.com/Eursukkul/partywknd/internal/testdb"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type published struct {
	key     string
	payload any
}

type recordingPublisher struct {
	mu   sync.Mutex
	msgs []published
}

func (p *recordingPublisher) Publish(routingKey string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, published{key: routingKey, payload: payload})
	return nil
}

func (p *recordingPublisher) keys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.msgs))
	for i, m := range p.msgs {
		out[i] = m.key
	}
	return out
}

type fixture struct {
	db       *gorm.DB
	pub      *recordingPublisher
	catalog  CatalogService
	packages PackageService
	bookings BookingService
	messages MessageService
	admin    AdminService
	users    repository.UserRepository
	pkgRepo  repository.PackageRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testdb.New(t)
	pub := &recordingPublisher{}

	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	lodgingRepo := repository.NewLodgingRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	return &fixture{
		db:       db,
		pub:      pub,
		catalog:  NewCatalogService(eventRepo, lodgingRepo),
		packages: NewPackageService(packageRepo, lodgingRepo, eventRepo, pub),
		bookings: NewBookingService(bookingRepo, packageRepo, userRepo, pub),
		messages: NewMessageService(messageRepo, packageRepo, userRepo, pub),
		admin: NewAdminService(
			userRepo,
			repository.NewAgentRepository(db),
			repository.NewAdminUserRepository(db),
			auth.NewIssuer("test-secret", time.Hour),
			bcrypt.MinCost,
		),
		users:   userRepo,
		pkgRepo: packageRepo,
	}
}

func (f *fixture) seedEvent(t *testing.T, id string, price float64) {
	t.Helper()
	_, err := f.catalog.UpsertEvent(context.Background(), &models.Event{
		ID:    id,
		Title: "Event " + id,
		City:  "New York",
		Venue: "Laugh Club",
		Date:  datatypes.Date(time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)),
		Price: price,
	})
	require.NoError(t, err)
}

func (f *fixture) seedLodging(t *testing.T, id string) {
	t.Helper()
	_, err := f.catalog.UpsertLodging(context.Background(), &models.Lodging{
		ID:       id,
		Name:     "City Hotel",
		Location: "New York",
		Price:    220,
	})
	require.NoError(t, err)
}

func (f *fixture) count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(model).Count(&n).Error)
	return n
}

func eventIDs(pkg *models.Package) []string {
	ids := make([]string, len(pkg.Events))
	for i, e := range pkg.Events {
		ids[i] = e.ID
	}
	return ids
}

func strPtr(s string) *string { return &s }
