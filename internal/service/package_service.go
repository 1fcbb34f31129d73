package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Eursukkul/partywknd/internal/models"
	"github.com/Eursukkul/partywknd/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PackageUpdate is the target state of a package. EventIDs is the complete
// event set; it is not merged with what is stored.
type PackageUpdate struct {
	LodgingID *string
	EventIDs  []string
	Addons    map[string]any
}

type ChangeRequest struct {
	Status    string `json:"status"`
	PackageID string `json:"package_id"`
	Notes     string `json:"notes"`
}

type PackageService interface {
	// UpdatePackage creates the package as a draft if it does not exist and,
	// when update is non-nil, applies it atomically.
	UpdatePackage(ctx context.Context, id string, update *PackageUpdate) (*models.Package, error)
	GetPackage(ctx context.Context, id string) (*models.Package, error)
	ListPackages(ctx context.Context, status *models.PackageStatus) ([]models.Package, error)
	ChangeStatus(ctx context.Context, id string, status models.PackageStatus) (*models.Package, error)
	RequestChange(ctx context.Context, id, notes string) (*ChangeRequest, error)
}

type packageService struct {
	packageRepo repository.PackageRepository
	lodgingRepo repository.LodgingRepository
	eventRepo   repository.EventRepository
	publisher   Publisher
}

func NewPackageService(
	packageRepo repository.PackageRepository,
	lodgingRepo repository.LodgingRepository,
	eventRepo repository.EventRepository,
	publisher Publisher,
) PackageService {
	return &packageService{
		packageRepo: packageRepo,
		lodgingRepo: lodgingRepo,
		eventRepo:   eventRepo,
		publisher:   publisher,
	}
}

func (s *packageService) UpdatePackage(ctx context.Context, id string, update *PackageUpdate) (*models.Package, error) {
	if strings.TrimSpace(id) == "" {
		return nil, invalidInput("package id is required")
	}

	var result *models.Package
	err := s.packageRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Load or start a draft
		pkg, err := s.packageRepo.FindByID(ctx, tx, id)
		isNew := false
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			pkg = &models.Package{ID: id, Status: models.PackageDraft}
			isNew = true
		case err != nil:
			return err
		}

		var eventIDs []string
		if update != nil {
			// 2. Resolve everything before the first write
			if update.LodgingID != nil && *update.LodgingID != "" {
				lodging, err := s.lodgingRepo.FindByID(ctx, tx, *update.LodgingID)
				if err != nil {
					return lookupError(err, ErrLodgingNotFound)
				}
				pkg.LodgingID = &lodging.ID
			}

			// every requested id must resolve to its own row, so a repeated id fails too
			eventIDs = update.EventIDs
			events, err := s.eventRepo.FindByIDs(ctx, tx, eventIDs)
			if err != nil {
				return err
			}
			if len(events) != len(eventIDs) {
				return unresolvedEvents(eventIDs, events)
			}

			pkg.Addons = datatypes.JSONMap(update.Addons)
		}

		// 3. Write
		if isNew {
			if err := s.packageRepo.Create(ctx, tx, pkg); err != nil {
				return storageError(err)
			}
		} else if update != nil {
			if err := s.packageRepo.Save(ctx, tx, pkg); err != nil {
				return storageError(err)
			}
		}
		if update != nil {
			if err := s.packageRepo.ReplaceEvents(ctx, tx, id, eventIDs); err != nil {
				return storageError(err)
			}
		}

		loaded, err := s.packageRepo.Load(ctx, tx, id)
		if err != nil {
			return err
		}
		result = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(s.publisher, KeyPackageUpdated, packageEvent(result))
	return result, nil
}

func (s *packageService) GetPackage(ctx context.Context, id string) (*models.Package, error) {
	pkg, err := s.packageRepo.Load(ctx, nil, id)
	if err != nil {
		return nil, lookupError(err, ErrPackageNotFound)
	}
	return pkg, nil
}

func (s *packageService) ListPackages(ctx context.Context, status *models.PackageStatus) ([]models.Package, error) {
	if status != nil && !status.Valid() {
		return nil, invalidInput(fmt.Sprintf("unknown package status %q", *status))
	}
	return s.packageRepo.FindAll(ctx, status)
}

func (s *packageService) ChangeStatus(ctx context.Context, id string, status models.PackageStatus) (*models.Package, error) {
	if !status.Valid() {
		return nil, invalidInput(fmt.Sprintf("unknown package status %q", status))
	}

	var (
		result  *models.Package
		changed bool
	)
	err := s.packageRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pkg, err := s.packageRepo.FindByID(ctx, tx, id)
		if err != nil {
			return lookupError(err, ErrPackageNotFound)
		}
		if !pkg.Status.CanTransitionTo(status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, pkg.Status, status)
		}
		if pkg.Status != status {
			if err := s.packageRepo.UpdateStatus(ctx, tx, id, status); err != nil {
				return err
			}
			changed = true
		}

		loaded, err := s.packageRepo.Load(ctx, tx, id)
		if err != nil {
			return err
		}
		result = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		publish(s.publisher, KeyPackageStatusChanged, packageEvent(result))
	}
	return result, nil
}

func (s *packageService) RequestChange(ctx context.Context, id, notes string) (*ChangeRequest, error) {
	pkg, err := s.packageRepo.FindByID(ctx, nil, id)
	if err != nil {
		return nil, lookupError(err, ErrPackageNotFound)
	}

	req := &ChangeRequest{Status: "change_requested", PackageID: pkg.ID, Notes: notes}
	publish(s.publisher, KeyPackageChangeRequested, PackageEvent{
		PackageID: pkg.ID,
		Status:    string(pkg.Status),
		Notes:     notes,
	})
	return req, nil
}

func packageEvent(pkg *models.Package) PackageEvent {
	ids := make([]string, len(pkg.Events))
	for i, e := range pkg.Events {
		ids[i] = e.ID
	}
	return PackageEvent{
		PackageID: pkg.ID,
		Status:    string(pkg.Status),
		LodgingID: pkg.LodgingID,
		EventIDs:  ids,
	}
}

// unresolvedEvents names the requested ids that did not map one-to-one onto
// a stored event: unknown ids and ids given more than once.
func unresolvedEvents(requested []string, found []models.Event) error {
	have := make(map[string]struct{}, len(found))
	for _, e := range found {
		have[e.ID] = struct{}{}
	}
	seen := make(map[string]int, len(requested))
	var bad []string
	for _, id := range requested {
		seen[id]++
		switch {
		case seen[id] > 1:
			if seen[id] == 2 {
				bad = append(bad, id+" (duplicate)")
			}
		default:
			if _, ok := have[id]; !ok {
				bad = append(bad, id)
			}
		}
	}
	return fmt.Errorf("%w: %s", ErrEventNotFound, strings.Join(bad, ", "))
}
