package seed

import (
	"context"
	"testing"

	"github.com/Eursukkul/partywknd/internal/models"
	"github.com/Eursukkul/partywknd/internal/repository"
	"github.com/Eursukkul/partywknd/internal/service"
	"github.com/Eursukkul/partywknd/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func services(db *gorm.DB) (service.CatalogService, service.PackageService) {
	eventRepo := repository.NewEventRepository(db)
	lodgingRepo := repository.NewLodgingRepository(db)
	catalog := service.NewCatalogService(eventRepo, lodgingRepo)
	packages := service.NewPackageService(repository.NewPackageRepository(db), lodgingRepo, eventRepo, nil)
	return catalog, packages
}

func TestRun_IsIdempotent(t *testing.T) {
	db := testdb.New(t)
	catalog, packages := services(db)
	ctx := context.Background()

	require.NoError(t, Run(ctx, catalog, packages))
	require.NoError(t, Run(ctx, catalog, packages))

	var events, lodgings, pkgs, links int64
	db.Model(&models.Event{}).Count(&events)
	db.Model(&models.Lodging{}).Count(&lodgings)
	db.Model(&models.Package{}).Count(&pkgs)
	db.Model(&models.PackageEvent{}).Count(&links)
	assert.Equal(t, int64(2), events)
	assert.Equal(t, int64(2), lodgings)
	assert.Equal(t, int64(1), pkgs)
	assert.Equal(t, int64(2), links)

	pkg, err := packages.GetPackage(ctx, DemoPackageID)
	require.NoError(t, err)
	assert.Equal(t, models.PackageActive, pkg.Status)
	require.NotNil(t, pkg.LodgingID)
	assert.Equal(t, "lodging-01", *pkg.LodgingID)
	assert.Len(t, pkg.Events, 2)
}

func TestRun_KeepsCancelledPackage(t *testing.T) {
	db := testdb.New(t)
	catalog, packages := services(db)
	ctx := context.Background()

	require.NoError(t, Run(ctx, catalog, packages))
	_, err := packages.ChangeStatus(ctx, DemoPackageID, models.PackageCancelled)
	require.NoError(t, err)

	require.NoError(t, Run(ctx, catalog, packages))

	pkg, err := packages.GetPackage(ctx, DemoPackageID)
	require.NoError(t, err)
	assert.Equal(t, models.PackageCancelled, pkg.Status)
}
