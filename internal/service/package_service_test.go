package service

import (
	"context"
	"testing"

	"github.com/Eursukkul/partywknd/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdatePackage_CreatesDraftAndShrinksEventSet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedLodging(t, "lodge-1")
	f.seedEvent(t, "ev-1", 100)
	f.seedEvent(t, "ev-2", 80)

	pkg, err := f.packages.UpdatePackage(ctx, "pkg-1", &PackageUpdate{
		LodgingID: strPtr("lodge-1"),
		EventIDs:  []string{"ev-1", "ev-2"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.PackageDraft, pkg.Status)
	require.NotNil(t, pkg.Lodging)
	assert.Equal(t, "lodge-1", pkg.Lodging.ID)
	assert.ElementsMatch(t, []string{"ev-1", "ev-2"}, eventIDs(pkg))
	assert.False(t, pkg.CreatedAt.IsZero())

	pkg, err = f.packages.UpdatePackage(ctx, "pkg-1", &PackageUpdate{EventIDs: []string{"ev-1"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"ev-1"}, eventIDs(pkg))
	require.NotNil(t, pkg.Lodging, "lodging is kept when not supplied")
	assert.Equal(t, "lodge-1", pkg.Lodging.ID)

	assert.Equal(t, []string{KeyPackageUpdated, KeyPackageUpdated}, f.pub.keys())
}

func TestUpdatePackage_MissingEventLeavesPackageUntouched(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedLodging(t, "lodge-1")
	f.seedLodging(t, "lodge-2")
	f.seedEvent(t, "ev-1", 100)

	_, err := f.packages.UpdatePackage(ctx, "pkg-1", &PackageUpdate{
		LodgingID: strPtr("lodge-1"),
		EventIDs:  []string{"ev-1"},
		Addons:    map[string]any{"bottle_service": true},
	})
	require.NoError(t, err)

	_, err = f.packages.UpdatePackage(ctx, "pkg-1", &PackageUpdate{
		LodgingID: strPtr("lodge-2"),
		EventIDs:  []string{"ev-1", "ev-404"},
		Addons:    map[string]any{"late_checkout": true},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, ErrEventNotFound)
	assert.Contains(t, err.Error(), "ev-404")

	pkg, err := f.packages.GetPackage(ctx, "pkg-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"ev-1"}, eventIDs(pkg))
	assert.Equal(t, "lodge-1", *pkg.LodgingID)
	assert.Equal(t, true, pkg.Addons["bottle_service"])
	assert.NotContains(t, pkg.Addons, "late_checkout")
}

func TestUpdatePackage_MissingLodgingCreatesNothing(t *testing.T) {
	f := newFixture(t)

	_, err := f.packages.UpdatePackage(context.Background(), "pkg-1", &PackageUpdate{
		LodgingID: strPtr("lodge-404"),
		EventIDs:  []string{},
	})
	assert.ErrorIs(t, err, ErrLodgingNotFound)
	assert.Zero(t, f.count(t, &models.Package{}))
	assert.Empty(t, f.pub.keys())
}

func TestUpdatePackage_NilUpdateOnlyEnsuresDraft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedEvent(t, "ev-1", 10)

	pkg, err := f.packages.UpdatePackage(ctx, "pkg-1", nil)
	require.NoError(t, err)
	assert.Equal(t, models.PackageDraft, pkg.Status)
	assert.Nil(t, pkg.LodgingID)
	assert.Empty(t, pkg.Events)

	_, err = f.packages.UpdatePackage(ctx, "pkg-1", &PackageUpdate{EventIDs: []string{"ev-1"}})
	require.NoError(t, err)

	pkg, err = f.packages.UpdatePackage(ctx, "pkg-1", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"ev-1"}, eventIDs(pkg), "nil update leaves the event set alone")
}

func TestUpdatePackage_AddonsAreOverwritten(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.packages.UpdatePackage(ctx, "pkg-1", &PackageUpdate{
		EventIDs: []string{},
		Addons:   map[string]any{"vip": true, "guests": 4},
	})
	require.NoError(t, err)

	pkg, err := f.packages.UpdatePackage(ctx, "pkg-1", &PackageUpdate{EventIDs: []string{}})
	require.NoError(t, err)
	assert.Nil(t, pkg.Addons)
}

func TestUpdatePackage_DuplicateEventIDsRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedEvent(t, "ev-1", 10)
	f.seedEvent(t, "ev-2", 20)

	_, err := f.packages.UpdatePackage(ctx, "pkg-1", &PackageUpdate{EventIDs: []string{"ev-2"}})
	require.NoError(t, err)

	_, err = f.packages.UpdatePackage(ctx, "pkg-1", &PackageUpdate{
		EventIDs: []string{"ev-1", "ev-1"},
	})
	assert.ErrorIs(t, err, ErrEventNotFound)
	assert.Contains(t, err.Error(), "ev-1 (duplicate)")

	pkg, err := f.packages.GetPackage(ctx, "pkg-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"ev-2"}, eventIDs(pkg))
}

func TestUpdatePackage_EmptyID(t *testing.T) {
	f := newFixture(t)

	_, err := f.packages.UpdatePackage(context.Background(), " ", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetPackage_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.packages.GetPackage(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestChangeStatus_Lifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.packages.UpdatePackage(ctx, "pkg-1", nil)
	require.NoError(t, err)

	pkg, err := f.packages.ChangeStatus(ctx, "pkg-1", models.PackageActive)
	require.NoError(t, err)
	assert.Equal(t, models.PackageActive, pkg.Status)

	_, err = f.packages.ChangeStatus(ctx, "pkg-1", models.PackageActive)
	require.NoError(t, err)

	_, err = f.packages.ChangeStatus(ctx, "pkg-1", models.PackageDraft)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	pkg, err = f.packages.ChangeStatus(ctx, "pkg-1", models.PackageCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.PackageCancelled, pkg.Status)

	_, err = f.packages.ChangeStatus(ctx, "pkg-1", "archived")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.packages.ChangeStatus(ctx, "missing", models.PackageActive)
	assert.ErrorIs(t, err, ErrPackageNotFound)

	assert.Equal(t, []string{KeyPackageUpdated, KeyPackageStatusChanged, KeyPackageStatusChanged}, f.pub.keys())
}

func TestListPackages_FilterByStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, id := range []string{"a", "b"} {
		_, err := f.packages.UpdatePackage(ctx, id, nil)
		require.NoError(t, err)
	}
	_, err := f.packages.ChangeStatus(ctx, "b", models.PackageActive)
	require.NoError(t, err)

	active := models.PackageActive
	pkgs, err := f.packages.ListPackages(ctx, &active)
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	assert.Equal(t, "b", pkgs[0].ID)

	all, err := f.packages.ListPackages(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRequestChange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.packages.RequestChange(ctx, "pkg-1", "swap the hotel")
	assert.ErrorIs(t, err, ErrPackageNotFound)

	_, err = f.packages.UpdatePackage(ctx, "pkg-1", nil)
	require.NoError(t, err)

	req, err := f.packages.RequestChange(ctx, "pkg-1", "swap the hotel")
	require.NoError(t, err)
	assert.Equal(t, "change_requested", req.Status)
	assert.Equal(t, "pkg-1", req.PackageID)
	assert.Equal(t, "swap the hotel", req.Notes)
	assert.Contains(t, f.pub.keys(), KeyPackageChangeRequested)
}
