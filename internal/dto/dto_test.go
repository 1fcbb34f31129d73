package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Eursukkul/partywknd/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestToEventModel_ParsesDate(t *testing.T) {
	req := UpsertEventRequest{Title: "Skyline Rooftop Concert", City: "Los Angeles", Venue: "Downtown Loft", Date: "2025-12-24", Price: 120}

	event, err := req.ToEventModel()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC), time.Time(event.Date))

	_, err = UpsertEventRequest{Date: "2025-12-24T10:00:00Z"}.ToEventModel()
	assert.Error(t, err)
}

func TestToEventResponse_NeverNullTags(t *testing.T) {
	resp := ToEventResponse(&models.Event{ID: "e", Date: datatypes.Date(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC))})

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"tags":[]`)
	assert.Contains(t, string(body), `"date":"2025-01-02"`)
}

func TestToPackageResponse_EmptyPackage(t *testing.T) {
	resp := ToPackageResponse(&models.Package{ID: "p", Status: models.PackageDraft})

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"lodging":null`)
	assert.Contains(t, string(body), `"events":[]`)
	assert.Contains(t, string(body), `"addons":null`)
}
