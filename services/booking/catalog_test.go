// File: booking/catalog_test.go
package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCatalogActivitiesUnfiltered(t *testing.T) {
	activities := GetCatalogActivities(-1)
	require.Len(t, activities, 5)

	// Catalog order is stable across calls.
	var ids []string
	for _, activity := range activities {
		ids = append(ids, activity.ID)
	}
	assert.Equal(t, []string{"swim-starters", "junior-climbers", "mini-makers", "code-club", "forest-explorers"}, ids)
}

func TestGetCatalogActivitiesAgeFilter(t *testing.T) {
	for _, activity := range GetCatalogActivities(4) {
		assert.Equal(t, "mini-makers", activity.ID)
	}
	require.Len(t, GetCatalogActivities(4), 1)

	// Age 8 falls inside every activity's band.
	assert.Len(t, GetCatalogActivities(8), 5)

	assert.Empty(t, GetCatalogActivities(17))
}

func TestGetCatalogActivityAttachesSlots(t *testing.T) {
	activity, err := GetCatalogActivity("swim-starters")
	require.NoError(t, err)
	require.Len(t, activity.Slots, 4)

	for _, slot := range activity.Slots {
		assert.Equal(t, "swim-starters", slot.ActivityID)
		assert.Equal(t, 8, slot.SpotsLeft)
		assert.Equal(t, 8, slot.Capacity)
	}
}

func TestGetCatalogActivityUnknown(t *testing.T) {
	_, err := GetCatalogActivity("underwater-basket-weaving")
	assert.Error(t, err)
}

func TestDefaultSlotsAreFutureSaturdays(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC) // a Monday
	slots := defaultSlots("code-club", now)
	require.Len(t, slots, 4)

	assert.Equal(t, "2026-09-05", slots[0].Date)
	assert.Equal(t, "2026-09-05", slots[1].Date)
	assert.Equal(t, "2026-09-12", slots[2].Date)
	assert.Equal(t, "2026-09-12", slots[3].Date)
	assert.Equal(t, "code-club-2026-09-05-am", slots[0].ID)
	assert.Equal(t, "code-club-2026-09-05-pm", slots[1].ID)
}

func TestDefaultSlotsSkipSameDaySaturday(t *testing.T) {
	now := time.Date(2026, 9, 5, 9, 0, 0, 0, time.UTC) // a Saturday
	slots := defaultSlots("code-club", now)
	require.Len(t, slots, 4)
	assert.Equal(t, "2026-09-12", slots[0].Date)
}
