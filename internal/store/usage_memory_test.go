package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/fleet-usage/internal/models"
)

func newUsage(driverID, vehicleID string) models.UsageRecord {
	return models.UsageRecord{
		DriverID:  driverID,
		VehicleID: vehicleID,
		Reason:    "delivery",
		StartedAt: time.Now().UTC(),
	}
}

func TestMemoryUsageStore_Create(t *testing.T) {
	s := NewMemoryUsageStore()

	t.Run("assigns a fresh id", func(t *testing.T) {
		rec := newUsage("d1", "v1")
		rec.ID = "caller-supplied"
		created := s.Create(rec)
		assert.NotEqual(t, "caller-supplied", created.ID)
		assert.NotEmpty(t, created.ID)
	})

	t.Run("forces EndedAt to nil", func(t *testing.T) {
		endedAt := time.Now().UTC()
		rec := newUsage("d2", "v2")
		rec.EndedAt = &endedAt
		created := s.Create(rec)
		assert.Nil(t, created.EndedAt)
		assert.True(t, created.Active())
	})
}

func TestMemoryUsageStore_Update(t *testing.T) {
	s := NewMemoryUsageStore()
	created := s.Create(newUsage("d1", "v1"))

	endedAt := time.Now().UTC()
	updated, ok := s.Update(created.ID, models.UsagePatch{EndedAt: &endedAt})
	require.True(t, ok)
	require.NotNil(t, updated.EndedAt)
	assert.Equal(t, endedAt, *updated.EndedAt)
	assert.Equal(t, created.Reason, updated.Reason)

	t.Run("nil patch fields leave EndedAt alone", func(t *testing.T) {
		reason := "maintenance run"
		updated, ok := s.Update(created.ID, models.UsagePatch{Reason: &reason})
		require.True(t, ok)
		assert.Equal(t, "maintenance run", updated.Reason)
		require.NotNil(t, updated.EndedAt)
	})

	t.Run("missing id reports false", func(t *testing.T) {
		_, ok := s.Update("missing", models.UsagePatch{})
		assert.False(t, ok)
	})
}

func TestMemoryUsageStore_ListPaginated(t *testing.T) {
	s := NewMemoryUsageStore()
	for i := 0; i < 25; i++ {
		s.Create(newUsage(fmt.Sprintf("d%d", i), fmt.Sprintf("v%d", i)))
	}

	t.Run("returns the requested window in insertion order", func(t *testing.T) {
		total, items := s.ListPaginated(10, 0)
		assert.Equal(t, 25, total)
		require.Len(t, items, 10)
		assert.Equal(t, "d0", items[0].DriverID)
		assert.Equal(t, "d9", items[9].DriverID)
	})

	t.Run("last page is short", func(t *testing.T) {
		total, items := s.ListPaginated(10, 20)
		assert.Equal(t, 25, total)
		require.Len(t, items, 5)
		assert.Equal(t, "d20", items[0].DriverID)
	})

	t.Run("offset past the end yields empty items", func(t *testing.T) {
		total, items := s.ListPaginated(10, 990)
		assert.Equal(t, 25, total)
		assert.Empty(t, items)
	})

	t.Run("non-positive limit falls back to the whole collection", func(t *testing.T) {
		_, items := s.ListPaginated(0, 0)
		assert.Len(t, items, 25)
		_, items = s.ListPaginated(-1, 5)
		assert.Len(t, items, 25)
	})

	t.Run("negative offset falls back to the whole collection", func(t *testing.T) {
		_, items := s.ListPaginated(10, -1)
		assert.Len(t, items, 25)
	})
}

func TestMemoryUsageStore_FindActive(t *testing.T) {
	s := NewMemoryUsageStore()

	first := s.Create(newUsage("d1", "v1"))
	s.Create(newUsage("d2", "v2"))

	t.Run("finds the active record for a vehicle", func(t *testing.T) {
		found, ok := s.FindActiveByVehicleID("v1")
		require.True(t, ok)
		assert.Equal(t, first.ID, found.ID)
	})

	t.Run("finds the active record for a driver", func(t *testing.T) {
		found, ok := s.FindActiveByDriverID("d2")
		require.True(t, ok)
		assert.Equal(t, "v2", found.VehicleID)
	})

	t.Run("finished records are not active", func(t *testing.T) {
		endedAt := time.Now().UTC()
		_, ok := s.Update(first.ID, models.UsagePatch{EndedAt: &endedAt})
		require.True(t, ok)

		_, ok = s.FindActiveByVehicleID("v1")
		assert.False(t, ok)
		_, ok = s.FindActiveByDriverID("d1")
		assert.False(t, ok)
	})

	t.Run("newest active record wins", func(t *testing.T) {
		second := s.Create(newUsage("d1", "v1"))
		found, ok := s.FindActiveByVehicleID("v1")
		require.True(t, ok)
		assert.Equal(t, second.ID, found.ID)
	})

	t.Run("unknown ids report false", func(t *testing.T) {
		_, ok := s.FindActiveByVehicleID("missing")
		assert.False(t, ok)
		_, ok = s.FindActiveByDriverID("missing")
		assert.False(t, ok)
	})
}
