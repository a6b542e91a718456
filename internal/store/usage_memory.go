package store

import (
	"sync"

	"github.com/fleetops/fleet-usage/internal/ids"
	"github.com/fleetops/fleet-usage/internal/models"
)

// MemoryUsageStore keeps usage records in insertion order behind a RWMutex.
type MemoryUsageStore struct {
	mu      sync.RWMutex
	records []models.UsageRecord
	newID   ids.Generator
}

// NewMemoryUsageStore creates an empty usage store with UUID ids.
func NewMemoryUsageStore() *MemoryUsageStore {
	return &MemoryUsageStore{newID: ids.NewUUID}
}

func (s *MemoryUsageStore) Create(rec models.UsageRecord) models.UsageRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec.ID = s.newID()
	// every record starts active, whatever the caller supplied
	rec.EndedAt = nil
	s.records = append(s.records, rec)
	return rec
}

func (s *MemoryUsageStore) FindByID(id string) (models.UsageRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.records {
		if rec.ID == id {
			return rec, true
		}
	}
	return models.UsageRecord{}, false
}

func (s *MemoryUsageStore) Update(id string, patch models.UsagePatch) (models.UsageRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		if patch.Reason != nil {
			s.records[i].Reason = *patch.Reason
		}
		if patch.EndedAt != nil {
			endedAt := *patch.EndedAt
			s.records[i].EndedAt = &endedAt
		}
		return s.records[i], true
	}
	return models.UsageRecord{}, false
}

func (s *MemoryUsageStore) ListPaginated(limit, offset int) (int, []models.UsageRecord) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.records)
	if limit <= 0 || offset < 0 {
		// legacy no-pagination mode: the whole collection
		return total, append([]models.UsageRecord(nil), s.records...)
	}
	if offset >= total {
		return total, []models.UsageRecord{}
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return total, append([]models.UsageRecord(nil), s.records[offset:end]...)
}

func (s *MemoryUsageStore) FindActiveByVehicleID(vehicleID string) (models.UsageRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// newest-first, so the most recent active record wins
	for i := len(s.records) - 1; i >= 0; i-- {
		if s.records[i].VehicleID == vehicleID && s.records[i].Active() {
			return s.records[i], true
		}
	}
	return models.UsageRecord{}, false
}

func (s *MemoryUsageStore) FindActiveByDriverID(driverID string) (models.UsageRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := len(s.records) - 1; i >= 0; i-- {
		if s.records[i].DriverID == driverID && s.records[i].Active() {
			return s.records[i], true
		}
	}
	return models.UsageRecord{}, false
}

// Clear drops every usage record. Test hook, not wired to any route.
func (s *MemoryUsageStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
}
