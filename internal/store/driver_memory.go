package store

import (
	"strings"
	"sync"

	"github.com/fleetops/fleet-usage/internal/ids"
	"github.com/fleetops/fleet-usage/internal/models"
)

// MemoryDriverStore keeps drivers in insertion order behind a RWMutex.
type MemoryDriverStore struct {
	mu      sync.RWMutex
	drivers []models.Driver
	newID   ids.Generator
}

// NewMemoryDriverStore creates an empty driver store with UUID ids.
func NewMemoryDriverStore() *MemoryDriverStore {
	return &MemoryDriverStore{newID: ids.NewUUID}
}

func (s *MemoryDriverStore) Create(input models.DriverInput) models.Driver {
	s.mu.Lock()
	defer s.mu.Unlock()

	driver := models.Driver{
		ID:   s.newID(),
		Name: input.Name,
	}
	s.drivers = append(s.drivers, driver)
	return driver
}

func (s *MemoryDriverStore) List(filter models.DriverFilter) []models.Driver {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(filter.Name)
	result := make([]models.Driver, 0, len(s.drivers))
	for _, d := range s.drivers {
		if needle != "" && !strings.Contains(strings.ToLower(d.Name), needle) {
			continue
		}
		result = append(result, d)
	}
	return result
}

func (s *MemoryDriverStore) FindByID(id string) (models.Driver, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.drivers {
		if d.ID == id {
			return d, true
		}
	}
	return models.Driver{}, false
}

func (s *MemoryDriverStore) Update(id string, patch models.DriverPatch) (models.Driver, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.drivers {
		if s.drivers[i].ID != id {
			continue
		}
		if patch.Name != nil {
			s.drivers[i].Name = *patch.Name
		}
		return s.drivers[i], true
	}
	return models.Driver{}, false
}

func (s *MemoryDriverStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.drivers {
		if s.drivers[i].ID == id {
			s.drivers = append(s.drivers[:i], s.drivers[i+1:]...)
			return true
		}
	}
	return false
}

// Clear drops every driver. Test hook, not wired to any route.
func (s *MemoryDriverStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drivers = nil
}
