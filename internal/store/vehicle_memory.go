package store

import (
	"strings"
	"sync"

	"github.com/fleetops/fleet-usage/internal/ids"
	"github.com/fleetops/fleet-usage/internal/models"
)

// MemoryVehicleStore keeps vehicles in insertion order behind a RWMutex.
type MemoryVehicleStore struct {
	mu       sync.RWMutex
	vehicles []models.Vehicle
	newID    ids.Generator
}

// NewMemoryVehicleStore creates an empty vehicle store with UUID ids.
func NewMemoryVehicleStore() *MemoryVehicleStore {
	return &MemoryVehicleStore{newID: ids.NewUUID}
}

func (s *MemoryVehicleStore) Create(input models.VehicleInput) models.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()

	vehicle := models.Vehicle{
		ID:    s.newID(),
		Plate: input.Plate,
		Color: input.Color,
		Make:  input.Make,
	}
	s.vehicles = append(s.vehicles, vehicle)
	return vehicle
}

func (s *MemoryVehicleStore) List(filter models.VehicleFilter) []models.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Vehicle, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		if filter.Color != "" && !strings.EqualFold(v.Color, filter.Color) {
			continue
		}
		if filter.Make != "" && !strings.EqualFold(v.Make, filter.Make) {
			continue
		}
		result = append(result, v)
	}
	return result
}

func (s *MemoryVehicleStore) FindByID(id string) (models.Vehicle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return models.Vehicle{}, false
}

func (s *MemoryVehicleStore) Update(id string, patch models.VehiclePatch) (models.Vehicle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.vehicles {
		if s.vehicles[i].ID != id {
			continue
		}
		if patch.Plate != nil {
			s.vehicles[i].Plate = *patch.Plate
		}
		if patch.Color != nil {
			s.vehicles[i].Color = *patch.Color
		}
		if patch.Make != nil {
			s.vehicles[i].Make = *patch.Make
		}
		return s.vehicles[i], true
	}
	return models.Vehicle{}, false
}

func (s *MemoryVehicleStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.vehicles {
		if s.vehicles[i].ID == id {
			s.vehicles = append(s.vehicles[:i], s.vehicles[i+1:]...)
			return true
		}
	}
	return false
}

// Clear drops every vehicle. Test hook, not wired to any route.
func (s *MemoryVehicleStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vehicles = nil
}
