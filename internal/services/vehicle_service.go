// Package services holds the business logic between the HTTP boundary and
// the stores. Services translate store sentinel results into tagged errors
// and enforce the usage lifecycle invariants.
package services

import (
	"github.com/fleetops/fleet-usage/internal/apperr"
	"github.com/fleetops/fleet-usage/internal/models"
	"github.com/fleetops/fleet-usage/internal/store"
)

// VehicleService wraps the vehicle store with existence checks.
type VehicleService struct {
	vehicles store.VehicleStore
}

// NewVehicleService creates a vehicle service over the given store.
func NewVehicleService(vehicles store.VehicleStore) *VehicleService {
	return &VehicleService{vehicles: vehicles}
}

// Create registers a new vehicle and returns it with its assigned id.
func (s *VehicleService) Create(input models.VehicleInput) models.Vehicle {
	return s.vehicles.Create(input)
}

// List returns vehicles matching the filter, in insertion order.
func (s *VehicleService) List(filter models.VehicleFilter) []models.Vehicle {
	return s.vehicles.List(filter)
}

// Get returns the vehicle with the given id.
func (s *VehicleService) Get(id string) (models.Vehicle, error) {
	vehicle, ok := s.vehicles.FindByID(id)
	if !ok {
		return models.Vehicle{}, apperr.NotFound("vehicle not found")
	}
	return vehicle, nil
}

// Update applies a patch to an existing vehicle.
func (s *VehicleService) Update(id string, patch models.VehiclePatch) (models.Vehicle, error) {
	if _, ok := s.vehicles.FindByID(id); !ok {
		return models.Vehicle{}, apperr.NotFound("vehicle not found")
	}
	vehicle, ok := s.vehicles.Update(id, patch)
	if !ok {
		// unreachable unless the store lost the record between the two calls
		return models.Vehicle{}, apperr.Internal("failed to update vehicle")
	}
	return vehicle, nil
}

// Delete removes the vehicle with the given id.
func (s *VehicleService) Delete(id string) error {
	if _, ok := s.vehicles.FindByID(id); !ok {
		return apperr.NotFound("vehicle not found")
	}
	if !s.vehicles.Delete(id) {
		return apperr.Internal("failed to delete vehicle")
	}
	return nil
}
