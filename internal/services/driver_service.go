package services

import (
	"github.com/fleetops/fleet-usage/internal/apperr"
	"github.com/fleetops/fleet-usage/internal/models"
	"github.com/fleetops/fleet-usage/internal/store"
)

// DriverService wraps the driver store with existence checks.
type DriverService struct {
	drivers store.DriverStore
}

// NewDriverService creates a driver service over the given store.
func NewDriverService(drivers store.DriverStore) *DriverService {
	return &DriverService{drivers: drivers}
}

// Create registers a new driver and returns it with its assigned id.
func (s *DriverService) Create(input models.DriverInput) models.Driver {
	return s.drivers.Create(input)
}

// List returns drivers matching the filter, in insertion order.
func (s *DriverService) List(filter models.DriverFilter) []models.Driver {
	return s.drivers.List(filter)
}

// Get returns the driver with the given id.
func (s *DriverService) Get(id string) (models.Driver, error) {
	driver, ok := s.drivers.FindByID(id)
	if !ok {
		return models.Driver{}, apperr.NotFound("driver not found")
	}
	return driver, nil
}

// Update applies a patch to an existing driver.
func (s *DriverService) Update(id string, patch models.DriverPatch) (models.Driver, error) {
	if _, ok := s.drivers.FindByID(id); !ok {
		return models.Driver{}, apperr.NotFound("driver not found")
	}
	driver, ok := s.drivers.Update(id, patch)
	if !ok {
		return models.Driver{}, apperr.Internal("failed to update driver")
	}
	return driver, nil
}

// Delete removes the driver with the given id.
func (s *DriverService) Delete(id string) error {
	if _, ok := s.drivers.FindByID(id); !ok {
		return apperr.NotFound("driver not found")
	}
	if !s.drivers.Delete(id) {
		return apperr.Internal("failed to delete driver")
	}
	return nil
}
