package services

import (
	"sync"
	"time"

	"github.com/fleetops/fleet-usage/internal/apperr"
	"github.com/fleetops/fleet-usage/internal/models"
	"github.com/fleetops/fleet-usage/internal/store"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// UsageService owns the usage lifecycle: starting a checkout, finishing it,
// and listing records with joined driver and vehicle details.
//
// Start and Finish hold a single mutex across their whole check-then-act
// sequence. Without it two concurrent starts for the same vehicle could both
// pass the availability checks and leave two active records.
type UsageService struct {
	mu       sync.Mutex
	usages   store.UsageStore
	vehicles store.VehicleStore
	drivers  store.DriverStore
	now      func() time.Time
}

// NewUsageService creates the lifecycle service over the three stores.
func NewUsageService(usages store.UsageStore, vehicles store.VehicleStore, drivers store.DriverStore) *UsageService {
	return &UsageService{
		usages:   usages,
		vehicles: vehicles,
		drivers:  drivers,
		now:      time.Now,
	}
}

// Start opens a usage record for a driver taking out a vehicle. The checks
// run in a fixed order so the first failing one determines the error: the
// driver must exist, the vehicle must exist, the vehicle must not already be
// out, and the driver must not already have a vehicle out.
func (s *UsageService) Start(req models.StartUsageRequest) (models.UsageRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.drivers.FindByID(req.DriverID); !ok {
		return models.UsageRecord{}, apperr.NotFound("driver not found")
	}
	if _, ok := s.vehicles.FindByID(req.VehicleID); !ok {
		return models.UsageRecord{}, apperr.NotFound("vehicle not found")
	}
	if _, ok := s.usages.FindActiveByVehicleID(req.VehicleID); ok {
		return models.UsageRecord{}, apperr.Conflict("vehicle already in use")
	}
	if _, ok := s.usages.FindActiveByDriverID(req.DriverID); ok {
		return models.UsageRecord{}, apperr.Conflict("driver already using another vehicle")
	}

	rec := s.usages.Create(models.UsageRecord{
		DriverID:  req.DriverID,
		VehicleID: req.VehicleID,
		Reason:    req.Reason,
		StartedAt: s.now().UTC(),
	})
	return rec, nil
}

// Finish closes an open usage record. Finishing is terminal: a finished
// record never becomes active again.
func (s *UsageService) Finish(id string) (models.UsageRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.usages.FindByID(id)
	if !ok {
		return models.UsageRecord{}, apperr.NotFound("usage record not found")
	}
	if !rec.Active() {
		return models.UsageRecord{}, apperr.InvalidState("usage already finished")
	}

	endedAt := s.now().UTC()
	updated, ok := s.usages.Update(id, models.UsagePatch{EndedAt: &endedAt})
	if !ok {
		// unreachable unless the store lost the record between the two calls
		return models.UsageRecord{}, apperr.Internal("failed to finish usage")
	}
	return updated, nil
}

// List returns one page of usage records with driver and vehicle summaries
// joined in. Non-positive page or limit fall back to their defaults. A page
// past the end yields an empty item list but still echoes the requested page
// number back unclamped.
func (s *UsageService) List(page, limit int) models.PagedUsages {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	offset := (page - 1) * limit

	total, records := s.usages.ListPaginated(limit, offset)

	items := make([]models.UsageDetails, 0, len(records))
	for _, rec := range records {
		items = append(items, s.withDetails(rec))
	}

	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}

	return models.PagedUsages{
		Items:        items,
		TotalItems:   total,
		TotalPages:   totalPages,
		CurrentPage:  page,
		ItemsPerPage: limit,
	}
}

// withDetails joins the driver and vehicle summaries onto a record. Dangling
// references resolve to nil summaries rather than failing the listing.
func (s *UsageService) withDetails(rec models.UsageRecord) models.UsageDetails {
	details := models.UsageDetails{UsageRecord: rec}
	if driver, ok := s.drivers.FindByID(rec.DriverID); ok {
		details.Driver = &models.DriverSummary{ID: driver.ID, Name: driver.Name}
	}
	if vehicle, ok := s.vehicles.FindByID(rec.VehicleID); ok {
		details.Vehicle = &models.VehicleSummary{
			ID:    vehicle.ID,
			Plate: vehicle.Plate,
			Make:  vehicle.Make,
			Color: vehicle.Color,
		}
	}
	return details
}
