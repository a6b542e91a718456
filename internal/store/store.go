// Package store holds the in-memory collections backing the API. All state
// lives for the process lifetime only. Store operations never return errors:
// absence is signaled with a false ok value or an empty slice, and the
// service layer decides what that means.
package store

import "github.com/fleetops/fleet-usage/internal/models"

// VehicleStore is the keyed collection of vehicles.
type VehicleStore interface {
	Create(input models.VehicleInput) models.Vehicle
	List(filter models.VehicleFilter) []models.Vehicle
	FindByID(id string) (models.Vehicle, bool)
	Update(id string, patch models.VehiclePatch) (models.Vehicle, bool)
	Delete(id string) bool
	Clear()
}

// DriverStore is the keyed collection of drivers.
type DriverStore interface {
	Create(input models.DriverInput) models.Driver
	List(filter models.DriverFilter) []models.Driver
	FindByID(id string) (models.Driver, bool)
	Update(id string, patch models.DriverPatch) (models.Driver, bool)
	Delete(id string) bool
	Clear()
}

// UsageStore is the keyed collection of usage records. Beyond plain CRUD it
// answers the two active-usage lookups and paginates in insertion order.
type UsageStore interface {
	// Create stores rec under a fresh id with EndedAt forced to nil,
	// whatever the caller supplied.
	Create(rec models.UsageRecord) models.UsageRecord
	FindByID(id string) (models.UsageRecord, bool)
	Update(id string, patch models.UsagePatch) (models.UsageRecord, bool)
	// ListPaginated returns the total record count and the slice starting at
	// offset with at most limit items. A non-positive limit or negative
	// offset returns the whole collection, a mode kept for legacy callers.
	ListPaginated(limit, offset int) (int, []models.UsageRecord)
	FindActiveByVehicleID(vehicleID string) (models.UsageRecord, bool)
	FindActiveByDriverID(driverID string) (models.UsageRecord, bool)
	Clear()
}
