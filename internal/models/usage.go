package models

import "time"

// UsageRecord tracks one checkout of a vehicle by a driver. EndedAt stays
// nil while the vehicle is still out; setting it is a one-way transition.
type UsageRecord struct {
	ID        string     `json:"id"`
	DriverID  string     `json:"driverId"`
	VehicleID string     `json:"vehicleId"`
	Reason    string     `json:"reason"`
	StartedAt time.Time  `json:"startedAt"`
	EndedAt   *time.Time `json:"endedAt"`
}

// Active reports whether the vehicle is still out on this record.
func (u UsageRecord) Active() bool {
	return u.EndedAt == nil
}

// StartUsageRequest is the payload for opening a usage record.
type StartUsageRequest struct {
	DriverID  string `json:"driverId"`
	VehicleID string `json:"vehicleId"`
	Reason    string `json:"reason"`
}

// UsagePatch is a partial usage update. Nil fields are left untouched, so a
// set EndedAt can never be cleared through the store.
type UsagePatch struct {
	Reason  *string
	EndedAt *time.Time
}

// UsageDetails is a usage record joined with its driver and vehicle
// summaries. Either summary is nil when the referenced entity no longer
// exists.
type UsageDetails struct {
	UsageRecord
	Driver  *DriverSummary  `json:"driver"`
	Vehicle *VehicleSummary `json:"vehicle"`
}

// PagedUsages is one page of detailed usage records.
type PagedUsages struct {
	Items        []UsageDetails `json:"items"`
	TotalItems   int            `json:"totalItems"`
	TotalPages   int            `json:"totalPages"`
	CurrentPage  int            `json:"currentPage"`
	ItemsPerPage int            `json:"itemsPerPage"`
}
