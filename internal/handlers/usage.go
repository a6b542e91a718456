package handlers

import (
	"net/http"
	"strconv"

	"github.com/fleetops/fleet-usage/internal/ids"
	"github.com/fleetops/fleet-usage/internal/models"
	"github.com/fleetops/fleet-usage/internal/services"
)

// UsageHandler handles usage lifecycle requests.
type UsageHandler struct {
	service *services.UsageService
}

// NewUsageHandler creates a new usage handler.
func NewUsageHandler(service *services.UsageService) *UsageHandler {
	return &UsageHandler{service: service}
}

// Start handles POST /api/usages.
func (h *UsageHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req models.StartUsageRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.DriverID == "" {
		writeError(w, http.StatusBadRequest, "driverId is required")
		return
	}
	if !ids.IsValid(req.DriverID) {
		writeError(w, http.StatusBadRequest, "driverId must be a valid UUID")
		return
	}
	if req.VehicleID == "" {
		writeError(w, http.StatusBadRequest, "vehicleId is required")
		return
	}
	if !ids.IsValid(req.VehicleID) {
		writeError(w, http.StatusBadRequest, "vehicleId must be a valid UUID")
		return
	}
	if req.Reason == "" {
		writeError(w, http.StatusBadRequest, "reason is required")
		return
	}

	rec, err := h.service.Start(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

// Finish handles PATCH /api/usages/{id}/finish.
func (h *UsageHandler) Finish(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !ids.IsValid(id) {
		writeError(w, http.StatusBadRequest, "usage id must be a valid UUID")
		return
	}

	rec, err := h.service.Finish(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// List handles GET /api/usages with optional page and limit query
// parameters. Values that do not parse as positive integers fall back to the
// service defaults.
func (h *UsageHandler) List(w http.ResponseWriter, r *http.Request) {
	page := parsePositiveInt(r.URL.Query().Get("page"))
	limit := parsePositiveInt(r.URL.Query().Get("limit"))
	writeJSON(w, http.StatusOK, h.service.List(page, limit))
}

// parsePositiveInt returns 0 for anything that is not a number, leaving the
// defaulting to the service.
func parsePositiveInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
