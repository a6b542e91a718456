package handlers

import (
	"net/http"

	"github.com/fleetops/fleet-usage/internal/models"
	"github.com/fleetops/fleet-usage/internal/services"
)

// VehicleHandler handles vehicle CRUD requests.
type VehicleHandler struct {
	service *services.VehicleService
}

// NewVehicleHandler creates a new vehicle handler.
func NewVehicleHandler(service *services.VehicleService) *VehicleHandler {
	return &VehicleHandler{service: service}
}

func validateVehicleInput(input models.VehicleInput) (string, bool) {
	if input.Plate == "" {
		return "plate is required", false
	}
	if input.Color == "" {
		return "color is required", false
	}
	if input.Make == "" {
		return "make is required", false
	}
	return "", true
}

// Create handles POST /api/vehicles.
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.VehicleInput
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg, ok := validateVehicleInput(input); !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	writeJSON(w, http.StatusCreated, h.service.Create(input))
}

// List handles GET /api/vehicles with optional color and make filters.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := models.VehicleFilter{
		Color: r.URL.Query().Get("color"),
		Make:  r.URL.Query().Get("make"),
	}
	writeJSON(w, http.StatusOK, h.service.List(filter))
}

// Get handles GET /api/vehicles/{id}.
func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	vehicle, err := h.service.Get(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

// Update handles PUT /api/vehicles/{id}. The full field set is required, as
// on create.
func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input models.VehicleInput
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg, ok := validateVehicleInput(input); !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	patch := models.VehiclePatch{
		Plate: &input.Plate,
		Color: &input.Color,
		Make:  &input.Make,
	}
	vehicle, err := h.service.Update(r.PathValue("id"), patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

// Delete handles DELETE /api/vehicles/{id}.
func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
