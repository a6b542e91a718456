package handlers

import (
	"net/http"

	"github.com/fleetops/fleet-usage/internal/models"
	"github.com/fleetops/fleet-usage/internal/services"
)

// DriverHandler handles driver CRUD requests.
type DriverHandler struct {
	service *services.DriverService
}

// NewDriverHandler creates a new driver handler.
func NewDriverHandler(service *services.DriverService) *DriverHandler {
	return &DriverHandler{service: service}
}

// Create handles POST /api/drivers.
func (h *DriverHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.DriverInput
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if input.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	writeJSON(w, http.StatusCreated, h.service.Create(input))
}

// List handles GET /api/drivers with an optional name substring filter.
func (h *DriverHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := models.DriverFilter{
		Name: r.URL.Query().Get("name"),
	}
	writeJSON(w, http.StatusOK, h.service.List(filter))
}

// Get handles GET /api/drivers/{id}.
func (h *DriverHandler) Get(w http.ResponseWriter, r *http.Request) {
	driver, err := h.service.Get(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, driver)
}

// Update handles PUT /api/drivers/{id}.
func (h *DriverHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input models.DriverInput
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if input.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	driver, err := h.service.Update(r.PathValue("id"), models.DriverPatch{Name: &input.Name})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, driver)
}

// Delete handles DELETE /api/drivers/{id}.
func (h *DriverHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
