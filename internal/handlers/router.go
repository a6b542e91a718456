package handlers

import "net/http"

// NewRouter wires every route of the API onto a ServeMux.
func NewRouter(vehicles *VehicleHandler, drivers *DriverHandler, usages *UsageHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", HealthCheck)
	mux.HandleFunc("GET /api/docs/openapi.yaml", ServeOpenAPI)

	mux.HandleFunc("POST /api/vehicles", vehicles.Create)
	mux.HandleFunc("GET /api/vehicles", vehicles.List)
	mux.HandleFunc("GET /api/vehicles/{id}", vehicles.Get)
	mux.HandleFunc("PUT /api/vehicles/{id}", vehicles.Update)
	mux.HandleFunc("DELETE /api/vehicles/{id}", vehicles.Delete)

	mux.HandleFunc("POST /api/drivers", drivers.Create)
	mux.HandleFunc("GET /api/drivers", drivers.List)
	mux.HandleFunc("GET /api/drivers/{id}", drivers.Get)
	mux.HandleFunc("PUT /api/drivers/{id}", drivers.Update)
	mux.HandleFunc("DELETE /api/drivers/{id}", drivers.Delete)

	mux.HandleFunc("POST /api/usages", usages.Start)
	mux.HandleFunc("GET /api/usages", usages.List)
	mux.HandleFunc("PATCH /api/usages/{id}/finish", usages.Finish)

	return mux
}
