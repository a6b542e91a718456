package handlers

import (
	"net/http"

	"github.com/fleetops/fleet-usage/docs"
)

// ServeOpenAPI serves the embedded API document.
func ServeOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(docs.OpenAPI)
}
