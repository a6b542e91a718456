package handlers

import (
	"net/http"
	"time"
)

// HealthCheck reports liveness. Registered outside the rate limiter so
// probes are never throttled.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "UP",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"message":   "Application is operational.",
	})
}
