// Package handlers is the HTTP boundary of the API: it decodes and validates
// requests, calls the services and maps tagged service errors onto status
// codes. No business rule lives here.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/fleetops/fleet-usage/internal/apperr"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, code int, message string) {
	status := "error"
	if code >= 400 && code < 500 {
		status = "fail"
	}
	writeJSON(w, code, ErrorResponse{Status: status, Message: message})
}

// writeServiceError maps an error from the service layer onto an HTTP
// status. Internal errors are logged and never leak their message.
func writeServiceError(w http.ResponseWriter, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		writeError(w, http.StatusNotFound, err.Error())
	case apperr.KindConflict:
		writeError(w, http.StatusConflict, err.Error())
	case apperr.KindInvalidState:
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.WithError(err).Error("Unexpected service error")
		writeError(w, http.StatusInternalServerError, "Something went very wrong!")
	}
}

func decodeBody(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		return errors.New("failed to read request body")
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errors.New("invalid JSON")
	}
	return nil
}
