package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator"
	"github.com/sandeepmed2/property-registration/pkg/api"
	"github.com/sandeepmed2/property-registration/pkg/registry"
)

// Validate checks request bodies against their validate tags.
var Validate = validator.New()

// StatusFor returns the HTTP status reported for a registry error.
func StatusFor(err error) int {
	switch registry.Kind(err) {
	case registry.KindAuthorization:
		return http.StatusForbidden
	case registry.KindValidation:
		return http.StatusBadRequest
	case registry.KindNotFound:
		return http.StatusNotFound
	case registry.KindConflict:
		return http.StatusConflict
	case registry.KindBusinessRule:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// DecodeBody decodes and validates a JSON request body into v, writing a 400
// response and returning false when it cannot.
func DecodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		WriteJSON(w, http.StatusBadRequest, api.Error{
			Kind:    string(registry.KindValidation),
			Message: fmt.Sprintf("Invalid request body: %v", err),
		})
		return false
	}
	if err := Validate.Struct(v); err != nil {
		WriteJSON(w, http.StatusBadRequest, api.Error{
			Kind:    string(registry.KindValidation),
			Message: fmt.Sprintf("Invalid request body: %v", err),
		})
		return false
	}
	return true
}

// WriteError reports a failed operation.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		slog.Log(r.Context(), slog.LevelError, "operation failed", "path", r.URL.Path, "error", err)
		message = "Internal error"
	}
	WriteJSON(w, status, api.Error{Kind: string(registry.Kind(err)), Message: message})
}

// WriteJSON writes v as the JSON response body.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// Health reports that the process is serving.
func Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
