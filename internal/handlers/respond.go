// Package handlers implements the JSON API endpoints for the Interia
// content service. Handlers are grouped into structs with injected
// dependencies: Content for the entity CRUD surface, Auth for sign-in.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"interia/internal/storage"
)

// errorBody is the JSON shape of every non-2xx response.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// writeJSON encodes v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

// writeError sends the standard error shape. detail is optional extra
// context safe to show to API consumers; pass "" to omit it.
func writeError(w http.ResponseWriter, status int, message, detail string) {
	writeJSON(w, status, errorBody{Message: message, Error: detail})
}

// writeStorageError maps an image lifecycle failure onto the API contract:
// a malformed client payload is a validation error, a deadline hit is a
// gateway timeout, anything else a bad gateway.
func writeStorageError(w http.ResponseWriter, err error) {
	if errors.Is(err, storage.ErrInvalidImage) {
		writeError(w, http.StatusBadRequest, "Invalid image payload", err.Error())
		return
	}
	if errors.Is(err, context.DeadlineExceeded) {
		writeError(w, http.StatusGatewayTimeout, "Image storage timed out", "")
		return
	}
	writeError(w, http.StatusBadGateway, "Image storage request failed", "")
}

// decodeJSON reads the request body into dst, rejecting unknown garbage
// with a 400. Returns false if an error response was already written.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return false
	}
	return true
}

// pathUUID parses the named chi URL parameter as a UUID. Returns false if
// an error response was already written.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid id", "")
		return uuid.Nil, false
	}
	return id, true
}

// emptyList avoids JSON null for empty collections: list endpoints always
// return an array.
func emptyList[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
