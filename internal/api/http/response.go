package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"rentman-backend/internal/domain"
	"rentman-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError maps the domain error taxonomy onto HTTP status codes:
// validation, conflict and invalid-state failures are client errors (400),
// missing entities are 404, anything else is a 500.
func writeError(w http.ResponseWriter, err error) {
	var de *domain.Error
	if errors.As(err, &de) {
		status := http.StatusBadRequest
		if de.Kind == domain.KindNotFound {
			status = http.StatusNotFound
		}
		writeJSON(w, status, errorResponse{Error: de.Msg, Kind: de.Kind.String()})
		return
	}

	logger.Error("Internal error", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}
