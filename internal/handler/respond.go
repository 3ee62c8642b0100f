package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"vehicle-lookup-api/internal/model"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string, details any) {
	writeJSON(w, status, model.ErrorResponse{
		Error:   msg,
		Details: details,
	})
}
