package handler

import (
	"errors"
	"net/http"

	"vehicle-lookup-api/internal/extractor"
	"vehicle-lookup-api/internal/service"
)

type VehicleInfoHandler struct {
	lookup *service.LookupService
}

func NewVehicleInfoHandler(lookup *service.LookupService) *VehicleInfoHandler {
	return &VehicleInfoHandler{lookup: lookup}
}

// Get looks up ?stock= on the dealer inventory page
func (h *VehicleInfoHandler) Get(w http.ResponseWriter, r *http.Request) {
	stock := r.URL.Query().Get("stock")
	if stock == "" {
		writeError(w, http.StatusBadRequest, "Missing stock parameter", nil)
		return
	}

	vehicle, err := h.lookup.Lookup(r.Context(), stock)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, vehicle)
	case errors.Is(err, service.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, extractor.ErrNotFound):
		writeError(w, http.StatusNotFound, "Vehicle not found on website", nil)
	default:
		writeError(w, http.StatusInternalServerError, "Failed to fetch vehicle info", err.Error())
	}
}
