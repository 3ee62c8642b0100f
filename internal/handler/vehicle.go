package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"vehicle-lookup-api/internal/model"
	"vehicle-lookup-api/internal/repository"
	"vehicle-lookup-api/internal/service"
)

type VehicleHandler struct {
	store     service.VehicleStore
	inquiries service.InquiryStore
}

func NewVehicleHandler(store service.VehicleStore, inquiries service.InquiryStore) *VehicleHandler {
	return &VehicleHandler{store: store, inquiries: inquiries}
}

// List returns stored vehicles, optionally filtered by ?status=
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	status := model.VehicleStatus(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		writeError(w, http.StatusBadRequest, "Invalid status", string(status))
		return
	}

	vehicles, err := h.store.List(r.Context(), status)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list vehicles", err.Error())
		return
	}

	if vehicles == nil {
		vehicles = []model.StoredVehicle{}
	}

	writeJSON(w, http.StatusOK, model.VehiclesResponse{Vehicles: vehicles})
}

// Get returns the stored vehicle for {stock}
func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	stock := chi.URLParam(r, "stock")

	vehicle, err := h.store.FindByStock(r.Context(), stock)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Vehicle not found", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch vehicle", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, vehicle)
}

// Save stores a listing, replacing any vehicle with the same stock number
func (h *VehicleHandler) Save(w http.ResponseWriter, r *http.Request) {
	var v model.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	v.StockNumber = strings.TrimSpace(v.StockNumber)
	if v.Status == "" {
		v.Status = model.StatusActive
	}

	if msg := validateVehicle(v); msg != "" {
		writeError(w, http.StatusBadRequest, "Invalid vehicle", msg)
		return
	}

	stored, err := h.store.Upsert(r.Context(), v)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save vehicle", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, stored)
}

// Inquiries returns the customer inquiries recorded for {stock}
func (h *VehicleHandler) Inquiries(w http.ResponseWriter, r *http.Request) {
	stock := chi.URLParam(r, "stock")

	inquiries, err := h.inquiries.ListByVehicle(r.Context(), stock)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list inquiries", err.Error())
		return
	}

	if inquiries == nil {
		inquiries = []model.Inquiry{}
	}

	writeJSON(w, http.StatusOK, model.InquiriesResponse{Inquiries: inquiries})
}

func validateVehicle(v model.Vehicle) string {
	switch {
	case v.StockNumber == "":
		return "stock_number is required"
	case !v.Status.Valid():
		return "status must be active, sold or removed"
	case v.Year < 0 || v.Mileage < 0 || v.Price < 0:
		return "year, mileage and price must not be negative"
	}
	return ""
}
