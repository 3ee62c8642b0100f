package model

import "time"

// HealthResponse is the body of the health check
type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// InquiriesResponse wraps the inquiries recorded for a vehicle
type InquiriesResponse struct {
	Inquiries []Inquiry `json:"inquiries"`
}

// VehiclesResponse wraps a list of stored vehicles
type VehiclesResponse struct {
	Vehicles []StoredVehicle `json:"vehicles"`
}
