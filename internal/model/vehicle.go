package model

import "time"

// VehicleStatus is the lifecycle state of a listing
type VehicleStatus string

const (
	StatusActive  VehicleStatus = "active"
	StatusSold    VehicleStatus = "sold"
	StatusRemoved VehicleStatus = "removed"
)

// Valid reports whether s is one of the known statuses
func (s VehicleStatus) Valid() bool {
	switch s {
	case StatusActive, StatusSold, StatusRemoved:
		return true
	}
	return false
}

// Vehicle is a listing recovered from the dealer inventory page.
// Every field is best-effort; empty values are not errors.
type Vehicle struct {
	StockNumber         string        `json:"stock_number"`
	Year                int           `json:"year"`
	Make                string        `json:"make"`
	Model               string        `json:"model"`
	Trim                string        `json:"trim"`
	VIN                 string        `json:"vin"`
	Mileage             int           `json:"mileage"`
	Price               int           `json:"price"`
	ExteriorColor       string        `json:"exterior_color"`
	InteriorColor       string        `json:"interior_color"`
	Transmission        string        `json:"transmission"`
	Engine              string        `json:"engine"`
	Features            []string      `json:"features"`
	Description         string        `json:"description"`
	Status              VehicleStatus `json:"status"`
	AssignedSalesperson string        `json:"assigned_salesperson"`
}

// StoredVehicle is a Vehicle persisted in the inventory table
type StoredVehicle struct {
	ID int64 `json:"id"`
	Vehicle
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
