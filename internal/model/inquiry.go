package model

import "time"

// Inquiry is a customer request about a specific vehicle
type Inquiry struct {
	ID                  string    `json:"id,omitempty"`
	VehicleID           string    `json:"vehicle_id,omitempty"`
	CustomerName        string    `json:"customer_name"`
	CustomerEmail       string    `json:"customer_email"`
	CustomerPhone       string    `json:"customer_phone,omitempty"`
	Message             string    `json:"message,omitempty"`
	AssignedSalesperson string    `json:"assigned_salesperson,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

// InquiryRequest is the body accepted by the inquiry endpoint
type InquiryRequest struct {
	Inquiry *Inquiry `json:"inquiry"`
	Vehicle *Vehicle `json:"vehicle"`
}

// InquiryResponse is returned after the notification was accepted
type InquiryResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	EmailID string `json:"emailId"`
}
