// Package service wires the vehicle lookup and inquiry flows to their
// collaborators: the source page fetcher, storage and the e-mail sender.
package service

import (
	"context"
	"errors"
	"fmt"

	"vehicle-lookup-api/internal/model"
)

// ErrValidation marks requests rejected before any work is done
var ErrValidation = errors.New("validation failed")

type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }
func (e *validationError) Unwrap() error { return ErrValidation }
func (e *validationError) Kind() model.ErrorKind { return model.ErrorKindValidation }

func invalid(format string, args ...any) error {
	return &validationError{msg: fmt.Sprintf(format, args...)}
}

// Fetcher retrieves the raw HTML of a page
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Notifier delivers an inquiry about a vehicle and returns a message ID
type Notifier interface {
	Send(ctx context.Context, inq model.Inquiry, v model.Vehicle) (string, error)
}

// VehicleStore persists vehicles
type VehicleStore interface {
	Upsert(ctx context.Context, v model.Vehicle) (*model.StoredVehicle, error)
	FindByStock(ctx context.Context, stock string) (*model.StoredVehicle, error)
	List(ctx context.Context, status model.VehicleStatus) ([]model.StoredVehicle, error)
}

// InquiryStore persists customer inquiries
type InquiryStore interface {
	Create(ctx context.Context, inq *model.Inquiry) error
	ListByVehicle(ctx context.Context, vehicleID string) ([]model.Inquiry, error)
}

type storageError struct {
	op  string
	err error
}

func (e *storageError) Error() string { return e.op + ": " + e.err.Error() }
func (e *storageError) Unwrap() error { return e.err }
func (e *storageError) Kind() model.ErrorKind { return model.ErrorKindStorage }
