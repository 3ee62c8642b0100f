// Package mock provides function-field test doubles for the service interfaces.
package mock

import (
	"context"

	"vehicle-lookup-api/internal/model"
	"vehicle-lookup-api/internal/service"
)

var (
	_ service.Fetcher      = (*Fetcher)(nil)
	_ service.Notifier     = (*Notifier)(nil)
	_ service.VehicleStore = (*VehicleStore)(nil)
	_ service.InquiryStore = (*InquiryStore)(nil)
)

// Fetcher is a mock implementation of service.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

// Notifier is a mock implementation of service.Notifier.
type Notifier struct {
	SendFn func(ctx context.Context, inq model.Inquiry, v model.Vehicle) (string, error)
}

func (n *Notifier) Send(ctx context.Context, inq model.Inquiry, v model.Vehicle) (string, error) {
	return n.SendFn(ctx, inq, v)
}

// VehicleStore is a mock implementation of service.VehicleStore.
type VehicleStore struct {
	UpsertFn      func(ctx context.Context, v model.Vehicle) (*model.StoredVehicle, error)
	FindByStockFn func(ctx context.Context, stock string) (*model.StoredVehicle, error)
	ListFn        func(ctx context.Context, status model.VehicleStatus) ([]model.StoredVehicle, error)
}

func (s *VehicleStore) Upsert(ctx context.Context, v model.Vehicle) (*model.StoredVehicle, error) {
	return s.UpsertFn(ctx, v)
}

func (s *VehicleStore) FindByStock(ctx context.Context, stock string) (*model.StoredVehicle, error) {
	return s.FindByStockFn(ctx, stock)
}

func (s *VehicleStore) List(ctx context.Context, status model.VehicleStatus) ([]model.StoredVehicle, error) {
	return s.ListFn(ctx, status)
}

// InquiryStore is a mock implementation of service.InquiryStore.
type InquiryStore struct {
	CreateFn        func(ctx context.Context, inq *model.Inquiry) error
	ListByVehicleFn func(ctx context.Context, vehicleID string) ([]model.Inquiry, error)
}

func (s *InquiryStore) Create(ctx context.Context, inq *model.Inquiry) error {
	return s.CreateFn(ctx, inq)
}

func (s *InquiryStore) ListByVehicle(ctx context.Context, vehicleID string) ([]model.Inquiry, error) {
	return s.ListByVehicleFn(ctx, vehicleID)
}
