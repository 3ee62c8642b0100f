package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vehicle-lookup-api/internal/model"
	"vehicle-lookup-api/internal/service"
)

var _ service.VehicleStore = (*VehicleRepo)(nil)

// ErrNotFound is returned when a row does not exist
var ErrNotFound = errors.New("not found")

const vehicleColumns = `
	id, stock_number, year, make, model, trim, vin, mileage, price,
	exterior_color, interior_color, transmission, engine, features,
	description, status, assigned_salesperson, created_at, updated_at`

// VehicleRepo handles database operations for stored vehicles
type VehicleRepo struct {
	db *pgxpool.Pool
}

// NewVehicleRepo creates a new vehicle repository
func NewVehicleRepo(db *pgxpool.Pool) *VehicleRepo {
	return &VehicleRepo{db: db}
}

// Upsert inserts a vehicle or replaces the listing with the same stock number
func (r *VehicleRepo) Upsert(ctx context.Context, v model.Vehicle) (*model.StoredVehicle, error) {
	features := v.Features
	if features == nil {
		features = []string{}
	}

	query := `
		INSERT INTO vehicles (
			stock_number, year, make, model, trim, vin, mileage, price,
			exterior_color, interior_color, transmission, engine, features,
			description, status, assigned_salesperson
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (stock_number) DO UPDATE SET
			year = EXCLUDED.year,
			make = EXCLUDED.make,
			model = EXCLUDED.model,
			trim = EXCLUDED.trim,
			vin = EXCLUDED.vin,
			mileage = EXCLUDED.mileage,
			price = EXCLUDED.price,
			exterior_color = EXCLUDED.exterior_color,
			interior_color = EXCLUDED.interior_color,
			transmission = EXCLUDED.transmission,
			engine = EXCLUDED.engine,
			features = EXCLUDED.features,
			description = EXCLUDED.description,
			status = EXCLUDED.status,
			assigned_salesperson = EXCLUDED.assigned_salesperson,
			updated_at = NOW()
		RETURNING ` + vehicleColumns

	row := r.db.QueryRow(ctx, query,
		v.StockNumber, v.Year, v.Make, v.Model, v.Trim, v.VIN, v.Mileage, v.Price,
		v.ExteriorColor, v.InteriorColor, v.Transmission, v.Engine, features,
		v.Description, string(v.Status), v.AssignedSalesperson,
	)

	stored, err := scanVehicle(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert vehicle %s: %w", v.StockNumber, err)
	}
	return stored, nil
}

// FindByStock returns the vehicle with the given stock number
func (r *VehicleRepo) FindByStock(ctx context.Context, stock string) (*model.StoredVehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE stock_number = $1`

	stored, err := scanVehicle(r.db.QueryRow(ctx, query, stock))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicle %s: %w", stock, err)
	}
	return stored, nil
}

// List returns stored vehicles, newest first, optionally filtered by status
func (r *VehicleRepo) List(ctx context.Context, status model.VehicleStatus) ([]model.StoredVehicle, error) {
	query := `
		SELECT ` + vehicleColumns + `
		FROM vehicles
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []model.StoredVehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle row: %w", err)
		}
		vehicles = append(vehicles, *v)
	}

	return vehicles, rows.Err()
}

func scanVehicle(row pgx.Row) (*model.StoredVehicle, error) {
	var v model.StoredVehicle
	var status string
	err := row.Scan(
		&v.ID, &v.StockNumber, &v.Year, &v.Make, &v.Model, &v.Trim, &v.VIN,
		&v.Mileage, &v.Price, &v.ExteriorColor, &v.InteriorColor,
		&v.Transmission, &v.Engine, &v.Features, &v.Description, &status,
		&v.AssignedSalesperson, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.Status = model.VehicleStatus(status)
	return &v, nil
}
