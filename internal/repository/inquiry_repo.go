package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"vehicle-lookup-api/internal/model"
	"vehicle-lookup-api/internal/service"
)

var _ service.InquiryStore = (*InquiryRepo)(nil)

// InquiryRepo handles database operations for customer inquiries
type InquiryRepo struct {
	db *pgxpool.Pool
}

// NewInquiryRepo creates a new inquiry repository
func NewInquiryRepo(db *pgxpool.Pool) *InquiryRepo {
	return &InquiryRepo{db: db}
}

// Create stores an inquiry. The caller assigns the ID.
func (r *InquiryRepo) Create(ctx context.Context, inq *model.Inquiry) error {
	query := `
		INSERT INTO customer_inquiries (
			id, vehicle_id, customer_name, customer_email, customer_phone,
			message, assigned_salesperson
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		inq.ID, inq.VehicleID, inq.CustomerName, inq.CustomerEmail,
		inq.CustomerPhone, inq.Message, inq.AssignedSalesperson,
	).Scan(&inq.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert inquiry: %w", err)
	}

	return nil
}

// ListByVehicle returns inquiries for a vehicle, newest first
func (r *InquiryRepo) ListByVehicle(ctx context.Context, vehicleID string) ([]model.Inquiry, error) {
	query := `
		SELECT id, vehicle_id, customer_name, customer_email, customer_phone,
			message, assigned_salesperson, created_at
		FROM customer_inquiries
		WHERE vehicle_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []model.Inquiry
	for rows.Next() {
		var inq model.Inquiry
		err := rows.Scan(
			&inq.ID, &inq.VehicleID, &inq.CustomerName, &inq.CustomerEmail,
			&inq.CustomerPhone, &inq.Message, &inq.AssignedSalesperson, &inq.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inquiry row: %w", err)
		}
		inquiries = append(inquiries, inq)
	}

	return inquiries, rows.Err()
}
