package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var migrations = []struct {
	name string
	sql  string
}{
	{
		name: "vehicles table",
		sql: `
		CREATE TABLE IF NOT EXISTS vehicles (
			id BIGSERIAL PRIMARY KEY,
			stock_number VARCHAR(50) NOT NULL UNIQUE,
			year INTEGER NOT NULL CHECK (year >= 0),
			make VARCHAR(50) NOT NULL,
			model VARCHAR(100) NOT NULL,
			trim VARCHAR(100) NOT NULL DEFAULT '',
			vin VARCHAR(17) NOT NULL DEFAULT '',
			mileage INTEGER NOT NULL DEFAULT 0 CHECK (mileage >= 0),
			price INTEGER NOT NULL DEFAULT 0 CHECK (price >= 0),
			exterior_color VARCHAR(100) NOT NULL DEFAULT '',
			interior_color VARCHAR(100) NOT NULL DEFAULT '',
			transmission VARCHAR(100) NOT NULL DEFAULT '',
			engine VARCHAR(100) NOT NULL DEFAULT '',
			features TEXT[] NOT NULL DEFAULT '{}',
			description TEXT NOT NULL DEFAULT '',
			status VARCHAR(20) NOT NULL DEFAULT 'active'
				CHECK (status IN ('active', 'sold', 'removed')),
			assigned_salesperson VARCHAR(100) NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "idx_vehicles_status",
		sql:  `CREATE INDEX IF NOT EXISTS idx_vehicles_status ON vehicles (status)`,
	},
	{
		name: "customer_inquiries table",
		sql: `
		CREATE TABLE IF NOT EXISTS customer_inquiries (
			id UUID PRIMARY KEY,
			vehicle_id VARCHAR(50) NOT NULL DEFAULT '',
			customer_name VARCHAR(200) NOT NULL,
			customer_email VARCHAR(320) NOT NULL,
			customer_phone VARCHAR(50) NOT NULL DEFAULT '',
			message TEXT NOT NULL DEFAULT '',
			assigned_salesperson VARCHAR(100) NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "idx_inquiries_vehicle",
		sql:  `CREATE INDEX IF NOT EXISTS idx_inquiries_vehicle ON customer_inquiries (vehicle_id)`,
	},
}

// RunMigrations executes all database migrations
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	for _, m := range migrations {
		if _, err := pool.Exec(ctx, m.sql); err != nil {
			return fmt.Errorf("failed to create %s: %w", m.name, err)
		}
	}
	return nil
}
