package database

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vehicle-lookup-api/internal/config"
)

func TestDSN(t *testing.T) {
	t.Parallel()

	cfg := config.DatabaseConfig{
		Host:     "db.internal",
		Port:     6543,
		Name:     "inventory",
		User:     "sales",
		Password: "p@ss:word/1",
		SSLMode:  "require",
	}

	poolConfig, err := pgxpool.ParseConfig(DSN(cfg))
	require.NoError(t, err)

	conn := poolConfig.ConnConfig
	assert.Equal(t, "db.internal", conn.Host)
	assert.Equal(t, uint16(6543), conn.Port)
	assert.Equal(t, "inventory", conn.Database)
	assert.Equal(t, "sales", conn.User)
	assert.Equal(t, "p@ss:word/1", conn.Password)
	assert.Equal(t, applicationName, conn.RuntimeParams["application_name"])
}
