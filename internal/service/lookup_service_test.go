package service_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vehicle-lookup-api/internal/client"
	"vehicle-lookup-api/internal/extractor"
	"vehicle-lookup-api/internal/mock"
	"vehicle-lookup-api/internal/model"
	"vehicle-lookup-api/internal/service"
)

const inventoryPage = `<div>Used 2022 Toyota Camry SE
Stock #TC1234
VIN 4T1BF1FK5CU123456
32,410 miles
$24,995
Exterior Color: Midnight Black</div>`

func newLookup(fetcher service.Fetcher, logs *bytes.Buffer) *service.LookupService {
	logger := slog.New(slog.NewTextHandler(logs, nil))
	ext := extractor.New(extractor.WithClock(func() time.Time {
		return time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	}))
	return service.NewLookupService(fetcher, ext, "https://dealer.example/searchused.aspx", logger)
}

func TestLookupService_Lookup(t *testing.T) {
	t.Parallel()

	t.Run("extracts vehicle from fetched page", func(t *testing.T) {
		t.Parallel()

		var gotURL string
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				gotURL = url
				return inventoryPage, nil
			},
		}

		var logs bytes.Buffer
		v, err := newLookup(fetcher, &logs).Lookup(context.Background(), "TC1234")

		require.NoError(t, err)
		assert.Equal(t, "https://dealer.example/searchused.aspx", gotURL)
		assert.Equal(t, "TC1234", v.StockNumber)
		assert.Equal(t, 2022, v.Year)
		assert.Equal(t, "Camry", v.Model)
		assert.Equal(t, "4T1BF1FK5CU123456", v.VIN)
		assert.Equal(t, 32410, v.Mileage)
		assert.Equal(t, 24995, v.Price)
		assert.Equal(t, "Midnight Black", v.ExteriorColor)
		assert.Contains(t, logs.String(), "extracted vehicle data")
	})

	t.Run("missing stock is a validation error without fetching", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				t.Fatal("fetch must not be called")
				return "", nil
			},
		}

		var logs bytes.Buffer
		_, err := newLookup(fetcher, &logs).Lookup(context.Background(), "  ")

		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrValidation)
		assert.Equal(t, "Missing stock parameter", err.Error())
		assert.Equal(t, model.ErrorKindValidation, model.ClassifyError(err))
	})

	t.Run("stock number is kept verbatim", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return "Stock: TC1234 | 2022 Toyota Camry", nil
			},
		}

		var logs bytes.Buffer
		v, err := newLookup(fetcher, &logs).Lookup(context.Background(), " TC1234 ")

		require.NoError(t, err)
		assert.Equal(t, " TC1234 ", v.StockNumber)
	})

	t.Run("invalid utf-8 stock is a validation error", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				t.Fatal("fetch must not be called")
				return "", nil
			},
		}

		var logs bytes.Buffer
		_, err := newLookup(fetcher, &logs).Lookup(context.Background(), "TC\xff")

		assert.ErrorIs(t, err, service.ErrValidation)
		assert.Equal(t, "Invalid stock parameter", err.Error())
	})

	t.Run("fetch failure is surfaced unchanged", func(t *testing.T) {
		t.Parallel()

		fetchErr := &client.FetchError{URL: "u", StatusCode: 502, Err: errors.New("bad gateway")}
		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return "", fetchErr
			},
		}

		var logs bytes.Buffer
		_, err := newLookup(fetcher, &logs).Lookup(context.Background(), "TC1234")

		assert.Same(t, fetchErr, err)
		assert.NotErrorIs(t, err, extractor.ErrNotFound)
		assert.Contains(t, logs.String(), "kind=upstream_fetch")
	})

	t.Run("absent stock is not found", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return inventoryPage, nil
			},
		}

		var logs bytes.Buffer
		_, err := newLookup(fetcher, &logs).Lookup(context.Background(), "ZZ0001")

		assert.ErrorIs(t, err, extractor.ErrNotFound)
		assert.Contains(t, logs.String(), "vehicle not found in page")
	})
}
