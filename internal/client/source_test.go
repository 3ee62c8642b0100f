package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vehicle-lookup-api/internal/client"
	"vehicle-lookup-api/internal/model"
)

func TestSourceClient_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns body and sends browser user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte("<html>Stock #TC1234</html>"))
		}))
		defer server.Close()

		c := client.NewSourceClient()
		html, err := c.Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, "<html>Stock #TC1234</html>", html)
		assert.Equal(t, client.DefaultUserAgent, gotUA)
	})

	t.Run("custom user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
		}))
		defer server.Close()

		c := client.NewSourceClient(client.WithUserAgent("inventory-bot/1.0"))
		_, err := c.Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, "inventory-bot/1.0", gotUA)
	})

	t.Run("non-2xx status is a fetch error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		c := client.NewSourceClient()
		_, err := c.Fetch(context.Background(), server.URL)

		var fetchErr *client.FetchError
		require.True(t, errors.As(err, &fetchErr))
		assert.Equal(t, http.StatusServiceUnavailable, fetchErr.StatusCode)
		assert.Equal(t, "HTTP error! status: 503", err.Error())
		assert.Equal(t, model.ErrorKindUpstreamFetch, model.ClassifyError(err))
	})

	t.Run("does not retry", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		c := client.NewSourceClient()
		_, err := c.Fetch(context.Background(), server.URL)

		require.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("timeout is a fetch error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
		}))
		defer server.Close()

		c := client.NewSourceClient(client.WithTimeout(10 * time.Millisecond))
		_, err := c.Fetch(context.Background(), server.URL)

		var fetchErr *client.FetchError
		require.True(t, errors.As(err, &fetchErr))
		assert.Zero(t, fetchErr.StatusCode)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		c := client.NewSourceClient(client.WithRateLimit(1))
		_, err := c.Fetch(ctx, server.URL)

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("decodes declared legacy charset", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=windows-1252")
			_, _ = w.Write([]byte("Interior: Cr\xe8me"))
		}))
		defer server.Close()

		c := client.NewSourceClient()
		html, err := c.Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, "Interior: Crème", html)
	})
}

func TestRateLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("disabled limiter never blocks", func(t *testing.T) {
		t.Parallel()

		rl := client.NewRateLimiter(0)
		for i := 0; i < 100; i++ {
			require.NoError(t, rl.Wait(context.Background()))
		}
	})

	t.Run("limited waits between requests", func(t *testing.T) {
		t.Parallel()

		rl := client.NewRateLimiter(20)
		start := time.Now()
		require.NoError(t, rl.Wait(context.Background()))
		require.NoError(t, rl.Wait(context.Background()))
		assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
	})
}
