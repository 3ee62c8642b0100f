package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResendSender_Send(t *testing.T) {
	t.Parallel()

	t.Run("posts email and returns id", func(t *testing.T) {
		t.Parallel()

		var gotAuth string
		var got resendRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/emails", r.URL.Path)
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewDecoder(r.Body).Decode(&got)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"email_123"}`))
		}))
		defer server.Close()

		s := NewResendSender(server.URL, "re_test", "Inquiries <noreply@example.com>", []string{"sales@example.com"})
		s.now = func() time.Time { return submittedAt }

		id, err := s.Send(context.Background(), testInquiry, testVehicle)

		require.NoError(t, err)
		assert.Equal(t, "email_123", id)
		assert.Equal(t, "Bearer re_test", gotAuth)
		assert.Equal(t, "Inquiries <noreply@example.com>", got.From)
		assert.Equal(t, []string{"sales@example.com"}, got.To)
		assert.Equal(t, "New Vehicle Inquiry - 2022 Toyota Camry (Stock #TC1234)", got.Subject)
		assert.Contains(t, got.HTML, "Sam Rivera")
	})

	t.Run("provider error carries details", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"name":"validation_error","message":"Invalid from field"}`))
		}))
		defer server.Close()

		s := NewResendSender(server.URL, "re_test", "bad", []string{"sales@example.com"})
		_, err := s.Send(context.Background(), testInquiry, testVehicle)

		var sendErr *SendError
		require.True(t, errors.As(err, &sendErr))
		assert.Equal(t, http.StatusUnprocessableEntity, sendErr.StatusCode)
		details, ok := sendErr.Details.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Invalid from field", details["message"])
	})

	t.Run("transport failure", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		s := NewResendSender(server.URL, "re_test", "from", []string{"to@example.com"})
		_, err := s.Send(context.Background(), testInquiry, testVehicle)

		require.Error(t, err)
		var sendErr *SendError
		assert.False(t, errors.As(err, &sendErr))
	})
}
