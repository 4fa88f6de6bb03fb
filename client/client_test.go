package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/Tharak23/bridge-full-stack/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticToken(token string) TokenProvider {
	return func(ctx context.Context) (string, error) { return token, nil }
}

func TestBearerTokenForwarded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))
		w.Write([]byte(`{"id":"u1","name":"Priya"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken("session-token"), nil)
	user, err := c.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Priya", user.Name)
}

func TestNoAuthHeaderWithoutProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil, nil).CurrentUser(context.Background())
	assert.NoError(t, err)
}

func TestAPIErrorCarriesStatusAndBody(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, `{"message":"no such user"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil, nil).CurrentUser(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "no such user", apiErr.Body["message"])
	assert.Contains(t, apiErr.Error(), "no such user")
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls), "4xx responses are never retried")
}

func TestUnparsableErrorBodyBecomesEmptyObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "<html>gateway error</html>", http.StatusBadRequest)
	}))
	defer srv.Close()

	err := New(srv.URL, nil, nil).AcceptBooking(context.Background(), "bk-1")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.NotNil(t, apiErr.Body)
	assert.Empty(t, apiErr.Body)
}

func TestGetRetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			http.Error(w, "flaky", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[{"id":"bk-1","serviceName":"AC Service"}]`))
	}))
	defer srv.Close()

	list, err := New(srv.URL, nil, nil).MyBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestCreateBookingNeverRetriesAndCarriesIdempotencyKey(t *testing.T) {
	var calls int32
	var key string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		key = r.Header.Get("Idempotency-Key")
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil, nil).CreateBooking(context.Background(), models.Booking{ServiceName: "AC Service"})

	require.Error(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls), "a retried create could double-book")
	_, parseErr := uuid.Parse(key)
	assert.NoError(t, parseErr, "the idempotency key is a client-generated UUID")
}

func TestGarbageSuccessBodyDegradesToZeroValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	user, err := New(srv.URL, nil, nil).CurrentUser(context.Background())
	assert.NoError(t, err, "an unreadable success body is not an error")
	assert.Empty(t, user.ID)
}

func TestURLJoining(t *testing.T) {
	c := New("https://api.bridge.example/", nil, nil)
	assert.Equal(t, "https://api.bridge.example/api/users/me", c.URL("api/users/me"))
	assert.Equal(t, "https://api.bridge.example/api/users/me", c.URL("/api/users/me"))
}
