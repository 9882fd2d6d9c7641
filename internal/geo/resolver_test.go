package geo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grooming-dashboard-backend/config"
)

func newTestResolver(t *testing.T, handler http.HandlerFunc) (*Client, *int32) {
	t.Helper()
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	return NewClient(&config.GeoConfig{
		BaseURL:         server.URL,
		Country:         "us",
		Timeout:         2 * time.Second,
		CacheTTLMinutes: 1,
	}), &calls
}

func TestClient_Locality(t *testing.T) {
	resolver, calls := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/us/85009", r.URL.Path)
		fmt.Fprint(w, `{"places": [{"place name": "Phoenix"}]}`)
	})

	name, err := resolver.Locality(context.Background(), "85009")
	require.NoError(t, err)
	assert.Equal(t, "Phoenix", name)

	// Second lookup is served from the cache.
	name, err = resolver.Locality(context.Background(), "85009")
	require.NoError(t, err)
	assert.Equal(t, "Phoenix", name)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestClient_LocalityNotFound(t *testing.T) {
	resolver, calls := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := resolver.Locality(context.Background(), "00000")
	assert.ErrorIs(t, err, ErrNotFound)

	// Negative results are cached too.
	_, err = resolver.Locality(context.Background(), "00000")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestClient_LocalityEmptyPlaces(t *testing.T) {
	resolver, _ := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"places": []}`)
	})

	_, err := resolver.Locality(context.Background(), "85009")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_LocalityBlankZip(t *testing.T) {
	resolver, calls := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := resolver.Locality(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int32(0), atomic.LoadInt32(calls))
}

func TestClient_LocalityUpstreamError(t *testing.T) {
	resolver, _ := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := resolver.Locality(context.Background(), "85009")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
