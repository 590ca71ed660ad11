package images

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mkn-console/internal/domain"
	"mkn-console/internal/metrics"
)

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "packaging", r.URL.Query().Get("q"))
		require.Equal(t, "12", r.URL.Query().Get("limit"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"images": []map[string]interface{}{
				{"id": "img-1", "url": "https://img.example/1.jpg", "width": 800, "height": 600},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second)
	images, err := c.Search(context.Background(), "packaging", 12)
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "img-1", images[0].ID)
	assert.Equal(t, 800, images[0].Width)
}

func TestSearch_EnvelopeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "rate limited",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second)
	_, err := c.Search(context.Background(), "x", 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRemoteOperation)
}

func TestSearch_LastRequestWins(t *testing.T) {
	release := make(chan struct{})
	var once sync.Once
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "slow" {
			select {
			case <-release:
			case <-r.Context().Done():
				return
			}
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"images":  []map[string]interface{}{{"id": r.URL.Query().Get("q")}},
		})
	}))
	defer srv.Close()
	defer once.Do(func() { close(release) })

	c := NewClient(srv.URL, "", 5*time.Second)

	firstErr := make(chan error, 1)
	go func() {
		_, err := c.Search(context.Background(), "slow", 5)
		firstErr <- err
	}()

	// Let the slow search reach the server before superseding it.
	time.Sleep(100 * time.Millisecond)

	images, err := c.Search(context.Background(), "fast", 5)
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "fast", images[0].ID)

	select {
	case err := <-firstErr:
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled), "superseded search should be canceled, got %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for superseded search to return")
	}
}

func TestSearch_RecordsRemoteCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"images":  []map[string]interface{}{},
		})
	}))
	defer srv.Close()

	success := metrics.RemoteCallsTotal.WithLabelValues("image_search", "search", "success")
	before := testutil.ToFloat64(success)

	c := NewClient(srv.URL, "", time.Second)
	_, err := c.Search(context.Background(), "ambalaj", 5)
	require.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(success))
}
