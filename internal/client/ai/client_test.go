package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mkn-console/internal/domain"
	"mkn-console/internal/metrics"
)

func TestGeneratePost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/generate", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "twitter", req["platform"])
		assert.Equal(t, "Sustainable packaging", req["topic"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"content": "Generated tweet",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", time.Second)
	content, err := c.GeneratePost(context.Background(),
		GenerationRequest{Topic: "Sustainable packaging"}, domain.PlatformTwitter)
	require.NoError(t, err)
	assert.Equal(t, "Generated tweet", content)
}

func TestGeneratePost_EnvelopeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "quota exceeded",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second)
	_, err := c.GeneratePost(context.Background(), GenerationRequest{Topic: "x"}, domain.PlatformTwitter)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRemoteOperation)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestGenerateBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/generate-batch", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"results": map[string]string{
				"twitter":  "tweet",
				"linkedin": "post",
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second)
	results, err := c.GenerateBatch(context.Background(), GenerationRequest{Topic: "x"},
		[]domain.PlatformID{domain.PlatformTwitter, domain.PlatformLinkedIn})
	require.NoError(t, err)
	assert.Equal(t, "tweet", results[domain.PlatformTwitter])
	assert.Equal(t, "post", results[domain.PlatformLinkedIn])
}

func TestGenerateBatch_MissingPlatformResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"results": map[string]string{"twitter": "tweet"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second)
	_, err := c.GenerateBatch(context.Background(), GenerationRequest{Topic: "x"},
		[]domain.PlatformID{domain.PlatformTwitter, domain.PlatformLinkedIn})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRemoteOperation)
}

func TestGeneratePost_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 50*time.Millisecond)
	_, err := c.GeneratePost(context.Background(), GenerationRequest{Topic: "x"}, domain.PlatformTwitter)
	assert.Error(t, err)
}

func TestGeneratePost_RecordsRemoteCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"content": "ok",
		})
	}))
	defer srv.Close()

	success := metrics.RemoteCallsTotal.WithLabelValues("ai_provider", "generate", "success")
	before := testutil.ToFloat64(success)

	c := NewClient(srv.URL, "", time.Second)
	_, err := c.GeneratePost(context.Background(), GenerationRequest{Topic: "x"}, domain.PlatformTwitter)
	require.NoError(t, err)

	assert.Equal(t, before+1, testutil.ToFloat64(success))
}

func TestGeneratePost_RecordsRemoteCallFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "quota exceeded",
		})
	}))
	defer srv.Close()

	failure := metrics.RemoteCallsTotal.WithLabelValues("ai_provider", "generate", "failure")
	before := testutil.ToFloat64(failure)

	c := NewClient(srv.URL, "", time.Second)
	_, err := c.GeneratePost(context.Background(), GenerationRequest{Topic: "x"}, domain.PlatformTwitter)
	require.Error(t, err)

	assert.Equal(t, before+1, testutil.ToFloat64(failure))
}
