package zeroshot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackynews/hackynews/pkg/config"
)

func TestClient_Rank(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer hf-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req request
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "A new kind of toaster", req.Inputs)
		assert.Equal(t, []string{"Hardware", "Business"}, req.Parameters.CandidateLabels)

		_, _ = w.Write([]byte(`{"sequence":"A new kind of toaster","labels":["Hardware","Business"],"scores":[0.8,0.2]}`))
	}))
	defer srv.Close()

	c := New(config.ZeroShotConfig{Endpoint: srv.URL, Token: "hf-token", Timeout: time.Second, Retries: 1})
	res, err := c.Rank(context.Background(), "A new kind of toaster", []string{"Hardware", "Business"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Hardware", "Business"}, res)
}

func TestClient_RankScoredList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"label":"Business","score":0.1},{"label":"Security","score":0.7},{"label":"Hardware","score":0.2}]`))
	}))
	defer srv.Close()

	c := New(config.ZeroShotConfig{Endpoint: srv.URL})
	res, err := c.Rank(context.Background(), "x", []string{"Hardware", "Business", "Security"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Security", "Hardware", "Business"}, res)
}

func TestClient_RankRetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			http.Error(w, `{"error":"Model is currently loading"}`, http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"labels":["Business"],"scores":[0.9]}`))
	}))
	defer srv.Close()

	c := New(config.ZeroShotConfig{Endpoint: srv.URL, Retries: 3})
	res, err := c.Rank(context.Background(), "x", []string{"Business"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Business"}, res)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_RankNoRetryOnClientError(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "bad token", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(config.ZeroShotConfig{Endpoint: srv.URL, Retries: 3})
	_, err := c.Rank(context.Background(), "x", []string{"Business"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_RankBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := New(config.ZeroShotConfig{Endpoint: srv.URL})
	_, err := c.Rank(context.Background(), "x", []string{"Business"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestClient_RankEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(config.ZeroShotConfig{Endpoint: srv.URL})
	res, err := c.Rank(context.Background(), "x", []string{"Business"})
	require.NoError(t, err)
	assert.Empty(t, res)

	res, err = c.Rank(context.Background(), "x", nil)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestClient_RankCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	c := New(config.ZeroShotConfig{Endpoint: srv.URL, Retries: 3})
	_, err := c.Rank(ctx, "x", []string{"Business"})
	require.Error(t, err)
}
