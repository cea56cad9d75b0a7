package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackynews/hackynews/pkg/config"
	"github.com/hackynews/hackynews/pkg/domain"
	"github.com/hackynews/hackynews/server/mocks"
)

func testConfig() *mocks.ConfigProviderMock {
	cfg := config.Default()
	cfg.Server.BaseURL = "https://news.example.com"
	return &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return ":8080", 30 * time.Second },
		GetFullConfigFunc:   func() *config.Config { return cfg },
	}
}

// testServer creates a server with the given mocks, nil ones are replaced with empty mocks
func testServer(t *testing.T, db Database, syncer Syncer, classifier Classifier) *Server {
	t.Helper()
	if db == nil {
		db = &mocks.DatabaseMock{}
	}
	if syncer == nil {
		syncer = &mocks.SyncerMock{}
	}
	if classifier == nil {
		classifier = &mocks.ClassifierMock{}
	}
	return New(testConfig(), db, syncer, classifier, "test", false)
}

// serve runs request through the router with all middleware
func serve(srv *Server, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	return w
}

func TestServer_New(t *testing.T) {
	srv := New(testConfig(), &mocks.DatabaseMock{}, &mocks.SyncerMock{}, &mocks.ClassifierMock{}, "1.0.0", true)
	assert.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.version)
	assert.True(t, srv.debug)
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	cfg := testConfig()
	cfg.GetServerConfigFunc = func() (string, time.Duration) {
		return fmt.Sprintf("127.0.0.1:%d", port), 30 * time.Second
	}
	srv := New(cfg, &mocks.DatabaseMock{}, &mocks.SyncerMock{}, &mocks.ClassifierMock{}, "1.0.0", false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))
	assert.Equal(t, "hackynews", resp.Header.Get("App-Name"))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_Routes(t *testing.T) {
	db := &mocks.DatabaseMock{
		ListItemsFunc: func(context.Context, domain.ItemFilter) ([]domain.ClassifiedItem, error) {
			return []domain.ClassifiedItem{}, nil
		},
		CategoryCountsFunc: func(context.Context) ([]domain.CategoryCount, error) { return nil, nil },
		StatsFunc:          func(context.Context) (domain.Stats, error) { return domain.Stats{}, nil },
		TopItemsFunc: func(context.Context, domain.TopScope, int) ([]domain.ClassifiedItem, error) {
			return nil, nil
		},
		LastSyncRunFunc: func(context.Context) (*domain.SyncRun, error) { return nil, nil },
	}
	srv := testServer(t, db, nil, nil)

	for _, target := range []string{"/api/v1/news", "/api/v1/categories", "/api/v1/stats", "/api/v1/stats/top-recent",
		"/api/v1/stats/top-alltime", "/api/v1/status", "/rss", "/rss/Programming"} {
		t.Run(target, func(t *testing.T) {
			w := serve(srv, http.MethodGet, target)
			assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
		})
	}

	// update and reclassify are post only
	for _, target := range []string{"/api/v1/update", "/api/v1/reclassify"} {
		w := serve(srv, http.MethodGet, target)
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.Equal(t, http.MethodPost, w.Header().Get("Allow"))
		assert.Contains(t, w.Body.String(), "method GET not allowed")
	}

	w := serve(srv, http.MethodGet, "/api/v1/no-such-thing")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_Recoverer(t *testing.T) {
	db := &mocks.DatabaseMock{
		StatsFunc: func(context.Context) (domain.Stats, error) { panic("boom") },
	}
	srv := testServer(t, db, nil, nil)

	w := serve(srv, http.MethodGet, "/api/v1/stats")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// server still serves after panic
	w = serve(srv, http.MethodGet, "/ping")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRenderJSON(t *testing.T) {
	data := map[string]string{"message": "test", "status": "ok"}

	req := httptest.NewRequest("GET", "/test", http.NoBody)
	w := httptest.NewRecorder()
	renderJSON(w, req, http.StatusCreated, data)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var result map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, data, result)
}

func TestRenderError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedMsg  string
	}{
		{name: "generic error", err: errors.New("something went wrong"), expectedCode: http.StatusInternalServerError,
			expectedMsg: "something went wrong"},
		{name: "bad request", err: errors.New("invalid limit"), expectedCode: http.StatusBadRequest,
			expectedMsg: "invalid limit"},
		{name: "nil error", err: nil, expectedCode: http.StatusInternalServerError, expectedMsg: "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/test", http.NoBody)
			w := httptest.NewRecorder()

			renderError(w, req, tt.err, tt.expectedCode)

			assert.Equal(t, tt.expectedCode, w.Code)
			var result map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
			assert.Equal(t, tt.expectedMsg, result["error"])
		})
	}
}
