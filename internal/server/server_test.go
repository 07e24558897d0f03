package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huynhanx03/waitlist/internal/metrics"
	"github.com/huynhanx03/waitlist/internal/service"
	"github.com/huynhanx03/waitlist/pkg/common/apperr"
	"github.com/huynhanx03/waitlist/pkg/common/http/response"
	"github.com/huynhanx03/waitlist/pkg/settings"
)

// =============================================================================
// Test Helpers
// =============================================================================

type envelope[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	reg := prometheus.NewRegistry()
	svc := service.New(nil, metrics.New(reg))
	return New(settings.Server{Mode: "test"}, svc, reg, nil)
}

func do[T any](t *testing.T, s *Server, method, path, body string) (int, envelope[T]) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	var env envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

// =============================================================================
// Endpoints
// =============================================================================

func TestServer_Snapshot_Empty(t *testing.T) {
	s := newTestServer(t)

	status, env := do[SnapshotResponse](t, s, http.MethodGet, "/waitlist", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, response.CodeSuccess, env.Code)
	assert.True(t, env.Data.Empty)
	assert.Equal(t, []string{}, env.Data.Names)
	assert.Equal(t, "The waitlist is empty", env.Data.Text)
}

func TestServer_Flow(t *testing.T) {
	s := newTestServer(t)

	status, added := do[AddedResponse](t, s, http.MethodPost, "/waitlist/end", `{"name":" alice "}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, AddedResponse{Name: "alice", Position: "end", Message: "alice added to the end of the waitlist"}, added.Data)

	do[AddedResponse](t, s, http.MethodPost, "/waitlist/end", `{"name":"bob"}`)
	_, front := do[AddedResponse](t, s, http.MethodPost, "/waitlist/front", `{"name":"carol"}`)
	assert.Equal(t, "carol added to the front of the waitlist", front.Data.Message)

	_, snap := do[SnapshotResponse](t, s, http.MethodGet, "/waitlist", "")
	assert.False(t, snap.Data.Empty)
	assert.Equal(t, []string{"carol", "alice", "bob"}, snap.Data.Names)

	status, removed := do[RemovalResponse](t, s, http.MethodDelete, "/waitlist", `{"name":"alice"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, RemovalResponse{Name: "alice", Outcome: "removed", Message: "Removed alice from the waitlist"}, removed.Data)

	status, missing := do[RemovalResponse](t, s, http.MethodDelete, "/waitlist", `{"name":"alice"}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, apperr.CodeNotFound, missing.Code)
	assert.Equal(t, "alice not found", missing.Message)

	_, snap = do[SnapshotResponse](t, s, http.MethodGet, "/waitlist", "")
	assert.Equal(t, []string{"carol", "bob"}, snap.Data.Names)
}

func TestServer_RejectsBadRequests(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantCode   int
	}{
		{"blank_front", http.MethodPost, "/waitlist/front", `{"name":"  "}`, http.StatusUnprocessableEntity, apperr.CodeValidationFailed},
		{"missing_end", http.MethodPost, "/waitlist/end", `{}`, http.StatusUnprocessableEntity, apperr.CodeValidationFailed},
		{"malformed_remove", http.MethodDelete, "/waitlist", `{"name":`, http.StatusBadRequest, apperr.CodeParamInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			status, env := do[struct{}](t, s, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, env.Code)

			_, snap := do[SnapshotResponse](t, s, http.MethodGet, "/waitlist", "")
			assert.True(t, snap.Data.Empty)
		})
	}
}

func TestServer_Metrics(t *testing.T) {
	s := newTestServer(t)
	do[AddedResponse](t, s, http.MethodPost, "/waitlist/end", `{"name":"alice"}`)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `waitlist_operations_total{op="add_end",outcome="added"} 1`)
	assert.Contains(t, body, "waitlist_entries 1")
}

// =============================================================================
// Run()
// =============================================================================

func TestServer_Run_Shutdown(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	reg := prometheus.NewRegistry()
	cfg := settings.Server{Mode: "test", Host: "127.0.0.1", Port: port, ShutdownTimeout: 1}
	s := New(cfg, service.New(nil, metrics.New(reg)), reg, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + cfg.Addr() + "/waitlist")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
