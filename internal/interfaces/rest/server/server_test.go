package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanielPopoola/bambora-gateway/internal/application/services"
	"github.com/DanielPopoola/bambora-gateway/internal/gateway"
	"github.com/DanielPopoola/bambora-gateway/internal/journal"
)

// blockingService waits for the request context on every payment.
type blockingService struct{}

func (blockingService) wait(ctx context.Context) (*gateway.Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (s blockingService) Purchase(ctx context.Context, _ services.PurchaseCommand) (*gateway.Response, error) {
	return s.wait(ctx)
}

func (s blockingService) Authorize(ctx context.Context, _ services.AuthorizeCommand) (*gateway.Response, error) {
	return s.wait(ctx)
}

func (s blockingService) Capture(ctx context.Context, _ services.CaptureCommand) (*gateway.Response, error) {
	return s.wait(ctx)
}

func (s blockingService) Refund(ctx context.Context, _ services.RefundCommand) (*gateway.Response, error) {
	return s.wait(ctx)
}

func (s blockingService) Void(ctx context.Context, _ services.VoidCommand) (*gateway.Response, error) {
	return s.wait(ctx)
}

func (s blockingService) Verify(ctx context.Context, _ services.VerifyCommand) (*gateway.Response, error) {
	return s.wait(ctx)
}

func (blockingService) History(ctx context.Context, orderID string) ([]*journal.Entry, error) {
	return nil, nil
}

func (blockingService) Info() gateway.Info {
	return gateway.Info{DisplayName: gateway.DisplayName}
}

func newTestHandler(t *testing.T, timeout time.Duration) http.Handler {
	t.Helper()
	h, err := NewHandler(context.Background(), Deps{
		Service:        blockingService{},
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		RequestTimeout: timeout,
	})
	require.NoError(t, err)
	return h
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestNewHandler_TimeoutIsGatewayTimeout(t *testing.T) {
	h := newTestHandler(t, 50*time.Millisecond)

	rr := do(h, http.MethodPost, "/v1/voids", `{"order_id":"order-1","authorization":"10000021"}`)

	assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var env struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Equal(t, "TIMEOUT", env.Error.Code)
}

func TestNewHandler_RejectsOversizedBody(t *testing.T) {
	h := newTestHandler(t, time.Second)
	body := `{"order_id":"` + strings.Repeat("a", maxRequestBytes) + `"}`

	rr := do(h, http.MethodPost, "/v1/voids", body)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "VALIDATION_ERROR")
}

func TestNewHandler_Routes(t *testing.T) {
	h := newTestHandler(t, time.Second)

	tests := []struct {
		name   string
		path   string
		status int
		want   string
	}{
		{"health", "/healthz", http.StatusOK, `"status":"ok"`},
		{"gateway info", "/v1/gateway", http.StatusOK, `"display_name":"Bambora"`},
		{"openapi document", "/openapi.yaml", http.StatusOK, "openapi:"},
		{"no metrics without a gatherer", "/metrics", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(h, http.MethodGet, tt.path, "")

			assert.Equal(t, tt.status, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.want)
		})
	}
}
