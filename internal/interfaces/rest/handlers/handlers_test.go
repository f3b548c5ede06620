package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanielPopoola/bambora-gateway/internal/api"
	"github.com/DanielPopoola/bambora-gateway/internal/application"
	"github.com/DanielPopoola/bambora-gateway/internal/application/services"
	"github.com/DanielPopoola/bambora-gateway/internal/bambora"
	"github.com/DanielPopoola/bambora-gateway/internal/gateway"
	"github.com/DanielPopoola/bambora-gateway/internal/interfaces/rest"
	"github.com/DanielPopoola/bambora-gateway/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/bambora-gateway/internal/journal"
)

type mockPaymentService struct {
	purchaseFn  func(ctx context.Context, cmd services.PurchaseCommand) (*gateway.Response, error)
	authorizeFn func(ctx context.Context, cmd services.AuthorizeCommand) (*gateway.Response, error)
	captureFn   func(ctx context.Context, cmd services.CaptureCommand) (*gateway.Response, error)
	refundFn    func(ctx context.Context, cmd services.RefundCommand) (*gateway.Response, error)
	voidFn      func(ctx context.Context, cmd services.VoidCommand) (*gateway.Response, error)
	verifyFn    func(ctx context.Context, cmd services.VerifyCommand) (*gateway.Response, error)
	historyFn   func(ctx context.Context, orderID string) ([]*journal.Entry, error)
}

func (m *mockPaymentService) Purchase(ctx context.Context, cmd services.PurchaseCommand) (*gateway.Response, error) {
	return m.purchaseFn(ctx, cmd)
}

func (m *mockPaymentService) Authorize(ctx context.Context, cmd services.AuthorizeCommand) (*gateway.Response, error) {
	return m.authorizeFn(ctx, cmd)
}

func (m *mockPaymentService) Capture(ctx context.Context, cmd services.CaptureCommand) (*gateway.Response, error) {
	return m.captureFn(ctx, cmd)
}

func (m *mockPaymentService) Refund(ctx context.Context, cmd services.RefundCommand) (*gateway.Response, error) {
	return m.refundFn(ctx, cmd)
}

func (m *mockPaymentService) Void(ctx context.Context, cmd services.VoidCommand) (*gateway.Response, error) {
	return m.voidFn(ctx, cmd)
}

func (m *mockPaymentService) Verify(ctx context.Context, cmd services.VerifyCommand) (*gateway.Response, error) {
	return m.verifyFn(ctx, cmd)
}

func (m *mockPaymentService) History(ctx context.Context, orderID string) ([]*journal.Entry, error) {
	return m.historyFn(ctx, orderID)
}

func (m *mockPaymentService) Info() gateway.Info {
	return gateway.Info{DisplayName: gateway.DisplayName, DefaultCurrency: gateway.DefaultCurrency}
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func serve(t *testing.T, h *Handlers, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	doc, err := api.Load(context.Background())
	require.NoError(t, err)
	router, err := api.NewRouter(doc)
	require.NoError(t, err)

	badRequest := func(w http.ResponseWriter, r *http.Request, err error) {
		rest.WriteValidationError(w, err.Error())
	}
	strictHandler := api.NewStrictHandlerWithOptions(h, []api.StrictMiddlewareFunc{ClientIP}, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc: badRequest,
		ResponseErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			rest.WriteError(w, err)
		},
	})
	mux := api.HandlerWithOptions(strictHandler, api.StdHTTPServerOptions{ErrorHandlerFunc: badRequest})
	handler := middleware.ValidateRequests(router, h.logger)(mux)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), rr.Body.String())
	return rr, env
}

const purchaseBody = `{
	"order_id": "order-1",
	"amount": 10.005,
	"card": {"name": "Longbob Longsen", "number": "4030000010001234", "month": 9, "year": 2030, "verification_value": "123"},
	"billing_address": {"name": "Johnny Smith", "address1": "456 My Street", "city": "Ottawa", "state": "ON", "country": "CA", "zip": "K1C2N6"}
}`

func TestHandlePurchase_Approved(t *testing.T) {
	svc := &mockPaymentService{
		purchaseFn: func(ctx context.Context, cmd services.PurchaseCommand) (*gateway.Response, error) {
			assert.Equal(t, int64(1001), cmd.Amount)
			assert.Equal(t, "order-1", cmd.Options.OrderID)
			assert.Equal(t, "192.0.2.1", cmd.Options.IP, "falls back to the remote address")
			require.NotNil(t, cmd.Card)
			assert.Equal(t, 2030, cmd.Card.Year)
			return &gateway.Response{
				Success:  true,
				Message:  "Approved",
				Metadata: gateway.Metadata{Authorization: "10000021"},
			}, nil
		},
	}

	rr, env := serve(t, NewHandlers(svc, nil, nil), http.MethodPost, "/v1/purchases", purchaseBody)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, env.Success)

	var resp api.GatewayResult
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Metadata.Authorization)
	assert.Equal(t, "10000021", *resp.Metadata.Authorization)
}

func TestHandleAuthorize_DeclineIsOK(t *testing.T) {
	svc := &mockPaymentService{
		authorizeFn: func(ctx context.Context, cmd services.AuthorizeCommand) (*gateway.Response, error) {
			return &gateway.Response{
				Success:  false,
				Message:  "DECLINE",
				Metadata: gateway.Metadata{ErrorCode: "card_declined"},
			}, nil
		},
	}

	rr, env := serve(t, NewHandlers(svc, nil, nil), http.MethodPost, "/v1/authorizations", purchaseBody)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), `"success":false`)
	assert.Contains(t, string(env.Data), `"error_code":"card_declined"`)
}

func TestHandlePurchase_InvalidBody(t *testing.T) {
	h := NewHandlers(&mockPaymentService{}, nil, nil)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"order_id":`},
		{"missing order id", `{"amount": 10}`},
		{"negative amount", `{"order_id": "1", "amount": -5}`},
		{"amount as string", `{"order_id": "1", "amount": "10.00"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, env := serve(t, h, http.MethodPost, "/v1/purchases", tt.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
		})
	}
}

func TestHandlePurchase_ExponentAmount(t *testing.T) {
	svc := &mockPaymentService{
		purchaseFn: func(ctx context.Context, cmd services.PurchaseCommand) (*gateway.Response, error) {
			assert.Equal(t, int64(1050), cmd.Amount)
			return &gateway.Response{Success: true}, nil
		},
	}
	body := strings.Replace(purchaseBody, `"amount": 10.005`, `"amount": 1.05e1`, 1)

	rr, env := serve(t, NewHandlers(svc, nil, nil), http.MethodPost, "/v1/purchases", body)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, env.Success)
}

func TestHandlePurchase_AmountOutOfRange(t *testing.T) {
	body := strings.Replace(purchaseBody, `"amount": 10.005`, `"amount": 1e30`, 1)

	rr, env := serve(t, NewHandlers(&mockPaymentService{}, nil, nil), http.MethodPost, "/v1/purchases", body)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, rest.CodeValidation, env.Error.Code)
	assert.Contains(t, env.Error.Message, "out of range")
}

func TestHandleCapture_PassesAuthorizationAndOrder(t *testing.T) {
	svc := &mockPaymentService{
		captureFn: func(ctx context.Context, cmd services.CaptureCommand) (*gateway.Response, error) {
			assert.Equal(t, int64(500), cmd.Amount)
			assert.Equal(t, "10000021", cmd.Authorization)
			assert.Equal(t, "order-1", cmd.Options.OrderID)
			return &gateway.Response{Success: true}, nil
		},
	}

	rr, _ := serve(t, NewHandlers(svc, nil, nil), http.MethodPost, "/v1/captures",
		`{"order_id": "order-1", "amount": 5.00, "authorization": "10000021"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHandleRefund_TransportErrorIsBadGateway(t *testing.T) {
	svc := &mockPaymentService{
		refundFn: func(ctx context.Context, cmd services.RefundCommand) (*gateway.Response, error) {
			return nil, application.NewProcessorUnavailableError(&bambora.TransportError{Op: "return", StatusCode: 503})
		},
	}

	rr, env := serve(t, NewHandlers(svc, nil, nil), http.MethodPost, "/v1/refunds",
		`{"order_id": "order-1", "amount": 5}`)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, application.ErrCodeProcessorUnavailable, env.Error.Code)
}

func TestHandleVoid_GatewayValidationError(t *testing.T) {
	svc := &mockPaymentService{
		voidFn: func(ctx context.Context, cmd services.VoidCommand) (*gateway.Response, error) {
			return nil, application.NewInvalidInputError(gateway.NewMissingRequiredFieldError("order_id"))
		},
	}

	rr, env := serve(t, NewHandlers(svc, nil, nil), http.MethodPost, "/v1/voids",
		`{"order_id": "order-1"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, gateway.MISSING_REQUIRED_FIELD, env.Error.Code)
}

func TestHandleVerify(t *testing.T) {
	svc := &mockPaymentService{
		verifyFn: func(ctx context.Context, cmd services.VerifyCommand) (*gateway.Response, error) {
			assert.Equal(t, "10.1.1.1", cmd.Options.IP)
			require.NotNil(t, cmd.Options.BillingAddress)
			return &gateway.Response{Success: true, Metadata: gateway.Metadata{Authorization: "10000040"}}, nil
		},
	}

	rr, env := serve(t, NewHandlers(svc, nil, nil), http.MethodPost, "/v1/verifications",
		`{"order_id": "order-1", "ip": "10.1.1.1", "card": {"name": "A", "number": "4030000010001234", "month": 1, "year": 2030}, "billing_address": {"name": "A"}}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, string(env.Data), "10000040")
}

func TestHandleOrderTransactions(t *testing.T) {
	id := uuid.New()
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc := &mockPaymentService{
		historyFn: func(ctx context.Context, orderID string) ([]*journal.Entry, error) {
			assert.Equal(t, "order-1", orderID)
			return []*journal.Entry{{
				ID:            id,
				OrderID:       orderID,
				Operation:     "purchase",
				Amount:        1000,
				Success:       true,
				Authorization: "10000021",
				Raw:           []byte(`{"id":"10000021"}`),
				CreatedAt:     created,
			}}, nil
		},
	}

	rr, env := serve(t, NewHandlers(svc, nil, nil), http.MethodGet, "/v1/orders/order-1/transactions", "")

	assert.Equal(t, http.StatusOK, rr.Code)

	var txs []api.Transaction
	require.NoError(t, json.Unmarshal(env.Data, &txs))
	require.Len(t, txs, 1)
	assert.Equal(t, id, txs[0].Id)
	assert.Equal(t, int64(1000), txs[0].Amount)
	require.NotNil(t, txs[0].Raw)
	assert.Equal(t, map[string]interface{}{"id": "10000021"}, *txs[0].Raw)
	assert.True(t, created.Equal(txs[0].CreatedAt))
	assert.Contains(t, string(env.Data), `"created_at":"2026-01-02T03:04:05Z"`)
}

func TestHandleOrderTransactions_JournalDisabled(t *testing.T) {
	svc := &mockPaymentService{
		historyFn: func(ctx context.Context, orderID string) ([]*journal.Entry, error) {
			return nil, application.NewJournalDisabledError()
		},
	}

	rr, env := serve(t, NewHandlers(svc, nil, nil), http.MethodGet, "/v1/orders/order-1/transactions", "")

	assert.Equal(t, http.StatusNotImplemented, rr.Code)
	assert.Equal(t, application.ErrCodeJournalDisabled, env.Error.Code)
}

func TestHandleGatewayInfo(t *testing.T) {
	rr, env := serve(t, NewHandlers(&mockPaymentService{}, nil, nil), http.MethodGet, "/v1/gateway", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, string(env.Data), `"display_name":"Bambora"`)
}

func TestHandleHealth(t *testing.T) {
	t.Run("no database", func(t *testing.T) {
		rr, _ := serve(t, NewHandlers(&mockPaymentService{}, nil, nil), http.MethodGet, "/healthz", "")
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("database down", func(t *testing.T) {
		down := pingerFunc(func(context.Context) error { return errors.New("dial tcp: refused") })
		rr, env := serve(t, NewHandlers(&mockPaymentService{}, down, nil), http.MethodGet, "/healthz", "")
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Equal(t, "UNHEALTHY", env.Error.Code)
	})
}

func TestClientIP(t *testing.T) {
	var seen string
	next := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		seen = clientIP(ctx, nil)
		return nil, nil
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/purchases", nil)
	req.RemoteAddr = "198.51.100.7:5123"
	_, err := ClientIP(next, "Purchase")(req.Context(), httptest.NewRecorder(), req, nil)

	require.NoError(t, err)
	assert.Equal(t, "198.51.100.7", seen)

	given := "10.1.1.1"
	assert.Equal(t, given, clientIP(context.Background(), &given))
}
