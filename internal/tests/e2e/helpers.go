package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/DanielPopoola/bambora-gateway/internal/tests/e2e/testdata"
)

// fakeSandbox mimics the processor endpoints the gateway calls.
type fakeSandbox struct {
	nextID   atomic.Int64
	mu       sync.Mutex
	requests []sandboxRequest
	approved map[string]bool
}

type sandboxRequest struct {
	Path string
	Body map[string]any
}

func newFakeSandbox() *fakeSandbox {
	s := &fakeSandbox{approved: map[string]bool{}}
	s.nextID.Store(10000000)
	for _, c := range []testdata.TestCard{testdata.VisaApproved, testdata.VisaDeclined, testdata.MasterCardApproved, testdata.AmexDeclined} {
		s.approved[c.Number] = c.Approved
	}
	return s
}

func (s *fakeSandbox) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	_ = json.NewDecoder(r.Body).Decode(&body)

	s.mu.Lock()
	s.requests = append(s.requests, sandboxRequest{Path: r.URL.Path, Body: body})
	s.mu.Unlock()

	if card, ok := body["card"].(map[string]any); ok {
		number, _ := card["number"].(string)
		if number == testdata.Unavailable {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = io.WriteString(w, "<html>maintenance</html>")
			return
		}
		if !s.approved[number] {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusPaymentRequired)
			_, _ = io.WriteString(w, `{"code":217,"category":1,"message":"DECLINE","reference":"","details":[]}`)
			return
		}
	}

	id := strconv.FormatInt(s.nextID.Add(1), 10)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":           id,
		"approved":     "1",
		"message_id":   "1",
		"message":      "Approved",
		"auth_code":    "TEST",
		"order_number": body["order_number"],
		"type":         "P",
	})
}

func (s *fakeSandbox) lastRequest() sandboxRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[len(s.requests)-1]
}

func (s *fakeSandbox) requestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// TestClient wraps HTTP calls to the gateway
type TestClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type GatewayResponse struct {
	Success  bool           `json:"success"`
	Message  string         `json:"message"`
	Raw      map[string]any `json:"raw"`
	Metadata struct {
		Authorization string `json:"authorization"`
		ErrorCode     string `json:"error_code"`
	} `json:"metadata"`
}

func (c *TestClient) Post(t *testing.T, path string, payload any) (int, Envelope) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	httpReq, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	require.NoError(t, err)
	httpReq.Header.Set("Content-Type", "application/json")

	return c.do(t, httpReq)
}

func (c *TestClient) Get(t *testing.T, path string) (int, Envelope) {
	t.Helper()
	httpReq, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	require.NoError(t, err)
	return c.do(t, httpReq)
}

func (c *TestClient) do(t *testing.T, req *http.Request) (int, Envelope) {
	t.Helper()
	resp, err := c.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(bodyBytes, &env), fmt.Sprintf("status %d: %s", resp.StatusCode, bodyBytes))
	return resp.StatusCode, env
}

func (c *TestClient) Payment(t *testing.T, path string, payload any) (int, GatewayResponse) {
	t.Helper()
	status, env := c.Post(t, path, payload)
	var resp GatewayResponse
	if env.Success {
		require.NoError(t, json.Unmarshal(env.Data, &resp))
	}
	return status, resp
}

func cardPayload(card testdata.TestCard) map[string]any {
	return map[string]any{
		"name":               "Longbob Longsen",
		"number":             card.Number,
		"month":              card.Month,
		"year":               card.Year,
		"verification_value": card.CVD,
	}
}

func billingPayload() map[string]any {
	return map[string]any{
		"name":     "Johnny Smith",
		"address1": "456 My Street",
		"address2": "Apt 1",
		"city":     "Ottawa",
		"state":    "ON",
		"country":  "CA",
		"zip":      "K1C2N6",
	}
}
