// Package bambora is a minimal client for the Bambora payments API. It owns
// transport, request signing and response classification; callers only see
// PaymentRequest in and Result out.
package bambora

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.na.bambora.com"
	defaultTimeout = 30 * time.Second
	maxBodyBytes   = 1 << 20
)

type Config struct {
	BaseURL        string
	MerchantID     string
	PaymentsAPIKey string
	Timeout        time.Duration
}

type HTTPClient struct {
	baseURL    string
	passcode   string
	httpClient *http.Client
}

func NewClient(cfg Config) *HTTPClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		passcode: Passcode(cfg.MerchantID, cfg.PaymentsAPIKey),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Passcode builds the value of the Authorization header.
func Passcode(merchantID, apiKey string) string {
	token := base64.StdEncoding.EncodeToString([]byte(merchantID + ":" + apiKey))
	return "Passcode " + token
}

// Create runs a purchase: authorize and capture in one step.
func (c *HTTPClient) Create(ctx context.Context, req PaymentRequest) (Result, error) {
	req.Complete = boolPtr(true)
	return c.sendRequest(ctx, "create", "/v1/payments", req)
}

// Preauth places a hold without capturing.
func (c *HTTPClient) Preauth(ctx context.Context, req PaymentRequest) (Result, error) {
	req.Complete = boolPtr(false)
	return c.sendRequest(ctx, "preauth", "/v1/payments", req)
}

func (c *HTTPClient) Complete(ctx context.Context, req PaymentRequest) (Result, error) {
	return c.sendRequest(ctx, "complete", "/v1/payments/completions", req)
}

func (c *HTTPClient) Return(ctx context.Context, req PaymentRequest) (Result, error) {
	return c.sendRequest(ctx, "return", "/v1/payments/returns", req)
}

func (c *HTTPClient) Void(ctx context.Context, req PaymentRequest) (Result, error) {
	return c.sendRequest(ctx, "void", "/v1/payments/voids", req)
}

func (c *HTTPClient) sendRequest(ctx context.Context, op, path string, reqBody PaymentRequest) (Result, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return Result{}, fmt.Errorf("error marshalling json: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonData))
	if err != nil {
		return Result{}, fmt.Errorf("error creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", c.passcode)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Result{}, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Result{}, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return decodeSuccess(body)
	}

	if result, ok := decodeError(body); ok {
		return result, nil
	}

	return Result{}, &TransportError{
		Op:         op,
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}
}

func boolPtr(b bool) *bool {
	return &b
}
