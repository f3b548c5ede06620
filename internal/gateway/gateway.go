// Package gateway adapts the generic card operations (purchase, authorize,
// capture, refund, void, verify) onto the Bambora processor and normalizes
// what comes back.
package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator"

	"github.com/DanielPopoola/bambora-gateway/internal/bambora"
)

// VerifyAmount is the minor-unit amount authorized and then voided by Verify.
const VerifyAmount int64 = 100

type Client interface {
	Create(ctx context.Context, req bambora.PaymentRequest) (bambora.Result, error)
	Preauth(ctx context.Context, req bambora.PaymentRequest) (bambora.Result, error)
	Complete(ctx context.Context, req bambora.PaymentRequest) (bambora.Result, error)
	Return(ctx context.Context, req bambora.PaymentRequest) (bambora.Result, error)
	Void(ctx context.Context, req bambora.PaymentRequest) (bambora.Result, error)
}

type Config struct {
	MerchantID     string
	PaymentsAPIKey string
	BaseURL        string
	Timeout        time.Duration
}

type Gateway struct {
	merchantID string
	client     Client
	validate   *validator.Validate
	logger     *slog.Logger
}

func New(cfg Config, client Client, logger *slog.Logger) (*Gateway, error) {
	if cfg.MerchantID == "" || cfg.PaymentsAPIKey == "" {
		return nil, ErrMissingCredentials
	}
	if client == nil {
		return nil, NewMissingRequiredFieldError("client")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Gateway{
		merchantID: cfg.MerchantID,
		client:     client,
		validate:   newValidator(),
		logger:     logger.With("gateway", DisplayName),
	}, nil
}

// NewFromConfig builds a gateway backed by the HTTP processor client.
func NewFromConfig(cfg Config, logger *slog.Logger) (*Gateway, error) {
	if cfg.MerchantID == "" || cfg.PaymentsAPIKey == "" {
		return nil, ErrMissingCredentials
	}
	client := bambora.NewClient(bambora.Config{
		BaseURL:        cfg.BaseURL,
		MerchantID:     cfg.MerchantID,
		PaymentsAPIKey: cfg.PaymentsAPIKey,
		Timeout:        cfg.Timeout,
	})
	return New(cfg, client, logger)
}

func (g *Gateway) Purchase(ctx context.Context, amount int64, card *CreditCard, opts Options) (*Response, error) {
	if err := g.checkCardPayment(amount, card, opts); err != nil {
		return nil, err
	}
	return g.commit(ctx, "purchase", g.client.Create, buildPaymentRequest(amount, card, opts))
}

func (g *Gateway) Authorize(ctx context.Context, amount int64, card *CreditCard, opts Options) (*Response, error) {
	if err := g.checkCardPayment(amount, card, opts); err != nil {
		return nil, err
	}
	return g.commit(ctx, "authorize", g.client.Preauth, buildPaymentRequest(amount, card, opts))
}

func (g *Gateway) Capture(ctx context.Context, amount int64, authorization string, opts Options) (*Response, error) {
	if err := checkReference(amount, opts, true); err != nil {
		return nil, err
	}
	g.logger.DebugContext(ctx, "capture addressed by order number",
		"order_id", opts.OrderID,
		"authorization", authorization,
	)
	return g.commit(ctx, "capture", g.client.Complete, buildReferenceRequest(amount, opts))
}

func (g *Gateway) Refund(ctx context.Context, amount int64, authorization string, opts Options) (*Response, error) {
	if err := checkReference(amount, opts, true); err != nil {
		return nil, err
	}
	g.logger.DebugContext(ctx, "refund addressed by order number",
		"order_id", opts.OrderID,
		"authorization", authorization,
	)
	return g.commit(ctx, "refund", g.client.Return, buildReferenceRequest(amount, opts))
}

func (g *Gateway) Void(ctx context.Context, authorization string, opts Options) (*Response, error) {
	if err := checkReference(0, opts, false); err != nil {
		return nil, err
	}
	g.logger.DebugContext(ctx, "void addressed by order number",
		"order_id", opts.OrderID,
		"authorization", authorization,
	)
	return g.commit(ctx, "void", g.client.Void, buildReferenceRequest(0, opts))
}

// Verify authorizes VerifyAmount and voids it. The void outcome never
// changes the result; the authorize response is returned.
func (g *Gateway) Verify(ctx context.Context, card *CreditCard, opts Options) (*Response, error) {
	auth, err := g.Authorize(ctx, VerifyAmount, card, opts)
	if err != nil || !auth.Success {
		return auth, err
	}

	void, err := g.Void(ctx, auth.Authorization(), opts)
	switch {
	case err != nil:
		g.logger.WarnContext(ctx, "verify: void after authorize failed",
			"order_id", opts.OrderID,
			"authorization", auth.Authorization(),
			"error", err,
		)
	case !void.Success:
		g.logger.WarnContext(ctx, "verify: void after authorize declined",
			"order_id", opts.OrderID,
			"authorization", auth.Authorization(),
			"error_code", void.ErrorCode(),
		)
	}

	return auth, nil
}

func (g *Gateway) SupportsScrubbing() bool {
	return false
}

// Scrub returns the transcript unchanged.
func (g *Gateway) Scrub(transcript string) string {
	return transcript
}

func (g *Gateway) checkCardPayment(amount int64, card *CreditCard, opts Options) error {
	if amount <= 0 {
		return NewInvalidAmountError(amount)
	}
	return g.validateCardPayment(card, opts)
}

func checkReference(amount int64, opts Options, needsAmount bool) error {
	if opts.OrderID == "" {
		return NewMissingRequiredFieldError("order_id")
	}
	if needsAmount && amount <= 0 {
		return NewInvalidAmountError(amount)
	}
	return nil
}

type remoteCall func(ctx context.Context, req bambora.PaymentRequest) (bambora.Result, error)

func (g *Gateway) commit(ctx context.Context, op string, call remoteCall, req bambora.PaymentRequest) (*Response, error) {
	start := time.Now()

	result, err := call(ctx, req)
	if err != nil {
		g.logger.ErrorContext(ctx, "processor call failed",
			"operation", op,
			"order_id", req.OrderNumber,
			"error", err,
		)
		return nil, err
	}

	resp := normalize(result)
	if resp == nil {
		return nil, fmt.Errorf("bambora %s: result carries no variant", op)
	}

	g.logger.InfoContext(ctx, "processor call completed",
		"operation", op,
		"order_id", req.OrderNumber,
		"success", resp.Success,
		"authorization", resp.Authorization(),
		"error_code", resp.ErrorCode(),
		"duration", time.Since(start),
	)

	return resp, nil
}
