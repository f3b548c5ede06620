package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/DanielPopoola/bambora-gateway/internal/application"
	"github.com/DanielPopoola/bambora-gateway/internal/gateway"
	"github.com/DanielPopoola/bambora-gateway/internal/journal"
	"github.com/DanielPopoola/bambora-gateway/internal/observability/metrics"
)

const (
	OperationPurchase  = "purchase"
	OperationAuthorize = "authorize"
	OperationCapture   = "capture"
	OperationRefund    = "refund"
	OperationVoid      = "void"
	OperationVerify    = "verify"
)

// PaymentService runs gateway operations and records every normalized
// response. Declines are returned as responses, never as errors. A nil
// journal disables recording and history.
type PaymentService struct {
	gateway        application.Gateway
	journal        application.Journal
	journalEnabled bool
	metrics        *metrics.GatewayMetrics
	logger         *slog.Logger
}

func NewPaymentService(
	gw application.Gateway,
	j application.Journal,
	m *metrics.GatewayMetrics,
	logger *slog.Logger,
) *PaymentService {
	enabled := j != nil
	if !enabled {
		j = journal.NopRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PaymentService{
		gateway:        gw,
		journal:        j,
		journalEnabled: enabled,
		metrics:        m,
		logger:         logger,
	}
}

func (s *PaymentService) Purchase(ctx context.Context, cmd PurchaseCommand) (*gateway.Response, error) {
	return s.run(ctx, OperationPurchase, cmd.Amount, cmd.Options.OrderID, func() (*gateway.Response, error) {
		return s.gateway.Purchase(ctx, cmd.Amount, cmd.Card, cmd.Options)
	})
}

func (s *PaymentService) Authorize(ctx context.Context, cmd AuthorizeCommand) (*gateway.Response, error) {
	return s.run(ctx, OperationAuthorize, cmd.Amount, cmd.Options.OrderID, func() (*gateway.Response, error) {
		return s.gateway.Authorize(ctx, cmd.Amount, cmd.Card, cmd.Options)
	})
}

func (s *PaymentService) Capture(ctx context.Context, cmd CaptureCommand) (*gateway.Response, error) {
	return s.run(ctx, OperationCapture, cmd.Amount, cmd.Options.OrderID, func() (*gateway.Response, error) {
		return s.gateway.Capture(ctx, cmd.Amount, cmd.Authorization, cmd.Options)
	})
}

func (s *PaymentService) Refund(ctx context.Context, cmd RefundCommand) (*gateway.Response, error) {
	return s.run(ctx, OperationRefund, cmd.Amount, cmd.Options.OrderID, func() (*gateway.Response, error) {
		return s.gateway.Refund(ctx, cmd.Amount, cmd.Authorization, cmd.Options)
	})
}

func (s *PaymentService) Void(ctx context.Context, cmd VoidCommand) (*gateway.Response, error) {
	return s.run(ctx, OperationVoid, 0, cmd.Options.OrderID, func() (*gateway.Response, error) {
		return s.gateway.Void(ctx, cmd.Authorization, cmd.Options)
	})
}

func (s *PaymentService) Verify(ctx context.Context, cmd VerifyCommand) (*gateway.Response, error) {
	return s.run(ctx, OperationVerify, gateway.VerifyAmount, cmd.Options.OrderID, func() (*gateway.Response, error) {
		return s.gateway.Verify(ctx, cmd.Card, cmd.Options)
	})
}

func (s *PaymentService) Info() gateway.Info {
	return s.gateway.Info()
}

func (s *PaymentService) run(
	ctx context.Context,
	operation string,
	amount int64,
	orderID string,
	call func() (*gateway.Response, error),
) (*gateway.Response, error) {
	start := time.Now()

	resp, err := call()
	if err != nil {
		s.metrics.ObserveOperation(operation, metrics.OutcomeError, time.Since(start))
		s.logger.WarnContext(ctx, "gateway operation failed",
			"operation", operation,
			"order_id", orderID,
			"error_category", application.CategorizeError(err),
			"error", err,
		)
		return nil, toServiceError(err)
	}

	outcome := metrics.OutcomeApproved
	if !resp.Success {
		outcome = metrics.OutcomeDeclined
	}
	s.metrics.ObserveOperation(operation, outcome, time.Since(start))

	s.record(ctx, operation, amount, orderID, resp)

	return resp, nil
}

func (s *PaymentService) record(ctx context.Context, operation string, amount int64, orderID string, resp *gateway.Response) {
	raw, err := json.Marshal(resp.Raw)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to encode raw response for journal",
			"operation", operation,
			"order_id", orderID,
			"error", err,
		)
		raw = nil
	}

	entry := &journal.Entry{
		OrderID:       orderID,
		Operation:     operation,
		Amount:        amount,
		Success:       resp.Success,
		Message:       resp.Message,
		Authorization: resp.Authorization(),
		ErrorCode:     resp.ErrorCode(),
		Raw:           raw,
	}

	if err := s.journal.Record(ctx, entry); err != nil {
		s.metrics.IncJournalFailure()
		s.logger.ErrorContext(ctx, "failed to record transaction",
			"operation", operation,
			"order_id", orderID,
			"error", err,
		)
	}
}

func toServiceError(err error) error {
	var gwErr *gateway.Error
	switch {
	case errors.As(err, &gwErr):
		return application.NewInvalidInputError(err)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return application.NewTimeoutError(err)
	default:
		return application.NewProcessorUnavailableError(err)
	}
}
