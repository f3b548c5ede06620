package handlers

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/bambora-gateway/internal/api"
	"github.com/DanielPopoola/bambora-gateway/internal/application/services"
	"github.com/DanielPopoola/bambora-gateway/internal/gateway"
	"github.com/DanielPopoola/bambora-gateway/internal/journal"
)

type PaymentService interface {
	Purchase(ctx context.Context, cmd services.PurchaseCommand) (*gateway.Response, error)
	Authorize(ctx context.Context, cmd services.AuthorizeCommand) (*gateway.Response, error)
	Capture(ctx context.Context, cmd services.CaptureCommand) (*gateway.Response, error)
	Refund(ctx context.Context, cmd services.RefundCommand) (*gateway.Response, error)
	Void(ctx context.Context, cmd services.VoidCommand) (*gateway.Response, error)
	Verify(ctx context.Context, cmd services.VerifyCommand) (*gateway.Response, error)
	History(ctx context.Context, orderID string) ([]*journal.Entry, error)
	Info() gateway.Info
}

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handlers implements the OpenAPI StrictServerInterface
type Handlers struct {
	service PaymentService
	pinger  Pinger
	logger  *slog.Logger
}

// NewHandlers wires the payment operations. pinger may be nil when no
// database is configured.
func NewHandlers(service PaymentService, pinger Pinger, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		service: service,
		pinger:  pinger,
		logger:  logger,
	}
}

// Ensure Handlers implements StrictServerInterface
var _ api.StrictServerInterface = (*Handlers)(nil)
