package application

import (
	"context"

	"github.com/DanielPopoola/bambora-gateway/internal/gateway"
	"github.com/DanielPopoola/bambora-gateway/internal/journal"
)

// Gateway is the port for the card processor adapter.
type Gateway interface {
	Purchase(ctx context.Context, amount int64, card *gateway.CreditCard, opts gateway.Options) (*gateway.Response, error)
	Authorize(ctx context.Context, amount int64, card *gateway.CreditCard, opts gateway.Options) (*gateway.Response, error)
	Capture(ctx context.Context, amount int64, authorization string, opts gateway.Options) (*gateway.Response, error)
	Refund(ctx context.Context, amount int64, authorization string, opts gateway.Options) (*gateway.Response, error)
	Void(ctx context.Context, authorization string, opts gateway.Options) (*gateway.Response, error)
	Verify(ctx context.Context, card *gateway.CreditCard, opts gateway.Options) (*gateway.Response, error)
	Info() gateway.Info
}

// Journal is the port for the transaction journal.
type Journal interface {
	Record(ctx context.Context, entry *journal.Entry) error
	FindByOrderID(ctx context.Context, orderID string) ([]*journal.Entry, error)
}
