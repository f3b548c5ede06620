package services

import (
	"context"

	"github.com/DanielPopoola/bambora-gateway/internal/application"
	"github.com/DanielPopoola/bambora-gateway/internal/gateway"
	"github.com/DanielPopoola/bambora-gateway/internal/journal"
)

// History returns the recorded responses of an order, newest first.
func (s *PaymentService) History(ctx context.Context, orderID string) ([]*journal.Entry, error) {
	if orderID == "" {
		return nil, application.NewInvalidInputError(gateway.NewMissingRequiredFieldError("order_id"))
	}

	if !s.journalEnabled {
		return nil, application.NewJournalDisabledError()
	}

	entries, err := s.journal.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, application.NewInternalError(err)
	}

	return entries, nil
}
