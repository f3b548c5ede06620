package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/DanielPopoola/bambora-gateway/internal/api"
	"github.com/DanielPopoola/bambora-gateway/internal/interfaces/rest"
)

func (h *Handlers) OrderTransactions(
	ctx context.Context,
	request api.OrderTransactionsRequestObject,
) (api.OrderTransactionsResponseObject, error) {

	entries, err := h.service.History(ctx, request.OrderId)
	if err != nil {
		return mapHistoryErrorToAPIResponse(err)
	}

	txs, err := rest.ToAPITransactions(entries)
	if err != nil {
		return mapHistoryErrorToAPIResponse(err)
	}

	return api.OrderTransactions200JSONResponse{
		Success: true,
		Data:    txs,
	}, nil
}

func (h *Handlers) GatewayInfo(
	ctx context.Context,
	request api.GatewayInfoRequestObject,
) (api.GatewayInfoResponseObject, error) {
	return api.GatewayInfo200JSONResponse{
		Success: true,
		Data:    rest.ToAPIInfo(h.service.Info()),
	}, nil
}

func (h *Handlers) Health(
	ctx context.Context,
	request api.HealthRequestObject,
) (api.HealthResponseObject, error) {
	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()

		if err := h.pinger.Ping(ctx); err != nil {
			h.logger.ErrorContext(ctx, "health check failed", "error", err)
			return api.Health503JSONResponse{
				Success: false,
				Error: api.ErrorDetail{
					Code:    "UNHEALTHY",
					Message: "database unreachable",
				},
			}, nil
		}
	}

	return api.Health200JSONResponse{
		Success: true,
		Data:    api.HealthStatus{Status: "ok"},
	}, nil
}

func mapHistoryErrorToAPIResponse(err error) (api.OrderTransactionsResponseObject, error) {
	statusCode, errorResponse := rest.BuildErrorResponse(err)

	switch statusCode {
	case http.StatusBadRequest:
		return api.OrderTransactions400JSONResponse(errorResponse), nil
	case http.StatusNotImplemented:
		return api.OrderTransactions501JSONResponse(errorResponse), nil
	default:
		return api.OrderTransactions500JSONResponse(errorResponse), nil
	}
}
