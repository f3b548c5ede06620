package handlers

import (
	"context"
	"net/http"

	"github.com/DanielPopoola/bambora-gateway/internal/api"
	"github.com/DanielPopoola/bambora-gateway/internal/application/services"
	"github.com/DanielPopoola/bambora-gateway/internal/gateway"
	"github.com/DanielPopoola/bambora-gateway/internal/interfaces/rest"
)

// Every processed payment answers 200, declines included; data.success
// carries the outcome.

func (h *Handlers) Purchase(
	ctx context.Context,
	request api.PurchaseRequestObject,
) (api.PurchaseResponseObject, error) {

	req := request.Body

	amount, err := minorUnits(req.Amount)
	if err != nil {
		return api.Purchase400JSONResponse(rest.ValidationErrorResponse(err.Error())), nil
	}

	resp, err := h.service.Purchase(ctx, services.PurchaseCommand{
		Amount:  amount,
		Card:    toCard(req.Card),
		Options: cardOptions(ctx, req),
	})
	if err != nil {
		return mapPurchaseErrorToAPIResponse(err)
	}

	return api.Purchase200JSONResponse(okEnvelope(resp)), nil
}

func (h *Handlers) Authorize(
	ctx context.Context,
	request api.AuthorizeRequestObject,
) (api.AuthorizeResponseObject, error) {

	req := request.Body

	amount, err := minorUnits(req.Amount)
	if err != nil {
		return api.Authorize400JSONResponse(rest.ValidationErrorResponse(err.Error())), nil
	}

	resp, err := h.service.Authorize(ctx, services.AuthorizeCommand{
		Amount:  amount,
		Card:    toCard(req.Card),
		Options: cardOptions(ctx, req),
	})
	if err != nil {
		return mapAuthorizeErrorToAPIResponse(err)
	}

	return api.Authorize200JSONResponse(okEnvelope(resp)), nil
}

func (h *Handlers) Capture(
	ctx context.Context,
	request api.CaptureRequestObject,
) (api.CaptureResponseObject, error) {

	req := request.Body

	amount, err := minorUnits(req.Amount)
	if err != nil {
		return api.Capture400JSONResponse(rest.ValidationErrorResponse(err.Error())), nil
	}

	resp, err := h.service.Capture(ctx, services.CaptureCommand{
		Amount:        amount,
		Authorization: deref(req.Authorization),
		Options:       gateway.Options{OrderID: req.OrderId},
	})
	if err != nil {
		return mapCaptureErrorToAPIResponse(err)
	}

	return api.Capture200JSONResponse(okEnvelope(resp)), nil
}

func (h *Handlers) Refund(
	ctx context.Context,
	request api.RefundRequestObject,
) (api.RefundResponseObject, error) {

	req := request.Body

	amount, err := minorUnits(req.Amount)
	if err != nil {
		return api.Refund400JSONResponse(rest.ValidationErrorResponse(err.Error())), nil
	}

	resp, err := h.service.Refund(ctx, services.RefundCommand{
		Amount:        amount,
		Authorization: deref(req.Authorization),
		Options:       gateway.Options{OrderID: req.OrderId},
	})
	if err != nil {
		return mapRefundErrorToAPIResponse(err)
	}

	return api.Refund200JSONResponse(okEnvelope(resp)), nil
}

func (h *Handlers) Void(
	ctx context.Context,
	request api.VoidRequestObject,
) (api.VoidResponseObject, error) {

	req := request.Body

	resp, err := h.service.Void(ctx, services.VoidCommand{
		Authorization: deref(req.Authorization),
		Options:       gateway.Options{OrderID: req.OrderId},
	})
	if err != nil {
		return mapVoidErrorToAPIResponse(err)
	}

	return api.Void200JSONResponse(okEnvelope(resp)), nil
}

// Verify checks a card with a small authorization that is voided straight
// away.
func (h *Handlers) Verify(
	ctx context.Context,
	request api.VerifyRequestObject,
) (api.VerifyResponseObject, error) {

	req := request.Body

	resp, err := h.service.Verify(ctx, services.VerifyCommand{
		Card: toCard(req.Card),
		Options: gateway.Options{
			OrderID:         req.OrderId,
			IP:              clientIP(ctx, req.Ip),
			BillingAddress:  toAddress(&req.BillingAddress),
			ShippingAddress: toAddress(req.ShippingAddress),
		},
	})
	if err != nil {
		return mapVerifyErrorToAPIResponse(err)
	}

	return api.Verify200JSONResponse(okEnvelope(resp)), nil
}

func okEnvelope(resp *gateway.Response) api.GatewayEnvelope {
	return api.GatewayEnvelope{
		Success: true,
		Data:    rest.ToAPIResult(resp),
	}
}

func mapPurchaseErrorToAPIResponse(err error) (api.PurchaseResponseObject, error) {
	statusCode, errorResponse := rest.BuildErrorResponse(err)

	switch statusCode {
	case http.StatusBadRequest:
		return api.Purchase400JSONResponse(errorResponse), nil
	case http.StatusBadGateway:
		return api.Purchase502JSONResponse(errorResponse), nil
	case http.StatusGatewayTimeout:
		return api.Purchase504JSONResponse(errorResponse), nil
	default:
		return api.Purchase500JSONResponse(errorResponse), nil
	}
}

func mapAuthorizeErrorToAPIResponse(err error) (api.AuthorizeResponseObject, error) {
	statusCode, errorResponse := rest.BuildErrorResponse(err)

	switch statusCode {
	case http.StatusBadRequest:
		return api.Authorize400JSONResponse(errorResponse), nil
	case http.StatusBadGateway:
		return api.Authorize502JSONResponse(errorResponse), nil
	case http.StatusGatewayTimeout:
		return api.Authorize504JSONResponse(errorResponse), nil
	default:
		return api.Authorize500JSONResponse(errorResponse), nil
	}
}

func mapCaptureErrorToAPIResponse(err error) (api.CaptureResponseObject, error) {
	statusCode, errorResponse := rest.BuildErrorResponse(err)

	switch statusCode {
	case http.StatusBadRequest:
		return api.Capture400JSONResponse(errorResponse), nil
	case http.StatusBadGateway:
		return api.Capture502JSONResponse(errorResponse), nil
	case http.StatusGatewayTimeout:
		return api.Capture504JSONResponse(errorResponse), nil
	default:
		return api.Capture500JSONResponse(errorResponse), nil
	}
}

func mapRefundErrorToAPIResponse(err error) (api.RefundResponseObject, error) {
	statusCode, errorResponse := rest.BuildErrorResponse(err)

	switch statusCode {
	case http.StatusBadRequest:
		return api.Refund400JSONResponse(errorResponse), nil
	case http.StatusBadGateway:
		return api.Refund502JSONResponse(errorResponse), nil
	case http.StatusGatewayTimeout:
		return api.Refund504JSONResponse(errorResponse), nil
	default:
		return api.Refund500JSONResponse(errorResponse), nil
	}
}

func mapVoidErrorToAPIResponse(err error) (api.VoidResponseObject, error) {
	statusCode, errorResponse := rest.BuildErrorResponse(err)

	switch statusCode {
	case http.StatusBadRequest:
		return api.Void400JSONResponse(errorResponse), nil
	case http.StatusBadGateway:
		return api.Void502JSONResponse(errorResponse), nil
	case http.StatusGatewayTimeout:
		return api.Void504JSONResponse(errorResponse), nil
	default:
		return api.Void500JSONResponse(errorResponse), nil
	}
}

func mapVerifyErrorToAPIResponse(err error) (api.VerifyResponseObject, error) {
	statusCode, errorResponse := rest.BuildErrorResponse(err)

	switch statusCode {
	case http.StatusBadRequest:
		return api.Verify400JSONResponse(errorResponse), nil
	case http.StatusBadGateway:
		return api.Verify502JSONResponse(errorResponse), nil
	case http.StatusGatewayTimeout:
		return api.Verify504JSONResponse(errorResponse), nil
	default:
		return api.Verify500JSONResponse(errorResponse), nil
	}
}
