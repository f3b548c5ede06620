package handlers

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/DanielPopoola/bambora-gateway/internal/api"
	"github.com/DanielPopoola/bambora-gateway/internal/gateway"
)

type clientIPKey struct{}

// ClientIP is a strict middleware that remembers the caller's address so a
// payment without an explicit ip can fall back to it.
func ClientIP(f api.StrictHandlerFunc, _ string) api.StrictHandlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		return f(context.WithValue(ctx, clientIPKey{}, host), w, r, request)
	}
}

func clientIP(ctx context.Context, given *string) string {
	if given != nil && *given != "" {
		return *given
	}
	ip, _ := ctx.Value(clientIPKey{}).(string)
	return ip
}

func minorUnits(amount api.Amount) (int64, error) {
	units, err := gateway.ParseMinorUnits(amount.String())
	if err != nil {
		return 0, fmt.Errorf("amount: %w", err)
	}
	return units, nil
}

func toCard(c api.CreditCard) *gateway.CreditCard {
	return &gateway.CreditCard{
		Name:              c.Name,
		Number:            c.Number,
		Month:             c.Month,
		Year:              c.Year,
		VerificationValue: deref(c.VerificationValue),
	}
}

func toAddress(a *api.Address) *gateway.Address {
	if a == nil {
		return nil
	}
	return &gateway.Address{
		Name:     deref(a.Name),
		Address1: deref(a.Address1),
		Address2: deref(a.Address2),
		City:     deref(a.City),
		State:    deref(a.State),
		Country:  deref(a.Country),
		Zip:      deref(a.Zip),
	}
}

func cardOptions(ctx context.Context, req *api.CardPaymentRequest) gateway.Options {
	return gateway.Options{
		OrderID:         req.OrderId,
		IP:              clientIP(ctx, req.Ip),
		Description:     deref(req.Description),
		BillingAddress:  toAddress(&req.BillingAddress),
		ShippingAddress: toAddress(req.ShippingAddress),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
