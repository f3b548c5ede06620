package gateway

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator"

	"github.com/DanielPopoola/bambora-gateway/internal/bambora"
)

type CreditCard struct {
	Name              string `json:"name" validate:"required"`
	Number            string `json:"number" validate:"required,numeric"`
	Month             int    `json:"month" validate:"required,min=1,max=12"`
	Year              int    `json:"year" validate:"required,min=0"`
	VerificationValue string `json:"verification_value"`
}

type Address struct {
	Name     string `json:"name"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`
	Country  string `json:"country"`
	Zip      string `json:"zip"`
}

// Options carries the per-transaction details that are not card data.
type Options struct {
	OrderID         string   `json:"order_id"`
	IP              string   `json:"ip,omitempty"`
	Description     string   `json:"description,omitempty"`
	BillingAddress  *Address `json:"billing_address,omitempty"`
	ShippingAddress *Address `json:"shipping_address,omitempty"`
}

type cardPayment struct {
	Card           *CreditCard `json:"card" validate:"required"`
	BillingAddress *Address    `json:"billing_address" validate:"required"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (g *Gateway) validateCardPayment(card *CreditCard, opts Options) error {
	err := g.validate.Struct(cardPayment{Card: card, BillingAddress: opts.BillingAddress})
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return NewInvalidFieldError("card", err)
	}

	fe := errs[0]
	field := strings.TrimPrefix(fe.Namespace(), "cardPayment.")
	if fe.Tag() == "required" {
		return NewMissingRequiredFieldError(field)
	}
	return NewInvalidFieldError(field, fieldRuleError(fe))
}

func fieldRuleError(fe validator.FieldError) error {
	if fe.Param() != "" {
		return fmt.Errorf("failed %s=%s", fe.Tag(), fe.Param())
	}
	return fmt.Errorf("failed %s", fe.Tag())
}

func buildPaymentRequest(amount int64, card *CreditCard, opts Options) bambora.PaymentRequest {
	req := bambora.PaymentRequest{
		OrderNumber:   opts.OrderID,
		Amount:        amount,
		PaymentMethod: bambora.PaymentMethodCard,
		CustomerIP:    opts.IP,
		Card: &bambora.Card{
			Name:        card.Name,
			Number:      card.Number,
			ExpiryMonth: card.Month,
			ExpiryYear:  card.Year % 100,
			CVD:         card.VerificationValue,
		},
		Billing: toAddress(opts.BillingAddress),
	}
	if opts.ShippingAddress != nil {
		req.Shipping = toAddress(opts.ShippingAddress)
	}
	return req
}

// capture, refund and void address the transaction by order number.
func buildReferenceRequest(amount int64, opts Options) bambora.PaymentRequest {
	return bambora.PaymentRequest{
		OrderNumber: opts.OrderID,
		Amount:      amount,
	}
}

func toAddress(a *Address) *bambora.Address {
	if a == nil {
		return nil
	}
	return &bambora.Address{
		Name:         a.Name,
		AddressLine1: a.Address1,
		AddressLine2: a.Address2,
		City:         a.City,
		Province:     a.State,
		Country:      a.Country,
		PostalCode:   a.Zip,
	}
}
