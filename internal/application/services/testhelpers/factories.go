package testhelpers

import (
	"github.com/google/uuid"

	"github.com/DanielPopoola/bambora-gateway/internal/bambora"
	"github.com/DanielPopoola/bambora-gateway/internal/gateway"
)

// NewOrderID returns a unique order number so tests never share journal rows.
func NewOrderID() string {
	return "order-" + uuid.New().String()
}

func DefaultCard() *gateway.CreditCard {
	return &gateway.CreditCard{
		Name:              "Longbob Longsen",
		Number:            "4030000010001234",
		Month:             9,
		Year:              2030,
		VerificationValue: "123",
	}
}

func DefaultOptions(orderID string) gateway.Options {
	return gateway.Options{
		OrderID: orderID,
		IP:      "127.0.0.1",
		BillingAddress: &gateway.Address{
			Name:     "Johnny Smith",
			Address1: "456 My Street",
			City:     "Ottawa",
			State:    "ON",
			Country:  "CA",
			Zip:      "K1C2N6",
		},
	}
}

func Approved(id string) bambora.Result {
	return bambora.NewSuccessResult(
		bambora.SuccessResult{ID: id, Approved: "1", Message: "Approved", AuthCode: "TEST"},
		map[string]any{"id": id, "approved": "1", "message": "Approved", "auth_code": "TEST"},
	)
}

func Declined(code string) bambora.Result {
	return bambora.NewErrorResult(
		bambora.ErrorResult{Code: code, Category: 1, Message: "DECLINE"},
		map[string]any{"code": code, "category": 1, "message": "DECLINE"},
	)
}
