package services

import "github.com/DanielPopoola/bambora-gateway/internal/gateway"

type PurchaseCommand struct {
	Amount  int64
	Card    *gateway.CreditCard
	Options gateway.Options
}

type AuthorizeCommand struct {
	Amount  int64
	Card    *gateway.CreditCard
	Options gateway.Options
}

type CaptureCommand struct {
	Amount        int64
	Authorization string
	Options       gateway.Options
}

type RefundCommand struct {
	Amount        int64
	Authorization string
	Options       gateway.Options
}

type VoidCommand struct {
	Authorization string
	Options       gateway.Options
}

type VerifyCommand struct {
	Card    *gateway.CreditCard
	Options gateway.Options
}
