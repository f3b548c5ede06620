package gateway

import (
	"errors"
	"fmt"
)

const (
	MISSING_REQUIRED_FIELD = "MISSING_REQUIRED_FIELD"
	INVALID_FIELD          = "INVALID_FIELD"
	INVALID_AMOUNT         = "INVALID_AMOUNT"
)

// Error is returned for input the gateway rejects before contacting the processor.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

var ErrMissingCredentials = &Error{
	Code:    MISSING_REQUIRED_FIELD,
	Message: "merchant_id and payments_api_key are required",
}

func NewMissingRequiredFieldError(field string) *Error {
	return &Error{
		Code:    MISSING_REQUIRED_FIELD,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NewInvalidFieldError(field string, err error) *Error {
	return &Error{
		Code:    INVALID_FIELD,
		Message: fmt.Sprintf("%s is invalid", field),
		Err:     err,
	}
}

func NewInvalidAmountError(amount int64) *Error {
	return &Error{
		Code:    INVALID_AMOUNT,
		Message: fmt.Sprintf("amount must be positive, got %d", amount),
	}
}

func IsErrorCode(err error, code string) bool {
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr.Code == code
	}
	return false
}

// StandardErrorCode is the processor-independent vocabulary for decline reasons.
type StandardErrorCode string

const (
	IncorrectNumber    StandardErrorCode = "incorrect_number"
	InvalidNumber      StandardErrorCode = "invalid_number"
	InvalidExpiryDate  StandardErrorCode = "invalid_expiry_date"
	InvalidCVC         StandardErrorCode = "invalid_cvc"
	ExpiredCard        StandardErrorCode = "expired_card"
	IncorrectCVC       StandardErrorCode = "incorrect_cvc"
	IncorrectZip       StandardErrorCode = "incorrect_zip"
	IncorrectAddress   StandardErrorCode = "incorrect_address"
	IncorrectPIN       StandardErrorCode = "incorrect_pin"
	CardDeclined       StandardErrorCode = "card_declined"
	ProcessingError    StandardErrorCode = "processing_error"
	CallIssuer         StandardErrorCode = "call_issuer"
	PickupCard         StandardErrorCode = "pickup_card"
	ConfigError        StandardErrorCode = "config_error"
	TestModeLiveCard   StandardErrorCode = "test_mode_live_card"
	UnsupportedFeature StandardErrorCode = "unsupported_feature"
	InvalidAmount      StandardErrorCode = "invalid_amount"
)

var standardErrorCodeMapping = map[string]StandardErrorCode{
	"217": CardDeclined,
}

// MapErrorCode translates a processor error code. Unmapped codes pass through.
func MapErrorCode(code string) string {
	if std, ok := standardErrorCodeMapping[code]; ok {
		return string(std)
	}
	return code
}
