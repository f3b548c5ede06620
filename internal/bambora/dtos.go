package bambora

// PaymentMethodCard is the only payment method the gateway sends.
const PaymentMethodCard = "card"

// PaymentRequest is the body posted to every payments endpoint. Capture,
// refund and void only populate OrderNumber and, where relevant, Amount.
type PaymentRequest struct {
	OrderNumber   string   `json:"order_number,omitempty"`
	Amount        int64    `json:"amount,omitempty"`
	PaymentMethod string   `json:"payment_method,omitempty"`
	CustomerIP    string   `json:"customer_ip,omitempty"`
	Complete      *bool    `json:"complete,omitempty"`
	Card          *Card    `json:"card,omitempty"`
	Billing       *Address `json:"billing,omitempty"`
	Shipping      *Address `json:"shipping,omitempty"`
}

type Card struct {
	Name        string `json:"name"`
	Number      string `json:"number"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	CVD         string `json:"cvd,omitempty"`
}

type Address struct {
	Name         string `json:"name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	Province     string `json:"province"`
	Country      string `json:"country"`
	PostalCode   string `json:"postal_code"`
}

// SuccessResult is the decoded body of an approved transaction.
type SuccessResult struct {
	ID            string `json:"id"`
	Approved      string `json:"approved"`
	MessageID     string `json:"message_id"`
	Message       string `json:"message"`
	AuthCode      string `json:"auth_code"`
	Created       string `json:"created"`
	OrderNumber   string `json:"order_number"`
	Type          string `json:"type"`
	PaymentMethod string `json:"payment_method"`
}

// ErrorResult is the decoded body of a declined or rejected transaction.
type ErrorResult struct {
	Code      string        `json:"code"`
	Category  int           `json:"category"`
	Message   string        `json:"message"`
	Reference string        `json:"reference"`
	Details   []ErrorDetail `json:"details,omitempty"`
}

type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// errorEnvelope accepts the numeric code the API sends as well as a string.
type errorEnvelope struct {
	Code      jsonCode      `json:"code"`
	Category  int           `json:"category"`
	Message   string        `json:"message"`
	Reference string        `json:"reference"`
	Details   []ErrorDetail `json:"details"`
}
