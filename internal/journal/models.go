package journal

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one normalized gateway response as recorded in the journal.
type Entry struct {
	ID            uuid.UUID `json:"id"`
	OrderID       string    `json:"order_id"`
	Operation     string    `json:"operation"`
	Amount        int64     `json:"amount"`
	Success       bool      `json:"success"`
	Message       string    `json:"message"`
	Authorization string    `json:"authorization,omitempty"`
	ErrorCode     string    `json:"error_code,omitempty"`
	Raw           []byte    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}
