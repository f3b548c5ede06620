package bambora

import (
	"errors"
	"fmt"
)

// TransportError is returned when the processor answers with something that
// is neither an approval nor a processor error object.
type TransportError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("bambora %s: unexpected response (status: %d): %s", e.Op, e.StatusCode, e.Body)
}

func IsTransportError(err error) (*TransportError, bool) {
	var transportErr *TransportError
	ok := errors.As(err, &transportErr)
	return transportErr, ok
}
