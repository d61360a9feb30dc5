package idealpostcodes

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// LookupError is returned for any non-2xx response.
type LookupError struct {
	StatusCode int
	Status     string
	Code       int
	Message    string
}

func (e *LookupError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("ideal postcodes error [%d]: %s (status: %d)", e.Code, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("ideal postcodes returned status %d", e.StatusCode)
}

// StatusText returns the reason phrase of the HTTP response, e.g.
// "Payment Required".
func (e *LookupError) StatusText() string {
	text := strings.TrimSpace(strings.TrimPrefix(e.Status, strconv.Itoa(e.StatusCode)))
	if text == "" {
		return http.StatusText(e.StatusCode)
	}
	return text
}

func IsLookupError(err error) (*LookupError, bool) {
	var lookupErr *LookupError
	ok := errors.As(err, &lookupErr)
	return lookupErr, ok
}
