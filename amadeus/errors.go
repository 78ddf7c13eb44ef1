package amadeus

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNoToken = errors.New("amadeus: no access token")
var ErrNoOffers = errors.New("amadeus: no flight offers")

// TransportError is returned for any non-2xx response from the provider.
type TransportError struct {
	Status int
	Body   string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("amadeus: HTTP %v (%v)", e.Status, strings.TrimSpace(e.Body))
}

// ParseError is returned when a 2xx response is missing an expected field.
type ParseError struct {
	Field string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("amadeus: missing or invalid '%v' in response", e.Field)
}

type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("amadeus: authentication failed (%v)", e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}
