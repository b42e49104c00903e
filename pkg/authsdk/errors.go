package authsdk

import (
	"errors"
	"fmt"
	"net/http"
)

// AccountError is a non-2xx response from the service.
type AccountError struct {
	StatusCode int

	// Msg is the localized message from the response body, or the raw body
	// when it was not JSON.
	Msg string

	// Type mirrors the "type" field of signin failures. Nil when absent.
	Type *bool
}

func (e *AccountError) Error() string {
	return fmt.Sprintf("accounts: %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Msg)
}

// IsUnprocessable reports whether err is a 422 from the service, which is
// how every validation, conflict and credential failure is answered.
func IsUnprocessable(err error) bool {
	var aerr *AccountError
	return errors.As(err, &aerr) && aerr.StatusCode == http.StatusUnprocessableEntity
}
