package worldpay_cg_hosted

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNotSet is matched by every NotSetError.
var ErrNotSet = errors.New("worldpay_cg_hosted: parameter not set")

// HTTPError is returned when Worldpay responds with a non-2xx HTTP status.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       []byte
	Headers    http.Header
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("worldpay_cg_hosted http error %d (%s): %s", e.StatusCode, e.Status, e.Body)
}

// UnsupportedParameterError is returned when a key outside a container's
// declared whitelist is set. Keys lists every offending key.
type UnsupportedParameterError struct {
	Keys []string
}

func (e *UnsupportedParameterError) Error() string {
	return fmt.Sprintf("worldpay_cg_hosted: unsupported parameter(s): %s", strings.Join(e.Keys, ", "))
}

// NotSetError is returned when a guarded field is read before being set.
// It signals a caller bug rather than bad input.
type NotSetError struct {
	Key string
}

func (e *NotSetError) Error() string {
	return fmt.Sprintf("worldpay_cg_hosted: property %q was not set before access", e.Key)
}

func (e *NotSetError) Is(target error) bool {
	return target == ErrNotSet
}

// ValidationError reports an outbound value that fails a precondition.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "worldpay_cg_hosted: " + e.Message
	}
	return fmt.Sprintf("worldpay_cg_hosted: %s: %s", e.Field, e.Message)
}

// MalformedNotificationError is returned when an inbound notification
// payload cannot be read as a Worldpay notify document.
type MalformedNotificationError struct {
	Reason string
	Err    error
}

func (e *MalformedNotificationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("worldpay_cg_hosted: malformed notification: %s: %v", e.Reason, e.Err)
	}
	return "worldpay_cg_hosted: malformed notification: " + e.Reason
}

func (e *MalformedNotificationError) Unwrap() error {
	return e.Err
}
