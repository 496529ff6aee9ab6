package airquality

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Sentinel errors.
var (
	ErrInvalidQuery         = errors.New("invalid query")
	ErrInvalidCoordinates   = errors.New("invalid coordinates")
	ErrInvalidThreshold     = errors.New("threshold must be between 0 and 500")
	ErrUnsupportedPollutant = errors.New("unsupported pollutant")
	ErrNoStationsInRange    = errors.New("no stations within range")
	ErrInsufficientData     = errors.New("insufficient data for interpolation")
)

// ErrorKind classifies an upstream failure.
type ErrorKind string

const (
	// KindConfig is a missing or malformed credential. Never retried.
	KindConfig ErrorKind = "config"
	// KindTimeout means the request exceeded its bound.
	KindTimeout ErrorKind = "timeout"
	// KindTransport is a connectivity failure.
	KindTransport ErrorKind = "transport"
	// KindUpstreamStatus is a well-formed response reporting failure.
	KindUpstreamStatus ErrorKind = "upstream_status"
	// KindEmptyResult means a search or record list had no usable items.
	KindEmptyResult ErrorKind = "empty_result"
)

// ProviderError is an upstream failure with its classification.
type ProviderError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *ProviderError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// NewProviderError builds a ProviderError.
func NewProviderError(kind ErrorKind, op string, err error) *ProviderError {
	return &ProviderError{Kind: kind, Op: op, Err: err}
}

// KindOf classifies err. Errors that are not already a ProviderError are
// mapped to timeout or transport.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}

	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	return KindTransport
}
