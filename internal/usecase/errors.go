package usecase

import (
	"errors"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// Upstream failure marks. Data sources attach them with crerr.Mark so callers
// can classify with crerr.Is regardless of wrapping.
var (
	ErrUpstreamStatus    = crerr.New("upstream returned an error status")
	ErrUpstreamTransport = crerr.New("upstream transport failure")
	ErrUpstreamPayload   = crerr.New("upstream payload could not be decoded")
)
