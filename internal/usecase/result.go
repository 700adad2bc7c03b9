package usecase

import "time"

// FallbackReason explains why a provider operation served sample data.
type FallbackReason string

const (
	ReasonNone                FallbackReason = ""
	ReasonMissingCredential   FallbackReason = "missing_credential"
	ReasonUpstreamStatus      FallbackReason = "upstream_status"
	ReasonUpstreamUnreachable FallbackReason = "upstream_unreachable"
	ReasonMalformedPayload    FallbackReason = "malformed_payload"
	ReasonEmptyResult         FallbackReason = "empty_result"
	ReasonCircuitOpen         FallbackReason = "circuit_open"
)

const (
	SourceLive     = "live"
	SourceCache    = "cache"
	SourceFallback = "fallback"
)

// Result is returned by every provider operation. Items is never nil.
// Cause is the underlying error when Fallback is set, nil otherwise.
type Result[T any] struct {
	Items     []T
	Fallback  bool
	Reason    FallbackReason
	Cause     error
	Cached    bool
	FetchedAt time.Time
}

func (r Result[T]) Source() string {
	switch {
	case r.Fallback:
		return SourceFallback
	case r.Cached:
		return SourceCache
	default:
		return SourceLive
	}
}
