package httpapi

import (
	"context"

	"github.com/Gedeon250/football-api-app/internal/platform/logging"
)

// Request ids live in the logging context so records from usecases and the
// upstream client carry the same request_id as the access log.
func withRequestID(ctx context.Context, id string) context.Context {
	return logging.WithRequestID(ctx, id)
}

func requestIDFromContext(ctx context.Context) string {
	return logging.RequestID(ctx)
}
