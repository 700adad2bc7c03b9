package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("football-api-app/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

var tracedSpanPrefixes = []string{"httpapi.Handler.", "httpapi.pages."}

// startSpan opens a child span only under an existing request span, and only
// for handler and page render names. Everything else gets the no-op span.
func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() || !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func shouldCreateHTTPAPISpan(name string) bool {
	for _, prefix := range tracedSpanPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func competitionAttr(name string) attribute.KeyValue {
	return attribute.String("football.competition", name)
}

func teamAttr(name string) attribute.KeyValue {
	return attribute.String("football.team", name)
}
