package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("football-api-app/internal/usecase")
var usecaseNoopSpan = trace.SpanFromContext(context.Background())

func startUsecaseSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if strings.TrimSpace(name) == "" {
		return ctx, usecaseNoopSpan
	}
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name)
}

func annotateResultSpan(span trace.Span, fallback bool, reason FallbackReason, count int) {
	if !span.IsRecording() {
		return
	}
	span.SetAttributes(
		attribute.Bool("football.fallback", fallback),
		attribute.String("football.fallback_reason", string(reason)),
		attribute.Int("football.items", count),
	)
}
