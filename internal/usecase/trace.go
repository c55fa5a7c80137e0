package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("github.com/riskibarqy/matchday-standings/internal/usecase")

// startUsecaseSpan opens a child span only when the caller is already traced.
// Untraced calls get the context's non-recording span back.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if strings.TrimSpace(name) == "" || !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, trace.SpanFromContext(ctx)
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// scopeAttributes tags a span with the non-empty parts of a standings scope.
func scopeAttributes(competitionID, seasonID, teamID string) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, 3)
	if v := strings.TrimSpace(competitionID); v != "" {
		attrs = append(attrs, attribute.String("standings.competition_id", v))
	}
	if v := strings.TrimSpace(seasonID); v != "" {
		attrs = append(attrs, attribute.String("standings.season_id", v))
	}
	if v := strings.TrimSpace(teamID); v != "" {
		attrs = append(attrs, attribute.String("standings.team_id", v))
	}
	return attrs
}
