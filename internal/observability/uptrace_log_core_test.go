package observability

import (
	"testing"
	"time"

	"github.com/riskibarqy/matchday-standings/internal/platform/logging"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap/zapcore"
)

func TestShouldSkipUptraceLog(t *testing.T) {
	if !shouldSkipUptraceLog("http request", map[string]any{"path": "/healthz"}) {
		t.Fatalf("expected health check log to be skipped")
	}
	if shouldSkipUptraceLog("http request", map[string]any{"path": "/v1/competitions"}) {
		t.Fatalf("did not expect non-health log to be skipped")
	}
	if shouldSkipUptraceLog("league table built", map[string]any{"path": "/healthz"}) {
		t.Fatalf("did not expect non-request event to be skipped")
	}
}

func TestBuildOTelLogAttributes(t *testing.T) {
	attrs := buildOTelLogAttributes(map[string]any{
		"competition_id": "eng-premier-league",
		"teams":          int64(20),
		"payload":        nil,
		"trace_id":       "4bf92f3577b34da6a3ce929d0e0e4736",
	})
	if len(attrs) != 3 {
		t.Fatalf("expected 3 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "competition_id" || attrs[0].Value.AsString() != "eng-premier-league" {
		t.Fatalf("unexpected competition_id attribute: %+v", attrs[0])
	}
	if attrs[1].Key != "payload" || attrs[1].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("unexpected payload attribute: %+v", attrs[1])
	}
	if attrs[2].Key != "teams" || attrs[2].Value.AsInt64() != 20 {
		t.Fatalf("unexpected teams attribute: %+v", attrs[2])
	}
}

func TestToOTelLogValue_Map(t *testing.T) {
	v := toOTelLogValue(map[string]any{
		"points": 9,
		"home":   true,
	}, 0)
	if v.Kind() != otellog.KindMap {
		t.Fatalf("expected map value, got %s", v.Kind())
	}
	items := v.AsMap()
	if len(items) != 2 {
		t.Fatalf("expected 2 map items, got %d", len(items))
	}
}

func TestToOTelLogValue_Scalars(t *testing.T) {
	if got := toOTelLogValue(2*time.Second, 0); got.AsString() != "2s" {
		t.Fatalf("unexpected duration value: %s", got.AsString())
	}
	if got := toOTelLogValue([]any{"W", "D"}, 0); got.Kind() != otellog.KindSlice || len(got.AsSlice()) != 2 {
		t.Fatalf("unexpected slice value: %s", got.Kind())
	}
	if got := toOTelLogValue(uint64(1<<63), 0); got.Kind() != otellog.KindString {
		t.Fatalf("expected overflowing uint64 to render as string, got %s", got.Kind())
	}
}

func TestContextFromTraceFields(t *testing.T) {
	ctx := contextFromTraceFields(map[string]any{
		"trace_id": "4bf92f3577b34da6a3ce929d0e0e4736",
		"span_id":  "00f067aa0ba902b7",
	})
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		t.Fatalf("expected valid span context")
	}
	if spanCtx.TraceID().String() != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Fatalf("unexpected trace id: %s", spanCtx.TraceID())
	}

	if trace.SpanContextFromContext(contextFromTraceFields(map[string]any{"trace_id": "zz"})).IsValid() {
		t.Fatalf("expected invalid span context for malformed fields")
	}
}

func TestUptraceLogCore_LevelAndWith(t *testing.T) {
	core := newUptraceLogCore("test", logging.LevelWarn)
	if core.Enabled(logging.LevelInfo) {
		t.Fatalf("info should be below the core level")
	}
	if !core.Enabled(logging.LevelError) {
		t.Fatalf("error should be enabled")
	}

	child := core.With([]zapcore.Field{{Key: "service", Type: zapcore.StringType, String: "matchday"}})
	if child == core {
		t.Fatalf("expected With to return a new core")
	}

	entry := zapcore.Entry{Level: logging.LevelWarn, Message: "slow query", Time: time.Now()}
	if ce := child.Check(entry, nil); ce == nil {
		t.Fatalf("expected warn entry to be accepted")
	}
	if err := child.Write(entry, nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := child.Sync(); err != nil {
		t.Fatalf("sync: %v", err)
	}
}
