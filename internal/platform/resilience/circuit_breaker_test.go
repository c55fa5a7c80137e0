package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestBreaker(threshold int, halfOpen int) (*Breaker, *time.Time, *[]State) {
	var transitions []State
	b := NewBreaker(BreakerConfig{
		Name:             "postgres",
		Enabled:          true,
		FailureThreshold: threshold,
		OpenTimeout:      5 * time.Second,
		HalfOpenMaxReq:   halfOpen,
	}, func(_ string, _, to State) {
		transitions = append(transitions, to)
	})

	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }
	return b, &now, &transitions
}

func TestBreaker_BasicTransitions(t *testing.T) {
	b, now, transitions := newTestBreaker(2, 1)
	dbErr := errors.New("connection refused")

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow in closed state: %v", err)
	}
	b.Record(dbErr)
	if state := b.State(); state != StateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow in closed state: %v", err)
	}
	b.Record(dbErr)
	if state := b.State(); state != StateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	*now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected second probe to be rejected, got %v", err)
	}

	b.Record(nil)
	if state := b.State(); state != StateClosed {
		t.Fatalf("expected closed after successful probe, got %s", state)
	}

	want := []State{StateOpen, StateHalfOpen, StateClosed}
	if len(*transitions) != len(want) {
		t.Fatalf("unexpected transitions: %v", *transitions)
	}
	for i := range want {
		if (*transitions)[i] != want[i] {
			t.Fatalf("unexpected transitions: %v", *transitions)
		}
	}
}

func TestBreaker_FailedProbeReopens(t *testing.T) {
	b, now, _ := newTestBreaker(1, 1)

	_ = b.Allow()
	b.Record(errors.New("timeout"))

	*now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	b.Record(errors.New("timeout"))

	if state := b.State(); state != StateOpen {
		t.Fatalf("expected open after failed probe, got %s", state)
	}
}

func TestBreaker_CancellationIsNotFailure(t *testing.T) {
	b, _, _ := newTestBreaker(1, 1)

	_ = b.Allow()
	b.Record(context.Canceled)

	if state := b.State(); state != StateClosed {
		t.Fatalf("expected closed after caller cancellation, got %s", state)
	}
}

func TestBreaker_CancellationKeepsFailureCount(t *testing.T) {
	b, _, _ := newTestBreaker(2, 1)
	dbErr := errors.New("connection refused")

	_ = b.Allow()
	b.Record(dbErr)
	_ = b.Allow()
	b.Record(context.Canceled)
	_ = b.Allow()
	b.Record(dbErr)

	if state := b.State(); state != StateOpen {
		t.Fatalf("expected open after fail, cancel, fail, got %s", state)
	}
}

func TestBreaker_CancelledProbeDoesNotClose(t *testing.T) {
	b, now, _ := newTestBreaker(1, 1)

	_ = b.Allow()
	b.Record(errors.New("timeout"))

	*now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	b.Record(context.Canceled)

	if state := b.State(); state != StateHalfOpen {
		t.Fatalf("expected half-open after cancelled probe, got %s", state)
	}

	if err := b.Allow(); err != nil {
		t.Fatalf("expected the probe slot to be released, got %v", err)
	}
	b.Record(nil)
	if state := b.State(); state != StateClosed {
		t.Fatalf("expected closed after successful probe, got %s", state)
	}
}

func TestBreaker_DisabledAlwaysAllows(t *testing.T) {
	b := NewBreaker(BreakerConfig{Name: "postgres", Enabled: false, FailureThreshold: 1}, nil)
	for range 3 {
		if err := b.Allow(); err != nil {
			t.Fatalf("expected disabled breaker to allow: %v", err)
		}
		b.Record(errors.New("down"))
	}
	if state := b.State(); state != StateClosed {
		t.Fatalf("expected closed state, got %s", state)
	}
}

func TestDo(t *testing.T) {
	b, _, _ := newTestBreaker(1, 1)

	got, err := Do(context.Background(), b, func(context.Context) (int, error) {
		return 0, errors.New("down")
	})
	if err == nil || got != 0 {
		t.Fatalf("expected failure to pass through, got %d %v", got, err)
	}

	calls := 0
	_, err = Do(context.Background(), b, func(context.Context) (int, error) {
		calls++
		return 1, nil
	})
	if !errors.Is(err, ErrCircuitOpen) || calls != 0 {
		t.Fatalf("expected open circuit to short-circuit, err=%v calls=%d", err, calls)
	}

	got, err = Do(context.Background(), nil, func(context.Context) (int, error) { return 7, nil })
	if err != nil || got != 7 {
		t.Fatalf("expected nil breaker to run fn, got %d %v", got, err)
	}
}

func TestDefaultBreakerConfig(t *testing.T) {
	cfg := BreakerConfig{Name: "postgres", Enabled: true}.normalized()
	if cfg.FailureThreshold != 5 || cfg.OpenTimeout != 15*time.Second || cfg.HalfOpenMaxReq != 2 {
		t.Fatalf("unexpected normalized config: %+v", cfg)
	}
}
