package capabilities

import (
	"context"
	"errors"
	"testing"

	"passaro-ok/internal/platform/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

type staticResolver struct {
	ok  bool
	err error
}

func (r staticResolver) Has(ctx context.Context, _ Capability) (bool, error) {
	return r.ok, r.err
}

func lockedCount(c Capability) float64 {
	return testutil.ToFloat64(metrics.LockedActions.WithLabelValues(string(c)))
}

func TestRequire_LockedCountsAction(t *testing.T) {
	ctx := context.Background()
	before := lockedCount(CapabilityExport)

	err := Require(ctx, staticResolver{}, CapabilityExport)
	var locked *LockedError
	if !errors.As(err, &locked) || locked.Capability != CapabilityExport || !errors.Is(err, ErrLocked) {
		t.Fatalf("expected LockedError for export, got %v", err)
	}
	if got := lockedCount(CapabilityExport) - before; got != 1 {
		t.Fatalf("expected 1 locked action counted, got %v", got)
	}

	if err := Require(ctx, staticResolver{ok: true}, CapabilityExport); err != nil {
		t.Fatalf("granted capability: %v", err)
	}
	boom := errors.New("settings unavailable")
	if err := Require(ctx, staticResolver{err: boom}, CapabilityExport); !errors.Is(err, boom) {
		t.Fatalf("resolver error should propagate, got %v", err)
	}
	if got := lockedCount(CapabilityExport) - before; got != 1 {
		t.Fatalf("only the locked call should count, got %v", got)
	}
}

func TestAllowed_DoesNotCountLockedActions(t *testing.T) {
	ctx := context.Background()
	before := lockedCount(CapabilityFullHistory)

	for i := 0; i < 5; i++ {
		if Allowed(ctx, staticResolver{}, CapabilityFullHistory) {
			t.Fatalf("free tier should not see full history")
		}
	}
	if Allowed(ctx, nil, CapabilityFullHistory) {
		t.Fatalf("nil resolver means not allowed")
	}
	if Allowed(ctx, staticResolver{ok: true, err: errors.New("x")}, CapabilityFullHistory) {
		t.Fatalf("resolver errors mean not allowed")
	}
	if !Allowed(ctx, staticResolver{ok: true}, CapabilityFullHistory) {
		t.Fatalf("granted capability should be allowed")
	}

	if got := lockedCount(CapabilityFullHistory) - before; got != 0 {
		t.Fatalf("degraded reads must not count as locked actions, got %v", got)
	}
}
