// SPDX-License-Identifier: EPL-2.0

package profiler

import (
	"testing"
	"time"
)

func TestRateLimiter_FirstCallAllowed(t *testing.T) {
	t.Parallel()

	l := NewRateLimiter(time.Second)

	if !l.Allow() {
		t.Error("Allow() = false on first call, want true")
	}
}

func TestRateLimiter_ThrottlesWithinPeriod(t *testing.T) {
	t.Parallel()

	now := time.Unix(1000, 0)
	l := NewRateLimiter(time.Second)
	l.now = func() time.Time { return now }

	if !l.Allow() {
		t.Fatal("Allow() = false on first call, want true")
	}

	for _, advance := range []time.Duration{0, 100 * time.Millisecond, 999 * time.Millisecond} {
		now = time.Unix(1000, 0).Add(advance)
		if l.Allow() {
			t.Errorf("Allow() = true after %v, want false within period", advance)
		}
	}

	now = time.Unix(1001, 0)
	if !l.Allow() {
		t.Error("Allow() = false after full period, want true")
	}
}

func TestRateLimiter_PeriodRestartsFromLastReport(t *testing.T) {
	t.Parallel()

	now := time.Unix(0, 0)
	l := NewRateLimiter(time.Second)
	l.now = func() time.Time { return now }

	l.Allow()

	// Report 2.5s later: the next slot opens 1s after that, not on the
	// original grid.
	now = now.Add(2500 * time.Millisecond)
	if !l.Allow() {
		t.Fatal("Allow() = false after long gap, want true")
	}

	now = now.Add(900 * time.Millisecond)
	if l.Allow() {
		t.Error("Allow() = true 0.9s after last report, want false")
	}

	now = now.Add(200 * time.Millisecond)
	if !l.Allow() {
		t.Error("Allow() = false 1.1s after last report, want true")
	}
}
