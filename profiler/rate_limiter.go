// SPDX-License-Identifier: EPL-2.0

package profiler

import "time"

// RateLimiter gates how often a reporting path may emit diagnostics. It is a
// capability handed to whoever reads the profiler, never consulted by the
// profiler's own update logic, so display cadence cannot perturb the
// measurement.
//
// Like the Profiler it is single-owner: no internal locking.
type RateLimiter struct {
	period time.Duration
	next   time.Time

	now func() time.Time
}

func NewRateLimiter(period time.Duration) *RateLimiter {
	return &RateLimiter{
		period: period,
		now:    time.Now,
	}
}

// Allow reports whether a report may be emitted now. The first call always
// succeeds; afterwards at most one call per period does.
func (l *RateLimiter) Allow() bool {
	t := l.now()
	if t.Before(l.next) {
		return false
	}

	l.next = t.Add(l.period)

	return true
}
