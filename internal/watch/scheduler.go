package watch

import "time"

// ShouldFetch decides, once per loop tick, whether a fetch is due. A fetch
// happens only while configured and monitoring (never while the config form
// is open), either because a forced refresh was requested or because the
// check interval has elapsed since the last fetch started.
func ShouldFetch(configured bool, mode Mode, forced bool, elapsed, interval time.Duration) bool {
	if !configured || mode != ModeMonitoring {
		return false
	}
	return forced || elapsed >= interval
}
