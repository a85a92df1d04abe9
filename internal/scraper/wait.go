package scraper

import (
	"context"
	"time"

	"seatcheck/internal/browser"
)

// sleep pauses for d unless the context is cancelled first.
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// waitSettle approximates a network-idle wait: it polls document.readyState
// until the page reports complete or the bound elapses, then degrades to a
// fixed pause. A timeout here is never an error.
func waitSettle(ctx context.Context, page browser.Page, timeout, fallbackPause time.Duration) {
	deadline := time.Now().Add(timeout)
	// Give any click-triggered requests a moment to start before the first
	// readyState probe reports an already-complete document.
	if !sleep(ctx, 300*time.Millisecond) {
		return
	}
	for time.Now().Before(deadline) {
		var state string
		if err := page.Evaluate(ctx, readyStateScript, &state); err == nil && state == "complete" {
			return
		}
		if !sleep(ctx, 250*time.Millisecond) {
			return
		}
	}
	sleep(ctx, fallbackPause)
}
