package scraper

import (
	"context"
	"log"
	"time"

	"seatcheck/internal/browser"
)

// Baseline is the availability table's serialized content length captured
// before the action that triggers a refresh.
type Baseline struct {
	Length int
	Valid  bool
}

type RefreshConfig struct {
	// Timeout bounds the whole wait; elapsing is not an error.
	Timeout time.Duration
	// Threshold is the minimum content-length delta that counts as a real
	// refresh rather than trivial DOM churn.
	Threshold    int
	PollInterval time.Duration
	// FallbackPause is used when no baseline could be captured.
	FallbackPause time.Duration
	// FinalPause runs after a detected change so late row updates land.
	FinalPause time.Duration
}

func (c RefreshConfig) withDefaults() RefreshConfig {
	if c.Timeout == 0 {
		c.Timeout = 15 * time.Second
	}
	if c.Threshold == 0 {
		c.Threshold = 500
	}
	if c.PollInterval == 0 {
		c.PollInterval = 250 * time.Millisecond
	}
	if c.FallbackPause == 0 {
		c.FallbackPause = 4 * time.Second
	}
	if c.FinalPause == 0 {
		c.FinalPause = 800 * time.Millisecond
	}
	return c
}

// CaptureTableBaseline waits for the availability table container and
// records its current content length. A missing container yields an invalid
// baseline, which degrades WaitForRefresh to a fixed pause.
func CaptureTableBaseline(ctx context.Context, page browser.Page, timeout time.Duration) Baseline {
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	err := page.WaitVisible(waitCtx, AvailabilityTableSelector)
	cancel()
	if err != nil {
		return Baseline{}
	}

	var length int
	readCtx, cancel := context.WithTimeout(ctx, timeout)
	err = page.Evaluate(readCtx, TableLengthScript, &length)
	cancel()
	if err != nil || length < 0 {
		return Baseline{}
	}

	return Baseline{Length: length, Valid: true}
}

// WaitForRefresh polls the table's content length until it diverges from the
// baseline by more than the threshold. The status table repopulates
// asynchronously after a date selection, so this detects completion instead
// of racing it. Best-effort: a timeout falls through to reading whatever is
// there.
func WaitForRefresh(ctx context.Context, page browser.Page, base Baseline, cfg RefreshConfig) {
	cfg = cfg.withDefaults()

	if !base.Valid {
		sleep(ctx, cfg.FallbackPause)
		return
	}

	deadline := time.Now().Add(cfg.Timeout)
	for time.Now().Before(deadline) {
		var length int
		readCtx, cancel := context.WithTimeout(ctx, cfg.PollInterval*4)
		err := page.Evaluate(readCtx, TableLengthScript, &length)
		cancel()

		if err == nil && length >= 0 && abs(length-base.Length) > cfg.Threshold {
			sleep(ctx, cfg.FinalPause)
			return
		}
		if !sleep(ctx, cfg.PollInterval) {
			return
		}
	}

	log.Printf("availability table did not change noticeably within %v, reading as-is", cfg.Timeout)
	sleep(ctx, cfg.FinalPause)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
