package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter throttles queries against the booking site and caps the number of
// browser sessions alive at once. Every query drives a full Chrome process,
// so the cap is what actually protects the host.
type Limiter struct {
	limiter  *rate.Limiter
	sessions chan struct{}
}

type Config struct {
	QueriesPerSecond float64
	BurstSize        int
	// MaxSessions caps concurrent browser sessions; zero or negative means
	// unbounded.
	MaxSessions int
}

func DefaultConfig() Config {
	return Config{
		QueriesPerSecond: 0.5,
		BurstSize:        2,
		MaxSessions:      4,
	}
}

func New(config Config) *Limiter {
	l := &Limiter{
		limiter: rate.NewLimiter(rate.Limit(config.QueriesPerSecond), config.BurstSize),
	}
	if config.MaxSessions > 0 {
		l.sessions = make(chan struct{}, config.MaxSessions)
	}
	return l
}

// Acquire blocks until a query may start: the rate limiter admits it and a
// session slot is free. Callers must Release after the session is closed.
func (l *Limiter) Acquire(ctx context.Context) error {
	if err := l.limiter.Wait(ctx); err != nil {
		return err
	}
	if l.sessions == nil {
		return nil
	}
	select {
	case l.sessions <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Limiter) Release() {
	if l.sessions == nil {
		return
	}
	<-l.sessions
}
