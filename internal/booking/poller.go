package booking

import (
	"context"
	"fmt"
	"time"

	"onepaslots/internal/runtime/clock"
	logx "onepaslots/pkg/logx"
)

// Fetcher performs a single request for one (facility, date) pair.
type Fetcher interface {
	Fetch(ctx context.Context, facility, date string) (*Payload, error)
}

// PollerConfig controls the retry loop.
type PollerConfig struct {
	// MaxRetries is the number of additional attempts after the first.
	MaxRetries int
	// RetryDelay is the fixed wait between attempts (no backoff, no jitter).
	RetryDelay time.Duration
}

// Poller wraps a Fetcher with a bounded, fixed-delay retry loop.
type Poller struct {
	fetch Fetcher
	cfg   PollerConfig
	clock clock.Clock
	log   logx.Logger
}

func NewPoller(f Fetcher, cfg PollerConfig, clk clock.Clock, log logx.Logger) *Poller {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if clk == nil {
		clk = clock.Real{}
	}
	if log.IsZero() {
		log = logx.Nop()
	}
	return &Poller{fetch: f, cfg: cfg, clock: clk, log: log}
}

// Poll returns the first accepted payload for facility on date.
//
// A request failure or an unaccepted responseStatusCode is retried after
// RetryDelay, at most MaxRetries times. When every attempt fails the reason is
// logged and an error wrapping ErrRetriesExhausted is returned. A cancelled
// ctx ends the loop with ctx.Err().
func (p *Poller) Poll(ctx context.Context, facility, date string) (*Payload, error) {
	attempts := p.cfg.MaxRetries + 1
	log := p.log.With(logx.String("facility", facility), logx.String("date", date))

	var last error
	for attempt := 1; attempt <= attempts; attempt++ {
		payload, err := p.fetch.Fetch(ctx, facility, date)
		switch {
		case err != nil:
		case payload == nil:
			err = fmt.Errorf("%w: empty body", ErrMalformedPayload)
		case payload.Status.Accepted():
			return payload, nil
		default:
			err = fmt.Errorf("%w: %q", ErrUnexpectedStatus, payload.Status)
		}
		if cerr := ctx.Err(); cerr != nil {
			return nil, cerr
		}
		last = err

		if attempt == attempts {
			break
		}
		log.Warn("poll attempt failed; retrying",
			logx.Int("attempt", attempt),
			logx.Int("attempts", attempts),
			logx.Duration("retry_in", p.cfg.RetryDelay),
			logx.Err(err),
		)
		if err := p.clock.Sleep(ctx, p.cfg.RetryDelay); err != nil {
			return nil, err
		}
	}

	log.Error("poll failed", logx.Int("attempts", attempts), logx.Err(last))
	return nil, fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, attempts, last)
}
