package slots

import (
	"context"
	"time"

	"onepaslots/internal/booking"
	"onepaslots/internal/runtime/clock"
	logx "onepaslots/pkg/logx"
)

// Poller fetches an accepted payload for one (facility, date) pair or fails.
type Poller interface {
	Poll(ctx context.Context, facility, date string) (*booking.Payload, error)
}

// ScanConfig controls the per-facility date walk.
type ScanConfig struct {
	// MaxDaysAhead bounds the walk: today plus at most MaxDaysAhead more days.
	MaxDaysAhead  int
	DateDelay     time.Duration
	FacilityDelay time.Duration
	// Location decides what "today" is. Nil means time.Local.
	Location *time.Location
}

// StopReason says why the walk over one facility ended.
type StopReason int

const (
	StopUnknown StopReason = iota
	// StopPollFailed: the poller gave up on the current date.
	StopPollFailed
	// StopNoMoreDays: the API returned the end-of-window sentinel.
	StopNoMoreDays
	// StopDayLimit: MaxDaysAhead was reached without a sentinel.
	StopDayLimit
	// StopCancelled: the run context was cancelled.
	StopCancelled
)

func (r StopReason) String() string {
	switch r {
	case StopPollFailed:
		return "poll_failed"
	case StopNoMoreDays:
		return "no_more_days"
	case StopDayLimit:
		return "day_limit"
	case StopCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Scanner walks each facility forward from today, one date at a time.
// It is strictly sequential; the delays keep the run under the API's
// throttling threshold.
type Scanner struct {
	poll  Poller
	cfg   ScanConfig
	clock clock.Clock
	log   logx.Logger
}

func NewScanner(p Poller, cfg ScanConfig, clk clock.Clock, log logx.Logger) *Scanner {
	if cfg.MaxDaysAhead < 0 {
		cfg.MaxDaysAhead = 0
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if clk == nil {
		clk = clock.Real{}
	}
	if log.IsZero() {
		log = logx.Nop()
	}
	return &Scanner{poll: p, cfg: cfg, clock: clk, log: log}
}

// Scan checks every facility in order and returns the dates with available
// slots. The only error is ctx's; results gathered so far are still returned.
func (s *Scanner) Scan(ctx context.Context, facilities []string) (*Aggregate, error) {
	agg := NewAggregate()
	for i, f := range facilities {
		if _, err := s.ScanFacility(ctx, agg, f); err != nil {
			return agg, err
		}
		if i == len(facilities)-1 {
			break
		}
		s.log.Debug("waiting before next facility", logx.Duration("delay", s.cfg.FacilityDelay))
		if err := s.clock.Sleep(ctx, s.cfg.FacilityDelay); err != nil {
			return agg, err
		}
	}
	return agg, nil
}

// ScanFacility walks one facility from today and records every date with
// available slots into agg.
//
// The walk stops when the poller fails for a date, when the API answers with
// the end-of-window sentinel, or once more than MaxDaysAhead dates have been
// checked. The returned error is non-nil only when ctx is done.
func (s *Scanner) ScanFacility(ctx context.Context, agg *Aggregate, facility string) (StopReason, error) {
	log := s.log.With(logx.String("facility", facility))
	log.Info("checking facility")

	day := s.clock.Now().In(s.cfg.Location)
	checked := 0
	for {
		date := day.Format(DateLayout)
		payload, err := s.poll.Poll(ctx, facility, date)
		if err != nil {
			if cerr := ctx.Err(); cerr != nil {
				return StopCancelled, cerr
			}
			log.Warn("no response after retries; stopping facility", logx.String("date", date), logx.Err(err))
			return StopPollFailed, nil
		}

		found := Extract(payload)
		if len(found) > 0 {
			agg.Put(facility, NewDateEntry(date, payload, found))
		}
		log.Info("date checked",
			logx.String("date", date),
			logx.String("status", payload.Status.String()),
			logx.Int("available", len(found)),
		)
		checked++

		if payload.Status.NoMoreDays() {
			log.Info("end of booking window reached", logx.String("date", date))
			return StopNoMoreDays, nil
		}

		day = day.AddDate(0, 0, 1)
		if checked > s.cfg.MaxDaysAhead {
			log.Info("day limit reached", logx.Int("max_days_ahead", s.cfg.MaxDaysAhead))
			return StopDayLimit, nil
		}

		if err := s.clock.Sleep(ctx, s.cfg.DateDelay); err != nil {
			return StopCancelled, err
		}
	}
}
