package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"onepaslots/internal/booking"
	"onepaslots/internal/config"
	"onepaslots/internal/notifier"
	"onepaslots/internal/runtime/clock"
	"onepaslots/internal/slots"
	"onepaslots/internal/storage"
	logx "onepaslots/pkg/logx"
)

// App runs one check: scan every facility, save the results, print and send
// the summary.
type App struct {
	cfg *config.Config
	log logx.Logger
	out io.Writer

	clock clock.Clock
	loc   *time.Location

	facilities []string
	names      map[string]string

	scanner *slots.Scanner
	store   storage.Store
	notif   *notifier.Telegram

	// banner values
	client clientConfig
	poll   booking.PollerConfig
	scan   slots.ScanConfig
}

// New wires every component from cfg. It does not touch the network.
func New(cfg *config.Config, log logx.Logger, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, errors.New("nil config")
	}
	if log.IsZero() {
		log = logx.Nop()
	}
	a := &App{
		cfg:   cfg,
		log:   log.With(logx.String("comp", "app")),
		out:   logx.Stdout(),
		clock: clock.Real{},
		names: cfg.FacilityNames(),
	}
	for _, o := range opts {
		if o != nil {
			o(a)
		}
	}
	for _, f := range cfg.Facilities {
		a.facilities = append(a.facilities, f.ID)
	}

	cc, err := mapClientConfig(cfg)
	if err != nil {
		return nil, err
	}
	pc, err := mapPollerConfig(cfg)
	if err != nil {
		return nil, err
	}
	sc, err := mapScanConfig(cfg)
	if err != nil {
		return nil, err
	}
	nc, err := mapNotifierConfig(cfg)
	if err != nil {
		return nil, err
	}
	a.client, a.poll, a.scan, a.loc = cc, pc, sc, sc.Location

	client := booking.NewClient(cc.BaseURL,
		booking.WithTimeout(cc.Timeout),
		booking.WithUserAgent(cc.UserAgent),
		booking.WithLogger(log.With(logx.String("comp", "booking"))),
	)
	poller := booking.NewPoller(client, pc, a.clock, log.With(logx.String("comp", "poller")))
	a.scanner = slots.NewScanner(poller, sc, a.clock, log.With(logx.String("comp", "scanner")))

	st, err := storage.Open(mapStorageConfig(cfg), log.With(logx.String("comp", "storage")))
	if err != nil {
		return nil, err
	}
	a.store = st

	n, err := notifier.New(nc, log.With(logx.String("comp", "notifier")))
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	a.notif = n
	return a, nil
}

// Close releases the store.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

// Run performs one check. A failure (error or panic) is logged once and
// reported to the Telegram chat; it is also returned so the caller can log
// it. Cancellation of ctx is returned without a notification.
func (a *App) Run(ctx context.Context) (err error) {
	log := a.log.With(logx.String("run_id", uuid.NewString()))
	a.banner(log)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
		if err == nil {
			return
		}
		if errors.Is(err, context.Canceled) {
			log.Warn("run interrupted", logx.Err(err))
			return
		}
		log.Error("run failed", logx.Err(err))
		if nerr := a.notif.Send(ctx, slots.FormatError(err)); nerr != nil && !errors.Is(nerr, notifier.ErrDisabled) {
			log.Error("failed to send error notification", logx.Err(nerr))
		}
	}()

	return a.run(ctx, log)
}

func (a *App) run(ctx context.Context, log logx.Logger) error {
	started := a.clock.Now()

	agg, err := a.scanner.Scan(ctx, a.facilities)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}

	if err := a.store.Save(ctx, agg); err != nil {
		if !errors.Is(err, storage.ErrDisabled) {
			return fmt.Errorf("save results: %w", err)
		}
	} else {
		log.Info("results saved", logx.String("path", a.store.Location()))
	}

	msg := slots.FormatSummary(agg, a.names, a.clock.Now().In(a.loc))
	if _, err := fmt.Fprintln(a.out, slots.PlainText(msg)); err != nil {
		log.Warn("failed to print summary", logx.Err(err))
	}

	log.Info("check finished",
		logx.Int("slots", agg.TotalSlots()),
		logx.Int("facilities_with_slots", agg.FacilitiesWithSlots()),
		logx.Duration("took", a.clock.Now().Sub(started)),
	)

	if err := a.notif.Send(ctx, msg); err != nil {
		if !errors.Is(err, notifier.ErrDisabled) {
			log.Error("failed to send summary", logx.Err(err))
		}
		return nil
	}
	log.Info("summary sent to telegram")
	return nil
}

func (a *App) banner(log logx.Logger) {
	log.Info("starting OnePA slot checker",
		logx.Any("facilities", a.facilities),
		logx.Int("max_days_ahead", a.scan.MaxDaysAhead),
		logx.Duration("request_timeout", a.client.Timeout),
		logx.Int("max_retries", a.poll.MaxRetries),
		logx.Duration("retry_delay", a.poll.RetryDelay),
		logx.Duration("date_delay", a.scan.DateDelay),
		logx.Duration("facility_delay", a.scan.FacilityDelay),
		logx.Bool("telegram_enabled", a.notif.Enabled()),
		logx.String("output", a.store.Location()),
	)
}
