package bundle

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Refresher periodically drops and re-preloads a fixed set of locales so
// long-running processes pick up bundle changes without a restart. Ticks
// follow a standard 5-field cron schedule. A failed reload is logged and
// retried at the next tick.
type Refresher struct {
	cache      *Cache
	schedule   cron.Schedule
	locales    []string
	namespaces []string
	log        *slog.Logger

	mu      sync.Mutex
	started bool
	stop    chan struct{}
	done    chan struct{}
}

// RefresherOption configures a Refresher.
type RefresherOption func(*Refresher)

// WithRefresherLogger sets the logger for tick outcomes. Defaults to a
// discard logger.
func WithRefresherLogger(log *slog.Logger) RefresherOption {
	return func(r *Refresher) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRefresher creates a refresher reloading the given locales and
// namespaces on the cron schedule (5-field format, e.g. "*/30 * * * *").
func NewRefresher(cache *Cache, schedule string, locales, namespaces []string, opts ...RefresherOption) (*Refresher, error) {
	if cache == nil {
		return nil, fmt.Errorf("%w: cache is required", ErrInvalidConfig)
	}
	if len(locales) == 0 {
		return nil, fmt.Errorf("%w: at least one locale is required", ErrInvalidConfig)
	}
	if len(namespaces) == 0 {
		return nil, fmt.Errorf("%w: at least one namespace is required", ErrInvalidConfig)
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	sched, err := parser.Parse(schedule)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidSchedule, schedule, err)
	}

	r := &Refresher{
		cache:      cache,
		schedule:   sched,
		locales:    locales,
		namespaces: namespaces,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Start launches the tick loop. The loop runs until Stop is called or ctx
// is cancelled.
func (r *Refresher) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started {
		return ErrAlreadyStarted
	}

	r.started = true
	r.stop = make(chan struct{})
	r.done = make(chan struct{})

	go r.run(ctx, r.stop, r.done)

	r.log.Info("bundle refresher started",
		slog.Int("locales", len(r.locales)),
		slog.Int("namespaces", len(r.namespaces)),
	)
	return nil
}

// Stop terminates the tick loop and waits for it to exit or for ctx to be
// cancelled, whichever comes first.
func (r *Refresher) Stop(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.started {
		return ErrNotStarted
	}

	close(r.stop)
	select {
	case <-r.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	r.started = false
	r.log.Info("bundle refresher stopped")
	return nil
}

func (r *Refresher) run(ctx context.Context, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	for {
		timer := time.NewTimer(time.Until(r.schedule.Next(time.Now())))
		select {
		case <-stop:
			timer.Stop()
			return
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			r.Refresh(ctx)
		}
	}
}

// Refresh drops the configured locales and reloads their namespaces once.
// Exposed so callers can force a reload outside the schedule, e.g. from an
// admin endpoint after publishing new translations.
func (r *Refresher) Refresh(ctx context.Context) {
	started := time.Now()

	for _, locale := range r.locales {
		r.cache.ClearLocale(locale)
		if err := r.cache.PreloadLocale(ctx, locale, r.namespaces); err != nil {
			r.log.Error("bundle refresh failed",
				slog.String("locale", locale),
				slog.Any("error", err),
			)
			continue
		}
	}

	r.log.Debug("bundle refresh completed",
		slog.Int("locales", len(r.locales)),
		slog.Duration("elapsed", time.Since(started)),
	)
}
