package rate

import (
	"context"
	"sync"
	"time"

	"currencymon/internal/adapters"

	"github.com/sirupsen/logrus"
)

// Refresher is what the staleness policy triggers when rates are too old.
type Refresher interface {
	Refresh(ctx context.Context) (int, error)
}

// Freshness decides whether rates must be reconciled before a request is
// served. It never fails the caller: refresh errors are logged and absorbed.
type Freshness struct {
	tracker  adapters.RatesTracker
	refresh  Refresher
	interval time.Duration
	now      func() time.Time

	// held for the duration of a refresh; concurrent callers skip instead
	// of queueing behind a slow feed fetch
	running sync.Mutex
}

func NewFreshness(tracker adapters.RatesTracker, refresh Refresher, interval time.Duration) *Freshness {
	return &Freshness{
		tracker:  tracker,
		refresh:  refresh,
		interval: interval,
		now:      time.Now,
	}
}

// EnsureFresh runs a refresh when the last one is at least the configured
// interval ago. At most one refresh runs at a time and the age check is
// repeated under the guard, so a burst of stale requests produces a single
// refresh.
func (f *Freshness) EnsureFresh(ctx context.Context) {
	if !f.stale() {
		return
	}
	if !f.running.TryLock() {
		return
	}
	defer f.running.Unlock()

	if !f.stale() {
		return
	}
	if _, err := f.refresh.Refresh(ctx); err != nil {
		logrus.WithError(err).Error("automatic rate refresh failed")
	}
}

func (f *Freshness) stale() bool {
	return f.now().Sub(f.tracker.LastRatesUpdate()) >= f.interval
}
