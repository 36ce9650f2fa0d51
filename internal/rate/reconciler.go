package rate

import (
	"context"
	"errors"
	"fmt"

	"currencymon/internal/adapters"
	"currencymon/internal/domain"

	"github.com/sirupsen/logrus"
)

// Reconciler merges external rate snapshots into the currency table by char
// code. It is the only upsert path in the system: the repository's bulk
// update stays strictly update-only and the reconciler decides whether
// misses become new rows.
type Reconciler struct {
	currencies adapters.CurrencyRepository
	source     adapters.RateSource
	cache      adapters.SnapshotCache
	tracker    adapters.RatesTracker
}

func NewReconciler(currencies adapters.CurrencyRepository, source adapters.RateSource, cache adapters.SnapshotCache, tracker adapters.RatesTracker) *Reconciler {
	return &Reconciler{currencies: currencies, source: source, cache: cache, tracker: tracker}
}

// FetchSnapshot returns a usable snapshot no matter what: live feed first,
// then the last cached good snapshot, then the built-in table. The returned
// bool reports whether the data came from the live feed. The fetch performs
// no store access, so a slow feed never holds the store lock.
func (r *Reconciler) FetchSnapshot(ctx context.Context) (domain.RateSnapshot, bool) {
	snap, err := r.source.Fetch(ctx)
	if err == nil {
		r.cache.Set(snap)
		return snap, true
	}

	if !errors.Is(err, domain.ErrSourceUnavailable) {
		// every source failure is supposed to be tagged, keep the log honest
		logrus.WithError(err).Warn("rate source returned an untagged error")
	}

	if cached, ok := r.cache.Get(); ok {
		logrus.WithError(err).Warn("rate source unavailable, using last cached snapshot")
		return cached, false
	}

	logrus.WithError(err).Warn("rate source unavailable and no cached snapshot, using built-in rates")
	return FallbackSnapshot(), false
}

// Merge reconciles a snapshot into the currency table. Rows are matched by
// char code. A matching row is staged for a value update only when its value
// actually changes, so re-merging the same snapshot reports zero changes.
// Misses become new rows when createMissing is set and are skipped otherwise.
// Rows absent from the snapshot are never touched or deleted.
//
// The staged updates are applied through one bulk UpdateRates call, the
// creates afterwards one by one. Returns the number of changed rows
// (updates + creates).
func (r *Reconciler) Merge(ctx context.Context, snap domain.RateSnapshot, createMissing bool) (int, error) {
	existing, err := r.currencies.List(ctx, "")
	if err != nil {
		return 0, fmt.Errorf("failed to list currencies for merge: %w", err)
	}

	byCode := make(map[string]domain.Currency, len(existing))
	for _, c := range existing {
		byCode[c.CharCode] = c
	}

	type pendingCreate struct {
		code  string
		entry domain.SnapshotEntry
	}

	updates := make(map[string]float64)
	creates := make([]pendingCreate, 0)

	for code, entry := range snap {
		// staged under the normalized code: the snapshot key may differ in
		// case and must not be used to look the entry up again
		code = domain.NormalizeCode(code)
		if row, ok := byCode[code]; ok {
			if row.Value != entry.Value {
				updates[code] = entry.Value
			}
			continue
		}
		if createMissing {
			creates = append(creates, pendingCreate{code: code, entry: entry})
		}
	}

	if len(updates) > 0 {
		if err = r.currencies.UpdateRates(ctx, updates); err != nil {
			return 0, fmt.Errorf("failed to apply rate updates: %w", err)
		}
	}

	created := 0
	for _, c := range creates {
		if _, err = r.currencies.Create(ctx, c.entry.NumCode, c.code, c.entry.Name, c.entry.Value, c.entry.Nominal); err != nil {
			return len(updates) + created, fmt.Errorf("failed to create currency %s: %w", c.code, err)
		}
		created++
	}

	return len(updates) + created, nil
}

// Refresh is the fetch-and-merge operation behind the refresh endpoint and
// the staleness policy. The snapshot is built fully before any store
// mutation. Source failures never surface: the fallback snapshot chain
// guarantees a merge always runs, and the rates timestamp advances either
// way.
func (r *Reconciler) Refresh(ctx context.Context) (int, error) {
	snap, live := r.FetchSnapshot(ctx)

	changed, err := r.Merge(ctx, snap, true)
	if err != nil {
		return changed, err
	}

	r.tracker.BumpRatesUpdate()
	logrus.WithFields(logrus.Fields{"changed": changed, "live": live}).Info("rates reconciled")
	return changed, nil
}
