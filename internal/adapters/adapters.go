package adapters

import (
	"context"
	"time"

	"currencymon/internal/domain"
)

// RateSource produces a full snapshot of external rates. Implementations must
// return or fail within a bounded time, the fetch runs outside the store lock.
type RateSource interface {
	Fetch(ctx context.Context) (domain.RateSnapshot, error)
}

// SnapshotCache keeps the most recent successfully fetched snapshot so the
// reconciler can fall back to it when the live feed is down.
type SnapshotCache interface {
	Get() (domain.RateSnapshot, bool)
	Set(snap domain.RateSnapshot)
}

// RatesTracker exposes the store's last-rates-update timestamp. The refresh
// path bumps it even when a merge changed nothing, so the staleness check
// measures time since the last reconciliation attempt, not since the last
// actual change.
type RatesTracker interface {
	LastRatesUpdate() time.Time
	BumpRatesUpdate()
}

type CurrencyRepository interface {
	Create(ctx context.Context, numCode, charCode, name string, value float64, nominal int) (int64, error)
	List(ctx context.Context, filterCode string) ([]domain.Currency, error)
	Get(ctx context.Context, id int64) (domain.Currency, error)
	UpdateRates(ctx context.Context, updates map[string]float64) error
	Delete(ctx context.Context, id int64) (int, error)
}

type UserRepository interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id int64) (domain.User, error)
	ListSubscribed(ctx context.Context, userID int64) ([]domain.Currency, error)
	ListAvailable(ctx context.Context, userID int64) ([]domain.Currency, error)
	SubscriptionsMap(ctx context.Context) (map[int64][]int64, error)
	CountSubscriptions(ctx context.Context) (int, error)
	ToggleSubscription(ctx context.Context, userID, currencyID int64) (domain.ToggleAction, error)
}
