package store

import (
	"sync"
	"time"

	"currencymon/internal/domain"
)

// Store holds the three in-memory tables and the rates timestamp behind a
// single mutex. Every repository operation runs entirely inside one lock
// acquisition, so callers observe the store as a serial sequence of
// operations. Ids are assigned from per-table counters under the same lock.
//
// The store itself is only reachable through the repositories; handlers and
// services never touch the tables directly.
type Store struct {
	mu sync.Mutex

	users         map[int64]domain.User
	currencies    map[int64]domain.Currency
	subscriptions map[int64]domain.Subscription

	nextUserID         int64
	nextCurrencyID     int64
	nextSubscriptionID int64

	lastRatesUpdate time.Time

	now func() time.Time
}

// New creates an empty store. The rates timestamp starts at construction
// time, seeding counts as the first update.
func New() *Store {
	return NewWithClock(time.Now)
}

// NewWithClock is New with an injectable clock for tests.
func NewWithClock(now func() time.Time) *Store {
	return &Store{
		users:           make(map[int64]domain.User),
		currencies:      make(map[int64]domain.Currency),
		subscriptions:   make(map[int64]domain.Subscription),
		lastRatesUpdate: now(),
		now:             now,
	}
}

// LastRatesUpdate returns when rates were last written by a bulk update or a
// reconciliation run.
func (s *Store) LastRatesUpdate() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRatesUpdate
}

// BumpRatesUpdate advances the rates timestamp to now. Called by the refresh
// path after a merge is applied.
func (s *Store) BumpRatesUpdate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bumpLocked()
}

func (s *Store) bumpLocked() {
	s.lastRatesUpdate = s.now()
}

func (s *Store) userExistsLocked(id int64) bool {
	_, ok := s.users[id]
	return ok
}

func (s *Store) currencyExistsLocked(id int64) bool {
	_, ok := s.currencies[id]
	return ok
}
