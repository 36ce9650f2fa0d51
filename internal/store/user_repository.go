package store

import (
	"context"
	"slices"

	"currencymon/internal/domain"
)

// UserRepository serves user queries and owns the subscription toggle.
type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// ListUsers returns all users ordered by id.
func (r *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	slices.SortFunc(out, func(a, b domain.User) int {
		return int(a.ID - b.ID)
	})
	return out, nil
}

// GetUser returns the user or ErrUserNotFound.
func (r *UserRepository) GetUser(ctx context.Context, id int64) (domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

// ListSubscribed returns the currencies the user follows, by char code.
func (r *UserRepository) ListSubscribed(ctx context.Context, userID int64) ([]domain.Currency, error) {
	return r.listForUser(userID, true)
}

// ListAvailable returns the currencies the user does not follow yet, by char
// code. Together with ListSubscribed it always partitions the full currency
// set.
func (r *UserRepository) ListAvailable(ctx context.Context, userID int64) ([]domain.Currency, error) {
	return r.listForUser(userID, false)
}

func (r *UserRepository) listForUser(userID int64, subscribed bool) ([]domain.Currency, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.userExistsLocked(userID) {
		return nil, domain.ErrUserNotFound
	}

	followed := make(map[int64]struct{})
	for _, sub := range s.subscriptions {
		if sub.UserID == userID {
			followed[sub.CurrencyID] = struct{}{}
		}
	}

	out := make([]domain.Currency, 0, len(s.currencies))
	for id, c := range s.currencies {
		if _, ok := followed[id]; ok == subscribed {
			out = append(out, c)
		}
	}
	sortByCharCode(out)
	return out, nil
}

// SubscriptionsMap returns every user's followed currency ids, built from a
// single scan of the subscription table.
func (r *UserRepository) SubscriptionsMap(ctx context.Context) (map[int64][]int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[int64][]int64)
	for _, sub := range s.subscriptions {
		m[sub.UserID] = append(m[sub.UserID], sub.CurrencyID)
	}
	for _, ids := range m {
		slices.Sort(ids)
	}
	return m, nil
}

// CountSubscriptions returns the size of the subscription table.
func (r *UserRepository) CountSubscriptions(ctx context.Context) (int, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subscriptions), nil
}

// ToggleSubscription flips the (userID, currencyID) edge: removes it when
// present, inserts it when absent. Both referenced rows must exist before
// anything is mutated, otherwise a *ReferentialError is returned. The check
// and the flip happen under one lock acquisition, so two concurrent toggles
// of the same pair cannot both insert.
func (r *UserRepository) ToggleSubscription(ctx context.Context, userID, currencyID int64) (domain.ToggleAction, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sub := range s.subscriptions {
		if sub.UserID == userID && sub.CurrencyID == currencyID {
			delete(s.subscriptions, id)
			return domain.Unsubscribed, nil
		}
	}

	if !s.userExistsLocked(userID) {
		return "", &domain.ReferentialError{Entity: "user", ID: userID}
	}
	if !s.currencyExistsLocked(currencyID) {
		return "", &domain.ReferentialError{Entity: "currency", ID: currencyID}
	}

	s.nextSubscriptionID++
	s.subscriptions[s.nextSubscriptionID] = domain.Subscription{
		ID:         s.nextSubscriptionID,
		UserID:     userID,
		CurrencyID: currencyID,
	}
	return domain.Subscribed, nil
}

// SeedUsers inserts users by name at startup and returns their ids in order.
func (r *UserRepository) SeedUsers(ctx context.Context, names []string) ([]int64, error) {
	ids := make([]int64, 0, len(names))
	for _, name := range names {
		u, err := domain.NewUser(name)
		if err != nil {
			return nil, err
		}

		s := r.store
		s.mu.Lock()
		s.nextUserID++
		u.ID = s.nextUserID
		s.users[u.ID] = u
		s.mu.Unlock()

		ids = append(ids, u.ID)
	}
	return ids, nil
}

// SeedSubscriptions inserts edges at startup through the same guarded toggle
// path, so referential checks apply to seed data too.
func (r *UserRepository) SeedSubscriptions(ctx context.Context, pairs []domain.Subscription) error {
	for _, p := range pairs {
		if _, err := r.ToggleSubscription(ctx, p.UserID, p.CurrencyID); err != nil {
			return err
		}
	}
	return nil
}
