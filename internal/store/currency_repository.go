package store

import (
	"context"
	"slices"
	"strings"

	"currencymon/internal/domain"
)

// CurrencyRepository is the only write path into the currency table.
type CurrencyRepository struct {
	store *Store
}

func NewCurrencyRepository(store *Store) *CurrencyRepository {
	return &CurrencyRepository{store: store}
}

// Create validates the fields, rejects a duplicate char code and inserts the
// row, returning the assigned id.
func (r *CurrencyRepository) Create(ctx context.Context, numCode, charCode, name string, value float64, nominal int) (int64, error) {
	c, err := domain.NewCurrency(numCode, charCode, name, value, nominal)
	if err != nil {
		return 0, err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.currencies {
		if existing.CharCode == c.CharCode {
			return 0, domain.ErrDuplicateCurrency
		}
	}

	s.nextCurrencyID++
	c.ID = s.nextCurrencyID
	s.currencies[c.ID] = c
	return c.ID, nil
}

// List returns currencies ordered by char code. A non-empty filterCode
// narrows the result to the matching row.
func (r *CurrencyRepository) List(ctx context.Context, filterCode string) ([]domain.Currency, error) {
	filterCode = domain.NormalizeCode(filterCode)

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Currency, 0, len(s.currencies))
	for _, c := range s.currencies {
		if filterCode != "" && c.CharCode != filterCode {
			continue
		}
		out = append(out, c)
	}
	sortByCharCode(out)
	return out, nil
}

// Get returns the row with the given id or ErrCurrencyNotFound.
func (r *CurrencyRepository) Get(ctx context.Context, id int64) (domain.Currency, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.currencies[id]
	if !ok {
		return domain.Currency{}, domain.ErrCurrencyNotFound
	}
	return c, nil
}

// UpdateRates sets the value of each currency whose char code appears in
// updates. Unknown codes are skipped, rows are never created here. The whole
// batch is applied inside one lock acquisition and advances the rates
// timestamp.
func (r *CurrencyRepository) UpdateRates(ctx context.Context, updates map[string]float64) error {
	if len(updates) == 0 {
		return nil
	}
	for code, value := range updates {
		if value < 0 {
			return &domain.ValidationError{Field: "value", Reason: "must not be negative (" + code + ")"}
		}
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, c := range s.currencies {
		if value, ok := lookupCode(updates, c.CharCode); ok {
			c.Value = value
			s.currencies[id] = c
		}
	}
	s.bumpLocked()
	return nil
}

// Delete removes the row with the given id and returns how many rows were
// removed (0 or 1). Subscriptions pointing at the deleted currency are
// removed in the same critical section, keeping the partition of
// subscribed/available currencies intact for every user. Deleting a missing
// id is not an error.
func (r *CurrencyRepository) Delete(ctx context.Context, id int64) (int, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.currencies[id]; !ok {
		return 0, nil
	}
	delete(s.currencies, id)
	for subID, sub := range s.subscriptions {
		if sub.CurrencyID == id {
			delete(s.subscriptions, subID)
		}
	}
	return 1, nil
}

// SeedCurrencies inserts a snapshot's entries as rows at startup, bypassing
// duplicate checks only in the sense that the store is known to be empty.
func (r *CurrencyRepository) SeedCurrencies(ctx context.Context, snap domain.RateSnapshot) error {
	for code, entry := range snap {
		if _, err := r.Create(ctx, entry.NumCode, code, entry.Name, entry.Value, entry.Nominal); err != nil {
			return err
		}
	}
	return nil
}

func lookupCode(updates map[string]float64, charCode string) (float64, bool) {
	if v, ok := updates[charCode]; ok {
		return v, true
	}
	// callers normally pass normalized keys, tolerate unnormalized ones
	for code, v := range updates {
		if domain.NormalizeCode(code) == charCode {
			return v, true
		}
	}
	return 0, false
}

func sortByCharCode(currencies []domain.Currency) {
	slices.SortFunc(currencies, func(a, b domain.Currency) int {
		return strings.Compare(a.CharCode, b.CharCode)
	})
}
