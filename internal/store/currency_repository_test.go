package store

import (
	"context"
	"testing"

	"currencymon/internal/domain"

	"github.com/stretchr/testify/require"
)

func seedRepo(t *testing.T) (*Store, *CurrencyRepository) {
	t.Helper()
	s := New()
	repo := NewCurrencyRepository(s)
	ctx := context.Background()

	_, err := repo.Create(ctx, "840", "USD", "US Dollar", 90.5, 1)
	require.NoError(t, err)
	_, err = repo.Create(ctx, "978", "EUR", "Euro", 98.7, 1)
	require.NoError(t, err)
	_, err = repo.Create(ctx, "392", "JPY", "Japanese Yen", 61.0, 100)
	require.NoError(t, err)
	return s, repo
}

func TestCurrencyRepository_Create_AssignsMonotonicIDs(t *testing.T) {
	repo := NewCurrencyRepository(New())
	ctx := context.Background()

	id1, err := repo.Create(ctx, "840", "USD", "US Dollar", 90.5, 1)
	require.NoError(t, err)
	id2, err := repo.Create(ctx, "978", "EUR", "Euro", 98.7, 1)
	require.NoError(t, err)

	require.Equal(t, int64(1), id1)
	require.Equal(t, int64(2), id2)
}

func TestCurrencyRepository_Create_RejectsInvalidFields(t *testing.T) {
	repo := NewCurrencyRepository(New())
	ctx := context.Background()

	var vErr *domain.ValidationError

	_, err := repo.Create(ctx, "840", "USD", "US Dollar", 90.5, 0)
	require.ErrorAs(t, err, &vErr)

	_, err = repo.Create(ctx, "840", "US", "US Dollar", 90.5, 1)
	require.ErrorAs(t, err, &vErr)

	list, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestCurrencyRepository_Create_RejectsDuplicateCharCode(t *testing.T) {
	repo := NewCurrencyRepository(New())
	ctx := context.Background()

	_, err := repo.Create(ctx, "840", "USD", "US Dollar", 90.5, 1)
	require.NoError(t, err)

	_, err = repo.Create(ctx, "841", "usd", "US Dollar again", 91.0, 1)
	require.ErrorIs(t, err, domain.ErrDuplicateCurrency)
}

func TestCurrencyRepository_List_OrderedByCharCode(t *testing.T) {
	_, repo := seedRepo(t)

	list, err := repo.List(context.Background(), "")
	require.NoError(t, err)

	codes := make([]string, 0, len(list))
	for _, c := range list {
		codes = append(codes, c.CharCode)
	}
	require.Equal(t, []string{"EUR", "JPY", "USD"}, codes)
}

func TestCurrencyRepository_List_FilterNormalizesCase(t *testing.T) {
	_, repo := seedRepo(t)

	list, err := repo.List(context.Background(), "usd")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "USD", list[0].CharCode)
}

func TestCurrencyRepository_UpdateRates_TouchesOnlyValue(t *testing.T) {
	_, repo := seedRepo(t)
	ctx := context.Background()

	err := repo.UpdateRates(ctx, map[string]float64{"USD": 91.0, "XAU": 5000})
	require.NoError(t, err)

	list, err := repo.List(ctx, "USD")
	require.NoError(t, err)
	require.Len(t, list, 1)

	usd := list[0]
	require.Equal(t, 91.0, usd.Value)
	require.Equal(t, "840", usd.NumCode)
	require.Equal(t, "US Dollar", usd.Name)
	require.Equal(t, 1, usd.Nominal)

	// the unknown code created nothing and the others are untouched
	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	eur := all[0]
	require.Equal(t, "EUR", eur.CharCode)
	require.Equal(t, 98.7, eur.Value)
}

func TestCurrencyRepository_UpdateRates_AdvancesRatesTimestamp(t *testing.T) {
	s, repo := seedRepo(t)

	before := s.LastRatesUpdate()
	err := repo.UpdateRates(context.Background(), map[string]float64{"USD": 91.0})
	require.NoError(t, err)
	require.False(t, s.LastRatesUpdate().Before(before))
}

func TestCurrencyRepository_UpdateRates_RejectsNegativeValue(t *testing.T) {
	_, repo := seedRepo(t)

	err := repo.UpdateRates(context.Background(), map[string]float64{"USD": -1})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestCurrencyRepository_Delete_Idempotent(t *testing.T) {
	_, repo := seedRepo(t)
	ctx := context.Background()

	list, err := repo.List(ctx, "USD")
	require.NoError(t, err)
	usdID := list[0].ID

	n, err := repo.Delete(ctx, usdID)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	n, err = repo.Delete(ctx, usdID)
	require.NoError(t, err)
	require.Equal(t, 0, n)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestCurrencyRepository_Get(t *testing.T) {
	_, repo := seedRepo(t)
	ctx := context.Background()

	c, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "USD", c.CharCode)

	_, err = repo.Get(ctx, 9999)
	require.ErrorIs(t, err, domain.ErrCurrencyNotFound)
}
