package cache

import (
	"testing"

	"currencymon/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestSnapshotCache_EmptyAtStart(t *testing.T) {
	c, err := NewSnapshotCache(8)
	require.NoError(t, err)
	defer c.Close()

	_, ok := c.Get()
	require.False(t, ok)
}

func TestSnapshotCache_SetThenGet(t *testing.T) {
	c, err := NewSnapshotCache(8)
	require.NoError(t, err)
	defer c.Close()

	snap := domain.RateSnapshot{
		"USD": {NumCode: "840", Name: "US Dollar", Value: 90.5, Nominal: 1},
	}
	c.Set(snap)

	got, ok := c.Get()
	require.True(t, ok)
	require.Equal(t, snap, got)
}

func TestSnapshotCache_TinyCapacityStillAdmits(t *testing.T) {
	c, err := NewSnapshotCache(1)
	require.NoError(t, err)
	defer c.Close()

	snap := domain.RateSnapshot{
		"EUR": {NumCode: "978", Name: "Euro", Value: 98.7, Nominal: 1},
	}
	c.Set(snap)

	got, ok := c.Get()
	require.True(t, ok)
	require.Equal(t, snap, got)
}

func TestSnapshotCache_LatestWins(t *testing.T) {
	c, err := NewSnapshotCache(8)
	require.NoError(t, err)
	defer c.Close()

	c.Set(domain.RateSnapshot{"USD": {NumCode: "840", Name: "US Dollar", Value: 90.5, Nominal: 1}})
	c.Set(domain.RateSnapshot{"USD": {NumCode: "840", Name: "US Dollar", Value: 91.0, Nominal: 1}})

	got, ok := c.Get()
	require.True(t, ok)
	require.Equal(t, 91.0, got["USD"].Value)
}
