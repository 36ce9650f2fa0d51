package cache

import (
	"fmt"

	"currencymon/internal/domain"

	"github.com/dgraph-io/ristretto"
)

const snapshotKey = "rates:last-good"

// RistrettoSnapshotCache remembers the last snapshot successfully fetched
// from the live feed. The reconciler reads it when the feed is down, so stale
// real data wins over the built-in table.
type RistrettoSnapshotCache struct {
	cache *ristretto.Cache
}

func NewSnapshotCache(maxItems int64) (*RistrettoSnapshotCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
		// entries are counted, not sized; without this ristretto adds its
		// per-entry metadata bytes to the cost and rejects every Set
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create snapshot cache failed: %w", err)
	}
	return &RistrettoSnapshotCache{cache: c}, nil
}

func (c *RistrettoSnapshotCache) Get() (domain.RateSnapshot, bool) {
	v, ok := c.cache.Get(snapshotKey)
	if !ok {
		return nil, false
	}
	snap, ok := v.(domain.RateSnapshot)
	return snap, ok && len(snap) > 0
}

func (c *RistrettoSnapshotCache) Set(snap domain.RateSnapshot) {
	c.cache.Set(snapshotKey, snap, 1)
	// ristretto admits writes asynchronously, Wait makes the snapshot
	// visible to the next fallback read
	c.cache.Wait()
}

func (c *RistrettoSnapshotCache) Close() { c.cache.Close() }
