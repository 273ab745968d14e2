package cache

import (
	"sync"

	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/ledger"
	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/metrics"
)

type rowKey struct {
	customer  string
	completed bool
}

// RowCache memoizes flattened order rows per customer. Both entries for a
// customer are dropped on any mutation of that customer's ledger.
type RowCache struct {
	mu    sync.RWMutex
	cache map[rowKey][]ledger.Row
}

func NewRowCache() *RowCache {
	return &RowCache{cache: make(map[rowKey][]ledger.Row)}
}

func (c *RowCache) Get(customer string, completed bool) ([]ledger.Row, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rows, found := c.cache[rowKey{customer: customer, completed: completed}]
	if !found {
		return nil, false
	}
	out := make([]ledger.Row, len(rows))
	copy(out, rows)
	return out, true
}

func (c *RowCache) Set(customer string, completed bool, rows []ledger.Row) {
	c.mu.Lock()
	defer c.mu.Unlock()
	stored := make([]ledger.Row, len(rows))
	copy(stored, rows)
	c.cache[rowKey{customer: customer, completed: completed}] = stored
	metrics.RowCacheEntries.Set(float64(len(c.cache)))
}

func (c *RowCache) Invalidate(customer string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.cache, rowKey{customer: customer, completed: false})
	delete(c.cache, rowKey{customer: customer, completed: true})
	metrics.RowCacheEntries.Set(float64(len(c.cache)))
}
