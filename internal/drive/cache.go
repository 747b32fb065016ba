package drive

import (
	"sync"

	"github.com/chewxy/math32"

	"github.com/gogpu/curve3d"
)

// tableKey identifies an arc table by curve shape and precision. The cached
// length does not affect the table, so it is not part of the key.
type tableKey struct {
	points  [curve3d.NumPoints]curve3d.Vec3
	samples int
}

type tableEntry struct {
	table *ArcTable
	atime int64
}

// TableCache shares arc tables between followers on identical segments.
// When it grows past its soft limit, the least recently used quarter is
// evicted.
//
// TableCache is safe for concurrent use and must not be copied.
type TableCache struct {
	mu        sync.Mutex
	entries   map[tableKey]*tableEntry
	softLimit int
	tick      int64
	hits      uint64
	misses    uint64
}

// NewTableCache creates a cache. A softLimit of 0 means unlimited.
func NewTableCache(softLimit int) *TableCache {
	return &TableCache{
		entries:   make(map[tableKey]*tableEntry),
		softLimit: softLimit,
	}
}

// Table returns the arc table for seg at the given precision, building it
// on first use. Segments with NaN or infinite coordinates never compare
// equal to their own key, so their tables are built fresh and not stored.
func (c *TableCache) Table(seg curve3d.Segment, samples int) *ArcTable {
	key := tableKey{points: seg.Points(), samples: samples}
	if !finite(key.points) {
		c.mu.Lock()
		c.misses++
		c.mu.Unlock()
		return NewArcTable(seg, samples)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	if e, ok := c.entries[key]; ok {
		e.atime = c.tick
		c.hits++
		return e.table
	}

	c.misses++
	table := NewArcTable(seg, samples)
	c.entries[key] = &tableEntry{table: table, atime: c.tick}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
	return table
}

// Follow creates a follower at the start of seg backed by a cached table.
func (c *TableCache) Follow(seg curve3d.Segment, samples int, wheel *Wheel) *Follower {
	return &Follower{seg: seg, table: c.Table(seg, samples), wheel: wheel}
}

// Len returns the number of cached tables.
func (c *TableCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns the hit and miss counters.
func (c *TableCache) Stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// evictOldest drops entries down to three quarters of the soft limit.
// Caller must hold c.mu.
func (c *TableCache) evictOldest() {
	target := max(c.softLimit*3/4, 1)
	for len(c.entries) > target {
		var (
			oldest tableKey
			atime  int64 = -1
		)
		for k, e := range c.entries {
			if atime < 0 || e.atime < atime {
				oldest, atime = k, e.atime
			}
		}
		delete(c.entries, oldest)
	}
	curve3d.Logger().Debug("drive: evicted arc tables", "remaining", len(c.entries))
}

func finite(points [curve3d.NumPoints]curve3d.Vec3) bool {
	for _, p := range points {
		for _, v := range [3]float32{p.X, p.Y, p.Z} {
			if math32.IsNaN(v) || math32.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}
