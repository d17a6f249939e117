// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"fmt"
	"unsafe"
)

// iteEntry is one slot of the apply cache: a ternary ITE fingerprint (f,g,h)
// and its cached result. An empty slot is distinguished by fSet == false,
// since BddPtr's zero value (falseIdx, uncomplemented) is itself a valid key.
type iteEntry struct {
	f, g, h BddPtr
	res     BddPtr
	fSet    bool
}

// iteCache is the ternary apply cache from spec.md §4.3: a lossy,
// fixed-capacity hash table keyed by the normalized ITE triple. On
// collision the older entry is simply overwritten — there is no LRU, and
// none is needed, because the unique table alone is always sufficient to
// recompute a lost entry (spec.md §5). Grounded on the teacher's
// cache.go itecache/data4ncache, generalized from raw int indices to
// tagged BddPtr keys (the teacher had no complement edges to fingerprint).
type iteCache struct {
	table  []iteEntry
	hits   int64
	misses int64
}

func newIteCache(size int) *iteCache {
	size = primeGte(size)
	return &iteCache{table: make([]iteEntry, size)}
}

func (c *iteCache) slot(f, g, h BddPtr) int {
	return tripleMix(f.bits(), g.bits(), h.bits(), len(c.table))
}

// lookup returns the cached result for (f,g,h) and true if present.
func (c *iteCache) lookup(f, g, h BddPtr) (BddPtr, bool) {
	e := &c.table[c.slot(f, g, h)]
	if e.fSet && e.f == f && e.g == g && e.h == h {
		c.hits++
		return e.res, true
	}
	c.misses++
	return BddPtr{}, false
}

// store records (f,g,h) -> res, overwriting whatever was in that slot.
func (c *iteCache) store(f, g, h, res BddPtr) {
	c.table[c.slot(f, g, h)] = iteEntry{f: f, g: g, h: h, res: res, fSet: true}
}

func (c *iteCache) String() string {
	total := c.hits + c.misses
	var hitPct float64
	if total > 0 {
		hitPct = (float64(c.hits) * 100) / float64(total)
	}
	return fmt.Sprintf("== ITE cache    %d (%d bytes/entry)\n Hits: %d (%.1f%%)\n Miss: %d\n",
		len(c.table), unsafe.Sizeof(iteEntry{}), c.hits, hitPct, c.misses)
}
