// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// table is the unique table (hash-cons): a variable-indexed open-addressed
// hash table mapping (var, low, high) to the arena index of its canonical
// bddNode, with linear probing on collision. Nodes themselves live in the
// manager's arena (m.arena); table only stores indices, so arena addresses
// stay stable across a table resize (only the index array moves), per
// spec.md §4.1.
//
// This consolidates the teacher's two alternate backends — hudd.go's Go-map
// unique table and buddy.go/bkernel.go's manual hash+chain arrays — into the
// single open-addressed linear-probing scheme spec.md names explicitly.
type table struct {
	slots    []nodeIdx // -1 marks an empty slot
	occupied int
}

const emptySlot nodeIdx = -1

func newTable(size int) *table {
	size = primeGte(size)
	t := &table{slots: make([]nodeIdx, size)}
	for i := range t.slots {
		t.slots[i] = emptySlot
	}
	return t
}

func (t *table) loadFactor() float64 {
	return float64(t.occupied) / float64(len(t.slots))
}

// hashTriple mixes (var, low.bits(), high.bits()) into a table slot using
// the teacher's Cantor-pairing-style mixing (cache.go's _TRIPLE/_PAIR),
// reduced modulo the table size.
func hashTriple(v VarLabel, low, high BddPtr, size int) int {
	return tripleMix(int64(v), low.bits(), high.bits(), size)
}

func tripleMix(a, b, c int64, size int) int {
	return pairMix(c, pairMix(a, b, size), size)
}

func pairMix(a, b int64, size int) int {
	ua := uint64(a)
	ub := uint64(b)
	return int((((ua+ub)*(ua+ub+1))/2 + ua) % uint64(size))
}

// find probes t for (v, low, high), returning the arena index of the match
// and true, or (0, false) if absent. arena is consulted to compare candidate
// slots by value (open addressing never stores the key itself, only the
// index, to keep the table small).
func (t *table) find(arena []bddNode, v VarLabel, low, high BddPtr) (nodeIdx, bool) {
	size := len(t.slots)
	h := hashTriple(v, low, high, size)
	for probe := 0; probe < size; probe++ {
		slot := (h + probe) % size
		idx := t.slots[slot]
		if idx == emptySlot {
			return 0, false
		}
		n := &arena[idx]
		if n.Var == v && n.Low == low && n.High == high {
			return idx, true
		}
	}
	return 0, false
}

// insert records that the canonical node for (v, low, high) lives at idx.
// Callers must have already verified via find that no entry exists.
func (t *table) insert(arena []bddNode, idx nodeIdx) {
	n := &arena[idx]
	size := len(t.slots)
	h := hashTriple(n.Var, n.Low, n.High, size)
	for probe := 0; probe < size; probe++ {
		slot := (h + probe) % size
		if t.slots[slot] == emptySlot {
			t.slots[slot] = idx
			t.occupied++
			return
		}
	}
	panic("bdd: unique table: no empty slot found after resize check")
}

// rehashInto returns a fresh, empty table of newSize slots; the caller
// (Manager.growTable) re-inserts every arena node into it. Arena addresses
// are untouched, only the index array moves, per spec.md §4.1.
func rehashInto(arena []bddNode, newSize int) *table {
	nt := newTable(newSize)
	nt.occupied = 0
	return nt
}
