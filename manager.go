// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "time"

// Manager owns a node arena, a unique table, an ITE apply cache, and the
// variable order for one independent BDD universe. All state is mutated
// through interior mutability and a Manager is not safe for concurrent use
// from multiple goroutines; independent managers may run in parallel, each
// owning its own arena (spec.md §5).
type Manager struct {
	order *VarOrder
	arena []bddNode
	uniq  *table
	cache *iteCache
	cfg   *config

	varPtr []BddPtr // label -> canonical positive-literal BddPtr

	scratchGen uint64

	startTime         time.Time
	timeLimit         time.Duration
	timeLimitExceeded bool

	numRecursiveCalls int64
}

// New returns a Manager over the given variable order.
func New(order *VarOrder, opts ...Option) (*Manager, error) {
	if order == nil {
		order = NewVarOrder()
	}
	cfg := makeconfig(order.Len())
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = newDefaultLogger()
	}
	m := &Manager{
		order: order,
		// index 0 and 1 are the reserved False/True sentinels; arena[0] and
		// arena[1] are never read (BddPtr never stores idx<2 without being
		// one of the two terminal constants), but are kept so that arena
		// indices line up 1:1 with table-stored indices.
		arena:     make([]bddNode, 2, cfg.nodesize),
		uniq:      newTable(cfg.nodesize),
		cache:     newIteCache(cfg.cachesize),
		cfg:       cfg,
		startTime: time.Now(),
		timeLimit: cfg.timeLimit,
	}
	m.varPtr = make([]BddPtr, order.Len())
	for i := 0; i < order.Len(); i++ {
		m.varPtr[i] = m.internVar(VarLabel(i))
	}
	return m, nil
}

// NewLinear returns a Manager with numVars variables in the identity order
// (variable i at position i), grounded on the teacher's New(varnum, ...).
func NewLinear(numVars int, opts ...Option) (*Manager, error) {
	return New(NewLinearVarOrder(numVars), opts...)
}

func (m *Manager) internVar(v VarLabel) BddPtr {
	idx := m.getOrInsert(v, BddFalse, BddTrue)
	return BddPtr{idx: idx}
}

// NewLabel declares a fresh variable, appended after every previously
// declared variable, and returns its label.
func (m *Manager) NewLabel() VarLabel {
	v := m.order.AppendVar()
	m.varPtr = append(m.varPtr, BddPtr{})
	m.varPtr[v] = m.internVar(v)
	return v
}

// NewVar declares a fresh variable and returns its positive (polarity=true)
// or negative (polarity=false) literal.
func (m *Manager) NewVar(polarity bool) BddPtr {
	v := m.NewLabel()
	return m.Var(v, polarity)
}

// NewVarAtPosition declares a fresh variable at position i of the order
// (shifting later variables), and returns its literal. Variables may only
// be appended or inserted ahead of the current frontier, never reordered
// relative to an already-built node.
func (m *Manager) NewVarAtPosition(i int, polarity bool) BddPtr {
	v := m.order.InsertVarAtLevel(i)
	if int(v) >= len(m.varPtr) {
		grown := make([]BddPtr, v+1)
		copy(grown, m.varPtr)
		m.varPtr = grown
	}
	m.varPtr[v] = m.internVar(v)
	return m.Var(v, polarity)
}

// Var returns the literal for v with the given polarity.
func (m *Manager) Var(v VarLabel, polarity bool) BddPtr {
	if int(v) >= len(m.varPtr) {
		precondition("unknown-variable", "bdd: variable %d was never declared", v)
	}
	p := m.varPtr[v]
	if polarity {
		return p
	}
	return p.Neg()
}

// True returns the tautology constant.
func (m *Manager) True() BddPtr { return BddTrue }

// False returns the unsatisfiable constant.
func (m *Manager) False() BddPtr { return BddFalse }

// Eq reports whether a and b represent the same Boolean function: sound and
// complete canonical-pointer equality, per spec.md §8 law 1.
func (m *Manager) Eq(a, b BddPtr) bool { return a == b }

// HasVariable reports whether v appears as a test in the DAG rooted at ptr.
func (m *Manager) HasVariable(ptr BddPtr, v VarLabel) bool {
	if ptr.IsConst() {
		return false
	}
	n := &m.arena[ptr.idx]
	if n.Var == v {
		return true
	}
	if m.order.Lt(v, n.Var) {
		return false
	}
	return m.HasVariable(n.lowRaw(), v) || m.HasVariable(n.highRaw(), v)
}

// lowRaw/highRaw on bddNode are defined here (rather than node.go) since
// they are the manager-facing half of the complement-edge accessor split
// spec.md §4.2 describes: raw accessors return stored children unmodified.
func (n *bddNode) lowRaw() BddPtr  { return n.Low }
func (n *bddNode) highRaw() BddPtr { return n.High }

// low/high apply this edge's own parity to the stored children, per
// spec.md §4.2's second accessor form.
func (m *Manager) low(p BddPtr) BddPtr {
	n := &m.arena[p.idx]
	if p.compl {
		return n.Low.Neg()
	}
	return n.Low
}

func (m *Manager) high(p BddPtr) BddPtr {
	n := &m.arena[p.idx]
	if p.compl {
		return n.High.Neg()
	}
	return n.High
}

func (m *Manager) varOf(p BddPtr) VarLabel {
	return m.arena[p.idx].Var
}

// NumRecursiveCalls returns the number of ite recursions performed so far,
// a simple work counter used by tests and Stats.
func (m *Manager) NumRecursiveCalls() int64 { return m.numRecursiveCalls }

// StartTimeLimit (re)starts the cooperative time budget installed via
// WithTimeLimit, or with the given duration if none was configured.
func (m *Manager) StartTimeLimit(d time.Duration) {
	m.timeLimit = d
	m.startTime = time.Now()
	m.timeLimitExceeded = false
}

// StopTimeLimit disables the time budget.
func (m *Manager) StopTimeLimit() {
	m.timeLimit = 0
	m.timeLimitExceeded = false
}

// TimeLimitExceeded reports whether ite has bailed out with the time-budget
// sentinel since the limit was last (re)started. Callers must check this to
// distinguish a genuine False result from a cancelled one (spec.md §7).
func (m *Manager) TimeLimitExceeded() bool { return m.timeLimitExceeded }

func (m *Manager) timeBudgetExpired() bool {
	if m.timeLimit == 0 {
		return false
	}
	if time.Since(m.startTime) > m.timeLimit {
		m.timeLimitExceeded = true
		return true
	}
	return false
}

// getOrInsert implements the unique table's single operation (spec.md
// §4.1): returns the arena index of the canonical node for (v, low, high),
// allocating and interning a fresh one if none exists yet. It does not
// apply complement-edge canonicalization — callers needing (C2) use
// getOrInsertCanonical.
func (m *Manager) getOrInsert(v VarLabel, low, high BddPtr) nodeIdx {
	if idx, ok := m.uniq.find(m.arena, v, low, high); ok {
		return idx
	}
	if m.uniq.loadFactor() > 0.7 {
		m.growTable()
	}
	idx := nodeIdx(len(m.arena))
	m.arena = append(m.arena, bddNode{Var: v, Low: low, High: high})
	m.uniq.insert(m.arena, idx)
	return idx
}

// getOrInsertCanonical implements (C2): the high edge of a stored node is
// never complemented and never False. When a caller's (low, high) would
// violate that, the De Morgan dual is stored instead and a complement edge
// is returned to the caller.
func (m *Manager) getOrInsertCanonical(v VarLabel, low, high BddPtr) BddPtr {
	if high.IsComplemented() || high.IsFalse() {
		idx := m.getOrInsert(v, low.Neg(), high.Neg())
		return BddPtr{idx: idx, compl: true}
	}
	idx := m.getOrInsert(v, low, high)
	return BddPtr{idx: idx}
}

func (m *Manager) growTable() {
	oldSize := len(m.uniq.slots)
	newSize := primeGte(2 * oldSize)
	if m.cfg.maxnodeincrease > 0 && newSize > oldSize+m.cfg.maxnodeincrease {
		newSize = primeGte(oldSize + m.cfg.maxnodeincrease)
	}
	if m.cfg.maxnodesize > 0 && newSize > m.cfg.maxnodesize {
		newSize = m.cfg.maxnodesize
	}
	nt := rehashInto(m.arena, newSize)
	for idx := nodeIdx(2); int(idx) < len(m.arena); idx++ {
		nt.insert(m.arena, idx)
	}
	m.cfg.logger.Debugw("unique table resized", "oldSize", len(m.uniq.slots), "newSize", newSize)
	m.uniq = nt
}

// Support returns the set of variables appearing in the DAG rooted at ptr,
// in order-position order. It is exposed so callers of Smooth can derive
// "the BDD's total variable count" from the diagram itself rather than
// hardcoding it, resolving the smoothing open question recorded in
// DESIGN.md.
func (m *Manager) Support(ptr BddPtr) []VarLabel {
	seen := make(map[VarLabel]bool)
	var walk func(p BddPtr)
	visited := make(map[nodeIdx]bool)
	walk = func(p BddPtr) {
		if p.IsConst() || visited[p.idx] {
			return
		}
		visited[p.idx] = true
		n := &m.arena[p.idx]
		seen[n.Var] = true
		walk(n.Low)
		walk(n.High)
	}
	walk(ptr)
	out := make([]VarLabel, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sortVarLabels(out, m.order)
	return out
}
