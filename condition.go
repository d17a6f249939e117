// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// Condition returns bdd with variable v fixed to val. It is a recursive
// walk with a local memo held in each visited node's scratch slot, cleared
// on return, per spec.md §4.4. Grounded on the teacher's operations.go
// (quant/appquant's recursive-memo walking style) and on
// original_source/robdd.rs's condition_essential for the exact per-node
// rule.
func (m *Manager) Condition(ptr BddPtr, v VarLabel, val bool) BddPtr {
	m.clearScratch()
	result := m.condition(ptr, v, val)
	m.clearScratch()
	return result
}

func (m *Manager) condition(p BddPtr, v VarLabel, val bool) BddPtr {
	if p.IsConst() {
		return p
	}
	n := &m.arena[p.idx]
	if m.order.Lt(v, n.Var) {
		// We've passed v in the order: v cannot appear below, bdd unchanged.
		return p
	}
	if n.Var == v {
		var child BddPtr
		if val {
			child = n.High
		} else {
			child = n.Low
		}
		if p.compl {
			return child.Neg()
		}
		return child
	}
	if cached, ok := m.scratchGet(p.idx); ok {
		reg := cached.(BddPtr)
		if p.compl {
			return reg.Neg()
		}
		return reg
	}
	newLow := m.condition(n.Low, v, val)
	newHigh := m.condition(n.High, v, val)
	var result BddPtr
	if newLow == n.Low && newHigh == n.High {
		result = BddPtr{idx: p.idx}
	} else {
		result = m.getOrInsertCanonical(n.Var, newLow, newHigh)
	}
	m.scratchSet(p.idx, result)
	if p.compl {
		return result.Neg()
	}
	return result
}

// Exists returns ∃v. bdd = condition(bdd,v,T) ∨ condition(bdd,v,F).
func (m *Manager) Exists(ptr BddPtr, v VarLabel) BddPtr {
	pos := m.Condition(ptr, v, true)
	neg := m.Condition(ptr, v, false)
	return m.Or(pos, neg)
}

// Compose substitutes variable v by bdd g inside f: ite(g, f|v=T, f|v=F).
func (m *Manager) Compose(f BddPtr, v VarLabel, g BddPtr) BddPtr {
	ft := m.Condition(f, v, true)
	ff := m.Condition(f, v, false)
	return m.Ite(g, ft, ff)
}

// Smooth returns a BDD of the same Boolean function whose every
// root-to-leaf path mentions all of the first n variables (by position) in
// order. For each missing variable u at position i, the subgraph at level
// i is replaced with a node (u, child, child). Grounded on
// original_source/robdd.rs's smooth_helper(current, total); the teacher has
// no smoothing operation, so this is recovered from the original source per
// this module's supplement-dropped-features mandate.
//
// n is taken literally as the total variable count to smooth over (not
// derived from the BDD's own support), matching spec.md's literal
// signature and resolving the open question recorded in DESIGN.md;
// Manager.Support lets a caller compute n from a BDD's own variables when
// that is the contract they want instead.
func (m *Manager) Smooth(ptr BddPtr, n int) BddPtr {
	m.clearScratch()
	result := m.smooth(ptr, 0, n)
	m.clearScratch()
	return result
}

func (m *Manager) smooth(p BddPtr, level, total int) BddPtr {
	if p.IsConst() {
		return m.smoothConst(p, level, total)
	}
	if level >= total {
		return p
	}
	nd := &m.arena[p.idx]
	varLevel := m.order.Level(nd.Var)
	if varLevel == level {
		if cached, ok := m.scratchGet(p.idx); ok {
			res := cached.(BddPtr)
			if p.compl {
				return res.Neg()
			}
			return res
		}
		newLow := m.smooth(nd.Low, level+1, total)
		newHigh := m.smooth(nd.High, level+1, total)
		result := m.getOrInsertCanonical(nd.Var, newLow, newHigh)
		m.scratchSet(p.idx, result)
		if p.compl {
			return result.Neg()
		}
		return result
	}
	// Missing variable at this level: wrap with (u, child, child) and
	// continue smoothing deeper levels on the unchanged child.
	u := m.order.VarAtLevel(level)
	child := m.smooth(p, level+1, total)
	return m.getOrInsertCanonical(u, child, child)
}

// smoothConst wraps a terminal reached before all `total` levels have been
// accounted for with (var, child, child) nodes for every missing level,
// innermost (closest to the leaf) first.
func (m *Manager) smoothConst(p BddPtr, level, total int) BddPtr {
	acc := p
	for i := total - 1; i >= level; i-- {
		u := m.order.VarAtLevel(i)
		acc = m.getOrInsertCanonical(u, acc, acc)
	}
	return acc
}
