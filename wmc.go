// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// WmcParams holds, for a semiring S, a per-variable (low_weight,
// high_weight) pair used by Wmc's fold. Grounded directly on
// original_source/wmc.rs's WmcParams<T: Semiring>.
type WmcParams[S any] struct {
	Zero, One S
	varToVal  []*[2]S
}

// NewWmcParams returns an empty WmcParams over the given semiring's zero
// and one elements.
func NewWmcParams[S any](zero, one S) *WmcParams[S] {
	return &WmcParams[S]{Zero: zero, One: one}
}

// SetWeight assigns the (low, high) weight pair for variable lbl.
func (p *WmcParams[S]) SetWeight(lbl VarLabel, low, high S) {
	if int(lbl) >= len(p.varToVal) {
		grown := make([]*[2]S, lbl+1)
		copy(grown, p.varToVal)
		p.varToVal = grown
	}
	p.varToVal[lbl] = &[2]S{low, high}
}

// GetVarWeight returns the (low, high) weight pair for lbl. Reading an
// unassigned variable is a precondition violation, per spec.md §3.
func (p *WmcParams[S]) GetVarWeight(lbl VarLabel) (low, high S) {
	if int(lbl) >= len(p.varToVal) || p.varToVal[lbl] == nil {
		precondition("unweighted-variable", "bdd: no weight assigned to variable %d", lbl)
	}
	w := p.varToVal[lbl]
	return w[0], w[1]
}

// GetWeight folds the product of the weights selected by assignment (each
// Decision picks the high or low weight of its variable), starting from
// One. Unmentioned variables contribute nothing, matching
// original_source/wmc.rs's get_weight(assgn).
func (p *WmcParams[S]) GetWeight(sr Semiring[S], assignment []Decision) S {
	acc := p.One
	for _, d := range assignment {
		lo, hi := p.GetVarWeight(d.Var)
		if d.Polarity {
			acc = sr.Mul(acc, hi)
		} else {
			acc = sr.Mul(acc, lo)
		}
	}
	return acc
}

// wmcSlot is the scratch value Wmc stores per visited node: up to one
// cached result per edge parity, since a semiring element generally cannot
// be derived from its opposite-parity sibling the way a BddPtr can (O(1)
// Neg), per spec.md §4.5/§9.
type wmcSlot[S any] struct {
	hasReg, hasCompl bool
	reg, compl       S
}

// Wmc computes the weighted model count of ptr under params, generalized
// over any Semiring. This is a package-level function rather than a method
// on *Manager because Go forbids a new type parameter on a method of a
// non-generic receiver. Grounded on original_source/wmc.rs's get_weight
// fold and spec.md §4.5's pseudocode.
func Wmc[S any](m *Manager, ptr BddPtr, params *WmcParams[S], sr Semiring[S]) S {
	m.clearScratch()
	result := wmcFold(m, ptr, params, sr)
	m.clearScratch()
	return result
}

func wmcFold[S any](m *Manager, p BddPtr, params *WmcParams[S], sr Semiring[S]) S {
	if p.IsTrue() {
		return params.One
	}
	if p.IsFalse() {
		return params.Zero
	}
	if cached, ok := m.scratchGet(p.idx); ok {
		slot := cached.(*wmcSlot[S])
		if p.compl && slot.hasCompl {
			return slot.compl
		}
		if !p.compl && slot.hasReg {
			return slot.reg
		}
	}

	n := &m.arena[p.idx]
	lowChild, highChild := n.Low, n.High
	if p.compl {
		lowChild, highChild = lowChild.Neg(), highChild.Neg()
	}
	lowVal := wmcFold(m, lowChild, params, sr)
	highVal := wmcFold(m, highChild, params, sr)
	loW, hiW := params.GetVarWeight(n.Var)
	result := sr.Add(sr.Mul(loW, lowVal), sr.Mul(hiW, highVal))

	var slot *wmcSlot[S]
	if cached, ok := m.scratchGet(p.idx); ok {
		slot = cached.(*wmcSlot[S])
	} else {
		slot = &wmcSlot[S]{}
	}
	if p.compl {
		slot.hasCompl, slot.compl = true, result
	} else {
		slot.hasReg, slot.reg = true, result
	}
	m.scratchSet(p.idx, slot)
	return result
}
