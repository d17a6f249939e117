// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// Permutation is a variable renaming used by Replace: a partial mapping
// from old labels to new ones. Grounded on the teacher's replace.go
// Replacer/NewReplacer, generalized to handle renamings that change
// relative variable order (see Replace).
type Permutation struct {
	mapping map[VarLabel]VarLabel
}

// NewPermutation builds a Permutation renaming each from[i] to to[i].
func NewPermutation(from, to []VarLabel) *Permutation {
	if len(from) != len(to) {
		precondition("replace-mismatched-lengths", "bdd: NewPermutation: %d old labels but %d new labels", len(from), len(to))
	}
	p := &Permutation{mapping: make(map[VarLabel]VarLabel, len(from))}
	for i := range from {
		p.mapping[from[i]] = to[i]
	}
	return p
}

func (p *Permutation) apply(v VarLabel) VarLabel {
	if nv, ok := p.mapping[v]; ok {
		return nv
	}
	return v
}

// Replace renames variables in ptr according to perm, returning a BDD over
// the renamed variables. Grounded on the teacher's Replace/correctify
// (operations.go), which also had to handle a renaming disturbing the
// variable order; this implementation reuses Ite itself to rebuild each
// renamed node, since Shannon expansion already resolves whichever
// variable among {newVar, newLow's top, newHigh's top} is least in the
// order — exactly the re-sorting correctify performed by hand.
func (m *Manager) Replace(ptr BddPtr, perm *Permutation) BddPtr {
	m.clearScratch()
	result := m.replace(ptr, perm)
	m.clearScratch()
	return result
}

func (m *Manager) replace(p BddPtr, perm *Permutation) BddPtr {
	if p.IsConst() {
		return p
	}
	if cached, ok := m.scratchGet(p.idx); ok {
		reg := cached.(BddPtr)
		if p.compl {
			return reg.Neg()
		}
		return reg
	}
	n := &m.arena[p.idx]
	newVar := perm.apply(n.Var)
	newLow := m.replace(n.Low, perm)
	newHigh := m.replace(n.High, perm)
	result := m.Ite(m.Var(newVar, true), newHigh, newLow)
	m.scratchSet(p.idx, result)
	if p.compl {
		return result.Neg()
	}
	return result
}
