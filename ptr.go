// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// nodeIdx indexes into a Manager's node arena. Indices falseIdx/trueIdx are
// reserved sentinels, exactly as the teacher's node arena reserves indices
// 0/1 for the False/True constants.
type nodeIdx int32

const (
	falseIdx nodeIdx = 0
	trueIdx  nodeIdx = 1
)

// BddPtr is a tagged pointer: either of the two constants, or a (possibly
// complemented) edge to a BddNode stored in the manager's arena. A
// complemented edge represents the Boolean negation of the function rooted
// at the target node.
type BddPtr struct {
	idx   nodeIdx
	compl bool
}

// BddTrue is the tautology constant.
var BddTrue = BddPtr{idx: trueIdx}

// BddFalse is the unsatisfiable constant.
var BddFalse = BddPtr{idx: falseIdx}

// IsConst reports whether p is one of the two terminal constants.
func (p BddPtr) IsConst() bool {
	return p.idx == falseIdx || p.idx == trueIdx
}

// IsTrue reports whether p is exactly the True constant.
func (p BddPtr) IsTrue() bool {
	return p == BddTrue
}

// IsFalse reports whether p is exactly the False constant.
func (p BddPtr) IsFalse() bool {
	return p == BddFalse
}

// IsComplemented reports whether p carries a complement tag.
func (p BddPtr) IsComplemented() bool {
	return p.compl
}

// Neg returns the Boolean negation of p. This is O(1): it flips the tag
// between regular and complemented (and swaps the two terminal constants)
// without touching the DAG.
func (p BddPtr) Neg() BddPtr {
	if p.idx == falseIdx {
		return BddTrue
	}
	if p.idx == trueIdx {
		return BddFalse
	}
	return BddPtr{idx: p.idx, compl: !p.compl}
}

// regular returns the non-complemented version of p, used as an arena/cache
// addressing key (Compl(x) and Reg(x) still hash distinctly via the compl
// bit carried alongside, per spec.md's hashing note).
func (p BddPtr) regular() BddPtr {
	return BddPtr{idx: p.idx}
}

// bits returns a stable integer encoding of the tagged pointer, used by the
// unique table and apply cache as a hash input so that Compl(x) and Reg(x)
// hash distinctly.
func (p BddPtr) bits() int64 {
	b := int64(p.idx) << 1
	if p.compl {
		b |= 1
	}
	return b
}

// Decision is a single (variable, branch-taken) pair, used to describe a
// satisfying path returned by TopKPaths or a sampled assignment.
type Decision struct {
	Var      VarLabel
	Polarity bool
}
