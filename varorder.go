// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"sort"

	"github.com/pkg/errors"
)

// VarLabel is an opaque, densely numbered variable identifier. Equality and
// hashing are by integer value.
type VarLabel uint32

// VarOrder is a bijection between variables and positions 0..N. It is total
// and immutable once a BDD references it, except that new variables may
// always be appended or inserted; existing variables are never reordered.
type VarOrder struct {
	levelToVar []VarLabel
	varToLevel map[VarLabel]int
	nextLabel  VarLabel
}

// NewVarOrder returns an empty variable order.
func NewVarOrder() *VarOrder {
	return &VarOrder{
		levelToVar: nil,
		varToLevel: make(map[VarLabel]int),
	}
}

// NewLinearVarOrder returns a variable order of n variables, where variable i
// sits at position i (the identity order).
func NewLinearVarOrder(n int) *VarOrder {
	o := &VarOrder{
		levelToVar: make([]VarLabel, n),
		varToLevel: make(map[VarLabel]int, n),
		nextLabel:  VarLabel(n),
	}
	for i := 0; i < n; i++ {
		o.levelToVar[i] = VarLabel(i)
		o.varToLevel[VarLabel(i)] = i
	}
	return o
}

// Len returns the number of variables known to this order.
func (o *VarOrder) Len() int { return len(o.levelToVar) }

// Level returns the position of v in the order.
func (o *VarOrder) Level(v VarLabel) int {
	lvl, ok := o.varToLevel[v]
	if !ok {
		panic(errors.Errorf("bdd: varorder: unknown variable %d", v))
	}
	return lvl
}

// VarAtLevel returns the variable at position i.
func (o *VarOrder) VarAtLevel(i int) VarLabel {
	if i < 0 || i >= len(o.levelToVar) {
		panic(errors.Errorf("bdd: varorder: level %d out of range", i))
	}
	return o.levelToVar[i]
}

// Lt is the strict order induced by variable position: Lt(a,b) holds iff a
// comes before b.
func (o *VarOrder) Lt(a, b VarLabel) bool {
	return o.Level(a) < o.Level(b)
}

// AppendVar appends a fresh variable at the end of the order and returns it.
func (o *VarOrder) AppendVar() VarLabel {
	v := o.nextLabel
	o.nextLabel++
	o.levelToVar = append(o.levelToVar, v)
	o.varToLevel[v] = len(o.levelToVar) - 1
	return v
}

// InsertVarAtLevel inserts a fresh variable at position i, shifting every
// variable currently at or after i one position later. The shift keeps the
// relative order of every existing variable, so it never invalidates an
// existing node's ordering invariant.
func (o *VarOrder) InsertVarAtLevel(i int) VarLabel {
	if i < 0 || i > len(o.levelToVar) {
		panic(errors.Errorf("bdd: varorder: insert position %d out of range", i))
	}
	v := o.nextLabel
	o.nextLabel++
	o.levelToVar = append(o.levelToVar, 0)
	copy(o.levelToVar[i+1:], o.levelToVar[i:])
	o.levelToVar[i] = v
	for lvl := i; lvl < len(o.levelToVar); lvl++ {
		o.varToLevel[o.levelToVar[lvl]] = lvl
	}
	return v
}

// minVar returns whichever of a, b has the smaller level; used to find the
// first essential variable during Shannon expansion.
func (o *VarOrder) minVar(a, b VarLabel) VarLabel {
	if o.Lt(a, b) {
		return a
	}
	return b
}

// sortVarLabels sorts vars in place by increasing position in o.
func sortVarLabels(vars []VarLabel, o *VarOrder) {
	sort.Slice(vars, func(i, j int) bool { return o.Lt(vars[i], vars[j]) })
}
