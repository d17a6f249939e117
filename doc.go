// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package bdd implements Reduced Ordered Binary Decision Diagrams (ROBDDs) with
complement edges, and weighted model counting (WMC) parameterized over an
arbitrary semiring.

Basics

A Manager owns a fixed-growth arena of nodes and a unique table enforcing
structural canonicity: for a given variable order, two BDDs represent the
same Boolean function if and only if their root BddPtr values are equal.
Edges may be complemented, halving the number of distinct nodes needed to
represent a function and its negation (negation is then a constant-time tag
flip rather than a DAG rewrite).

Variables are declared on a Manager with NewVar/NewVarAtPosition, or all at
once with NewLinear; they may only be appended, never reordered.

Weighted model counting

The Wmc function folds a BddPtr bottom-up under a WmcParams, generalized
over any Semiring: real-valued WMC, exact counting over a finite field,
tropical (max-weight path), boolean, expectation, and dual-number
(forward-mode automatic differentiation) semirings are all provided by this
package and share the same fold.

Use of build tags

Verbose internal logging (unique-table growth, cache statistics) is
suppressed by default. Building with the `debug` tag raises the package
logger to debug level.

Automatic memory management

The library is written in pure Go, without CGo. Unlike a reference-counted
BDD package, this implementation never reclaims nodes: the unique table and
node arena grow monotonically for the lifetime of a Manager, matching the
engine's correctness model (the apply cache and per-call scratch memos are
the only structures that may lose entries, and losing them never changes a
result, only performance).
*/
package bdd
