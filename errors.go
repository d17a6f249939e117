// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "github.com/pkg/errors"

// PreconditionError reports a violated precondition: sampling from False,
// reading an unweighted variable, using an undeclared variable, asking
// TopKPaths for k <= 0, or building a Permutation from label lists of
// different lengths. VarOrder's own range checks (an unknown variable or
// an out-of-range level) panic with a plain error instead. Per
// spec.md §7, these are fatal for the current top-level call: the engine
// panics with a *PreconditionError rather than returning one, since no
// Boolean operation in the core has a recoverable error path.
type PreconditionError struct {
	// Invariant names the violated precondition, e.g. "unweighted-variable".
	Invariant string
	cause     error
}

func (e *PreconditionError) Error() string {
	return e.cause.Error()
}

// Unwrap exposes the underlying github.com/pkg/errors-wrapped cause so the
// stack trace survives a recover/log round-trip.
func (e *PreconditionError) Unwrap() error {
	return e.cause
}

// precondition panics with a *PreconditionError built from format/args,
// captured with a stack trace via github.com/pkg/errors so a recovered panic
// can still be logged with useful context.
func precondition(invariant, format string, args ...interface{}) {
	panic(&PreconditionError{
		Invariant: invariant,
		cause:     errors.Errorf(format, args...),
	})
}
