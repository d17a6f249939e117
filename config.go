// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"time"

	"go.uber.org/zap"
)

// config holds the values of the different tunable parameters of a Manager.
// The functional-options pattern below is carried over verbatim from the
// teacher's config.go.
type config struct {
	varnum          int // number of BDD variables declared up front by NewLinear
	nodesize        int // initial number of nodes in the arena
	cachesize       int // initial cache size (general)
	maxnodesize     int // maximum total number of nodes (0 if no limit)
	maxnodeincrease int // maximum nodes added to the table at each resize (0 if no limit)

	logger    *zap.SugaredLogger
	timeLimit time.Duration // 0 means unbounded
}

const defaultMaxNodeIncrease = 1 << 20

func makeconfig(varnum int) *config {
	c := &config{
		varnum:          varnum,
		maxnodeincrease: defaultMaxNodeIncrease,
		nodesize:        2*varnum + 2,
		cachesize:       10000,
	}
	return c
}

// Option configures a Manager at construction time.
type Option func(*config)

// Nodesize sets a preferred initial size for the node arena. By default the
// arena is sized just large enough for the two constants plus the declared
// variables.
func Nodesize(size int) Option {
	return func(c *config) {
		if size >= 2*c.varnum+2 {
			c.nodesize = size
		}
	}
}

// Maxnodesize limits the number of nodes the arena may grow to. The default
// (0) means no limit.
func Maxnodesize(size int) Option {
	return func(c *config) { c.maxnodesize = size }
}

// Maxnodeincrease limits how many slots are added to the unique table per
// resize.
func Maxnodeincrease(size int) Option {
	return func(c *config) { c.maxnodeincrease = size }
}

// Cachesize sets the initial number of entries in the ITE apply cache.
func Cachesize(size int) Option {
	return func(c *config) { c.cachesize = size }
}

// WithLogger attaches a zap logger to the manager; by default a manager logs
// at zap.WarnLevel (zap.DebugLevel when built with the `debug` tag).
func WithLogger(l *zap.Logger) Option {
	return func(c *config) { c.logger = l.Sugar() }
}

// WithTimeLimit installs a cooperative time budget: ite polls it before each
// Shannon-expansion recursion and bails out with a sentinel False once
// exceeded, per spec.md §4.7.
func WithTimeLimit(d time.Duration) Option {
	return func(c *config) { c.timeLimit = d }
}
