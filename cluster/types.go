package cluster

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/junctions/pairs"
	"github.com/katalvlaran/junctions/point"
)

// Sentinel errors for cluster policies.
var (
	// ErrDisconnected indicates Complete ran out of pairs before all points
	// shared one group.
	ErrDisconnected = errors.New("cluster: no spanning connection found")

	// ErrNoFinalEdge indicates a completion that needed no merge at all.
	ErrNoFinalEdge = errors.New("cluster: completion has no final edge")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cluster: invalid option supplied")
)

const (
	// DefaultBudget is the number of pairs FixedBudget connects by default.
	DefaultBudget = 1000

	// DefaultTop is how many of the largest sizes FixedBudget multiplies.
	DefaultTop = 3

	// checkEvery is how many pairs are processed between context checks.
	checkEvery = 1 << 12
)

// Option configures a policy run. Invalid values are recorded and surfaced
// as ErrOptionViolation when the policy is invoked.
type Option func(*Options)

// Options holds the parameters and hooks of a policy run.
type Options struct {
	// Ctx allows cancellation between pairs.
	Ctx context.Context

	// Budget is the number of pairs FixedBudget connects. Ignored by Complete.
	Budget int

	// Top is how many of the largest component sizes FixedBudget multiplies.
	// Ignored by Complete.
	Top int

	// OnConnect is called after each Connect with the pair and whether the
	// partition changed.
	OnConnect func(p pairs.Pair, merged bool)

	err error
}

// DefaultOptions returns Budget=DefaultBudget, Top=DefaultTop, a background
// context and a no-op OnConnect.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Budget:    DefaultBudget,
		Top:       DefaultTop,
		OnConnect: func(pairs.Pair, bool) {},
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithBudget sets how many pairs FixedBudget connects.
//
//	k > 0:  connect the first k pairs
//	k == 0: connect nothing
//	k < 0:  ErrOptionViolation
func WithBudget(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: Budget cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.Budget = k
	}
}

// WithTop sets how many of the largest sizes FixedBudget multiplies.
// m must be at least 1.
func WithTop(m int) Option {
	return func(o *Options) {
		if m < 1 {
			o.err = fmt.Errorf("%w: Top must be positive (%d)", ErrOptionViolation, m)
			return
		}
		o.Top = m
	}
}

// WithOnConnect registers a callback run after every Connect.
func WithOnConnect(fn func(p pairs.Pair, merged bool)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnConnect = fn
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Budget is the outcome of FixedBudget.
type Budget struct {
	// Sizes are the Top largest component sizes, descending.
	Sizes []int

	// Product is the product of Sizes, or 0 when there are no components.
	Product uint64

	// Applied is how many pairs consumed budget.
	Applied int

	// Components is the component count after the budget was spent.
	Components int
}

// Completion is the outcome of Complete.
type Completion struct {
	// Final is the pair whose merge left a single group. It is meaningful
	// only when Merges > 0.
	Final pairs.Pair

	// Merges is how many pairs changed the partition.
	Merges int

	// Tree holds the merging pairs in the order they were accepted: the
	// edges of a minimum spanning tree over the points. Its total key is
	// returned by Weight.
	Tree []pairs.Pair

	// Examined is how many pairs were inspected, skipped ones included.
	Examined int
}

// Weight returns the sum of the distance keys in Tree.
func (c Completion) Weight() uint64 {
	var total uint64
	for _, p := range c.Tree {
		total += p.Key
	}

	return total
}

// XProduct returns the product of the X coordinates of the final pair's
// endpoints. pts must be the points the completion was computed over.
func (c Completion) XProduct(pts []point.Point) (uint64, error) {
	if c.Merges == 0 {
		return 0, ErrNoFinalEdge
	}

	return pts[c.Final.A].X * pts[c.Final.B].X, nil
}
