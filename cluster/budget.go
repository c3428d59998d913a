package cluster

import (
	"github.com/katalvlaran/junctions/groups"
	"github.com/katalvlaran/junctions/pairs"
)

// FixedBudget connects the first Budget pairs of ordered over n points and
// multiplies the Top largest component sizes.
//
// Steps:
//  1. Apply options; an invalid option returns ErrOptionViolation.
//  2. Walk ordered until Budget pairs have been applied or the sequence ends.
//     A pair already applied directly is skipped without consuming budget;
//     every other pair is connected, redundant or not.
//  3. Take LargestSizes(Top) and multiply them.
//
// ordered is expected in ascending key order (see pairs.Ordered) and its
// indices must lie in [0, n).
func FixedBudget(n int, ordered []pairs.Pair, opts ...Option) (Budget, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Budget{}, err
	}

	g := groups.New(n)
	used := 0
	for i, p := range ordered {
		if used == o.Budget {
			break
		}
		if i%checkEvery == 0 {
			if err := o.Ctx.Err(); err != nil {
				return Budget{}, err
			}
		}
		if g.DirectlyConnected(p.A, p.B) {
			continue
		}
		merged := g.Connect(p.A, p.B)
		used++
		o.OnConnect(p, merged)
	}

	sizes := g.LargestSizes(o.Top)

	return Budget{
		Sizes:      sizes,
		Product:    product(sizes),
		Applied:    used,
		Components: g.Components(),
	}, nil
}

func product(sizes []int) uint64 {
	if len(sizes) == 0 {
		return 0
	}
	out := uint64(1)
	for _, s := range sizes {
		out *= uint64(s)
	}

	return out
}
