package cluster

import (
	"fmt"

	"github.com/katalvlaran/junctions/groups"
	"github.com/katalvlaran/junctions/pairs"
)

// Complete connects pairs of ordered in Kruskal order until all n points
// share one group, and reports the pair that completed it.
//
// A pair is connected only when its endpoints are not already in the same
// group. Fewer than two points returns a zero Completion without looking at
// ordered. If the sequence runs out first, the error wraps ErrDisconnected.
// Budget and Top options are ignored.
func Complete(n int, ordered []pairs.Pair, opts ...Option) (Completion, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Completion{}, err
	}
	if n < 2 {
		return Completion{}, nil
	}

	var (
		g = groups.New(n)
		c = Completion{Tree: make([]pairs.Pair, 0, n-1)}
	)
	for i, p := range ordered {
		if i%checkEvery == 0 {
			if err := o.Ctx.Err(); err != nil {
				return Completion{}, err
			}
		}
		c.Examined++
		if g.SameGroup(p.A, p.B) {
			continue
		}
		if !g.Connect(p.A, p.B) {
			continue
		}
		c.Merges++
		c.Final = p
		c.Tree = append(c.Tree, p)
		o.OnConnect(p, true)
		if g.Components() == 1 {
			return c, nil
		}
	}

	return Completion{}, fmt.Errorf("%w: %d components remain after %d pairs",
		ErrDisconnected, g.Components(), len(ordered))
}
