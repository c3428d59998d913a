package pairs

import (
	"sort"

	"github.com/katalvlaran/junctions/point"
)

// Enumerate returns all N·(N−1)/2 pairs over pts in (A, B) lexicographic order.
// Fewer than two points yields an empty, non-nil slice.
func Enumerate(pts []point.Point) []Pair {
	n := len(pts)
	if n < 2 {
		return []Pair{}
	}

	out := make([]Pair, 0, n*(n-1)/2)
	for a := 0; a < n-1; a++ {
		for b := a + 1; b < n; b++ {
			out = append(out, Pair{A: a, B: b, Key: point.DistanceKey(pts[a], pts[b])})
		}
	}

	return out
}

// Sort orders ps in place by ascending Key. Ties keep their relative order.
func Sort(ps []Pair) {
	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].Key < ps[j].Key
	})
}

// Ordered enumerates and sorts in one step.
func Ordered(pts []point.Point) []Pair {
	ps := Enumerate(pts)
	Sort(ps)

	return ps
}
