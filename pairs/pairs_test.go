package pairs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/junctions/pairs"
	"github.com/katalvlaran/junctions/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomPoints(r *rand.Rand, n, span int) []point.Point {
	pts := make([]point.Point, n)
	for i := range pts {
		pts[i] = point.Point{
			X: uint64(r.Intn(span)),
			Y: uint64(r.Intn(span)),
			Z: uint64(r.Intn(span)),
		}
	}

	return pts
}

func TestEnumerate_Degenerate(t *testing.T) {
	assert.NotNil(t, pairs.Enumerate(nil))
	assert.Empty(t, pairs.Enumerate(nil))
	assert.Empty(t, pairs.Enumerate([]point.Point{{X: 1}}))
	assert.Empty(t, pairs.Ordered([]point.Point{{X: 1}}))
}

func TestEnumerate_CountAndOrder(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	pts := randomPoints(r, 25, 100)

	ps := pairs.Enumerate(pts)
	require.Len(t, ps, 25*24/2)

	seen := make(map[[2]int]bool, len(ps))
	for i, p := range ps {
		assert.Less(t, p.A, p.B, "pair %d must satisfy A < B", i)
		assert.Equal(t, point.DistanceKey(pts[p.A], pts[p.B]), p.Key)
		assert.False(t, seen[[2]int{p.A, p.B}], "duplicate pair %v", p)
		seen[[2]int{p.A, p.B}] = true
		if i > 0 {
			prev := ps[i-1]
			assert.True(t, prev.A < p.A || (prev.A == p.A && prev.B < p.B), "lexicographic order broken at %d", i)
		}
	}
}

func TestOrdered_StableTies(t *testing.T) {
	// Two pairs tie at key 1; the stable sort keeps them in enumeration order.
	pts := []point.Point{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}}
	ps := pairs.Ordered(pts)

	assert.Equal(t, []pairs.Pair{
		{A: 0, B: 1, Key: 1},
		{A: 0, B: 2, Key: 1},
		{A: 1, B: 2, Key: 2},
	}, ps)
}

func TestOrdered_NonDecreasingAndDeterministic(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	pts := randomPoints(r, 60, 20) // narrow span forces many ties

	first := pairs.Ordered(pts)
	for i := 1; i < len(first); i++ {
		prev, cur := first[i-1], first[i]
		require.LessOrEqual(t, prev.Key, cur.Key)
		if prev.Key == cur.Key {
			assert.True(t, prev.A < cur.A || (prev.A == cur.A && prev.B < cur.B),
				"tie at %d must keep enumeration order", i)
		}
	}

	second := pairs.Ordered(pts)
	assert.Equal(t, first, second)
}

func TestPair_String(t *testing.T) {
	assert.Equal(t, "3-9(42)", pairs.Pair{A: 3, B: 9, Key: 42}.String())
}
