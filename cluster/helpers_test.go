package cluster_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/junctions/point"
	"github.com/stretchr/testify/require"
)

// junctionBoxes is the twenty-point sample: ten connections leave groups of
// 5, 4 and 2 (product 40), and the completing edge joins 216,146,977 with
// 117,168,530 (X product 25272).
const junctionBoxes = `162,817,812
57,618,57
906,360,560
592,479,940
352,342,300
466,668,158
542,29,236
431,825,988
739,650,466
52,470,668
216,146,977
819,987,18
117,168,530
805,96,715
346,949,466
970,615,88
941,993,340
862,61,35
984,92,344
425,690,689
`

func samplePoints(t testing.TB) []point.Point {
	t.Helper()
	pts, err := point.Parse(strings.NewReader(junctionBoxes))
	require.NoError(t, err)
	require.Len(t, pts, 20)

	return pts
}
