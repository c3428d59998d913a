package point

import (
	"errors"
	"strconv"
)

// ErrMalformedLine indicates an input line that is not three comma-separated
// non-negative integers.
var ErrMalformedLine = errors.New("point: malformed line")

// fieldCount is the number of comma-separated coordinates per line.
const fieldCount = 3

// Point is a position in 3-D integer space.
type Point struct {
	X, Y, Z uint64
}

// String renders the point in its input form "x,y,z".
func (p Point) String() string {
	b := make([]byte, 0, 32)
	b = strconv.AppendUint(b, p.X, 10)
	b = append(b, ',')
	b = strconv.AppendUint(b, p.Y, 10)
	b = append(b, ',')
	b = strconv.AppendUint(b, p.Z, 10)

	return string(b)
}

// DistanceKey returns the squared Euclidean distance between a and b.
//
// Squaring preserves ordering for non-negative distances, so the key can be
// compared directly. Coordinates are expected to stay well below 2^21 so the
// sum of three squares fits in a uint64.
func DistanceKey(a, b Point) uint64 {
	dx := absDiff(a.X, b.X)
	dy := absDiff(a.Y, b.Y)
	dz := absDiff(a.Z, b.Z)

	return dx*dx + dy*dy + dz*dz
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}

	return b - a
}
