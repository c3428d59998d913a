package pairs

import "fmt"

// Pair is an unordered pair of point indices (A < B) with its distance key.
type Pair struct {
	// A is the lower point index.
	A int

	// B is the higher point index.
	B int

	// Key is the squared Euclidean distance between points A and B.
	Key uint64
}

// String renders the pair as "A-B(Key)".
func (p Pair) String() string {
	return fmt.Sprintf("%d-%d(%d)", p.A, p.B, p.Key)
}
