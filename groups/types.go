package groups

// NoGroup is the GroupOf value of a point that no edge has touched yet.
const NoGroup = -1

// record is one arena slot. Retired slots keep their index but drop their
// members so the id is never handed out again.
type record struct {
	size    int
	members []int
	live    bool
}

// edge is an applied (a, b) pair normalized so that lo <= hi.
type edge struct {
	lo, hi int
}

func newEdge(a, b int) edge {
	if a > b {
		a, b = b, a
	}

	return edge{lo: a, hi: b}
}

// DisjointGroups tracks which points share a group, the size of each group,
// and every edge that has been explicitly applied.
//
// The zero value is not usable; construct with New.
type DisjointGroups struct {
	// groupOf maps point index to group id, or NoGroup.
	groupOf []int

	// records is the group arena; a group id is its index here. The next id
	// handed out is always len(records).
	records []record

	// applied holds every edge passed to Connect.
	applied map[edge]struct{}

	live    int // records still in use
	grouped int // points with groupOf != NoGroup
}

// New returns an empty DisjointGroups over n points, all of them ungrouped.
func New(n int) *DisjointGroups {
	g := &DisjointGroups{
		groupOf: make([]int, n),
		applied: make(map[edge]struct{}),
	}
	for i := range g.groupOf {
		g.groupOf[i] = NoGroup
	}

	return g
}
