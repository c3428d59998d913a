package groups

import "sort"

// Connect records that points a and b are explicitly joined and updates the
// partition:
//
//   - neither grouped: a new group {a, b} of size 2 is allocated;
//   - one grouped: the other point joins that group;
//   - same group: sizes are untouched;
//   - different groups: the record with fewer members is absorbed into the
//     other (the lower id survives a tie), and the absorbed id is retired.
//
// The edge is recorded for DirectlyConnected in every case. Connect reports
// whether the partition changed. Indices must lie in [0, Len()).
func (g *DisjointGroups) Connect(a, b int) bool {
	g.applied[newEdge(a, b)] = struct{}{}
	if a == b {
		return false
	}

	ga, gb := g.groupOf[a], g.groupOf[b]
	switch {
	case ga == NoGroup && gb == NoGroup:
		g.newGroup(a, b)
	case gb == NoGroup:
		g.join(ga, b)
	case ga == NoGroup:
		g.join(gb, a)
	case ga == gb:
		return false
	default:
		g.merge(ga, gb)
	}

	return true
}

func (g *DisjointGroups) newGroup(a, b int) {
	id := len(g.records)
	g.records = append(g.records, record{size: 2, members: []int{a, b}, live: true})
	g.groupOf[a] = id
	g.groupOf[b] = id
	g.live++
	g.grouped += 2
}

func (g *DisjointGroups) join(id, p int) {
	r := &g.records[id]
	r.members = append(r.members, p)
	r.size++
	g.groupOf[p] = id
	g.grouped++
}

func (g *DisjointGroups) merge(ga, gb int) {
	keep, drop := ga, gb
	if kr, dr := g.records[keep].size, g.records[drop].size; dr > kr || (dr == kr && drop < keep) {
		keep, drop = drop, keep
	}

	kr, dr := &g.records[keep], &g.records[drop]
	for _, m := range dr.members {
		g.groupOf[m] = keep
	}
	kr.members = append(kr.members, dr.members...)
	kr.size += dr.size

	*dr = record{}
	g.live--
}

// SameGroup reports whether a and b are both grouped and share a group.
// An ungrouped point is never in the same group as anything, itself included.
func (g *DisjointGroups) SameGroup(a, b int) bool {
	ga := g.groupOf[a]

	return ga != NoGroup && ga == g.groupOf[b]
}

// DirectlyConnected reports whether Connect(a, b) or Connect(b, a) was called.
func (g *DisjointGroups) DirectlyConnected(a, b int) bool {
	_, ok := g.applied[newEdge(a, b)]

	return ok
}

// LargestSizes returns the n largest component sizes in descending order.
// Ungrouped points count as components of size 1. Fewer than n values are
// returned when fewer components exist; n <= 0 yields an empty slice.
func (g *DisjointGroups) LargestSizes(n int) []int {
	if n <= 0 {
		return []int{}
	}

	sizes := make([]int, 0, g.Components())
	for _, r := range g.records {
		if r.live {
			sizes = append(sizes, r.size)
		}
	}
	for i := len(g.groupOf) - g.grouped; i > 0; i-- {
		sizes = append(sizes, 1)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	if len(sizes) > n {
		sizes = sizes[:n]
	}

	return sizes
}

// Len returns the number of points the structure was created for.
func (g *DisjointGroups) Len() int { return len(g.groupOf) }

// Components returns the number of connected components: live groups plus
// points that are not yet grouped.
func (g *DisjointGroups) Components() int {
	return g.live + len(g.groupOf) - g.grouped
}

// Groups returns the number of live group records.
func (g *DisjointGroups) Groups() int { return g.live }

// Grouped returns how many points belong to some group.
func (g *DisjointGroups) Grouped() int { return g.grouped }

// Applied returns how many distinct edges have been passed to Connect.
func (g *DisjointGroups) Applied() int { return len(g.applied) }

// GroupOf returns the group id of point i, or NoGroup.
func (g *DisjointGroups) GroupOf(i int) int { return g.groupOf[i] }

// Size returns the member count of group id, or 0 if id is unknown or retired.
func (g *DisjointGroups) Size(id int) int {
	if id < 0 || id >= len(g.records) {
		return 0
	}

	return g.records[id].size
}

// Sizes returns a snapshot of every live group id and its size.
func (g *DisjointGroups) Sizes() map[int]int {
	out := make(map[int]int, g.live)
	for id, r := range g.records {
		if r.live {
			out[id] = r.size
		}
	}

	return out
}
