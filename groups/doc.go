// Package groups provides DisjointGroups, the incremental connectivity
// structure behind the junctions engine.
//
// What & Why
//
//   - DisjointGroups partitions N point indices into groups as edges are
//     applied with Connect. A point that no edge has touched yet belongs to
//     no group record; it is still counted as a singleton component by
//     Components and LargestSizes.
//   - Group records live in an arena indexed by small integer ids. Ids are
//     allocated monotonically by the instance and are never reused once a
//     merge retires them.
//   - Each record keeps its member list, so a merge re-points exactly the
//     members of the absorbed record. There is no path compression: looking
//     up a point's group is a single slice read.
//
// Two queries are easy to conflate and are kept apart on purpose:
//
//   - SameGroup(a, b): component-level equivalence. False if either point is
//     ungrouped.
//   - DirectlyConnected(a, b): edge-level membership. True only if
//     Connect(a, b) or Connect(b, a) was called.
//
// Invariants (checked by the package tests after every mutation):
//
//   - Size(id) equals the number of points i with GroupOf(i) == id.
//   - ids are allocated in increasing order and never reused.
//   - the sum of live sizes is at most N, and equals N once every point
//     has been touched by an edge.
//
// Complexity:
//
//   - Connect: O(1) for new groups and joins; O(min(|A|,|B|)) for a merge,
//     since the smaller record is absorbed.
//   - SameGroup, DirectlyConnected: O(1).
//   - LargestSizes: O(C log C) over C components.
//
// A DisjointGroups value is owned by a single computation and is not safe
// for concurrent mutation.
package groups
