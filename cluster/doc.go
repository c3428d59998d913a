// Package cluster builds connectivity over a distance-ordered pair sequence
// using groups.DisjointGroups, under two policies.
//
// Fixed budget
//
//   - FixedBudget(n, ordered, opts...) takes the first K pairs in order and
//     connects each one unconditionally. A pair whose endpoints already share
//     a group still uses up one unit of budget. The result is the product of
//     the M largest component sizes.
//   - A pair that was already applied directly (a duplicate in the caller's
//     sequence) is skipped and does not use up budget.
//
// Completion
//
//   - Complete(n, ordered, opts...) scans pairs in order and connects a pair
//     only when its endpoints are not yet in the same group. This is the
//     edge-selection order of Kruskal's minimum spanning tree. It stops as
//     soon as every point belongs to one group and returns the last merging
//     pair, together with the accepted pairs (Tree) and their total Weight.
//   - Running out of pairs before that point is fatal: ErrDisconnected.
//   - Fewer than two points is already complete: no merge, no final edge.
//
// Options
//
//   - WithBudget(k), WithTop(m): fixed-budget parameters (defaults 1000, 3).
//   - WithContext(ctx): checked between pairs.
//   - WithOnConnect(fn): called after every Connect the policy performs.
//
// Errors:
//
//   - ErrOptionViolation: negative budget, or top < 1.
//   - ErrDisconnected: Complete exhausted the sequence.
//   - ErrNoFinalEdge: XProduct on a trivial completion.
//
// Complexity: O(P) over P pairs plus merge cost, which is bounded by
// O(N log N) in total since the smaller group is always absorbed.
package cluster
