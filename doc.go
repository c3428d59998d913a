// Package junctions is an incremental spatial-connectivity engine: given
// points in 3-D integer space, it connects them nearest-first and reports
// on the groups that form.
//
// What it answers
//
//   - Fixed budget: connect the K closest pairs (redundant ones included)
//     and multiply the sizes of the M largest groups.
//   - Completion: keep connecting, nearest-first and skipping pairs already
//     in one group, until every point is in a single group. This is
//     Kruskal's order, and the last merging pair is the answer.
//
// Under the hood, everything is organized under four subpackages plus a
// command:
//
//	point/           Point, squared-distance key and the "x,y,z" line parser
//	pairs/           all-pairs enumeration and the stable distance ordering
//	groups/          DisjointGroups: arena-backed union of points with sizes
//	cluster/         FixedBudget and Complete policies, options and hooks
//	cmd/junctions/   CLI: `junctions budget` and `junctions complete`
//
// Quick example:
//
//	0──1──2        7──8
//
// Budget 2 joins {0,1,2}; completion ends on the 2–7 bridge.
//
//	go install github.com/katalvlaran/junctions/cmd/junctions@latest
package junctions
