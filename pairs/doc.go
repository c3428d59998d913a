// Package pairs enumerates every unordered pair of points and orders the
// pairs by distance, producing the canonical edge-processing sequence for
// the cluster policies.
//
// Enumeration visits (A, B) with A < B in lexicographic order. Sort is a
// stable ascending sort on Key, so equal-distance pairs keep enumeration
// order and the sequence is reproducible for a fixed input.
//
// Complexity: Enumerate O(N²), Sort O(N² log N). Memory: O(N²) pairs.
package pairs
