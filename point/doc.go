// Package point holds the immutable 3-D integer points that feed the
// junctions engine, and the line-oriented parser that produces them.
//
// What:
//
//   - Point is a triple (X, Y, Z) of non-negative integers. A point has no
//     identity field: callers refer to it by its index in the parsed slice.
//   - DistanceKey returns the squared Euclidean distance between two points.
//     Only relative ordering matters downstream, so no square root is taken.
//   - Parse reads "x,y,z" lines from an io.Reader.
//
// Errors:
//
//   - ErrMalformedLine: wrong field count, or a field that is not a
//     non-negative base-10 integer. Parse wraps it with the 1-based line number.
//
// Complexity:
//
//   - Parse: O(L) over the input length. Memory: O(N) points.
//   - DistanceKey: O(1).
package point
