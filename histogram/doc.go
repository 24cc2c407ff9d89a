// Package histogram counts samples into bins bounded by explicit edges.
//
// Bins are half-open, [e_i, e_{i+1}), except the last which also includes
// its upper edge. Samples outside [e_0, e_n] and NaN samples are ignored.
//
// Edges derives n+1 equally spaced edges from the data range, the form used
// when a caller asks for "N bins" instead of supplying edges.
//
// Complexity: Counts is O(V·log E) (binary search per value).
package histogram
