// Package wire encodes and decodes the CBOR messages exchanged with a plugin
// host.
//
// Requests are positional CBOR arrays; responses are CBOR maps with text
// keys:
//
//	contour    [x, y, z, levels]        → {"contours": [[[[x, y] ...] ...] ...]}
//	histogram  [data, edges | nbins]    → {"counts": [...], "edges": [...]}
//	boxplot    [values, whiskers]       → {"mean": ..., "median": ..., ...}
//	fft, ifft  [[re, im] ...]           → [[re, im] ...]
//
// boxplot_alt skips CBOR: the request is a run of big-endian float64s
// (whisker length, then samples) and the response is mean, median, min,
// max, q1, q3, whisker low, whisker high and the outliers, also as
// big-endian float64s.
//
// The codec checks message shape only; semantic validation (grid
// dimensions, bin counts) belongs to the caller.
package wire
