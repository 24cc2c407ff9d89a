package wire

import (
	"fmt"
)

// HistogramRequest holds either explicit Edges or a bin count.
type HistogramRequest struct {
	Data  []float64
	Edges []float64 // nil when Bins is used
	Bins  uint64
}

// DecodeHistogramRequest parses [data, edges] where edges is a float array
// or a positive integer bin count.
func DecodeHistogramRequest(data []byte) (HistogramRequest, error) {
	const op = "DecodeHistogramRequest"
	parts, err := splitRequest(op, data, 2)
	if err != nil {
		return HistogramRequest{}, err
	}
	req := HistogramRequest{}
	if req.Data, err = floatArray(op, "data", parts[0]); err != nil {
		return HistogramRequest{}, err
	}
	switch major(parts[1]) {
	case majorArray:
		if req.Edges, err = floatArray(op, "edges", parts[1]); err != nil {
			return HistogramRequest{}, err
		}
	case majorUnsigned:
		if err := decMode.Unmarshal(parts[1], &req.Bins); err != nil {
			return HistogramRequest{}, fmt.Errorf("%s: bins: %w: %v", op, ErrBadInput, err)
		}
	default:
		return HistogramRequest{}, fmt.Errorf("%s: edges must be an array or a bin count: %w", op, ErrBadInput)
	}
	return req, nil
}

// EncodeHistogramRequest is the client side of DecodeHistogramRequest.
func EncodeHistogramRequest(req HistogramRequest) ([]byte, error) {
	if req.Edges != nil {
		return marshal("EncodeHistogramRequest", []any{req.Data, req.Edges})
	}
	return marshal("EncodeHistogramRequest", []any{req.Data, req.Bins})
}

// HistogramResponse carries counts and the edges they were taken over.
type HistogramResponse struct {
	Counts []uint64  `cbor:"counts"`
	Edges  []float64 `cbor:"edges"`
}

// EncodeHistogram writes {"counts": ..., "edges": ...}.
func EncodeHistogram(counts []uint64, edges []float64) ([]byte, error) {
	return marshal("EncodeHistogram", HistogramResponse{Counts: counts, Edges: edges})
}

// DecodeHistogram parses a histogram response.
func DecodeHistogram(data []byte) (HistogramResponse, error) {
	var resp HistogramResponse
	err := decMode.Unmarshal(data, &resp)
	return resp, err
}
