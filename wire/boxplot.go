package wire

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/supertrianguloid/komet/boxplot"
)

// BoxplotRequest is the decoded form of a boxplot call.
type BoxplotRequest struct {
	Values   []float64
	Whiskers float64
}

// DecodeBoxplotRequest parses [values, whiskers].
func DecodeBoxplotRequest(data []byte) (BoxplotRequest, error) {
	const op = "DecodeBoxplotRequest"
	parts, err := splitRequest(op, data, 2)
	if err != nil {
		return BoxplotRequest{}, err
	}
	req := BoxplotRequest{}
	if req.Values, err = floatArray(op, "values", parts[0]); err != nil {
		return BoxplotRequest{}, err
	}
	if err := decMode.Unmarshal(parts[1], &req.Whiskers); err != nil {
		return BoxplotRequest{}, fmt.Errorf("%s: whiskers: %w: %v", op, ErrBadInput, err)
	}
	return req, nil
}

// EncodeBoxplotRequest is the client side of DecodeBoxplotRequest.
func EncodeBoxplotRequest(req BoxplotRequest) ([]byte, error) {
	return marshal("EncodeBoxplotRequest", []any{req.Values, req.Whiskers})
}

// BoxplotResponse mirrors boxplot.Stats with wire key names.
type BoxplotResponse struct {
	Mean        float64   `cbor:"mean"`
	Median      float64   `cbor:"median"`
	Q1          float64   `cbor:"q1"`
	Q3          float64   `cbor:"q3"`
	Min         float64   `cbor:"min"`
	Max         float64   `cbor:"max"`
	WhiskerLow  float64   `cbor:"whisker-low"`
	WhiskerHigh float64   `cbor:"whisker-high"`
	Outliers    []float64 `cbor:"outliers"`
}

// EncodeBoxplot writes the statistics as a map. Outliers is always an array.
func EncodeBoxplot(s boxplot.Stats) ([]byte, error) {
	outliers := s.Outliers
	if outliers == nil {
		outliers = []float64{}
	}
	return marshal("EncodeBoxplot", BoxplotResponse{
		Mean: s.Mean, Median: s.Median, Q1: s.Q1, Q3: s.Q3,
		Min: s.Min, Max: s.Max,
		WhiskerLow: s.WhiskerLow, WhiskerHigh: s.WhiskerHigh,
		Outliers: outliers,
	})
}

// DecodeBoxplot parses a boxplot response.
func DecodeBoxplot(data []byte) (BoxplotResponse, error) {
	var resp BoxplotResponse
	err := decMode.Unmarshal(data, &resp)
	return resp, err
}

// float64Size is the width of one value in the flat boxplot encoding.
const float64Size = 8

// DecodeBoxplotFlat parses the flat form of a boxplot request: big-endian
// float64s, the first being the whisker length and the rest the samples.
func DecodeBoxplotFlat(data []byte) (BoxplotRequest, error) {
	const op = "DecodeBoxplotFlat"
	if len(data) < float64Size || len(data)%float64Size != 0 {
		return BoxplotRequest{}, fmt.Errorf("%s: %d bytes is not a whole, non-empty run of float64s: %w", op, len(data), ErrBadInput)
	}
	values := make([]float64, len(data)/float64Size)
	for i := range values {
		values[i] = math.Float64frombits(binary.BigEndian.Uint64(data[i*float64Size:]))
	}
	return BoxplotRequest{Values: values[1:], Whiskers: values[0]}, nil
}

// EncodeBoxplotFlatRequest is the client side of DecodeBoxplotFlat.
func EncodeBoxplotFlatRequest(req BoxplotRequest) []byte {
	return appendFloats(nil, append([]float64{req.Whiskers}, req.Values...))
}

// EncodeBoxplotFlat writes mean, median, min, max, q1, q3, whisker low,
// whisker high and then the outliers as big-endian float64s.
func EncodeBoxplotFlat(s boxplot.Stats) []byte {
	head := []float64{s.Mean, s.Median, s.Min, s.Max, s.Q1, s.Q3, s.WhiskerLow, s.WhiskerHigh}
	out := make([]byte, 0, (len(head)+len(s.Outliers))*float64Size)
	out = appendFloats(out, head)
	return appendFloats(out, s.Outliers)
}

// DecodeBoxplotFlatResponse is the client side of EncodeBoxplotFlat.
func DecodeBoxplotFlatResponse(data []byte) (BoxplotResponse, error) {
	const fixed = 8
	if len(data) < fixed*float64Size || len(data)%float64Size != 0 {
		return BoxplotResponse{}, fmt.Errorf("DecodeBoxplotFlatResponse: %d bytes: %w", len(data), ErrBadInput)
	}
	v := make([]float64, len(data)/float64Size)
	for i := range v {
		v[i] = math.Float64frombits(binary.BigEndian.Uint64(data[i*float64Size:]))
	}
	return BoxplotResponse{
		Mean: v[0], Median: v[1], Min: v[2], Max: v[3], Q1: v[4], Q3: v[5],
		WhiskerLow: v[6], WhiskerHigh: v[7],
		Outliers: v[fixed:],
	}, nil
}

func appendFloats(dst []byte, values []float64) []byte {
	for _, v := range values {
		dst = binary.BigEndian.AppendUint64(dst, math.Float64bits(v))
	}
	return dst
}
