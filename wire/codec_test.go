package wire_test

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supertrianguloid/komet/boxplot"
	"github.com/supertrianguloid/komet/contour"
	"github.com/supertrianguloid/komet/wire"
)

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	b, err := cbor.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestDecodeContourRequest(t *testing.T) {
	in := wire.ContourRequest{
		X:      []float64{0, 1},
		Y:      []float64{0, 1},
		Z:      []float64{0, 1, 1, 0},
		Levels: []float64{0.5},
	}
	data, err := wire.EncodeContourRequest(in)
	require.NoError(t, err)

	got, err := wire.DecodeContourRequest(data)
	require.NoError(t, err)
	if d := cmp.Diff(in, got); d != "" {
		t.Fatalf("request mismatch (-want +got):\n%s", d)
	}
}

func TestDecodeContourRequest_IntegerSamples(t *testing.T) {
	// Clients frequently send whole numbers as CBOR integers.
	data := mustMarshal(t, []any{
		[]int{0, 1}, []int{0, 1}, []int{0, 1, 1, 0}, []float64{0.5},
	})
	got, err := wire.DecodeContourRequest(data)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 1, 0}, got.Z)
}

func TestDecodeContourRequest_Errors(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want error
	}{
		{"NotArray", mustMarshal(t, map[string]int{"x": 1}), wire.ErrBadInput},
		{"TooFew", mustMarshal(t, [][]float64{{0}, {0}, {0}}), wire.ErrArity},
		{"TooMany", mustMarshal(t, [][]float64{{0}, {0}, {0}, {0}, {0}}), wire.ErrArity},
		{"ScalarElement", mustMarshal(t, []any{[]float64{0}, 1.5, []float64{0}, []float64{0}}), wire.ErrBadInput},
		{"StringElement", mustMarshal(t, []any{[]float64{0}, []float64{0}, []string{"a"}, []float64{0}}), wire.ErrBadInput},
		{"Garbage", []byte{0xff, 0x00}, wire.ErrBadInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := wire.DecodeContourRequest(tc.data)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDecodeContourRequest_LargeArray(t *testing.T) {
	// Beyond the decoder's stock 131072-element cap.
	const n = 200_000
	z := make([]float64, n)
	data := mustMarshal(t, [][]float64{{0, 1}, {0, 1}, z, {0}})
	got, err := wire.DecodeContourRequest(data)
	require.NoError(t, err)
	assert.Len(t, got.Z, n)
}

func TestEncodeContours(t *testing.T) {
	in := []contour.Contour{
		{Level: 0.5, Lines: []contour.Line{{contour.Pt(0, 0.5, 0.5), contour.Pt(0.5, 1, 0.5)}}},
		{Level: 2},
	}
	data, err := wire.EncodeContours(in)
	require.NoError(t, err)

	got, err := wire.DecodeContours(data)
	require.NoError(t, err)
	want := [][][][2]float64{
		{{{0, 0.5}, {0.5, 1}}},
		{},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Fatalf("contours mismatch (-want +got):\n%s", d)
	}

	var raw map[string]any
	require.NoError(t, cbor.Unmarshal(data, &raw))
	assert.Contains(t, raw, "contours")
}

func TestHistogramRequest(t *testing.T) {
	t.Run("Edges", func(t *testing.T) {
		in := wire.HistogramRequest{Data: []float64{1, 2, 3}, Edges: []float64{0, 2, 4}}
		data, err := wire.EncodeHistogramRequest(in)
		require.NoError(t, err)
		got, err := wire.DecodeHistogramRequest(data)
		require.NoError(t, err)
		assert.Equal(t, in, got)
	})
	t.Run("Bins", func(t *testing.T) {
		in := wire.HistogramRequest{Data: []float64{1, 2, 3}, Bins: 4}
		data, err := wire.EncodeHistogramRequest(in)
		require.NoError(t, err)
		got, err := wire.DecodeHistogramRequest(data)
		require.NoError(t, err)
		assert.Nil(t, got.Edges)
		assert.EqualValues(t, 4, got.Bins)
	})
	t.Run("NegativeBins", func(t *testing.T) {
		_, err := wire.DecodeHistogramRequest(mustMarshal(t, []any{[]float64{1}, -3}))
		assert.ErrorIs(t, err, wire.ErrBadInput)
	})
	t.Run("Arity", func(t *testing.T) {
		_, err := wire.DecodeHistogramRequest(mustMarshal(t, []any{[]float64{1}}))
		assert.ErrorIs(t, err, wire.ErrArity)
	})
}

func TestEncodeHistogram(t *testing.T) {
	data, err := wire.EncodeHistogram([]uint64{1, 0, 2}, []float64{0, 1, 2, 3})
	require.NoError(t, err)
	got, err := wire.DecodeHistogram(data)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 0, 2}, got.Counts)
	assert.Equal(t, []float64{0, 1, 2, 3}, got.Edges)
}

func TestBoxplot(t *testing.T) {
	data, err := wire.EncodeBoxplotRequest(wire.BoxplotRequest{Values: []float64{1, 2, 3}, Whiskers: 1.5})
	require.NoError(t, err)
	req, err := wire.DecodeBoxplotRequest(data)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, req.Values)
	assert.Equal(t, 1.5, req.Whiskers)

	_, err = wire.DecodeBoxplotRequest(mustMarshal(t, []any{[]float64{1}, "wide"}))
	assert.ErrorIs(t, err, wire.ErrBadInput)

	out, err := wire.EncodeBoxplot(boxplot.Stats{Mean: 2, Median: 2, Q1: 1.5, Q3: 2.5, Min: 1, Max: 3, WhiskerLow: 1, WhiskerHigh: 3})
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, cbor.Unmarshal(out, &raw))
	for _, key := range []string{"mean", "median", "q1", "q3", "min", "max", "whisker-low", "whisker-high", "outliers"} {
		assert.Contains(t, raw, key)
	}
	resp, err := wire.DecodeBoxplot(out)
	require.NoError(t, err)
	assert.Equal(t, 2.5, resp.Q3)
	assert.NotNil(t, resp.Outliers)
	assert.Empty(t, resp.Outliers)
}

func TestComplexArray(t *testing.T) {
	in := []complex128{1, complex(0, -1), complex(2.5, 3)}
	data, err := wire.EncodeComplexArray(in)
	require.NoError(t, err)
	got, err := wire.DecodeComplexArray(data)
	require.NoError(t, err)
	assert.Equal(t, in, got)

	_, err = wire.DecodeComplexArray(mustMarshal(t, []float64{1, 2}))
	assert.ErrorIs(t, err, wire.ErrBadInput)
}

func TestComplexArray_PairLength(t *testing.T) {
	cases := []struct {
		name  string
		pairs [][]float64
	}{
		{"ExtraComponent", [][]float64{{1, 0}, {1, 2, 3}}},
		{"MissingImaginary", [][]float64{{1}}},
		{"EmptyPair", [][]float64{{}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := wire.DecodeComplexArray(mustMarshal(t, tc.pairs))
			assert.ErrorIs(t, err, wire.ErrBadInput)
		})
	}
}

func TestBoxplotFlat(t *testing.T) {
	data := wire.EncodeBoxplotFlatRequest(wire.BoxplotRequest{Values: []float64{1, 2, 3}, Whiskers: 1.5})
	require.Len(t, data, 4*8)
	assert.Equal(t, []byte{0x3f, 0xf8, 0, 0, 0, 0, 0, 0}, data[:8], "whisker length leads, big-endian")

	req, err := wire.DecodeBoxplotFlat(data)
	require.NoError(t, err)
	assert.Equal(t, 1.5, req.Whiskers)
	assert.Equal(t, []float64{1, 2, 3}, req.Values)

	stats := boxplot.Stats{Mean: 1, Median: 2, Min: 3, Max: 4, Q1: 5, Q3: 6, WhiskerLow: 7, WhiskerHigh: 8, Outliers: []float64{9, 10}}
	out := wire.EncodeBoxplotFlat(stats)
	require.Len(t, out, 10*8)
	resp, err := wire.DecodeBoxplotFlatResponse(out)
	require.NoError(t, err)
	want := wire.BoxplotResponse{Mean: 1, Median: 2, Min: 3, Max: 4, Q1: 5, Q3: 6, WhiskerLow: 7, WhiskerHigh: 8, Outliers: []float64{9, 10}}
	if d := cmp.Diff(want, resp); d != "" {
		t.Fatalf("flat response mismatch (-want +got):\n%s", d)
	}
}

func TestDecodeBoxplotFlat_Errors(t *testing.T) {
	for name, data := range map[string][]byte{
		"Empty":        nil,
		"ShortOfOne":   make([]byte, 7),
		"RaggedLength": make([]byte, 12),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := wire.DecodeBoxplotFlat(data)
			assert.ErrorIs(t, err, wire.ErrBadInput)
		})
	}
}
