package wire

import "fmt"

// DecodeComplexArray parses an array of [re, im] pairs.
func DecodeComplexArray(data []byte) ([]complex128, error) {
	var pairs [][]float64
	if err := decMode.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("DecodeComplexArray: expected an array of [re, im] pairs: %w: %v", ErrBadInput, err)
	}
	out := make([]complex128, len(pairs))
	for i, p := range pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("DecodeComplexArray: element %d has %d components, want 2: %w", i, len(p), ErrBadInput)
		}
		out[i] = complex(p[0], p[1])
	}
	return out, nil
}

// EncodeComplexArray writes an array of [re, im] pairs.
func EncodeComplexArray(values []complex128) ([]byte, error) {
	pairs := make([][2]float64, len(values))
	for i, v := range values {
		pairs[i] = [2]float64{real(v), imag(v)}
	}
	return marshal("EncodeComplexArray", pairs)
}
