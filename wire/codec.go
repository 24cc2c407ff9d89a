package wire

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// maxElements lifts the decoder's default array cap so that large grids
// fit in one message.
const maxElements = 1<<31 - 1

var (
	decMode cbor.DecMode
	encMode cbor.EncMode
)

func init() {
	var err error
	decMode, err = cbor.DecOptions{MaxArrayElements: maxElements}.DecMode()
	if err != nil {
		panic(err)
	}
	encMode, err = cbor.EncOptions{}.EncMode()
	if err != nil {
		panic(err)
	}
}

// CBOR major types of interest.
const (
	majorUnsigned = 0
	majorArray    = 4
)

func major(raw cbor.RawMessage) byte {
	if len(raw) == 0 {
		return 0xff
	}
	return raw[0] >> 5
}

// splitRequest decodes a top-level request array with exactly n elements.
func splitRequest(op string, data []byte, n int) ([]cbor.RawMessage, error) {
	var parts []cbor.RawMessage
	if err := decMode.Unmarshal(data, &parts); err != nil {
		return nil, fmt.Errorf("%s: expected an array of inputs: %w: %v", op, ErrBadInput, err)
	}
	if len(parts) != n {
		return nil, fmt.Errorf("%s: got %d elements, want %d: %w", op, len(parts), n, ErrArity)
	}
	return parts, nil
}

// floatArray decodes one positional float array.
func floatArray(op, name string, raw cbor.RawMessage) ([]float64, error) {
	if major(raw) != majorArray {
		return nil, fmt.Errorf("%s: %s must be an array: %w", op, name, ErrBadInput)
	}
	var out []float64
	if err := decMode.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%s: %s: %w: %v", op, name, ErrBadInput, err)
	}
	return out, nil
}

func marshal(op string, v any) ([]byte, error) {
	b, err := encMode.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return b, nil
}
