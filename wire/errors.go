package wire

import "errors"

var (
	// ErrBadInput indicates a message that is not shaped like the request.
	ErrBadInput = errors.New("wire: bad input")
	// ErrArity indicates a request array with the wrong number of elements.
	ErrArity = errors.New("wire: wrong number of request elements")
)
