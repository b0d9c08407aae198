package element

import "errors"

var (
	// ErrIndexOutOfBounds signals an invalid item index within a section.
	ErrIndexOutOfBounds = errors.New("element: index out of bounds")
	// ErrInvalidRange signals a removal range with end before start.
	ErrInvalidRange = errors.New("element: invalid range")
)
