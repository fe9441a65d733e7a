package stride

import "errors"

var (
	ErrOutOfRange  = errors.New("stride: index out of range")
	ErrNotPlain    = errors.New("stride: element type contains pointers")
	ErrShortBuffer = errors.New("stride: buffer too short for span")
	ErrMisaligned  = errors.New("stride: misaligned element address")
	ErrBadStep     = errors.New("stride: step must be positive")
)
