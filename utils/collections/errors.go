package collections

import "errors"

var (
	ErrValueExisted    = errors.New("value existed")
	ErrValueNotExisted = errors.New("value not existed")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrEmpty           = errors.New("collection is empty")
	ErrTreeCorrupted   = errors.New("red-black tree corrupted")
)
