package cdlist

import "errors"

// ErrIndexOutOfRange indicates an index outside of the list.
var ErrIndexOutOfRange = errors.New("index out of range")
