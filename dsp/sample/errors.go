package sample

import "errors"

var (
	ErrUnknownFormat       = errors.New("unknown sample format")
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
	ErrNotMono             = errors.New("buffer must have one channel")
	ErrNilBuffer           = errors.New("nil buffer")
)
