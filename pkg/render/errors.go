package render

import "errors"

var (
	// ErrSizeMismatch is returned when pixel data does not match the
	// canvas dimensions.
	ErrSizeMismatch = errors.New("pixel data does not match canvas size")

	// ErrAliased is returned when the source and destination of a
	// canvas-to-canvas operation share the same pixel storage.
	ErrAliased = errors.New("source and destination canvas alias")

	// ErrUnknownWrapMode is returned when parsing an unrecognised wrap mode.
	ErrUnknownWrapMode = errors.New("unknown uv wrap mode")
)
