package editor

import "errors"

// Errors returned by frame construction and session operations.
var (
	// ErrInvalidDimensions reports a pixel buffer whose length is not
	// width*height*4, or a frame with a non-positive width or height.
	ErrInvalidDimensions = errors.New("invalid frame dimensions")

	// ErrNoFrameLoaded reports an editing operation invoked before Load.
	ErrNoFrameLoaded = errors.New("no frame loaded")

	// ErrSurfaceUnavailable reports a Renderer that cannot be resized or read.
	ErrSurfaceUnavailable = errors.New("display surface unavailable")

	// ErrSessionClosed reports an operation on a session after Close.
	ErrSessionClosed = errors.New("session closed")

	// ErrUnknownFilter reports a filter name FilterByName does not know.
	ErrUnknownFilter = errors.New("unknown filter")
)
