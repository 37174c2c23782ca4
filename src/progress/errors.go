package progress

import "errors"

// ErrWrite wraps any failure to write or flush the rendered bar
var ErrWrite = errors.New("could not write progress bar")

var ErrUnknownColor = errors.New("unknown color")
var ErrUnknownDisplayMode = errors.New("unknown display mode")
var ErrUnknownColorMode = errors.New("unknown color mode")
