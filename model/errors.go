package model

import "errors"

// Malformed input is an authoring error, all of these abort rendering.
var (
	ErrEmptyTable       = errors.New("empty table")
	ErrUnevenTable      = errors.New("improper table: uneven row lengths")
	ErrUnknownBlock     = errors.New("unsupported block type")
	ErrUnknownReference = errors.New("unknown reference")
	ErrNotIETFReference = errors.New("not an IETF reference")
)
