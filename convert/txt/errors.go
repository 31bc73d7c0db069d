package txt

import "errors"

var (
	// ErrTooWide is returned for figures and tables which cannot fit page
	// width. Neither is ever reflowed.
	ErrTooWide = errors.New("content wider than page")
	// ErrAuthor is returned when author record cannot be rendered.
	ErrAuthor = errors.New("invalid author")
)
