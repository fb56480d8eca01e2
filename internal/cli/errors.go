package cli

import "errors"

var (
	// ErrInvalidTINs is returned by validate and batch when at least one
	// input did not pass. The command output has already been written;
	// callers map it to exit status 1.
	ErrInvalidTINs = errors.New("one or more TINs are invalid")

	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrEmptyPassword     = errors.New("password is empty")
	ErrMalformedRecord   = errors.New("malformed record")
)
