package internalerr

import "errors"

// Sentinel errors for common cases
var (
	// ErrEncoding means the raw document could not be decoded as text.
	// It is the only error class that aborts a whole document.
	ErrEncoding = errors.New("undecodable document text")

	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrDuplicate     = errors.New("duplicate entry")
	ErrInvalidConfig = errors.New("invalid configuration")
)
