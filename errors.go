package dashoutline

import "errors"

var (
	// ErrInvalidParam is returned for dash parameters that cannot be used,
	// such as a non-positive dash length.
	ErrInvalidParam = errors.New("invalid parameter")
	// ErrUnknownParam is returned for override names that aren't parameters
	// of the filter.
	ErrUnknownParam = errors.New("unknown parameter")
	// ErrUnsupported is returned by the default [Stroker] and [Rounder] for
	// options they don't implement.
	ErrUnsupported = errors.New("unsupported option")
	// ErrSyntax is returned for malformed path data and custom parameter
	// strings.
	ErrSyntax = errors.New("syntax error")
)
