package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidForm          = errors.New("failed to parse form data")
	ErrInvalidQuery         = errors.New("failed to parse query parameters")
	ErrInvalidSignals       = errors.New("failed to parse datastar signals")

	// ErrBinderNotApplicable tells Wrap to try the next binder.
	ErrBinderNotApplicable = errors.New("binder not applicable to request")
)
