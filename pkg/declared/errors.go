package declared

import "errors"

var (
	ErrNotDeclared      = errors.New("no files declared for session")
	ErrEmptySessionID   = errors.New("session id is empty")
	ErrUnknownScheme    = errors.New("unknown scheme")
	ErrInvalidBackend   = errors.New("invalid store backend")
	ErrStoreUnavailable = errors.New("declared files store unavailable")
)
