package file

import "errors"

var (
	ErrFileTooLarge = errors.New("file size exceeds maximum allowed size")
	ErrNegativeSize = errors.New("file size is negative")
)
