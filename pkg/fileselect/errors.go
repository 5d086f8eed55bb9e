package fileselect

import "errors"

var (
	ErrInvalidFileName = errors.New("file name contains invalid characters")
	ErrNameTooLong     = errors.New("file name is too long")
	ErrWrongExtension  = errors.New("file has the wrong extension")
	ErrFileTooLarge    = errors.New("file is too large")
	ErrUnexpectedFile  = errors.New("file was not declared")

	ErrNilTranslator = errors.New("translator is nil")
	ErrInvalidConfig = errors.New("invalid file selection config")
)
