package i18n

import "errors"

var (
	ErrNilAdapter          = errors.New("translation adapter is nil")
	ErrFailedToParseYAML   = errors.New("failed to parse YAML content")
	ErrYAMLParsingCanceled = errors.New("yaml parsing canceled")
	ErrFailedToReadDir     = errors.New("failed to read translations directory")
	ErrFailedToReadFile    = errors.New("failed to read translation file")
	ErrFailedToParseFile   = errors.New("failed to parse translation file")
	ErrNoTranslations      = errors.New("no translation files found")
	ErrEmptyLanguageCode   = errors.New("empty language code")
)
