package fileselect

import "fmt"

// Kind classifies a rejection.
type Kind int

const (
	KindNone Kind = iota
	KindInvalidFileName
	KindNameTooLong
	KindWrongExtension
	KindFileTooLarge
	KindUnexpectedFile
)

var kindNames = map[Kind]string{
	KindNone:            "none",
	KindInvalidFileName: "invalid_file_name",
	KindNameTooLong:     "name_too_long",
	KindWrongExtension:  "wrong_extension",
	KindFileTooLarge:    "too_large",
	KindUnexpectedFile:  "unexpected_file",
}

var kindErrors = map[Kind]error{
	KindInvalidFileName: ErrInvalidFileName,
	KindNameTooLong:     ErrNameTooLong,
	KindWrongExtension:  ErrWrongExtension,
	KindFileTooLarge:    ErrFileTooLarge,
	KindUnexpectedFile:  ErrUnexpectedFile,
}

// String returns the translation key suffix of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Rejection is a failed selection. It wraps one of the Err* sentinels.
type Rejection struct {
	Kind    Kind
	Message string
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("%s: %s", kindErrors[r.Kind], r.Message)
}

func (r *Rejection) Unwrap() error {
	return kindErrors[r.Kind]
}

// Outcome is the result of validating one SelectedFile.
// Rejection is nil when the file passed every check.
type Outcome struct {
	File      SelectedFile
	Rejection *Rejection
}

// Ok reports whether the file passed.
func (o Outcome) Ok() bool {
	return o.Rejection == nil
}

// Err returns the rejection as an error, or nil.
func (o Outcome) Err() error {
	if o.Rejection == nil {
		return nil
	}
	return o.Rejection
}
