package validator

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ValidationError is one failed rule. TranslationKey and TranslationValues
// feed the translator; Message is the untranslated fallback.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// TranslationArgs flattens TranslationValues into name/value pairs sorted by name.
func (e ValidationError) TranslationArgs() []string {
	args := make([]string, 0, len(e.TranslationValues)*2)
	for _, k := range slices.Sorted(maps.Keys(e.TranslationValues)) {
		args = append(args, k, fmt.Sprint(e.TranslationValues[k]))
	}
	return args
}

// ValidationErrors is the result of Apply.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(ve))
	for i, e := range ve {
		parts[i] = e.Error()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule is a deferred check and the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Skip makes r pass unconditionally when cond is true.
func (r Rule) Skip(cond bool) Rule {
	if cond {
		r.Check = func() bool { return true }
	}
	return r
}

// Apply runs every rule and returns the failures as ValidationErrors, or nil.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, r := range rules {
		if !r.Check() {
			errs.Add(r.Error)
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// First runs rules in order and returns the first failure, or nil.
// Rules after a failure are not evaluated.
func First(rules ...Rule) *ValidationError {
	for _, r := range rules {
		if !r.Check() {
			verr := r.Error
			return &verr
		}
	}
	return nil
}

// ExtractValidationErrors returns the ValidationErrors wrapped in err, if any.
func ExtractValidationErrors(err error) ValidationErrors {
	var errs ValidationErrors
	if errors.As(err, &errs) {
		return errs
	}
	return nil
}

func IsValidationError(err error) bool {
	var errs ValidationErrors
	return errors.As(err, &errs)
}
