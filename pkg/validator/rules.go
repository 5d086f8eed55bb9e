package validator

import (
	"fmt"
	"slices"
	"strings"
)

func newRule(check func() bool, field, message, key string, values map[string]any) Rule {
	if values == nil {
		values = map[string]any{}
	}
	values["field"] = field
	return Rule{
		Check: check,
		Error: ValidationError{Field: field, Message: message, TranslationKey: key, TranslationValues: values},
	}
}

// Required fails on a value that is empty after trimming whitespace.
func Required(field, value string) Rule {
	return newRule(func() bool { return strings.TrimSpace(value) != "" },
		field, "field is required", "validation.required", nil)
}

// RequiredSlice fails on an empty slice.
func RequiredSlice[T any](field string, value []T) Rule {
	return newRule(func() bool { return len(value) > 0 },
		field, "field is required", "validation.required", nil)
}

// MaxLen fails when value is longer than max bytes.
func MaxLen(field, value string, max int) Rule {
	return newRule(func() bool { return len(value) <= max },
		field, fmt.Sprintf("must be at most %d characters long", max), "validation.max_length",
		map[string]any{"max": max})
}

// InList fails when value is not one of allowed.
func InList[T comparable](field string, value T, allowed []T) Rule {
	return newRule(func() bool { return slices.Contains(allowed, value) },
		field, fmt.Sprintf("must be one of: %v", allowed), "validation.in_list",
		map[string]any{"allowed_values": allowed})
}

// InListString is InList with the allowed names joined for display.
func InListString(field, value string, allowed []string) Rule {
	return newRule(func() bool { return slices.Contains(allowed, value) },
		field, "must be one of: "+strings.Join(allowed, ", "), "validation.in_list",
		map[string]any{"allowed_values": allowed})
}
