// Package validator provides small declarative validation rules.
//
// A Rule pairs a Check func with translation-friendly error metadata.
// Apply evaluates every rule and aggregates failures into ValidationErrors;
// First stops at the first failing rule, which suits ordered pipelines where
// only one message is shown.
//
//	verr := validator.First(
//	    validator.FileName("file", name),
//	    validator.FileExtension("file", name, "csv"),
//	    validator.MaxFileSize("file", size, maxBytes),
//	)
//	if verr != nil {
//	    msg := tr.T(lang, verr.TranslationKey, verr.TranslationArgs()...)
//	}
//
// Rules hold no state and are safe for concurrent use.
package validator
