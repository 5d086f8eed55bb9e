// Package fileselect validates the files chosen in the upload forms before
// they are submitted.
//
// Each selection runs through an ordered pipeline and the first failing step
// produces the rejection shown to the user:
//
//  1. the name only uses allowed characters
//  2. the name is not longer than Flow.MaxNameLength (when set)
//  3. the extension equals Flow.Extension, case-sensitive
//  4. the size does not exceed Flow.MaxSizeBytes (only when the size is known)
//  5. the name is one of Flow.ExpectedFiles (when the list is set)
//
// ValidateBatch evaluates every file input of a form and collects the
// outcomes in a Batch. Inputs selecting the same name more than once are
// marked as duplicates; the mark is informational and does not count as an
// error.
//
// How a SelectedFile is obtained depends on the browser. Rich browsers report
// the file name and size; legacy browsers only expose the input's path value,
// so the size is unknown and never checked. Use CapabilityFromIndicator and
// ExtractorFor to pick the strategy.
package fileselect
