package validator

import (
	"fmt"
	"strconv"

	"github.com/ers-returns/fileupload/pkg/file"
)

// FileName fails when name contains characters outside file.ValidFileName.
func FileName(field, name string) Rule {
	return newRule(func() bool { return file.ValidFileName(name) },
		field, "file name contains invalid characters", "validation.file_name", nil)
}

// FileExtension fails unless name ends in "."+ext. The comparison is case-sensitive.
func FileExtension(field, name, ext string) Rule {
	return newRule(func() bool { return file.Extension(name) == ext },
		field, fmt.Sprintf("must be a .%s file", ext), "validation.file_extension",
		map[string]any{"ext": ext})
}

// MaxFileSize fails when size is above the inclusive byte limit.
// The "size" translation value is the limit in decimal megabytes.
func MaxFileSize(field string, size, maxBytes int64) Rule {
	return newRule(func() bool { return file.ValidateSize(size, maxBytes) == nil },
		field, fmt.Sprintf("must not be larger than %d bytes", maxBytes), "validation.file_size",
		map[string]any{"size": strconv.FormatFloat(file.Megabytes(maxBytes), 'f', -1, 64)})
}
