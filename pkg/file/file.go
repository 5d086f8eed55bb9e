package file

import (
	"fmt"
	"regexp"
	"strings"
)

// BytesPerMB is the decimal divisor used for the megabyte figures shown to users.
const BytesPerMB = 1_000_000

// fileNamePattern lists the characters accepted in an uploaded file name.
var fileNamePattern = regexp.MustCompile(`^[A-Za-z0-9 _\-.()]+$`)

// ValidFileName reports whether name is non-empty and made only of letters,
// digits, spaces and the punctuation `_ - . ( )`.
func ValidFileName(name string) bool {
	return name != "" && fileNamePattern.MatchString(name)
}

// Extension returns the text after the last dot, without the dot.
// Names without a dot have no extension.
//
// Example:
//
//	file.Extension("archive.tar.csv") // "csv"
//	file.Extension("README")          // ""
func Extension(name string) string {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return ""
	}
	return name[i+1:]
}

// BaseName returns the part of a path after the last `\` or `/`.
// Browsers without file-object access only expose the input's path value,
// e.g. `C:\fakepath\data.csv`.
func BaseName(path string) string {
	if i := strings.LastIndexAny(path, `\/`); i >= 0 {
		return path[i+1:]
	}
	return path
}

// ValidateSize checks size against an inclusive maximum.
func ValidateSize(size, maxBytes int64) error {
	if size < 0 {
		return ErrNegativeSize
	}
	if size > maxBytes {
		return fmt.Errorf("file size %d bytes exceeds %d bytes limit: %w", size, maxBytes, ErrFileTooLarge)
	}
	return nil
}

// Megabytes converts a byte count to megabytes.
func Megabytes(bytes int64) float64 {
	return float64(bytes) / BytesPerMB
}

// SanitizeFilename removes path components and NUL bytes from a client
// supplied name. Returns "unnamed" for empty names and directory references.
//
// Example:
//
//	safe := file.SanitizeFilename("../../../etc/passwd") // "passwd"
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(BaseName(name), "\x00", "")
	if name == "" || name == "." || name == ".." {
		return "unnamed"
	}
	return name
}
