package fileselect

import (
	"strconv"
	"strings"

	"github.com/ers-returns/fileupload/pkg/file"
)

// SelectedFile is a file chosen in one input. Size is only meaningful when
// SizeKnown is true.
type SelectedFile struct {
	Name      string
	Size      int64
	SizeKnown bool
}

// Input is a file input as reported by the page.
type Input struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Size int64  `json:"size"`
	Path string `json:"path"`
}

// Capability describes what the browser tells us about a chosen file.
type Capability int

const (
	// Rich browsers expose the file name and size.
	Rich Capability = iota
	// Legacy browsers expose only the input's path value.
	Legacy
)

func (c Capability) String() string {
	if c == Legacy {
		return "legacy"
	}
	return "rich"
}

// CapabilityFromIndicator maps the page's browser version indicator to a
// Capability. A version number below 10 means Legacy; an empty value, a
// non-numeric sentinel or a newer version means Rich.
func CapabilityFromIndicator(ie string) Capability {
	v, err := strconv.Atoi(strings.TrimSpace(ie))
	if err != nil || v >= 10 {
		return Rich
	}
	return Legacy
}

// Extractor turns an Input into a SelectedFile. The bool result is false
// when nothing is selected in the input.
type Extractor interface {
	Extract(in Input) (SelectedFile, bool)
}

// ExtractorFunc adapts a function to Extractor.
type ExtractorFunc func(in Input) (SelectedFile, bool)

// Extract implements Extractor.
func (f ExtractorFunc) Extract(in Input) (SelectedFile, bool) {
	return f(in)
}

// RichExtractor reads the reported file metadata. A negative size is
// treated as unknown.
var RichExtractor Extractor = ExtractorFunc(func(in Input) (SelectedFile, bool) {
	if in.Name == "" {
		return SelectedFile{}, false
	}
	if in.Size < 0 {
		return SelectedFile{Name: in.Name}, true
	}
	return SelectedFile{Name: in.Name, Size: in.Size, SizeKnown: true}, true
})

// LegacyExtractor parses the name from the path value. Size is unknown.
var LegacyExtractor Extractor = ExtractorFunc(func(in Input) (SelectedFile, bool) {
	if in.Path == "" {
		return SelectedFile{}, false
	}
	return SelectedFile{Name: file.BaseName(in.Path)}, true
})

// ExtractorFor returns the extraction strategy for c.
func ExtractorFor(c Capability) Extractor {
	if c == Legacy {
		return LegacyExtractor
	}
	return RichExtractor
}
