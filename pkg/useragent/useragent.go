package useragent

import (
	"regexp"
	"strconv"
	"strings"
)

// Browser families.
const (
	BrowserEdge    = "edge"
	BrowserOpera   = "opera"
	BrowserChrome  = "chrome"
	BrowserFirefox = "firefox"
	BrowserSafari  = "safari"
	BrowserIE      = "ie"
	BrowserUnknown = "unknown"
)

// legacyIEMajor is the first Internet Explorer release with the File API.
const legacyIEMajor = 10

// Browser is the detected browser family and version.
type Browser struct {
	Name    string
	Version string
}

// Major returns the major version number, or 0 when unknown.
func (b Browser) Major() int {
	v, _, _ := strings.Cut(b.Version, ".")
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

// IsLegacyIE reports whether b is an Internet Explorer release without file metadata access.
func (b Browser) IsLegacyIE() bool {
	return b.Name == BrowserIE && b.Major() > 0 && b.Major() < legacyIEMajor
}

type pattern struct {
	name     string
	keywords []string
	excludes []string
	version  *regexp.Regexp
}

func (p pattern) match(ua string) bool {
	found := false
	for _, k := range p.keywords {
		if strings.Contains(ua, k) {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	for _, e := range p.excludes {
		if strings.Contains(ua, e) {
			return false
		}
	}
	return true
}

// patterns in order of checking priority
var patterns = []pattern{
	{name: BrowserEdge, keywords: []string{"edg/", "edge/"}, version: regexp.MustCompile(`(?:edge|edg)/([\d.]+)`)},
	{name: BrowserOpera, keywords: []string{"opr/", "opera"}, version: regexp.MustCompile(`(?:opr|opera)[/\s]([\d.]+)`)},
	{name: BrowserIE, keywords: []string{"msie "}, version: regexp.MustCompile(`msie ([\d.]+)`)},
	{name: BrowserIE, keywords: []string{"trident/"}, version: regexp.MustCompile(`rv:([\d.]+)`)},
	{name: BrowserChrome, keywords: []string{"chrome/", "crios/"}, version: regexp.MustCompile(`(?:chrome|crios)/([\d.]+)`)},
	{name: BrowserFirefox, keywords: []string{"firefox/", "fxios/"}, version: regexp.MustCompile(`(?:firefox|fxios)/([\d.]+)`)},
	{name: BrowserSafari, keywords: []string{"safari/"}, excludes: []string{"chrome", "chromium"}, version: regexp.MustCompile(`version/([\d.]+)`)},
}

const maxVersionLength = 20

// Parse detects the browser of ua. Unrecognised agents return BrowserUnknown
// with ErrUnsupportedBrowser.
func Parse(ua string) (Browser, error) {
	if strings.TrimSpace(ua) == "" {
		return Browser{Name: BrowserUnknown}, ErrEmptyUserAgent
	}
	lower := strings.ToLower(ua)

	for _, p := range patterns {
		if !p.match(lower) {
			continue
		}
		b := Browser{Name: p.name}
		if m := p.version.FindStringSubmatch(lower); len(m) > 1 {
			b.Version = m[1]
			if len(b.Version) > maxVersionLength {
				b.Version = b.Version[:maxVersionLength]
			}
		}
		return b, nil
	}
	return Browser{Name: BrowserUnknown}, ErrUnsupportedBrowser
}
