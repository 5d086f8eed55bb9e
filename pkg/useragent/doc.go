// Package useragent identifies the browser behind an HTTP User-Agent header.
//
// The upload pages only need the browser family and its major version: old
// Internet Explorer releases cannot read file metadata, so their file
// selections are validated from the path value alone.
//
//	b, err := useragent.Parse(r.UserAgent())
//	if err == nil && b.IsLegacyIE() {
//		// no file sizes from this browser
//	}
//
// Detection uses keyword look-ups with pre-compiled version expressions.
// Patterns are checked in order, so Chromium based browsers that also
// advertise "chrome" or "safari" are matched first.
package useragent
