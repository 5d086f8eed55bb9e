// Package locales embeds the translation files served by the upload pages.
package locales

import "embed"

// FS holds every *.yaml file of this directory.
//
//go:embed *.yaml
var FS embed.FS
