// Package i18n translates user-facing messages.
//
// Translations are nested maps keyed by language and loaded once through a
// TranslationAdapter, usually YAML files from an fs.FS:
//
//	tr, err := i18n.NewTranslator(ctx,
//		i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, "."),
//		i18n.WithDefaultLanguage("en"),
//	)
//
// Keys use dot notation and templates use named placeholders:
//
//	# en.yaml
//	en:
//	  upload:
//	    too_large: "The selected file is larger than %{size} MB"
//
//	tr.T("en", "upload.too_large", "size", "100")
//
// Middleware picks the request language (cookie, query parameter, then
// Accept-Language matched with golang.org/x/text/language) and stores it in
// the request context for Tc.
package i18n
