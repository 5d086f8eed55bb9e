package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// LangExtractor returns the language for a request, or "" when undecided.
type LangExtractor func(r *http.Request) string

// ExtractorConfig holds the sources checked by NewLangExtractor.
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
}

// ExtractorOption configures the language extractor.
type ExtractorOption func(*ExtractorConfig)

// WithCookieName sets the language cookie name. Default "lang".
func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

// WithQueryParamName sets the language query parameter. Default "lang".
func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

// NewLangExtractor checks the cookie, then the query parameter, then
// Accept-Language. Every candidate is matched against supported; the first
// entry of supported is the fallback of the matcher.
func NewLangExtractor(supported []string, opts ...ExtractorOption) LangExtractor {
	cfg := &ExtractorConfig{CookieName: "lang", QueryParamName: "lang"}
	for _, opt := range opts {
		opt(cfg)
	}

	tags := make([]language.Tag, 0, len(supported))
	for _, s := range supported {
		if tag, err := language.Parse(s); err == nil {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		tags = []language.Tag{language.English}
	}
	matcher := language.NewMatcher(tags)

	match := func(candidate string, exact bool) string {
		_, idx, conf := matcher.Match(language.Make(candidate))
		if exact && conf < language.High {
			return ""
		}
		if conf == language.No {
			return ""
		}
		base, _ := tags[idx].Base()
		return base.String()
	}

	return func(r *http.Request) string {
		if c, err := r.Cookie(cfg.CookieName); err == nil {
			if lang := match(strings.TrimSpace(c.Value), true); lang != "" {
				return lang
			}
		}
		if q := strings.TrimSpace(r.URL.Query().Get(cfg.QueryParamName)); q != "" {
			if lang := match(q, true); lang != "" {
				return lang
			}
		}
		if header := r.Header.Get("Accept-Language"); header != "" {
			accepted, _, err := language.ParseAcceptLanguage(header)
			if err == nil && len(accepted) > 0 {
				_, idx, conf := matcher.Match(accepted...)
				if conf != language.No {
					base, _ := tags[idx].Base()
					return base.String()
				}
			}
		}
		return ""
	}
}

// Middleware stores the extracted language in the request context,
// falling back to DefaultLanguage.
func Middleware(extr LangExtractor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := ""
			if extr != nil {
				lang = extr(r)
			}
			if lang == "" {
				lang = DefaultLanguage
			}
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
