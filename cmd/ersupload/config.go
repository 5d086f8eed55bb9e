package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// appConfig holds the process-wide settings.
type appConfig struct {
	Env                string `env:"APP_ENV" envDefault:"development"`
	Service            string `env:"APP_SERVICE" envDefault:"ers-upload"`
	LogLevel           string `env:"LOG_LEVEL"`
	DefaultLanguage    string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	SupportedLanguages string `env:"SUPPORTED_LANGUAGES" envDefault:"en,cy"`
}

// Validate implements config.Validator.
func (c appConfig) Validate() error {
	if c.DefaultLanguage == "" {
		return errors.New("DEFAULT_LANGUAGE is required")
	}
	return nil
}

// languages returns the supported languages with the default first.
func (c appConfig) languages() []string {
	langs := []string{c.DefaultLanguage}
	for l := range strings.SplitSeq(c.SupportedLanguages, ",") {
		l = strings.TrimSpace(l)
		if l != "" && l != c.DefaultLanguage {
			langs = append(langs, l)
		}
	}
	return langs
}

// checkTranslations fails when a supported language has no translations.
func (c appConfig) checkTranslations(available []string) error {
	var missing []string
	for _, l := range c.languages() {
		if !slices.Contains(available, l) {
			missing = append(missing, l)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("no translations for %s", strings.Join(missing, ", "))
	}
	return nil
}
