package roster

import (
	"fmt"

	"golang.org/x/text/language"
)

// Config holds roster settings.
type Config struct {
	// Locale is the BCP 47 tag used to order player names.
	Locale string `mapstructure:"locale" default:"en"`
}

// Tag parses Locale, falling back to English when it is empty.
func (c Config) Tag() (language.Tag, error) {
	if c.Locale == "" {
		return language.English, nil
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid roster locale %q: %w", c.Locale, err)
	}
	return tag, nil
}
