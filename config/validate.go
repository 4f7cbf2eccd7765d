package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks that a deck can be built from the configuration. It is not
// called by Load, because the note store commands need no dictionary.
func (c *Config) Validate() error {
	if len(c.Dictionary.Paths) == 0 {
		return errors.New("dictionary.paths must name at least one dictionary")
	}

	if err := c.WordList.validate(); err != nil {
		return fmt.Errorf("wordlist: %w", err)
	}

	if strings.TrimSpace(c.GUIDPrefix) == "" {
		return errors.New("guid_prefix must not be empty")
	}

	return nil
}

func (w *WordListConfig) validate() error {
	switch w.Format {
	case FormatHSK, FormatIntegrated, FormatHanping:
	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", w.Format, FormatHSK, FormatIntegrated, FormatHanping)
	}
	if w.Path == "" {
		return errors.New("path is required")
	}
	return nil
}
