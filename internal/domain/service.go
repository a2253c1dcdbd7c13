// Package domain contains the core data types for the ZaenexTech website:
// service records, the page route table and the sentinel errors. It depends
// only on the standard library.
package domain

import (
	"fmt"
	"regexp"
)

// slugPattern restricts slugs to lowercase URL-safe segments.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ServiceRecord describes one offered service as shown on /services/{slug}.
type ServiceRecord struct {
	Slug    string       `yaml:"slug"`
	Title   string       `yaml:"title"`
	Icon    string       `yaml:"icon"` // Font Awesome glyph, e.g. "fa-microchip"
	Blurb   string       `yaml:"blurb"`
	Columns []SkillGroup `yaml:"columns"`
}

// SkillGroup is one column of the service detail page.
type SkillGroup struct {
	Heading string      `yaml:"heading"`
	Icon    string      `yaml:"icon"`
	Items   []SkillItem `yaml:"items"`
}

// SkillItem is a single labelled progress bar.
type SkillItem struct {
	Label      string `yaml:"label"`
	Percentage int    `yaml:"pct"`
}

// ValidSlug reports whether s can be used as a URL path segment for a
// catalog entry or project page.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// Validate checks the record against the invariants of a catalog entry stored
// under key. Errors wrap ErrValidation.
func (r ServiceRecord) Validate(key string) error {
	if !ValidSlug(key) {
		return fmt.Errorf("%w: service key %q is not a valid slug", ErrValidation, key)
	}
	if r.Slug != key {
		return fmt.Errorf("%w: service %q has slug %q", ErrValidation, key, r.Slug)
	}
	if r.Title == "" {
		return fmt.Errorf("%w: service %q: title is required", ErrValidation, key)
	}
	for _, col := range r.Columns {
		if col.Heading == "" {
			return fmt.Errorf("%w: service %q: column heading is required", ErrValidation, key)
		}
		for _, item := range col.Items {
			if item.Percentage < 0 || item.Percentage > 100 {
				return fmt.Errorf("%w: service %q: %q percentage %d outside [0,100]",
					ErrValidation, key, item.Label, item.Percentage)
			}
		}
	}
	return nil
}
