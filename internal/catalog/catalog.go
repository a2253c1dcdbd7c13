// Package catalog holds the fixed table of services offered on the site.
// The table is authored as YAML, embedded at compile time, validated once at
// startup and read-only afterwards, so a *Catalog is safe for concurrent use
// without locking.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/zaenextech/website/internal/domain"
)

//go:embed services.yaml
var servicesYAML []byte

// Catalog maps service slugs to their records and remembers display order.
type Catalog struct {
	bySlug map[string]domain.ServiceRecord
	order  []string
}

// Embedded loads the catalog compiled into the binary.
func Embedded() (*Catalog, error) {
	c, err := Load(bytes.NewReader(servicesYAML))
	if err != nil {
		return nil, fmt.Errorf("catalog.Embedded: %w", err)
	}
	return c, nil
}

// Load parses a YAML mapping of slug → service record and validates every
// entry. Unknown fields, duplicate keys, a slug that differs from its key and
// percentages outside [0,100] are all rejected with domain.ErrValidation.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("catalog.Load: read: %w", err)
	}

	records := map[string]domain.ServiceRecord{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("catalog.Load: %w: catalog is empty", domain.ErrValidation)
		}
		return nil, fmt.Errorf("catalog.Load: %w: %v", domain.ErrValidation, err)
	}

	// A Go map forgets key order, so walk the node tree a second time to
	// recover the order the services were written in.
	order, err := keyOrder(data)
	if err != nil {
		return nil, fmt.Errorf("catalog.Load: %w", err)
	}

	for _, key := range order {
		if err := records[key].Validate(key); err != nil {
			return nil, fmt.Errorf("catalog.Load: %w", err)
		}
	}

	return &Catalog{bySlug: records, order: order}, nil
}

// keyOrder returns the top-level mapping keys of a YAML document in source order.
func keyOrder(data []byte) ([]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping of slug to service", domain.ErrValidation)
	}
	m := doc.Content[0]
	keys := make([]string, 0, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		keys = append(keys, m.Content[i].Value)
	}
	return keys, nil
}

// Lookup returns the service stored under slug, or an error wrapping
// domain.ErrNotFound. Any string is accepted; unknown or malformed slugs
// simply miss. The returned record shares its slices with the catalog and
// must be treated as read-only.
func (c *Catalog) Lookup(slug string) (domain.ServiceRecord, error) {
	rec, ok := c.bySlug[slug]
	if !ok {
		return domain.ServiceRecord{}, fmt.Errorf("catalog.Lookup %q: %w", slug, domain.ErrNotFound)
	}
	return rec, nil
}

// All returns every service in display order.
func (c *Catalog) All() []domain.ServiceRecord {
	out := make([]domain.ServiceRecord, 0, len(c.order))
	for _, slug := range c.order {
		out = append(out, c.bySlug[slug])
	}
	return out
}

// Slugs returns every service slug in display order.
func (c *Catalog) Slugs() []string {
	return append([]string(nil), c.order...)
}

// Len reports the number of services.
func (c *Catalog) Len() int {
	return len(c.order)
}
