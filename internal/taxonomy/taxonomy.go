// Package taxonomy holds the closed product category taxonomy and the
// curated related-category table used by the alternative search.
package taxonomy

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Group is one primary category and its secondary categories.
type Group struct {
	Primary     string   `yaml:"primary" json:"primary"`
	Secondaries []string `yaml:"secondaries" json:"secondaries"`
}

// Taxonomy is immutable once built.
type Taxonomy struct {
	groups  []Group
	members map[string]map[string]bool
	related map[string][]string
}

// New builds a taxonomy from groups and a related-category table.
func New(groups []Group, related map[string][]string) *Taxonomy {
	t := &Taxonomy{
		groups:  make([]Group, 0, len(groups)),
		members: make(map[string]map[string]bool, len(groups)),
		related: make(map[string][]string, len(related)),
	}
	for _, g := range groups {
		secs := append([]string(nil), g.Secondaries...)
		t.groups = append(t.groups, Group{Primary: g.Primary, Secondaries: secs})
		set := make(map[string]bool, len(secs))
		for _, s := range secs {
			set[s] = true
		}
		t.members[g.Primary] = set
	}
	for k, v := range related {
		t.related[k] = append([]string(nil), v...)
	}
	return t
}

// Default returns the built-in taxonomy with the built-in related table.
func Default() *Taxonomy {
	return New(defaultGroups, defaultRelated)
}

// WithRelated returns a copy whose related table is replaced.
func (t *Taxonomy) WithRelated(related map[string][]string) *Taxonomy {
	return New(t.groups, related)
}

// Groups returns the taxonomy in declaration order.
func (t *Taxonomy) Groups() []Group {
	out := make([]Group, len(t.groups))
	for i, g := range t.groups {
		out[i] = Group{Primary: g.Primary, Secondaries: append([]string(nil), g.Secondaries...)}
	}
	return out
}

// Primaries returns the primary category names in declaration order.
func (t *Taxonomy) Primaries() []string {
	out := make([]string, len(t.groups))
	for i, g := range t.groups {
		out[i] = g.Primary
	}
	return out
}

// Secondaries returns the secondary categories under primary, or nil.
func (t *Taxonomy) Secondaries(primary string) []string {
	for _, g := range t.groups {
		if g.Primary == primary {
			return append([]string(nil), g.Secondaries...)
		}
	}
	return nil
}

// IsValid reports whether secondary is a member of primary.
func (t *Taxonomy) IsValid(primary, secondary string) bool {
	return t.members[primary][secondary]
}

// PrimaryOf returns the first primary that lists secondary.
func (t *Taxonomy) PrimaryOf(secondary string) (string, bool) {
	for _, g := range t.groups {
		if t.members[g.Primary][secondary] {
			return g.Primary, true
		}
	}
	return "", false
}

// Related returns the curated fallback categories for secondary. Most
// secondaries have none, in which case the related tier is skipped.
func (t *Taxonomy) Related(secondary string) []string {
	return append([]string(nil), t.related[secondary]...)
}

// RelatedKeys lists secondaries that have a related entry, sorted.
func (t *Taxonomy) RelatedKeys() []string {
	keys := make([]string, 0, len(t.related))
	for k := range t.related {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type relatedFile struct {
	Related map[string][]string `yaml:"related"`
}

// LoadRelatedFile reads a YAML file of the form
//
//	related:
//	  Ice Cream: [Frozen Yogurt, Gelato]
func LoadRelatedFile(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read related table: %w", err)
	}
	var f relatedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse related table: %w", err)
	}
	if f.Related == nil {
		return nil, fmt.Errorf("related table %s has no 'related' key", path)
	}
	return f.Related, nil
}
