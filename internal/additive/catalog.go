package additive

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/pageza/labellens/backend/internal/types"
)

// ErrCatalogNotLoaded is returned by lookups against an empty snapshot.
var ErrCatalogNotLoaded = errors.New("additive catalog not loaded")

// Record is one reference additive. Records are immutable once placed in a Catalog.
type Record struct {
	Code            string            `json:"code" yaml:"code"`
	Name            string            `json:"name" yaml:"name"`
	Category        string            `json:"category" yaml:"category"`
	Tier            types.RiskTier    `json:"risk_level" yaml:"risk_level"`
	Synonyms        []string          `json:"synonyms,omitempty" yaml:"synonyms"`
	PenaltyOverride *float64          `json:"penalty_weight,omitempty" yaml:"penalty_weight"`
	GroupWarnings   map[string]string `json:"group_warnings,omitempty" yaml:"group_warnings"`
	Description     string            `json:"description,omitempty" yaml:"description"`
}

// Detail converts the record to its response form.
func (r Record) Detail() types.DetectedAdditive {
	return types.DetectedAdditive{
		Code:        r.Code,
		Name:        r.Name,
		Category:    r.Category,
		Tier:        r.Tier,
		Description: r.Description,
	}
}

// NormalizeCode reduces any spelling of an additive code to its bare key:
// uppercase, alphanumerics only, INS or E prefix removed. "ins 211",
// "E-211" and "e211" all become "211".
func NormalizeCode(code string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(code) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	key := b.String()
	key = strings.TrimPrefix(key, "INS")
	key = strings.TrimPrefix(key, "E")
	return key
}

// CanonicalCode returns the E-prefixed display form of a code.
func CanonicalCode(code string) string {
	key := NormalizeCode(code)
	if key == "" {
		return ""
	}
	return "E" + key
}

// Catalog is an immutable snapshot of the reference records with lookup indexes.
type Catalog struct {
	records  []Record
	byKey    map[string]int
	byName   map[string]int
	terms    []term
	loaded   bool
	source   string
	loadedAt time.Time
}

// term is a lowercased name or synonym pointing back at its record.
type term struct {
	text  string
	index int
}

// Empty returns a snapshot that reports itself as not loaded.
func Empty() *Catalog {
	return &Catalog{byKey: map[string]int{}, byName: map[string]int{}}
}

// NewCatalog validates and indexes records. Codes are rewritten to their
// canonical E form; a later record with an already-seen code is dropped.
func NewCatalog(records []Record, source string) (*Catalog, error) {
	c := &Catalog{
		records:  make([]Record, 0, len(records)),
		byKey:    make(map[string]int, len(records)),
		byName:   make(map[string]int, len(records)),
		loaded:   true,
		source:   source,
		loadedAt: time.Now(),
	}
	for i, r := range records {
		key := NormalizeCode(r.Code)
		if key == "" {
			return nil, fmt.Errorf("record %d: missing code", i)
		}
		if strings.TrimSpace(r.Name) == "" {
			return nil, fmt.Errorf("record %d (%s): missing name", i, r.Code)
		}
		if _, dup := c.byKey[key]; dup {
			continue
		}

		r.Code = "E" + key
		r.Tier = types.ParseRiskTier(string(r.Tier))
		r.Synonyms = append([]string(nil), r.Synonyms...)
		if r.GroupWarnings != nil {
			gw := make(map[string]string, len(r.GroupWarnings))
			for k, v := range r.GroupWarnings {
				gw[k] = v
			}
			r.GroupWarnings = gw
		}

		idx := len(c.records)
		c.records = append(c.records, r)
		c.byKey[key] = idx

		name := foldText(r.Name)
		if _, seen := c.byName[name]; !seen {
			c.byName[name] = idx
		}
		c.terms = append(c.terms, term{text: name, index: idx})
		for _, s := range r.Synonyms {
			if s = foldText(s); s != "" {
				c.terms = append(c.terms, term{text: s, index: idx})
			}
		}
	}
	return c, nil
}

// Loaded reports whether the snapshot came from a successful load.
func (c *Catalog) Loaded() bool { return c != nil && c.loaded }

// Len returns the number of records.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// Source names where the snapshot was loaded from.
func (c *Catalog) Source() string { return c.source }

// LoadedAt is the time the snapshot was built.
func (c *Catalog) LoadedAt() time.Time { return c.loadedAt }

// Records returns a copy of the records in load order.
func (c *Catalog) Records() []Record {
	if c == nil {
		return nil
	}
	return append([]Record(nil), c.records...)
}

// LookupCode finds a record by any spelling of its code.
func (c *Catalog) LookupCode(code string) (Record, error) {
	if !c.Loaded() {
		return Record{}, ErrCatalogNotLoaded
	}
	if idx, ok := c.byKey[NormalizeCode(code)]; ok {
		return c.records[idx], nil
	}
	return Record{}, fmt.Errorf("additive %q not found", code)
}

// LookupName finds a record by case-insensitive display name.
func (c *Catalog) LookupName(name string) (Record, bool) {
	if !c.Loaded() {
		return Record{}, false
	}
	idx, ok := c.byName[foldText(name)]
	if !ok {
		return Record{}, false
	}
	return c.records[idx], true
}

// foldText lowercases and collapses runs of whitespace.
func foldText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
