package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/pageza/labellens/backend/internal/models"
)

// MemoryStore holds products in a slice. It backs the offline CLI and tests.
type MemoryStore struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewMemoryStore(products []models.Product) *MemoryStore {
	s := &MemoryStore{}
	s.Replace(products)
	return s
}

// Replace swaps the product set.
func (s *MemoryStore) Replace(products []models.Product) {
	cp := make([]models.Product, len(products))
	copy(cp, products)
	for i := range cp {
		cp[i].Sync()
	}
	s.mu.Lock()
	s.products = cp
	s.mu.Unlock()
}

func (s *MemoryStore) Find(ctx context.Context, q Query) ([]models.Product, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		ok, err := matches(p, q.Filters)
		if err != nil {
			s.mu.RUnlock()
			return nil, err
		}
		if ok {
			out = append(out, p)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		for _, o := range q.Sorts {
			c := compare(fieldValue(out[i], o.Field), fieldValue(out[j], o.Field))
			if c == 0 {
				continue
			}
			if o.Desc {
				return c > 0
			}
			return c < 0
		}
		return out[i].ID.String() < out[j].ID.String()
	})

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func matches(p models.Product, filters []Filter) (bool, error) {
	for _, f := range filters {
		v := fieldValue(p, f.Field)
		switch f.Op {
		case OpEq:
			if compare(v, f.Value) != 0 {
				return false, nil
			}
		case OpNeq:
			if compare(v, f.Value) == 0 {
				return false, nil
			}
		case OpLt:
			if compare(v, f.Value) >= 0 {
				return false, nil
			}
		case OpGte:
			if compare(v, f.Value) < 0 {
				return false, nil
			}
		case OpIn:
			found := false
			for _, want := range f.Value.([]string) {
				if compare(v, want) == 0 {
					found = true
					break
				}
			}
			if !found {
				return false, nil
			}
		default:
			return false, fmt.Errorf("unsupported filter op %d", f.Op)
		}
	}
	return true, nil
}

func fieldValue(p models.Product, field string) interface{} {
	switch field {
	case FieldPrimary:
		return p.PrimaryCategory
	case FieldSecondary:
		return p.SecondaryCategory
	case FieldRiskScore:
		return float64(p.RiskScore)
	case FieldSafetyRating:
		return p.SafetyRating
	case FieldCleanLabel:
		return p.CleanLabel
	case FieldPriceTier:
		return p.PriceTier
	case FieldName:
		return p.Name
	}
	return nil
}

// compare orders two values of compatible kinds. Numbers compare as float64,
// booleans as false < true, everything else as strings.
func compare(a, b interface{}) int {
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			}
			return 0
		}
	}
	if ba, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			switch {
			case ba == bb:
				return 0
			case !ba:
				return -1
			}
			return 1
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	return 0, false
}
