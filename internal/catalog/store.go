// Package catalog defines the product query contract used by the
// alternative search, with a gorm-backed store and an in-memory store.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/pageza/labellens/backend/internal/models"
)

// Queryable product fields.
const (
	FieldPrimary      = "primary_category"
	FieldSecondary    = "secondary_category"
	FieldRiskScore    = "risk_score"
	FieldSafetyRating = "safety_rating"
	FieldCleanLabel   = "clean_label"
	FieldPriceTier    = "price_tier"
	FieldName         = "name"
)

var knownFields = map[string]bool{
	FieldPrimary:      true,
	FieldSecondary:    true,
	FieldRiskScore:    true,
	FieldSafetyRating: true,
	FieldCleanLabel:   true,
	FieldPriceTier:    true,
	FieldName:         true,
}

// ErrUnknownField is returned for filters or sorts on unsupported fields.
var ErrUnknownField = errors.New("unknown catalog field")

// Op is a filter comparison.
type Op int

const (
	OpEq Op = iota
	OpNeq
	OpLt
	OpGte
	OpIn
)

// Filter is one field comparison. Value is a []string for OpIn.
type Filter struct {
	Field string
	Op    Op
	Value interface{}
}

func Eq(field string, v interface{}) Filter  { return Filter{Field: field, Op: OpEq, Value: v} }
func Neq(field string, v interface{}) Filter { return Filter{Field: field, Op: OpNeq, Value: v} }
func Lt(field string, v interface{}) Filter  { return Filter{Field: field, Op: OpLt, Value: v} }
func Gte(field string, v interface{}) Filter { return Filter{Field: field, Op: OpGte, Value: v} }
func In(field string, v []string) Filter     { return Filter{Field: field, Op: OpIn, Value: v} }

// Sort orders by one field.
type Sort struct {
	Field string
	Desc  bool
}

func Asc(field string) Sort  { return Sort{Field: field} }
func Desc(field string) Sort { return Sort{Field: field, Desc: true} }

// Query is a conjunction of filters with ordering and an optional limit.
// A Limit of zero means no limit.
type Query struct {
	Filters []Filter
	Sorts   []Sort
	Limit   int
}

// Validate rejects unknown fields and malformed membership filters.
func (q Query) Validate() error {
	for _, f := range q.Filters {
		if !knownFields[f.Field] {
			return fmt.Errorf("%w: %s", ErrUnknownField, f.Field)
		}
		if f.Op == OpIn {
			if _, ok := f.Value.([]string); !ok {
				return fmt.Errorf("filter on %s: membership needs []string, got %T", f.Field, f.Value)
			}
		}
	}
	for _, s := range q.Sorts {
		if !knownFields[s.Field] {
			return fmt.Errorf("%w: %s", ErrUnknownField, s.Field)
		}
	}
	return nil
}

// Store answers product queries.
type Store interface {
	Find(ctx context.Context, q Query) ([]models.Product, error)
}
