package catalog

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/labellens/backend/internal/models"
)

// GormStore runs queries against the products table.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Find(ctx context.Context, q Query) ([]models.Product, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	tx := s.db.WithContext(ctx).Model(&models.Product{})
	for _, f := range q.Filters {
		col := clause.Column{Name: f.Field}
		switch f.Op {
		case OpEq:
			tx = tx.Where(clause.Eq{Column: col, Value: f.Value})
		case OpNeq:
			tx = tx.Where(clause.Neq{Column: col, Value: f.Value})
		case OpLt:
			tx = tx.Where(clause.Lt{Column: col, Value: f.Value})
		case OpGte:
			tx = tx.Where(clause.Gte{Column: col, Value: f.Value})
		case OpIn:
			values := f.Value.([]string)
			if len(values) == 0 {
				return []models.Product{}, nil
			}
			args := make([]interface{}, len(values))
			for i, v := range values {
				args[i] = v
			}
			tx = tx.Where(clause.IN{Column: col, Values: args})
		default:
			return nil, fmt.Errorf("unsupported filter op %d", f.Op)
		}
	}
	for _, o := range q.Sorts {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: o.Field}, Desc: o.Desc})
	}
	// Stable results across identical sort keys.
	tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var products []models.Product
	if err := tx.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	return products, nil
}

// Create inserts products; used by seeding.
func (s *GormStore) Create(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(&products).Error
}
