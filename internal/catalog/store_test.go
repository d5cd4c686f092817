package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/labellens/backend/internal/models"
	"github.com/pageza/labellens/backend/internal/testhelpers"
)

const (
	snacks = "Snacks & Savouries"
	sweets = "Confectionery & Sweets"
)

func fixtures() []models.Product {
	return []models.Product{
		testhelpers.Product("Sea Salt Chips", snacks, "Potato Chips", 35, models.PriceMedium),
		testhelpers.Product("Baked Veggie Crisps", snacks, "Potato Chips", 20, models.PriceLow),
		testhelpers.Product("Cheese Puffs", snacks, "Potato Chips", 80, models.PriceLow),
		testhelpers.Product("Popcorn Lightly Salted", snacks, "Popcorn", 20, models.PricePremium),
		testhelpers.Product("Dark Chocolate 85%", sweets, "Dark Chocolate", 10, models.PriceLow),
	}
}

func storesUnderTest(t *testing.T) map[string]Store {
	db := testhelpers.SetupSQLiteDB(t)
	testhelpers.CreateTestProducts(t, db, fixtures()...)
	return map[string]Store{
		"memory": NewMemoryStore(fixtures()),
		"gorm":   NewGormStore(db),
	}
}

func names(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestStoreQueries(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{
			name: "equality with less-than, ascending risk",
			query: Query{
				Filters: []Filter{Eq(FieldSecondary, "Potato Chips"), Lt(FieldRiskScore, 50)},
				Sorts:   []Sort{Asc(FieldRiskScore)},
			},
			want: []string{"Baked Veggie Crisps", "Sea Salt Chips"},
		},
		{
			name: "inequality excludes a secondary",
			query: Query{
				Filters: []Filter{Eq(FieldPrimary, snacks), Neq(FieldSecondary, "Potato Chips")},
			},
			want: []string{"Popcorn Lightly Salted"},
		},
		{
			name: "membership with limit",
			query: Query{
				Filters: []Filter{In(FieldSecondary, []string{"Dark Chocolate", "Popcorn"})},
				Sorts:   []Sort{Asc(FieldRiskScore)},
				Limit:   1,
			},
			want: []string{"Dark Chocolate 85%"},
		},
		{
			name: "descending sort",
			query: Query{
				Filters: []Filter{Eq(FieldSecondary, "Potato Chips")},
				Sorts:   []Sort{Desc(FieldRiskScore)},
			},
			want: []string{"Cheese Puffs", "Sea Salt Chips", "Baked Veggie Crisps"},
		},
		{
			name: "empty membership list matches nothing",
			query: Query{
				Filters: []Filter{In(FieldSecondary, []string{})},
			},
			want: []string{},
		},
	}

	for storeName, store := range storesUnderTest(t) {
		for _, tt := range tests {
			t.Run(storeName+"/"+tt.name, func(t *testing.T) {
				got, err := store.Find(context.Background(), tt.query)
				require.NoError(t, err)
				assert.Equal(t, tt.want, names(got))
			})
		}
	}
}

func TestStoreRejectsUnknownField(t *testing.T) {
	for storeName, store := range storesUnderTest(t) {
		t.Run(storeName, func(t *testing.T) {
			_, err := store.Find(context.Background(), Query{Filters: []Filter{Eq("password", "x")}})
			assert.ErrorIs(t, err, ErrUnknownField)
		})
	}
}

func TestMemoryStoreDerivesRiskLevel(t *testing.T) {
	p := testhelpers.Product("Cola", "Beverages", "Cola", 75, models.PriceLow)
	store := NewMemoryStore([]models.Product{p})

	got, err := store.Find(context.Background(), Query{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "high", string(got[0].RiskLevel))
}

func TestGormStorePostgres(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	testhelpers.CreateTestProducts(t, db, fixtures()...)
	store := NewGormStore(db)

	got, err := store.Find(context.Background(), Query{
		Filters: []Filter{Eq(FieldPrimary, snacks), Lt(FieldRiskScore, 50)},
		Sorts:   []Sort{Asc(FieldRiskScore), Asc(FieldName)},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Baked Veggie Crisps", "Popcorn Lightly Salted", "Sea Salt Chips"}, names(got))

	got, err = store.Find(context.Background(), Query{
		Filters: []Filter{In(FieldSecondary, []string{"Dark Chocolate"})},
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "low", string(got[0].RiskLevel))
}
