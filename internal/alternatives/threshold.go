package alternatives

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/pageza/labellens/backend/internal/catalog"
	"github.com/pageza/labellens/backend/internal/models"
	"github.com/pageza/labellens/backend/internal/types"
)

const (
	// NearMaxRating is the baseline at or above which only perfect items qualify.
	NearMaxRating = 9.0
	MaxRating     = 10.0
	thresholdCap  = 10
	topRatedCount = 3
)

// MinimumRating is the lowest safety rating that counts as an improvement on baseline.
func MinimumRating(baseline float64) float64 {
	if baseline >= NearMaxRating {
		return MaxRating
	}
	return math.Round((baseline+0.1)*100) / 100
}

// Threshold answers "what is safer than this rating" within one category
// on the 0-10 safety rating scale.
type Threshold struct {
	store catalog.Store
}

func NewThreshold(store catalog.Store) *Threshold {
	return &Threshold{store: store}
}

// Find returns products in category rated at least MinimumRating(baseline).
// With no qualifying product it reports already_safest when nothing in the
// category beats the baseline, otherwise the category's top rated items.
func (t *Threshold) Find(ctx context.Context, category string, baseline float64) (types.ThresholdResult, error) {
	minimum := MinimumRating(baseline)
	result := types.ThresholdResult{MinimumScore: minimum, Items: []types.AlternativeItem{}}

	better, err := t.store.Find(ctx, catalog.Query{
		Filters: []catalog.Filter{
			catalog.Eq(catalog.FieldSecondary, category),
			catalog.Gte(catalog.FieldSafetyRating, minimum),
		},
		Sorts: []catalog.Sort{catalog.Desc(catalog.FieldSafetyRating)},
		Limit: thresholdCap,
	})
	if err != nil {
		return result, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	if len(better) >= topRatedCount {
		result.Outcome = types.OutcomeFound
		result.Items = toRatedItems(better)
		return result, nil
	}

	top, err := t.topRated(ctx, category)
	if err != nil {
		return result, err
	}

	if len(better) > 0 {
		result.Outcome = types.OutcomeFound
		result.Items = toRatedItems(mergeProducts(better, top))
		return result, nil
	}

	switch {
	case len(top) == 0:
		result.Outcome = types.OutcomeFound
		result.Message = "No products found in this category."
	case top[0].SafetyRating <= baseline:
		result.Outcome = types.OutcomeAlreadySafest
		result.Message = "This product is already among the safest in its category."
	default:
		result.Outcome = types.OutcomeTopRated
		result.Message = "No products meet the minimum rating; showing the top rated in this category."
		result.Items = toRatedItems(top)
	}
	return result, nil
}

func (t *Threshold) topRated(ctx context.Context, category string) ([]models.Product, error) {
	top, err := t.store.Find(ctx, catalog.Query{
		Filters: []catalog.Filter{catalog.Eq(catalog.FieldSecondary, category)},
		Sorts:   []catalog.Sort{catalog.Desc(catalog.FieldSafetyRating)},
		Limit:   topRatedCount,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	return top, nil
}

func mergeProducts(lists ...[]models.Product) []models.Product {
	seen := make(map[uuid.UUID]bool)
	var out []models.Product
	for _, list := range lists {
		for _, p := range list {
			if seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			out = append(out, p)
		}
	}
	return out
}

// toRatedItems orders by rating descending then cheaper first.
func toRatedItems(products []models.Product) []types.AlternativeItem {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].SafetyRating != sorted[j].SafetyRating {
			return sorted[i].SafetyRating > sorted[j].SafetyRating
		}
		return models.PriceOrdinal(sorted[i].PriceTier) < models.PriceOrdinal(sorted[j].PriceTier)
	})
	if len(sorted) > thresholdCap {
		sorted = sorted[:thresholdCap]
	}
	items := make([]types.AlternativeItem, len(sorted))
	for i, p := range sorted {
		items[i] = toItem(p, 0)
	}
	return items
}
