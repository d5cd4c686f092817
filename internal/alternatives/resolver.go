// Package alternatives finds safer catalog products for an analysed label.
package alternatives

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"

	"github.com/google/uuid"

	"github.com/pageza/labellens/backend/internal/catalog"
	"github.com/pageza/labellens/backend/internal/models"
	"github.com/pageza/labellens/backend/internal/taxonomy"
	"github.com/pageza/labellens/backend/internal/types"
)

// ErrCatalogUnavailable wraps any store failure during a search.
var ErrCatalogUnavailable = errors.New("product catalog unavailable")

const (
	DefaultBound = 10
	// MinFill is the tier-1 yield below which the primary category is searched.
	MinFill = 3
	// RelatedFill is the combined yield below which related categories are searched.
	RelatedFill = 5
	// RelatedCap limits the related-category query.
	RelatedCap = 5
)

// PlaceholderImageURL returns the deterministic image used when a product has none.
func PlaceholderImageURL(name string) string {
	return "https://dummyimage.com/600x600/ffffff/000000.png&text=" + url.QueryEscape(name)
}

// Request describes one tiered search. Baseline is the risk score of the
// analysed product; only strictly lower scores qualify.
type Request struct {
	Primary   string
	Secondary string
	Baseline  int
	Bound     int
}

type tierStep struct {
	tier  int
	query func(req Request, have int) (catalog.Query, bool)
}

// Resolver runs the tiered search against a catalog store.
type Resolver struct {
	store    catalog.Store
	taxonomy *taxonomy.Taxonomy
	minFill  int
	steps    []tierStep
}

// NewResolver builds a resolver. minFill <= 0 selects MinFill.
func NewResolver(store catalog.Store, tax *taxonomy.Taxonomy, minFill int) *Resolver {
	if tax == nil {
		tax = taxonomy.Default()
	}
	if minFill <= 0 {
		minFill = MinFill
	}
	r := &Resolver{store: store, taxonomy: tax, minFill: minFill}
	r.steps = []tierStep{
		{tier: types.TierExact, query: r.exactQuery},
		{tier: types.TierBroadened, query: r.broadenedQuery},
		{tier: types.TierRelated, query: r.relatedQuery},
	}
	return r
}

func (r *Resolver) exactQuery(req Request, have int) (catalog.Query, bool) {
	return catalog.Query{
		Filters: []catalog.Filter{
			catalog.Eq(catalog.FieldSecondary, req.Secondary),
			catalog.Lt(catalog.FieldRiskScore, req.Baseline),
		},
		Sorts: []catalog.Sort{catalog.Asc(catalog.FieldRiskScore), catalog.Desc(catalog.FieldCleanLabel)},
		Limit: req.Bound,
	}, true
}

func (r *Resolver) broadenedQuery(req Request, have int) (catalog.Query, bool) {
	if have >= r.minFill || have >= req.Bound || req.Primary == "" {
		return catalog.Query{}, false
	}
	return catalog.Query{
		Filters: []catalog.Filter{
			catalog.Eq(catalog.FieldPrimary, req.Primary),
			catalog.Neq(catalog.FieldSecondary, req.Secondary),
			catalog.Lt(catalog.FieldRiskScore, req.Baseline),
		},
		Sorts: []catalog.Sort{catalog.Asc(catalog.FieldRiskScore), catalog.Desc(catalog.FieldCleanLabel)},
		Limit: req.Bound - have,
	}, true
}

func (r *Resolver) relatedQuery(req Request, have int) (catalog.Query, bool) {
	if have >= RelatedFill || have >= req.Bound {
		return catalog.Query{}, false
	}
	related := r.taxonomy.Related(req.Secondary)
	if len(related) == 0 {
		return catalog.Query{}, false
	}
	return catalog.Query{
		Filters: []catalog.Filter{
			catalog.In(catalog.FieldSecondary, related),
			catalog.Lt(catalog.FieldRiskScore, req.Baseline),
		},
		Sorts: []catalog.Sort{catalog.Asc(catalog.FieldRiskScore)},
		Limit: RelatedCap,
	}, true
}

type tagged struct {
	product models.Product
	tier    int
}

// Resolve runs the tiers in order and returns at most Bound items sorted
// safest first, cheaper first on equal risk. A store failure aborts the
// search with an empty set and an error wrapping ErrCatalogUnavailable.
func (r *Resolver) Resolve(ctx context.Context, req Request) (types.AlternativeSet, error) {
	empty := types.AlternativeSet{Items: []types.AlternativeItem{}}
	if req.Bound <= 0 {
		req.Bound = DefaultBound
	}
	if req.Secondary == "" ||
		(req.Primary == types.UncategorizedPrimary && req.Secondary == types.UncategorizedSecondary) {
		return empty, nil
	}

	var collected []tagged
	for _, step := range r.steps {
		q, ok := step.query(req, len(collected))
		if !ok {
			continue
		}
		products, err := r.store.Find(ctx, q)
		if err != nil {
			return empty, fmt.Errorf("%w: tier %d: %v", ErrCatalogUnavailable, step.tier, err)
		}
		for _, p := range products {
			collected = append(collected, tagged{product: p, tier: step.tier})
		}
	}

	return assemble(collected, req.Bound), nil
}

// assemble dedupes by product identity, truncates to bound, then orders.
func assemble(collected []tagged, bound int) types.AlternativeSet {
	seen := make(map[uuid.UUID]bool, len(collected))
	unique := make([]tagged, 0, len(collected))
	for _, c := range collected {
		if seen[c.product.ID] {
			continue
		}
		seen[c.product.ID] = true
		unique = append(unique, c)
	}
	if len(unique) > bound {
		unique = unique[:bound]
	}

	sort.SliceStable(unique, func(i, j int) bool {
		a, b := unique[i].product, unique[j].product
		if a.RiskScore != b.RiskScore {
			return a.RiskScore < b.RiskScore
		}
		return models.PriceOrdinal(a.PriceTier) < models.PriceOrdinal(b.PriceTier)
	})

	set := types.AlternativeSet{Items: make([]types.AlternativeItem, 0, len(unique))}
	for _, u := range unique {
		set.Items = append(set.Items, toItem(u.product, u.tier))
		switch u.tier {
		case types.TierExact:
			set.Counts.Exact++
		case types.TierBroadened:
			set.Counts.Broadened++
		case types.TierRelated:
			set.Counts.Related++
		}
	}
	return set
}

func toItem(p models.Product, tier int) types.AlternativeItem {
	image := p.ImageURL
	if image == "" {
		image = PlaceholderImageURL(p.Name)
	}
	tags := []string(p.DietaryTags)
	if tags == nil {
		tags = []string{}
	}
	return types.AlternativeItem{
		ID:           p.ID,
		Name:         p.Name,
		Brand:        p.Brand,
		Primary:      p.PrimaryCategory,
		Secondary:    p.SecondaryCategory,
		RiskScore:    p.RiskScore,
		RiskLevel:    types.BandRisk(p.RiskScore),
		SafetyRating: p.SafetyRating,
		CleanLabel:   p.CleanLabel,
		DietaryTags:  tags,
		ImageURL:     image,
		PriceTier:    p.PriceTier,
		Tier:         tier,
	}
}
