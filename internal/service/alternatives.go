package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/pageza/labellens/backend/internal/alternatives"
	"github.com/pageza/labellens/backend/internal/taxonomy"
	"github.com/pageza/labellens/backend/internal/types"
)

var (
	ErrMissingCategory = errors.New("category is required")
	ErrInvalidScore    = errors.New("score is out of range")
)

// MaxAlternativesLimit caps caller-supplied bounds.
const MaxAlternativesLimit = 50

// AlternativeService validates search requests and runs both search flavors.
type AlternativeService struct {
	resolver  *alternatives.Resolver
	threshold *alternatives.Threshold
	taxonomy  *taxonomy.Taxonomy
	limit     int
	logger    *zap.Logger
}

func NewAlternativeService(resolver *alternatives.Resolver, threshold *alternatives.Threshold, tax *taxonomy.Taxonomy, limit int, logger *zap.Logger) *AlternativeService {
	if tax == nil {
		tax = taxonomy.Default()
	}
	if limit <= 0 {
		limit = alternatives.DefaultBound
	}
	return &AlternativeService{
		resolver:  resolver,
		threshold: threshold,
		taxonomy:  tax,
		limit:     limit,
		logger:    logger.Named("alternatives"),
	}
}

// DefaultLimit is the configured result bound.
func (s *AlternativeService) DefaultLimit() int {
	return s.limit
}

// ForCategory runs the tiered search. A missing primary is looked up from
// the secondary.
func (s *AlternativeService) ForCategory(ctx context.Context, req types.CategoryAlternativesRequest) (types.AlternativeSet, error) {
	secondary := strings.TrimSpace(req.Secondary)
	if secondary == "" {
		return types.AlternativeSet{}, ErrMissingCategory
	}
	if req.RiskScore == nil || *req.RiskScore < 0 || *req.RiskScore > 100 {
		return types.AlternativeSet{}, fmt.Errorf("%w: risk_score must be between 0 and 100", ErrInvalidScore)
	}
	primary := strings.TrimSpace(req.Primary)
	if primary == "" {
		primary, _ = s.taxonomy.PrimaryOf(secondary)
	}
	limit := req.Limit
	if limit <= 0 {
		limit = s.limit
	}
	if limit > MaxAlternativesLimit {
		limit = MaxAlternativesLimit
	}

	return s.Search(ctx, types.CategoryResolution{Primary: primary, Secondary: secondary}, *req.RiskScore, limit)
}

// Search runs the tiered search for an already resolved category.
func (s *AlternativeService) Search(ctx context.Context, category types.CategoryResolution, baseline, limit int) (types.AlternativeSet, error) {
	set, err := s.resolver.Resolve(ctx, alternatives.Request{
		Primary:   category.Primary,
		Secondary: category.Secondary,
		Baseline:  baseline,
		Bound:     limit,
	})
	if err != nil {
		s.logger.Warn("Alternative search failed",
			zap.String("secondary", category.Secondary),
			zap.Error(err))
		return set, err
	}
	return set, nil
}

// ForThreshold runs the safety-rating threshold search.
func (s *AlternativeService) ForThreshold(ctx context.Context, req types.ThresholdAlternativesRequest) (types.ThresholdResult, error) {
	category := strings.TrimSpace(req.Category)
	if category == "" {
		return types.ThresholdResult{}, ErrMissingCategory
	}
	if req.Score == nil || math.IsNaN(*req.Score) || *req.Score < 0 || *req.Score > alternatives.MaxRating {
		return types.ThresholdResult{}, fmt.Errorf("%w: score must be between 0 and 10", ErrInvalidScore)
	}

	res, err := s.threshold.Find(ctx, category, *req.Score)
	if err != nil {
		s.logger.Warn("Threshold search failed",
			zap.String("category", category),
			zap.Error(err))
		return res, err
	}
	return res, nil
}
