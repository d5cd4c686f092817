package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pageza/labellens/backend/internal/taxonomy"
	"github.com/pageza/labellens/backend/internal/types"
)

const categoryCachePrefix = "labellens:category:"

// CategoryResolver turns an override or a classifier guess into a taxonomy
// pair. It never fails: anything untrustworthy resolves to the sentinel.
type CategoryResolver struct {
	classifier Classifier
	taxonomy   *taxonomy.Taxonomy
	cache      *redis.Client
	cacheTTL   time.Duration
	timeout    time.Duration
	logger     *zap.Logger
}

// NewCategoryResolver accepts a nil classifier (always sentinel unless
// overridden) and a nil cache.
func NewCategoryResolver(classifier Classifier, tax *taxonomy.Taxonomy, cache *redis.Client, cacheTTL, timeout time.Duration, logger *zap.Logger) *CategoryResolver {
	if tax == nil {
		tax = taxonomy.Default()
	}
	if cacheTTL <= 0 {
		cacheTTL = 24 * time.Hour
	}
	return &CategoryResolver{
		classifier: classifier,
		taxonomy:   tax,
		cache:      cache,
		cacheTTL:   cacheTTL,
		timeout:    timeout,
		logger:     logger.Named("category"),
	}
}

func uncategorized() types.CategoryResolution {
	return types.CategoryResolution{
		Primary:   types.UncategorizedPrimary,
		Secondary: types.UncategorizedSecondary,
	}
}

// Resolve uses the override pair verbatim when both halves are present.
func (r *CategoryResolver) Resolve(ctx context.Context, text, overridePrimary, overrideSecondary string) types.CategoryResolution {
	if overridePrimary != "" && overrideSecondary != "" {
		return types.CategoryResolution{Primary: overridePrimary, Secondary: overrideSecondary}
	}
	if r.classifier == nil || strings.TrimSpace(text) == "" {
		return uncategorized()
	}

	key := categoryCachePrefix + textHash(text)
	if cached, ok := r.fromCache(ctx, key); ok {
		return cached
	}

	callCtx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	primary, secondary, err := r.classifier.Classify(callCtx, text)
	if err != nil {
		r.logger.Warn("Classifier unavailable, using sentinel category", zap.Error(err))
		return uncategorized()
	}
	if !r.taxonomy.IsValid(primary, secondary) {
		r.logger.Info("Classifier returned a pair outside the taxonomy",
			zap.String("primary", primary),
			zap.String("secondary", secondary))
		return uncategorized()
	}

	res := types.CategoryResolution{Primary: primary, Secondary: secondary, Inferred: true}
	r.toCache(ctx, key, res)
	return res
}

func (r *CategoryResolver) fromCache(ctx context.Context, key string) (types.CategoryResolution, bool) {
	if r.cache == nil {
		return types.CategoryResolution{}, false
	}
	data, err := r.cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.logger.Debug("Category cache read failed", zap.Error(err))
		}
		return types.CategoryResolution{}, false
	}
	var res types.CategoryResolution
	if err := json.Unmarshal(data, &res); err != nil || !r.taxonomy.IsValid(res.Primary, res.Secondary) {
		return types.CategoryResolution{}, false
	}
	return res, true
}

func (r *CategoryResolver) toCache(ctx context.Context, key string, res types.CategoryResolution) {
	if r.cache == nil {
		return
	}
	data, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := r.cache.Set(ctx, key, data, r.cacheTTL).Err(); err != nil {
		r.logger.Debug("Category cache write failed", zap.Error(err))
	}
}

func textHash(text string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.Join(strings.Fields(text), " "))))
	return hex.EncodeToString(sum[:])
}
