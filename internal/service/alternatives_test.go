package service_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/labellens/backend/internal/models"
	"github.com/pageza/labellens/backend/internal/service"
	"github.com/pageza/labellens/backend/internal/testhelpers"
	"github.com/pageza/labellens/backend/internal/types"
)

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestForCategoryValidation(t *testing.T) {
	svc := realAlternatives()
	ctx := context.Background()

	_, err := svc.ForCategory(ctx, types.CategoryAlternativesRequest{Secondary: "  ", RiskScore: intPtr(50)})
	assert.ErrorIs(t, err, service.ErrMissingCategory)

	for _, score := range []*int{nil, intPtr(-1), intPtr(101)} {
		_, err := svc.ForCategory(ctx, types.CategoryAlternativesRequest{Secondary: "Potato Chips", RiskScore: score})
		assert.ErrorIs(t, err, service.ErrInvalidScore)
	}
}

func TestForCategoryInfersPrimaryAndClampsLimit(t *testing.T) {
	svc := realAlternatives(
		testhelpers.Product("Baked Crisps", "Snacks & Savouries", "Popcorn", 15, models.PriceLow),
		testhelpers.Product("Kettle Chips", "Snacks & Savouries", "Potato Chips", 20, models.PriceLow),
	)

	set, err := svc.ForCategory(context.Background(), types.CategoryAlternativesRequest{
		Secondary: "Potato Chips",
		RiskScore: intPtr(90),
		Limit:     500,
	})
	require.NoError(t, err)
	require.Len(t, set.Items, 2)
	assert.Equal(t, types.TierCounts{Exact: 1, Broadened: 1}, set.Counts, "broadening needs the inferred primary")
}

func TestForThresholdValidation(t *testing.T) {
	svc := realAlternatives()
	ctx := context.Background()

	_, err := svc.ForThreshold(ctx, types.ThresholdAlternativesRequest{Score: floatPtr(5)})
	assert.ErrorIs(t, err, service.ErrMissingCategory)

	for _, score := range []*float64{nil, floatPtr(-0.5), floatPtr(10.5), floatPtr(math.NaN())} {
		_, err := svc.ForThreshold(ctx, types.ThresholdAlternativesRequest{Category: "Potato Chips", Score: score})
		assert.ErrorIs(t, err, service.ErrInvalidScore)
	}

	res, err := svc.ForThreshold(ctx, types.ThresholdAlternativesRequest{Category: "Potato Chips", Score: floatPtr(4)})
	require.NoError(t, err)
	assert.Equal(t, types.OutcomeFound, res.Outcome)
	assert.Empty(t, res.Items)
}
