package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/labellens/backend/internal/additive"
	"github.com/pageza/labellens/backend/internal/alternatives"
	"github.com/pageza/labellens/backend/internal/catalog"
	"github.com/pageza/labellens/backend/internal/mocks"
	"github.com/pageza/labellens/backend/internal/models"
	"github.com/pageza/labellens/backend/internal/service"
	"github.com/pageza/labellens/backend/internal/taxonomy"
	"github.com/pageza/labellens/backend/internal/testhelpers"
	"github.com/pageza/labellens/backend/internal/types"
)

const scenarioText = "Ingredients: Water, Sugar, E621, Preservative (INS 211), E102"

var chips = types.CategoryResolution{Primary: "Snacks & Savouries", Secondary: "Potato Chips", Inferred: true}

func embeddedRegistry(t *testing.T) *additive.Registry {
	c, err := additive.EmbeddedCatalog()
	require.NoError(t, err)
	return additive.NewStaticRegistry(c)
}

func realAlternatives(products ...models.Product) *service.AlternativeService {
	store := catalog.NewMemoryStore(products)
	tax := taxonomy.Default()
	return service.NewAlternativeService(
		alternatives.NewResolver(store, tax, alternatives.MinFill),
		alternatives.NewThreshold(store),
		tax, 10, zap.NewNop())
}

func TestAnalyzeScenario(t *testing.T) {
	categories := new(mocks.MockCategoryResolver)
	categories.On("Resolve", mock.Anything, scenarioText, "", "").Return(chips)

	alts := realAlternatives(
		testhelpers.Product("Kettle Chips", chips.Primary, chips.Secondary, 20, models.PriceLow),
		testhelpers.Product("Flamin Chips", chips.Primary, chips.Secondary, 95, models.PriceLow),
	)
	svc := service.NewAnalysisService(embeddedRegistry(t), categories, alts, nil, nil, zap.NewNop())

	res, err := svc.Analyze(context.Background(), types.AnalyzeRequest{Text: scenarioText}, nil)
	require.NoError(t, err)

	codes := make([]string, len(res.Additives))
	for i, a := range res.Additives {
		codes[i] = a.Code
	}
	assert.Equal(t, []string{"E621", "E211", "E102"}, codes)
	assert.Empty(t, res.UnmatchedCodes)
	assert.Equal(t, 10, res.Score)
	assert.Equal(t, 90, res.RiskScore)
	assert.Equal(t, types.RiskHigh, res.RiskLevel)
	assert.Equal(t, chips, res.Category)

	require.Len(t, res.Alternatives.Items, 1)
	assert.Equal(t, "Kettle Chips", res.Alternatives.Items[0].Name)
	assert.Equal(t, 1, res.Alternatives.Counts.Exact)
	assert.Empty(t, res.AlternativesError)
	categories.AssertExpectations(t)
}

func TestAnalyzeRejectsEmptyText(t *testing.T) {
	svc := service.NewAnalysisService(embeddedRegistry(t), nil, nil, nil, nil, zap.NewNop())

	for _, text := range []string{"", "   \n\t"} {
		_, err := svc.Analyze(context.Background(), types.AnalyzeRequest{Text: text}, nil)
		assert.ErrorIs(t, err, service.ErrEmptyText)
	}
}

func TestAnalyzeUncategorizedSkipsSearch(t *testing.T) {
	categories := new(mocks.MockCategoryResolver)
	categories.On("Resolve", mock.Anything, mock.Anything, "", "").
		Return(types.CategoryResolution{Primary: types.UncategorizedPrimary, Secondary: types.UncategorizedSecondary})
	alts := new(mocks.MockAlternativeService)
	alts.On("DefaultLimit").Return(10)

	svc := service.NewAnalysisService(embeddedRegistry(t), categories, alts, nil, nil, zap.NewNop())
	res, err := svc.Analyze(context.Background(), types.AnalyzeRequest{Text: "Water, salt"}, nil)
	require.NoError(t, err)

	assert.Equal(t, 100, res.Score)
	assert.Empty(t, res.Alternatives.Items)
	alts.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAnalyzeAlternativeFailureKeepsScore(t *testing.T) {
	categories := new(mocks.MockCategoryResolver)
	categories.On("Resolve", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(chips)
	alts := new(mocks.MockAlternativeService)
	alts.On("DefaultLimit").Return(10)
	alts.On("Search", mock.Anything, chips, 90, 10).
		Return(types.AlternativeSet{Items: []types.AlternativeItem{}}, alternatives.ErrCatalogUnavailable)

	svc := service.NewAnalysisService(embeddedRegistry(t), categories, alts, nil, nil, zap.NewNop())
	res, err := svc.Analyze(context.Background(), types.AnalyzeRequest{Text: scenarioText}, nil)
	require.NoError(t, err)

	assert.Equal(t, 10, res.Score)
	assert.NotEmpty(t, res.AlternativesError)
	assert.Empty(t, res.Alternatives.Items)
	alts.AssertExpectations(t)
}

func TestAnalyzeUnloadedCatalogDegrades(t *testing.T) {
	svc := service.NewAnalysisService(additive.NewStaticRegistry(additive.Empty()), nil, nil, nil, nil, zap.NewNop())

	res, err := svc.Analyze(context.Background(), types.AnalyzeRequest{Text: scenarioText}, nil)
	require.NoError(t, err)
	assert.Empty(t, res.Additives)
	assert.Equal(t, []string{"E621", "E211", "E102"}, res.UnmatchedCodes)
	assert.Equal(t, 100, res.Score)
	assert.True(t, res.Category.IsUncategorized())
}

func TestAnalyzeUsesStoredProfileAndRecordsHistory(t *testing.T) {
	userID := uuid.New()
	profile := types.DefaultProfile()
	profile.DietaryLifestyle[types.LifestyleVegan] = true

	prefs := new(mocks.MockPreferenceService)
	prefs.On("GetProfile", mock.Anything, userID).Return(profile, nil)
	history := new(mocks.MockHistoryService)
	history.On("Record", mock.Anything, userID, "Milk Biscuits", "Wheat flour, milk solids, butter", mock.AnythingOfType("*types.AnalysisResult")).
		Return(errors.New("disk full"))

	svc := service.NewAnalysisService(embeddedRegistry(t), nil, nil, prefs, history, zap.NewNop())
	res, err := svc.Analyze(context.Background(), types.AnalyzeRequest{
		Text:        "Wheat flour, milk solids, butter",
		ProductName: "Milk Biscuits",
	}, &userID)
	require.NoError(t, err)

	require.Len(t, res.Triggers, 1)
	assert.Equal(t, types.LifestyleVegan, res.Triggers[0].Key)
	assert.Equal(t, 75, res.Score)
	history.AssertExpectations(t)
}

func TestAnalyzeFallsBackToDefaultProfile(t *testing.T) {
	userID := uuid.New()
	prefs := new(mocks.MockPreferenceService)
	prefs.On("GetProfile", mock.Anything, userID).Return(types.PreferenceProfile{}, errors.New("db down"))

	svc := service.NewAnalysisService(embeddedRegistry(t), nil, nil, prefs, nil, zap.NewNop())
	res, err := svc.Analyze(context.Background(), types.AnalyzeRequest{Text: scenarioText}, &userID)
	require.NoError(t, err)
	assert.Equal(t, 10, res.Score)
}
