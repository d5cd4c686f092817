package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/labellens/backend/internal/additive"
	"github.com/pageza/labellens/backend/internal/alternatives"
	"github.com/pageza/labellens/backend/internal/catalog"
	"github.com/pageza/labellens/backend/internal/models"
	"github.com/pageza/labellens/backend/internal/service"
	"github.com/pageza/labellens/backend/internal/taxonomy"
	"github.com/pageza/labellens/backend/internal/testhelpers"
	"github.com/pageza/labellens/backend/internal/types"
)

// TestAnalyzeEndToEnd wires the real services over sqlite and the embedded
// reference dataset.
func TestAnalyzeEndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testhelpers.SetupSQLiteDB(t)
	user := testhelpers.CreateTestUser(t, db, types.RoleUser)
	testhelpers.CreateTestProducts(t, db,
		testhelpers.Product("Kettle Chips", "Snacks & Savouries", "Potato Chips", 20, models.PriceLow),
		testhelpers.Product("Cheese Puffs", "Snacks & Savouries", "Potato Chips", 95, models.PriceLow),
	)

	embedded, err := additive.EmbeddedCatalog()
	require.NoError(t, err)
	registry := additive.NewStaticRegistry(embedded)

	tax := taxonomy.Default()
	store := catalog.NewGormStore(db)
	auth := service.NewAuthService("end-to-end-secret", "labellens", time.Hour)
	history := service.NewHistoryService(db)
	preferences := service.NewPreferenceService(db)
	alts := service.NewAlternativeService(alternatives.NewResolver(store, tax, alternatives.MinFill), alternatives.NewThreshold(store), tax, 10, zap.NewNop())
	analysis := service.NewAnalysisService(
		registry,
		service.NewCategoryResolver(nil, tax, nil, 0, time.Second, zap.NewNop()),
		alts,
		preferences,
		history,
		zap.NewNop(),
	)

	router := gin.New()
	SetupAPI(router, Services{
		Analysis:     analysis,
		Alternatives: alts,
		Preferences:  preferences,
		History:      history,
		Catalog:      service.NewCatalogAdminService(registry),
		Auth:         auth,
		Taxonomy:     tax,
	})
	a := &testAPI{router: router}

	token, err := auth.GenerateToken(&types.TokenClaims{UserID: user.ID, Email: user.Email})
	require.NoError(t, err)
	header := "Bearer " + token

	w := a.do(http.MethodPost, "/api/v1/safety/analyze",
		`{"text":"Ingredients: Water, Sugar, E621, Preservative (INS 211), E102","override_primary":"Snacks & Savouries","override_secondary":"Potato Chips"}`,
		header)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result types.AnalysisResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 10, result.Score)
	assert.Equal(t, 90, result.RiskScore)
	assert.Equal(t, types.RiskHigh, result.RiskLevel)
	require.Len(t, result.Alternatives.Items, 1)
	assert.Equal(t, "Kettle Chips", result.Alternatives.Items[0].Name)

	w = a.do(http.MethodGet, "/api/v1/history", "", header)
	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Items []struct {
			ID        string `json:"id"`
			RiskScore int    `json:"risk_score"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, result.ID.String(), page.Items[0].ID)
	assert.Equal(t, 90, page.Items[0].RiskScore)
}
