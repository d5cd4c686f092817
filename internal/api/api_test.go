package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/labellens/backend/internal/alternatives"
	"github.com/pageza/labellens/backend/internal/mocks"
	"github.com/pageza/labellens/backend/internal/models"
	"github.com/pageza/labellens/backend/internal/service"
	"github.com/pageza/labellens/backend/internal/taxonomy"
	"github.com/pageza/labellens/backend/internal/types"
)

type testAPI struct {
	router       *gin.Engine
	analysis     *mocks.MockAnalysisService
	alternatives *mocks.MockAlternativeService
	preferences  *mocks.MockPreferenceService
	history      *mocks.MockHistoryService
	catalog      *mocks.MockCatalogAdminService
	auth         *mocks.MockAuthService
}

func newTestAPI() *testAPI {
	gin.SetMode(gin.TestMode)
	a := &testAPI{
		router:       gin.New(),
		analysis:     new(mocks.MockAnalysisService),
		alternatives: new(mocks.MockAlternativeService),
		preferences:  new(mocks.MockPreferenceService),
		history:      new(mocks.MockHistoryService),
		catalog:      new(mocks.MockCatalogAdminService),
		auth:         new(mocks.MockAuthService),
	}
	a.auth.On("ValidateToken", "bad").Return(nil, service.ErrInvalidToken)
	SetupAPI(a.router, Services{
		Analysis:     a.analysis,
		Alternatives: a.alternatives,
		Preferences:  a.preferences,
		History:      a.history,
		Catalog:      a.catalog,
		Auth:         a.auth,
		Taxonomy:     taxonomy.Default(),
	})
	return a
}

// as registers a token for a user with role and returns the header value.
func (a *testAPI) as(role string) (uuid.UUID, string) {
	id := uuid.New()
	token := "token-" + id.String()
	a.auth.On("ValidateToken", token).Return(&types.TokenClaims{UserID: id, Role: role}, nil)
	return id, "Bearer " + token
}

func (a *testAPI) do(method, path, body, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func anonymous(id *uuid.UUID) bool { return id == nil }

func TestAnalyzeAnonymous(t *testing.T) {
	a := newTestAPI()
	a.analysis.On("Analyze", mock.Anything, types.AnalyzeRequest{Text: "E621"}, mock.MatchedBy(anonymous)).
		Return(&types.AnalysisResult{Score: 85, RiskScore: 15, RiskLevel: types.RiskLow}, nil).Once()

	w := a.do(http.MethodPost, "/api/v1/safety/analyze", `{"text":"E621"}`, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"risk_score":15`)
	a.analysis.AssertExpectations(t)
}

func TestAnalyzeWithBadTokenIsAnonymous(t *testing.T) {
	a := newTestAPI()
	a.analysis.On("Analyze", mock.Anything, mock.Anything, mock.MatchedBy(anonymous)).
		Return(&types.AnalysisResult{Score: 100}, nil).Once()

	w := a.do(http.MethodPost, "/api/v1/safety/analyze", `{"text":"water"}`, "Bearer bad")
	assert.Equal(t, http.StatusOK, w.Code)
	a.analysis.AssertExpectations(t)
}

func TestAnalyzeAuthenticated(t *testing.T) {
	a := newTestAPI()
	userID, header := a.as(types.RoleUser)
	a.analysis.On("Analyze", mock.Anything, mock.Anything, mock.MatchedBy(func(id *uuid.UUID) bool {
		return id != nil && *id == userID
	})).Return(&types.AnalysisResult{Score: 100}, nil).Once()

	w := a.do(http.MethodPost, "/api/v1/safety/analyze", `{"text":"water","override_primary":"Beverages","override_secondary":"Cola"}`, header)
	assert.Equal(t, http.StatusOK, w.Code)
	a.analysis.AssertExpectations(t)
}

func TestAnalyzeErrors(t *testing.T) {
	a := newTestAPI()
	a.analysis.On("Analyze", mock.Anything, types.AnalyzeRequest{Text: ""}, mock.Anything).Return(nil, service.ErrEmptyText)
	a.analysis.On("Analyze", mock.Anything, types.AnalyzeRequest{Text: "boom"}, mock.Anything).Return(nil, errors.New("database on fire"))

	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodPost, "/api/v1/safety/analyze", `{"text":""}`, "").Code)
	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodPost, "/api/v1/safety/analyze", `{"text":`, "").Code)

	w := a.do(http.MethodPost, "/api/v1/safety/analyze", `{"text":"boom"}`, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal Server Error")
}

func TestThresholdAlternatives(t *testing.T) {
	a := newTestAPI()
	a.alternatives.On("ForThreshold", mock.Anything, mock.MatchedBy(func(req types.ThresholdAlternativesRequest) bool {
		return req.Category == "Potato Chips" && req.Score != nil && *req.Score == 4.5
	})).Return(types.ThresholdResult{Outcome: types.OutcomeFound, MinimumScore: 4.6, Items: []types.AlternativeItem{}}, nil)

	w := a.do(http.MethodGet, "/api/v1/alternatives?category=Potato%20Chips&score=4.5", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"outcome":"found"`)

	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodGet, "/api/v1/alternatives?category=Potato%20Chips", "", "").Code)
	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodGet, "/api/v1/alternatives?score=4", "", "").Code)
}

func TestCategoryAlternatives(t *testing.T) {
	a := newTestAPI()
	a.alternatives.On("ForCategory", mock.Anything, mock.MatchedBy(func(req types.CategoryAlternativesRequest) bool {
		return req.Secondary == "Cola"
	})).Return(types.AlternativeSet{}, fmt.Errorf("%w: tier 1: connection refused", alternatives.ErrCatalogUnavailable))
	a.alternatives.On("ForCategory", mock.Anything, mock.MatchedBy(func(req types.CategoryAlternativesRequest) bool {
		return req.Secondary == "Potato Chips" && req.Limit == 3 && *req.RiskScore == 90
	})).Return(types.AlternativeSet{Items: []types.AlternativeItem{{Name: "Kettle Chips", Tier: types.TierExact}}, Counts: types.TierCounts{Exact: 1}}, nil)

	w := a.do(http.MethodGet, "/api/v1/alternatives/category?secondary=Potato%20Chips&risk_score=90&limit=3", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Kettle Chips")

	assert.Equal(t, http.StatusServiceUnavailable, a.do(http.MethodGet, "/api/v1/alternatives/category?secondary=Cola&risk_score=50", "", "").Code)
	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodGet, "/api/v1/alternatives/category?secondary=Cola", "", "").Code)
}

func TestCategories(t *testing.T) {
	a := newTestAPI()
	w := a.do(http.MethodGet, "/api/v1/categories", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Snacks \\u0026 Savouries")
	assert.Contains(t, w.Body.String(), "Potato Chips")
}

func TestPreferences(t *testing.T) {
	a := newTestAPI()
	userID, header := a.as(types.RoleUser)
	a.preferences.On("GetProfile", mock.Anything, userID).Return(types.DefaultProfile(), nil)
	a.preferences.On("UpdateProfile", mock.Anything, userID, mock.MatchedBy(func(req *types.UpdatePreferencesRequest) bool {
		return req.DietaryLifestyle["vegan"]
	})).Return(types.DefaultProfile(), nil)
	a.preferences.On("UpdateProfile", mock.Anything, userID, mock.MatchedBy(func(req *types.UpdatePreferencesRequest) bool {
		return req.HealthConditions["scurvy"]
	})).Return(types.PreferenceProfile{}, fmt.Errorf("%w: scurvy", service.ErrUnknownPreference))

	assert.Equal(t, http.StatusUnauthorized, a.do(http.MethodGet, "/api/v1/profile/preferences", "", "").Code)

	w := a.do(http.MethodGet, "/api/v1/profile/preferences", "", header)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"risk_sensitivity":"moderate"`)

	assert.Equal(t, http.StatusOK, a.do(http.MethodPut, "/api/v1/profile/preferences", `{"dietary_lifestyle":{"vegan":true}}`, header).Code)
	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodPut, "/api/v1/profile/preferences", `{"health_conditions":{"scurvy":true}}`, header).Code)
}

func TestHistory(t *testing.T) {
	a := newTestAPI()
	userID, header := a.as(types.RoleUser)
	a.history.On("List", mock.Anything, userID, 5).Return([]models.ScanHistory{{ID: uuid.New(), UserID: userID, Score: 10}}, nil)

	w := a.do(http.MethodGet, "/api/v1/history?limit=5", "", header)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"score":10`)

	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodGet, "/api/v1/history?limit=many", "", header).Code)
	assert.Equal(t, http.StatusUnauthorized, a.do(http.MethodGet, "/api/v1/history", "", "").Code)
}

func TestAdminReload(t *testing.T) {
	a := newTestAPI()
	_, user := a.as(types.RoleUser)
	_, admin := a.as(types.RoleAdmin)
	current := service.CatalogStatus{Source: "embedded", Records: 42, Loaded: true}
	a.catalog.On("Reload", mock.Anything).Return(current, errors.New("bucket unreachable")).Once()
	a.catalog.On("Reload", mock.Anything).Return(current, nil).Once()

	assert.Equal(t, http.StatusUnauthorized, a.do(http.MethodPost, "/api/v1/admin/additives/reload", "", "").Code)
	assert.Equal(t, http.StatusForbidden, a.do(http.MethodPost, "/api/v1/admin/additives/reload", "", user).Code)

	failed := a.do(http.MethodPost, "/api/v1/admin/additives/reload", "", admin)
	assert.Equal(t, http.StatusBadGateway, failed.Code)
	assert.Contains(t, failed.Body.String(), `"records":42`)

	assert.Equal(t, http.StatusOK, a.do(http.MethodPost, "/api/v1/admin/additives/reload", "", admin).Code)
	a.catalog.AssertExpectations(t)
}

func TestHealthCheck(t *testing.T) {
	a := newTestAPI()
	a.catalog.On("Status").Return(service.CatalogStatus{Source: "s3://bucket/additives.json"}).Once()
	a.catalog.On("Status").Return(service.CatalogStatus{Source: "embedded", Records: 42, Loaded: true}).Once()

	degraded := a.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, degraded.Code)
	assert.Contains(t, degraded.Body.String(), `"status":"degraded"`)

	assert.Contains(t, a.do(http.MethodGet, "/health", "", "").Body.String(), `"status":"healthy"`)
}
