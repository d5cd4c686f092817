package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/pageza/labellens/backend/internal/models"
	"github.com/pageza/labellens/backend/internal/types"
)

// IAnalysisService defines the interface for label analysis
type IAnalysisService interface {
	Analyze(ctx context.Context, req types.AnalyzeRequest, userID *uuid.UUID) (*types.AnalysisResult, error)
}

// ICategoryResolver resolves a label to a taxonomy pair
type ICategoryResolver interface {
	Resolve(ctx context.Context, text, overridePrimary, overrideSecondary string) types.CategoryResolution
}

// IAlternativeService defines the interface for alternative product searches
type IAlternativeService interface {
	ForCategory(ctx context.Context, req types.CategoryAlternativesRequest) (types.AlternativeSet, error)
	ForThreshold(ctx context.Context, req types.ThresholdAlternativesRequest) (types.ThresholdResult, error)
	Search(ctx context.Context, category types.CategoryResolution, baseline, limit int) (types.AlternativeSet, error)
	DefaultLimit() int
}

// IAuthService defines the interface for token operations
type IAuthService interface {
	ValidateToken(token string) (*types.TokenClaims, error)
	GenerateToken(claims *types.TokenClaims) (string, error)
}

// IPreferenceService defines the interface for preference profile storage
type IPreferenceService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (types.PreferenceProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdatePreferencesRequest) (types.PreferenceProfile, error)
}

// IHistoryService defines the interface for scan history
type IHistoryService interface {
	Record(ctx context.Context, userID uuid.UUID, productName, text string, result *types.AnalysisResult) error
	List(ctx context.Context, userID uuid.UUID, limit int) ([]models.ScanHistory, error)
}

// ICatalogAdminService defines the interface for reference catalog administration
type ICatalogAdminService interface {
	Status() CatalogStatus
	Reload(ctx context.Context) (CatalogStatus, error)
}
