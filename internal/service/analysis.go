package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pageza/labellens/backend/internal/additive"
	"github.com/pageza/labellens/backend/internal/scoring"
	"github.com/pageza/labellens/backend/internal/types"
)

// ErrEmptyText rejects requests with no label text.
var ErrEmptyText = errors.New("ingredient text is required")

// Evaluate runs detection and scoring against one catalog snapshot. It is
// pure: category and alternatives are left empty for the caller to fill.
func Evaluate(snapshot *additive.Catalog, text string, profile types.PreferenceProfile) *types.AnalysisResult {
	match := additive.Match(snapshot, additive.ExtractCodes(text), text)
	triggers := scoring.EvaluateTriggers(text, profile)
	nutrition := scoring.DetectNutritionFlags(text)

	score := scoring.Score(scoring.Input{
		Additives: match.Matched,
		Triggers:  triggers,
		Nutrition: nutrition,
		Profile:   profile,
	})

	detected := make([]types.DetectedAdditive, len(match.Matched))
	for i, r := range match.Matched {
		detected[i] = r.Detail()
	}
	warnings := scoring.AdditiveWarnings(match.Matched, profile)
	if warnings == nil {
		warnings = []string{}
	}

	return &types.AnalysisResult{
		ID:             uuid.New(),
		Score:          score.Score,
		RiskScore:      score.RiskScore,
		RiskLevel:      score.RiskLevel,
		Additives:      detected,
		UnmatchedCodes: match.Unmatched,
		Triggers:       triggers,
		Warnings:       warnings,
		Reasons:        score.Reasons,
		Nutrition:      nutrition,
		Breakdown:      score.Breakdown,
		Category: types.CategoryResolution{
			Primary:   types.UncategorizedPrimary,
			Secondary: types.UncategorizedSecondary,
		},
		Alternatives: types.AlternativeSet{Items: []types.AlternativeItem{}},
		AnalyzedAt:   time.Now().UTC(),
	}
}

// AnalysisService runs the full analysis for one request.
type AnalysisService struct {
	registry     *additive.Registry
	categories   ICategoryResolver
	alternatives IAlternativeService
	preferences  IPreferenceService
	history      IHistoryService
	limit        int
	logger       *zap.Logger
}

// NewAnalysisService wires the pipeline. preferences and history may be nil
// when no database is configured.
func NewAnalysisService(
	registry *additive.Registry,
	categories ICategoryResolver,
	alternatives IAlternativeService,
	preferences IPreferenceService,
	history IHistoryService,
	logger *zap.Logger,
) *AnalysisService {
	limit := 0
	if alternatives != nil {
		limit = alternatives.DefaultLimit()
	}
	return &AnalysisService{
		registry:     registry,
		categories:   categories,
		alternatives: alternatives,
		preferences:  preferences,
		history:      history,
		limit:        limit,
		logger:       logger.Named("analysis"),
	}
}

// Analyze scores the text for the caller. userID is nil for anonymous
// callers, who get the default profile. Only empty text is an error;
// every collaborator failure degrades the result instead.
func (s *AnalysisService) Analyze(ctx context.Context, req types.AnalyzeRequest, userID *uuid.UUID) (*types.AnalysisResult, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrEmptyText
	}

	profile := s.profileFor(ctx, userID)
	result := Evaluate(s.registry.Snapshot(), text, profile)

	if s.categories != nil {
		result.Category = s.categories.Resolve(ctx, text, req.OverridePrimary, req.OverrideSecondary)
	}

	if s.alternatives != nil && !result.Category.IsUncategorized() {
		set, err := s.alternatives.Search(ctx, result.Category, result.RiskScore, s.limit)
		if err != nil {
			result.AlternativesError = "Alternatives are temporarily unavailable."
		}
		result.Alternatives = set
		if result.Alternatives.Items == nil {
			result.Alternatives.Items = []types.AlternativeItem{}
		}
	}

	if userID != nil && s.history != nil {
		if err := s.history.Record(ctx, *userID, req.ProductName, text, result); err != nil {
			s.logger.Warn("Failed to record scan history",
				zap.String("user_id", userID.String()),
				zap.Error(err))
		}
	}

	s.logger.Debug("Analysis completed",
		zap.Int("score", result.Score),
		zap.Int("additives", len(result.Additives)),
		zap.Int("unmatched", len(result.UnmatchedCodes)),
		zap.String("secondary", result.Category.Secondary),
		zap.Int("alternatives", len(result.Alternatives.Items)))
	return result, nil
}

func (s *AnalysisService) profileFor(ctx context.Context, userID *uuid.UUID) types.PreferenceProfile {
	if userID == nil || s.preferences == nil {
		return types.DefaultProfile()
	}
	profile, err := s.preferences.GetProfile(ctx, *userID)
	if err != nil {
		s.logger.Warn("Failed to load preferences, using defaults",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return types.DefaultProfile()
	}
	return profile
}
