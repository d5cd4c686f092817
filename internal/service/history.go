package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/pageza/labellens/backend/internal/models"
	"github.com/pageza/labellens/backend/internal/types"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// HistoryService records analyses made by signed-in users.
type HistoryService struct {
	db *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// Record stores one analysis. The entry reuses the result's id.
func (s *HistoryService) Record(ctx context.Context, userID uuid.UUID, productName, text string, result *types.AnalysisResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}
	codes := make(models.JSONBStringArray, 0, len(result.Additives))
	for _, a := range result.Additives {
		codes = append(codes, a.Code)
	}

	entry := models.ScanHistory{
		ID:                result.ID,
		UserID:            userID,
		ProductName:       productName,
		IngredientText:    text,
		Score:             result.Score,
		RiskScore:         result.RiskScore,
		RiskLevel:         string(result.RiskLevel),
		AdditiveCodes:     codes,
		PrimaryCategory:   result.Category.Primary,
		SecondaryCategory: result.Category.Secondary,
		Result:            datatypes.JSON(payload),
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return fmt.Errorf("record scan history: %w", err)
	}
	return nil
}

// List returns the user's most recent entries, newest first.
func (s *HistoryService) List(ctx context.Context, userID uuid.UUID, limit int) ([]models.ScanHistory, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	var entries []models.ScanHistory
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list scan history: %w", err)
	}
	return entries, nil
}
