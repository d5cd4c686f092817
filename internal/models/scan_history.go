package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ScanHistory is a log entry of one analysis made by an authenticated user.
type ScanHistory struct {
	ID                uuid.UUID        `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID            uuid.UUID        `gorm:"type:varchar(36);not null;index" json:"user_id"`
	ProductName       string           `gorm:"size:255" json:"product_name"`
	IngredientText    string           `gorm:"type:text;not null" json:"ingredient_text"`
	Score             int              `gorm:"not null" json:"score"`
	RiskScore         int              `gorm:"not null" json:"risk_score"`
	RiskLevel         string           `gorm:"size:16;not null" json:"risk_level"`
	AdditiveCodes     JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"additive_codes"`
	PrimaryCategory   string           `gorm:"size:100" json:"primary_category"`
	SecondaryCategory string           `gorm:"size:100" json:"secondary_category"`
	Result            datatypes.JSON   `json:"result"`
	CreatedAt         time.Time        `gorm:"index" json:"created_at"`
}

func (ScanHistory) TableName() string {
	return "scan_history"
}

func (h *ScanHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
