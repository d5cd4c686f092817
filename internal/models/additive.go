package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/pageza/labellens/backend/internal/types"
)

// Additive is the stored form of a reference additive record.
type Additive struct {
	ID              uuid.UUID         `gorm:"type:varchar(36);primarykey" json:"id"`
	Code            string            `gorm:"size:16;not null;uniqueIndex" json:"code"`
	Name            string            `gorm:"size:255;not null" json:"name"`
	Category        string            `gorm:"size:100" json:"category"`
	RiskLevel       types.RiskTier    `gorm:"size:16;not null;default:'unknown'" json:"risk_level"`
	Synonyms        JSONBStringArray  `gorm:"type:jsonb;not null;default:'[]'" json:"synonyms"`
	PenaltyOverride *float64          `json:"penalty_override,omitempty"`
	GroupWarnings   datatypes.JSONMap `json:"group_warnings"`
	Description     string            `gorm:"type:text" json:"description"`
	SortOrder       int               `gorm:"not null;default:0" json:"-"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func (Additive) TableName() string {
	return "additives"
}

// BeforeSave normalizes the risk tier so mixed-case seed data never reaches readers.
func (a *Additive) BeforeSave(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.RiskLevel = types.ParseRiskTier(string(a.RiskLevel))
	return nil
}

// Warnings returns GroupWarnings as plain strings, dropping non-string values.
func (a *Additive) Warnings() map[string]string {
	out := make(map[string]string, len(a.GroupWarnings))
	for k, v := range a.GroupWarnings {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}
