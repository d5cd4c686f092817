package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/labellens/backend/internal/types"
)

// Price tiers in ascending cost order.
const (
	PriceLow     = "low"
	PriceMedium  = "medium"
	PricePremium = "premium"
	PriceUltra   = "ultra"
)

// Product is a catalog entry that can be offered as an alternative.
// RiskScore is 0-100 with lower meaning safer; SafetyRating is the legacy
// 0-10 scale where higher is safer.
type Product struct {
	ID                uuid.UUID        `gorm:"type:varchar(36);primarykey" json:"id"`
	Name              string           `gorm:"size:255;not null" json:"name"`
	Brand             string           `gorm:"size:255" json:"brand"`
	PrimaryCategory   string           `gorm:"size:100;not null;index" json:"primary_category"`
	SecondaryCategory string           `gorm:"size:100;not null;index" json:"secondary_category"`
	RiskScore         int              `gorm:"not null;index" json:"risk_score"`
	RiskLevel         types.RiskTier   `gorm:"size:16;not null" json:"risk_level"`
	SafetyRating      float64          `gorm:"not null;default:0" json:"safety_rating"`
	CleanLabel        bool             `gorm:"not null;default:false" json:"clean_label"`
	DietaryTags       JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"dietary_tags"`
	ImageURL          string           `gorm:"size:512" json:"image_url"`
	PriceTier         string           `gorm:"size:16" json:"price_tier"`
	Price             float64          `json:"price"`
	Description       string           `gorm:"type:text" json:"description"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

// BeforeSave keeps RiskLevel consistent with RiskScore.
func (p *Product) BeforeSave(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.Sync()
	return nil
}

// Sync clamps the score and re-derives the tier. Stores that bypass gorm call it directly.
func (p *Product) Sync() {
	if p.RiskScore < 0 {
		p.RiskScore = 0
	}
	if p.RiskScore > 100 {
		p.RiskScore = 100
	}
	p.RiskLevel = types.BandRisk(p.RiskScore)
}

// PriceOrdinal ranks price tiers cheapest first; unknown tiers sort last.
func PriceOrdinal(tier string) int {
	switch tier {
	case PriceLow:
		return 1
	case PriceMedium:
		return 2
	case PricePremium:
		return 3
	case PriceUltra:
		return 4
	default:
		return 5
	}
}
