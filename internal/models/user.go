package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/pageza/labellens/backend/internal/types"
)

type User struct {
	ID        uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Name      string         `gorm:"not null" json:"name"`
	Email     string         `gorm:"uniqueIndex;not null" json:"email"`
	Role      string         `gorm:"size:16;not null;default:'user'" json:"role"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// UserPreferences stores one scoring profile per user.
type UserPreferences struct {
	ID                 uuid.UUID                           `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID             uuid.UUID                           `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	HealthConditions   datatypes.JSONType[map[string]bool] `json:"health_conditions"`
	DietaryLifestyle   datatypes.JSONType[map[string]bool] `json:"dietary_lifestyle"`
	RiskSensitivity    string                              `gorm:"size:16;not null;default:'moderate'" json:"risk_sensitivity"`
	SugarWeight        int                                 `gorm:"not null" json:"sugar_weight"`
	AdditiveWeight     int                                 `gorm:"not null" json:"additive_weight"`
	PreservativeWeight int                                 `gorm:"not null" json:"preservative_weight"`
	AllergenWeight     int                                 `gorm:"not null" json:"allergen_weight"`
	CreatedAt          time.Time                           `json:"created_at"`
	UpdatedAt          time.Time                           `json:"updated_at"`
}

func (UserPreferences) TableName() string {
	return "user_preferences"
}

func (p *UserPreferences) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Profile converts the row into the scoring input.
func (p *UserPreferences) Profile() types.PreferenceProfile {
	return types.PreferenceProfile{
		HealthConditions: p.HealthConditions.Data(),
		DietaryLifestyle: p.DietaryLifestyle.Data(),
		Sensitivity:      types.Sensitivity(p.RiskSensitivity),
		Weights: types.ScoringWeights{
			Sugar:        p.SugarWeight,
			Additive:     p.AdditiveWeight,
			Preservative: p.PreservativeWeight,
			Allergen:     p.AllergenWeight,
		},
	}.Normalize()
}

// SetProfile copies a profile into the row.
func (p *UserPreferences) SetProfile(profile types.PreferenceProfile) {
	profile = profile.Normalize()
	p.HealthConditions = datatypes.NewJSONType(profile.HealthConditions)
	p.DietaryLifestyle = datatypes.NewJSONType(profile.DietaryLifestyle)
	p.RiskSensitivity = string(profile.Sensitivity)
	p.SugarWeight = profile.Weights.Sugar
	p.AdditiveWeight = profile.Weights.Additive
	p.PreservativeWeight = profile.Weights.Preservative
	p.AllergenWeight = profile.Weights.Allergen
}
