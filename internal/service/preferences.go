package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/labellens/backend/internal/models"
	"github.com/pageza/labellens/backend/internal/types"
)

// ErrUnknownPreference is returned for keys outside the recognised sets.
var ErrUnknownPreference = errors.New("unknown preference key")

// PreferenceService stores one scoring profile per user.
type PreferenceService struct {
	db *gorm.DB
}

func NewPreferenceService(db *gorm.DB) *PreferenceService {
	return &PreferenceService{db: db}
}

// GetProfile returns the stored profile or the default one when none exists.
func (s *PreferenceService) GetProfile(ctx context.Context, userID uuid.UUID) (types.PreferenceProfile, error) {
	var prefs models.UserPreferences
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&prefs).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return types.DefaultProfile(), nil
	}
	if err != nil {
		return types.PreferenceProfile{}, fmt.Errorf("load preferences: %w", err)
	}
	return prefs.Profile(), nil
}

// UpdateProfile merges req into the current profile and saves it.
func (s *PreferenceService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdatePreferencesRequest) (types.PreferenceProfile, error) {
	if err := validateKeys(req.HealthConditions, types.HealthConditionKeys); err != nil {
		return types.PreferenceProfile{}, err
	}
	if err := validateKeys(req.DietaryLifestyle, types.DietaryLifestyleKeys); err != nil {
		return types.PreferenceProfile{}, err
	}

	var result types.PreferenceProfile
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var prefs models.UserPreferences
		err := tx.Where("user_id = ?", userID).First(&prefs).Error
		profile := types.DefaultProfile()
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			prefs = models.UserPreferences{UserID: userID}
		case err != nil:
			return err
		default:
			profile = prefs.Profile()
		}

		for k, v := range req.HealthConditions {
			profile.HealthConditions[k] = v
		}
		for k, v := range req.DietaryLifestyle {
			profile.DietaryLifestyle[k] = v
		}
		if req.Sensitivity != nil {
			profile.Sensitivity = types.ParseSensitivity(*req.Sensitivity)
		}
		if req.Weights != nil {
			profile.Weights = *req.Weights
		}

		prefs.SetProfile(profile)
		if err := tx.Save(&prefs).Error; err != nil {
			return err
		}
		result = prefs.Profile()
		return nil
	})
	if err != nil {
		return types.PreferenceProfile{}, fmt.Errorf("save preferences: %w", err)
	}
	return result, nil
}

func validateKeys(values map[string]bool, allowed []string) error {
	for k := range values {
		known := false
		for _, a := range allowed {
			if a == k {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("%w: %s", ErrUnknownPreference, k)
		}
	}
	return nil
}

// ValidateProfileKeys rejects a profile naming keys outside the recognised sets.
func ValidateProfileKeys(p types.PreferenceProfile) error {
	if err := validateKeys(p.HealthConditions, types.HealthConditionKeys); err != nil {
		return err
	}
	return validateKeys(p.DietaryLifestyle, types.DietaryLifestyleKeys)
}
