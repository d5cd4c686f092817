package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/labellens/backend/internal/service"
	"github.com/pageza/labellens/backend/internal/testhelpers"
	"github.com/pageza/labellens/backend/internal/types"
)

func TestGetProfileDefaultsWhenMissing(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := service.NewPreferenceService(db)

	profile, err := svc.GetProfile(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, types.DefaultProfile(), profile)
}

func TestUpdateProfileMergesSections(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := service.NewPreferenceService(db)
	user := testhelpers.CreateTestUser(t, db, "user")
	ctx := context.Background()

	conservative := "Conservative"
	_, err := svc.UpdateProfile(ctx, user.ID, &types.UpdatePreferencesRequest{
		HealthConditions: map[string]bool{types.ConditionDiabetes: true},
		Sensitivity:      &conservative,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, user.ID, &types.UpdatePreferencesRequest{
		DietaryLifestyle: map[string]bool{types.LifestyleVegan: true},
		Weights:          &types.ScoringWeights{Sugar: 80, Additive: 120, Preservative: 50, Allergen: 50},
	})
	require.NoError(t, err)

	assert.True(t, updated.HealthConditions[types.ConditionDiabetes], "earlier update survives")
	assert.True(t, updated.DietaryLifestyle[types.LifestyleVegan])
	assert.Equal(t, types.SensitivityConservative, updated.Sensitivity)
	assert.Equal(t, 100, updated.Weights.Additive, "weights are clamped")

	stored, err := svc.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
}

func TestUpdateProfileRejectsUnknownKeys(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := service.NewPreferenceService(db)

	_, err := svc.UpdateProfile(context.Background(), uuid.New(), &types.UpdatePreferencesRequest{
		HealthConditions: map[string]bool{"scurvy": true},
	})
	assert.ErrorIs(t, err, service.ErrUnknownPreference)

	_, err = svc.UpdateProfile(context.Background(), uuid.New(), &types.UpdatePreferencesRequest{
		DietaryLifestyle: map[string]bool{types.ConditionDiabetes: true},
	})
	assert.ErrorIs(t, err, service.ErrUnknownPreference, "health keys are not lifestyle keys")
}
