package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRiskTier(t *testing.T) {
	cases := map[string]RiskTier{
		"High":     RiskHigh,
		"high":     RiskHigh,
		" HIGH ":   RiskHigh,
		"Medium":   RiskModerate,
		"moderate": RiskModerate,
		"Low":      RiskLow,
		"":         RiskUnknown,
		"severe":   RiskUnknown,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseRiskTier(in), in)
	}
}

func TestRiskTierUnmarshalJSON(t *testing.T) {
	var rec struct {
		Tier RiskTier `json:"tier"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"tier":"Medium"}`), &rec))
	assert.Equal(t, RiskModerate, rec.Tier)
}

func TestBandRisk(t *testing.T) {
	assert.Equal(t, RiskHigh, BandRisk(71))
	assert.Equal(t, RiskModerate, BandRisk(70))
	assert.Equal(t, RiskModerate, BandRisk(41))
	assert.Equal(t, RiskLow, BandRisk(40))
	assert.Equal(t, RiskLow, BandRisk(0))
}

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile()
	assert.Equal(t, SensitivityModerate, p.Sensitivity)
	assert.Equal(t, ScoringWeights{50, 50, 50, 50}, p.Weights)
	for _, k := range HealthConditionKeys {
		assert.False(t, p.Enabled(k))
	}
	for _, k := range DietaryLifestyleKeys {
		assert.False(t, p.Enabled(k))
	}
}

func TestNormalizeClampsWeights(t *testing.T) {
	p := PreferenceProfile{
		Sensitivity: "Conservative",
		Weights:     ScoringWeights{Sugar: -5, Additive: 250, Preservative: 50, Allergen: 100},
	}.Normalize()
	assert.Equal(t, SensitivityConservative, p.Sensitivity)
	assert.Equal(t, 0, p.Weights.Sugar)
	assert.Equal(t, 100, p.Weights.Additive)
	assert.NotNil(t, p.HealthConditions)
}

func TestSensitivityMultiplier(t *testing.T) {
	assert.Equal(t, 1.25, SensitivityConservative.Multiplier())
	assert.Equal(t, 1.0, SensitivityModerate.Multiplier())
	assert.Equal(t, 0.8, SensitivityLenient.Multiplier())
	assert.Equal(t, SensitivityModerate, ParseSensitivity("whatever"))
}
