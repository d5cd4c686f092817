package types

import "strings"

// Sensitivity scales the total deduction of an analysis.
type Sensitivity string

const (
	SensitivityConservative Sensitivity = "conservative"
	SensitivityModerate     Sensitivity = "moderate"
	SensitivityLenient      Sensitivity = "lenient"
)

// ParseSensitivity falls back to moderate for anything unrecognised.
func ParseSensitivity(s string) Sensitivity {
	switch Sensitivity(strings.ToLower(strings.TrimSpace(s))) {
	case SensitivityConservative:
		return SensitivityConservative
	case SensitivityLenient:
		return SensitivityLenient
	default:
		return SensitivityModerate
	}
}

// Multiplier returns the factor applied to the total deduction.
func (s Sensitivity) Multiplier() float64 {
	switch s {
	case SensitivityConservative:
		return 1.25
	case SensitivityLenient:
		return 0.8
	default:
		return 1.0
	}
}

// DefaultWeight is the neutral value for every scoring weight.
const DefaultWeight = 50

// Health condition keys.
const (
	ConditionDiabetes          = "diabetes"
	ConditionHypertension      = "hypertension"
	ConditionCholesterol       = "cholesterol"
	ConditionLactoseIntolerant = "lactoseIntolerant"
	ConditionGlutenIntolerant  = "glutenIntolerant"
	ConditionNutAllergy        = "nutAllergy"
	ConditionSoyAllergy        = "soyAllergy"
	ConditionEggAllergy        = "eggAllergy"
)

// Dietary lifestyle keys.
const (
	LifestyleVegetarian  = "vegetarian"
	LifestyleVegan       = "vegan"
	LifestyleJain        = "jain"
	LifestyleHalal       = "halal"
	LifestyleHighProtein = "highProtein"
	LifestyleWeightLoss  = "weightLoss"
	LifestyleChildSafe   = "childSafe"
)

// HealthConditionKeys lists every recognised health condition.
var HealthConditionKeys = []string{
	ConditionDiabetes,
	ConditionHypertension,
	ConditionCholesterol,
	ConditionLactoseIntolerant,
	ConditionGlutenIntolerant,
	ConditionNutAllergy,
	ConditionSoyAllergy,
	ConditionEggAllergy,
}

// DietaryLifestyleKeys lists every recognised dietary lifestyle.
var DietaryLifestyleKeys = []string{
	LifestyleVegetarian,
	LifestyleVegan,
	LifestyleJain,
	LifestyleHalal,
	LifestyleHighProtein,
	LifestyleWeightLoss,
	LifestyleChildSafe,
}

// ScoringWeights are 0-100 knobs where 50 is neutral.
type ScoringWeights struct {
	Sugar        int `json:"sugar" yaml:"sugar"`
	Additive     int `json:"additive" yaml:"additive"`
	Preservative int `json:"preservative" yaml:"preservative"`
	Allergen     int `json:"allergen" yaml:"allergen"`
}

// PreferenceProfile is the per-user input to scoring. The engine never mutates it.
type PreferenceProfile struct {
	HealthConditions map[string]bool `json:"health_conditions" yaml:"health_conditions"`
	DietaryLifestyle map[string]bool `json:"dietary_lifestyle" yaml:"dietary_lifestyle"`
	Sensitivity      Sensitivity     `json:"risk_sensitivity" yaml:"risk_sensitivity"`
	Weights          ScoringWeights  `json:"scoring_priority" yaml:"scoring_priority"`
}

// DefaultProfile is substituted for anonymous callers: nothing enabled,
// moderate sensitivity, every weight neutral.
func DefaultProfile() PreferenceProfile {
	p := PreferenceProfile{
		HealthConditions: make(map[string]bool, len(HealthConditionKeys)),
		DietaryLifestyle: make(map[string]bool, len(DietaryLifestyleKeys)),
		Sensitivity:      SensitivityModerate,
		Weights: ScoringWeights{
			Sugar:        DefaultWeight,
			Additive:     DefaultWeight,
			Preservative: DefaultWeight,
			Allergen:     DefaultWeight,
		},
	}
	for _, k := range HealthConditionKeys {
		p.HealthConditions[k] = false
	}
	for _, k := range DietaryLifestyleKeys {
		p.DietaryLifestyle[k] = false
	}
	return p
}

// Normalize clamps weights into range and replaces an unknown sensitivity.
func (p PreferenceProfile) Normalize() PreferenceProfile {
	p.Sensitivity = ParseSensitivity(string(p.Sensitivity))
	p.Weights.Sugar = clampWeight(p.Weights.Sugar)
	p.Weights.Additive = clampWeight(p.Weights.Additive)
	p.Weights.Preservative = clampWeight(p.Weights.Preservative)
	p.Weights.Allergen = clampWeight(p.Weights.Allergen)
	if p.HealthConditions == nil {
		p.HealthConditions = map[string]bool{}
	}
	if p.DietaryLifestyle == nil {
		p.DietaryLifestyle = map[string]bool{}
	}
	return p
}

func clampWeight(w int) int {
	if w < 0 {
		return 0
	}
	if w > 100 {
		return 100
	}
	return w
}

// Enabled reports whether key is switched on in either group.
func (p PreferenceProfile) Enabled(key string) bool {
	return p.HealthConditions[key] || p.DietaryLifestyle[key]
}
