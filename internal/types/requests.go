package types

// AnalyzeRequest is the body of POST /safety/analyze. Confidence comes from
// the OCR collaborator and is carried through untouched.
type AnalyzeRequest struct {
	Text              string  `json:"text"`
	Confidence        float64 `json:"confidence,omitempty"`
	OverridePrimary   string  `json:"override_primary,omitempty"`
	OverrideSecondary string  `json:"override_secondary,omitempty"`
	ProductName       string  `json:"product_name,omitempty"`
}

// HasOverride reports whether the caller pinned the category.
func (r AnalyzeRequest) HasOverride() bool {
	return r.OverridePrimary != "" && r.OverrideSecondary != ""
}

// CategoryAlternativesRequest drives the tiered search.
type CategoryAlternativesRequest struct {
	Primary   string `form:"primary"`
	Secondary string `form:"secondary" binding:"required"`
	RiskScore *int   `form:"risk_score" binding:"required"`
	Limit     int    `form:"limit"`
}

// ThresholdAlternativesRequest drives the score-threshold search.
type ThresholdAlternativesRequest struct {
	Category string   `form:"category" binding:"required"`
	Score    *float64 `form:"score" binding:"required"`
}

// UpdatePreferencesRequest replaces a stored profile. Nil sections are left as-is.
type UpdatePreferencesRequest struct {
	HealthConditions map[string]bool `json:"health_conditions,omitempty"`
	DietaryLifestyle map[string]bool `json:"dietary_lifestyle,omitempty"`
	Sensitivity      *string         `json:"risk_sensitivity,omitempty"`
	Weights          *ScoringWeights `json:"scoring_priority,omitempty"`
}
