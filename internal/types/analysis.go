package types

import (
	"time"

	"github.com/google/uuid"
)

// NutritionFlags are boolean inputs derived from label nutrition text.
type NutritionFlags struct {
	HighSugar  bool `json:"high_sugar"`
	HighSodium bool `json:"high_sodium"`
	TransFat   bool `json:"trans_fat"`
}

// Any reports whether at least one flag is raised.
func (f NutritionFlags) Any() bool {
	return f.HighSugar || f.HighSodium || f.TransFat
}

// DetectedAdditive is the serialisable view of a matched reference record.
type DetectedAdditive struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Tier        RiskTier `json:"risk_level"`
	Description string   `json:"description,omitempty"`
}

// TriggeredPreference records one preference key whose keywords occurred in the text.
type TriggeredPreference struct {
	Key      string   `json:"key"`
	Keywords []string `json:"keywords"`
	Reason   string   `json:"reason"`
}

// Deduction source labels used in ScoreBreakdown.Items.
const (
	DeductionAdditive    = "additive"
	DeductionPreference  = "preference"
	DeductionNutrition   = "nutrition"
	DeductionSensitivity = "sensitivity"
)

// Deduction is one line of the breakdown. Points are pre-sensitivity except
// for the sensitivity line itself, which carries the adjustment.
type Deduction struct {
	Source string  `json:"source"`
	Label  string  `json:"label"`
	Points float64 `json:"points"`
}

// ScoreBreakdown is the audit trail of a score.
type ScoreBreakdown struct {
	Items                 []Deduction `json:"items"`
	AdditiveSubtotal      float64     `json:"additive_subtotal"`
	AdditiveMultiplier    float64     `json:"additive_multiplier"`
	PreferenceSubtotal    float64     `json:"preference_subtotal"`
	NutritionSubtotal     float64     `json:"nutrition_subtotal"`
	SensitivityMultiplier float64     `json:"sensitivity_multiplier"`
	TotalDeduction        float64     `json:"total_deduction"`
}

// ScoreResult is the bounded output of the scoring engine. Score is a safety
// score (100 is cleanest); RiskScore is its complement and drives RiskLevel.
type ScoreResult struct {
	Score     int            `json:"score"`
	RiskScore int            `json:"risk_score"`
	RiskLevel RiskTier       `json:"risk_level"`
	Reasons   []string       `json:"reasons"`
	Breakdown ScoreBreakdown `json:"breakdown"`
}

// Sentinel category used when nothing trustworthy is known.
const (
	UncategorizedPrimary   = "Uncategorized"
	UncategorizedSecondary = "Unknown"
)

// CategoryResolution is the resolved taxonomy pair.
type CategoryResolution struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Inferred  bool   `json:"is_ai_detected"`
}

// IsUncategorized reports whether the sentinel pair was resolved.
func (c CategoryResolution) IsUncategorized() bool {
	return c.Primary == UncategorizedPrimary && c.Secondary == UncategorizedSecondary
}

// Alternative tiers.
const (
	TierExact     = 1
	TierBroadened = 2
	TierRelated   = 3
)

// AlternativeItem is a catalog product offered as a safer substitute.
type AlternativeItem struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Brand        string    `json:"brand"`
	Primary      string    `json:"primary_category"`
	Secondary    string    `json:"secondary_category"`
	RiskScore    int       `json:"risk_score"`
	RiskLevel    RiskTier  `json:"risk_level"`
	SafetyRating float64   `json:"safety_rating"`
	CleanLabel   bool      `json:"clean_label"`
	DietaryTags  []string  `json:"dietary_tags"`
	ImageURL     string    `json:"image_url"`
	PriceTier    string    `json:"price_tier"`
	Tier         int       `json:"tier,omitempty"`
}

// TierCounts reports how many returned items came from each tier.
type TierCounts struct {
	Exact     int `json:"exact"`
	Broadened int `json:"broadened"`
	Related   int `json:"related"`
}

// AlternativeSet is the ranked, bounded output of the tiered search.
type AlternativeSet struct {
	Items  []AlternativeItem `json:"items"`
	Counts TierCounts        `json:"counts"`
}

// Threshold search outcomes.
const (
	OutcomeFound         = "found"
	OutcomeTopRated      = "top_rated"
	OutcomeAlreadySafest = "already_safest"
)

// ThresholdResult is the output of the score-threshold alternative search.
type ThresholdResult struct {
	Outcome      string            `json:"outcome"`
	Message      string            `json:"message,omitempty"`
	MinimumScore float64           `json:"minimum_score"`
	Items        []AlternativeItem `json:"items"`
}

// AnalysisResult is returned by the analyze endpoint and the CLI.
type AnalysisResult struct {
	ID                uuid.UUID             `json:"id"`
	Score             int                   `json:"score"`
	RiskScore         int                   `json:"risk_score"`
	RiskLevel         RiskTier              `json:"risk_level"`
	Additives         []DetectedAdditive    `json:"additives"`
	UnmatchedCodes    []string              `json:"unmatched_codes"`
	Triggers          []TriggeredPreference `json:"triggered_preferences"`
	Warnings          []string              `json:"warnings"`
	Reasons           []string              `json:"reasons"`
	Nutrition         NutritionFlags        `json:"nutrition"`
	Breakdown         ScoreBreakdown        `json:"breakdown"`
	Category          CategoryResolution    `json:"category"`
	Alternatives      AlternativeSet        `json:"alternatives"`
	AlternativesError string                `json:"alternatives_error,omitempty"`
	AnalyzedAt        time.Time             `json:"analyzed_at"`
}
