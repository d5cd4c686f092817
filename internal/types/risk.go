package types

import (
	"encoding/json"
	"strings"
)

// RiskTier is the closed risk classification shared by additives and catalog products.
type RiskTier string

const (
	RiskLow      RiskTier = "low"
	RiskModerate RiskTier = "moderate"
	RiskHigh     RiskTier = "high"
	RiskUnknown  RiskTier = "unknown"
)

// ParseRiskTier normalizes the casing variants found in reference data and
// request bodies. "medium" is accepted as an alias for moderate.
func ParseRiskTier(s string) RiskTier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return RiskLow
	case "moderate", "medium":
		return RiskModerate
	case "high":
		return RiskHigh
	default:
		return RiskUnknown
	}
}

// UnmarshalJSON normalizes on decode so no caller ever sees "High" or "Medium".
func (t *RiskTier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = ParseRiskTier(s)
	return nil
}

// UnmarshalYAML mirrors UnmarshalJSON for yaml.v3 decoding.
func (t *RiskTier) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	*t = ParseRiskTier(s)
	return nil
}

// BandRisk maps a 0-100 risk score (higher means riskier) onto a tier.
// Both the analysis result and catalog products are banded here.
func BandRisk(riskScore int) RiskTier {
	switch {
	case riskScore > 70:
		return RiskHigh
	case riskScore > 40:
		return RiskModerate
	default:
		return RiskLow
	}
}
