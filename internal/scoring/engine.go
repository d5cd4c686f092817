// Package scoring turns detected additives, triggered preferences and
// nutrition flags into a bounded safety score with an itemised breakdown.
package scoring

import (
	"fmt"
	"math"

	"github.com/pageza/labellens/backend/internal/additive"
	"github.com/pageza/labellens/backend/internal/types"
)

// Deduction constants.
const (
	PenaltyHigh       = 30.0
	PenaltyModerate   = 15.0
	PenaltyLow        = 5.0
	PreferencePenalty = 25.0
	HighSugarPenalty  = 10.0
	HighSodiumPenalty = 10.0
	TransFatPenalty   = 20.0
)

// TierPenalty is the base deduction for one additive of the given tier.
func TierPenalty(tier types.RiskTier) float64 {
	switch tier {
	case types.RiskHigh:
		return PenaltyHigh
	case types.RiskModerate:
		return PenaltyModerate
	case types.RiskLow:
		return PenaltyLow
	default:
		return 0
	}
}

// Input is everything the engine needs. Additives must already be deduplicated.
type Input struct {
	Additives []additive.Record
	Triggers  []types.TriggeredPreference
	Nutrition types.NutritionFlags
	Profile   types.PreferenceProfile
}

// Score computes the result. Intermediate arithmetic stays in float64;
// the only rounding happens on the final value.
func Score(in Input) types.ScoreResult {
	profile := in.Profile.Normalize()
	bd := types.ScoreBreakdown{Items: []types.Deduction{}}
	reasons := []string{}

	additiveMult := float64(profile.Weights.Additive) / float64(types.DefaultWeight)
	bd.AdditiveMultiplier = additiveMult
	for _, r := range in.Additives {
		base := TierPenalty(r.Tier)
		if r.PenaltyOverride != nil {
			base = *r.PenaltyOverride
		}
		if base == 0 {
			continue
		}
		pts := base * additiveMult
		bd.AdditiveSubtotal += pts
		bd.Items = append(bd.Items, types.Deduction{
			Source: types.DeductionAdditive,
			Label:  fmt.Sprintf("%s %s (%s)", r.Code, r.Name, r.Tier),
			Points: pts,
		})
	}

	seen := make(map[string]bool, len(in.Triggers))
	for _, tr := range in.Triggers {
		if seen[tr.Key] {
			continue
		}
		seen[tr.Key] = true
		bd.PreferenceSubtotal += PreferencePenalty
		bd.Items = append(bd.Items, types.Deduction{
			Source: types.DeductionPreference,
			Label:  tr.Key,
			Points: PreferencePenalty,
		})
		reasons = append(reasons, tr.Reason)
	}

	if in.Nutrition.HighSugar {
		pts := HighSugarPenalty * float64(profile.Weights.Sugar) / float64(types.DefaultWeight)
		bd.NutritionSubtotal += pts
		bd.Items = append(bd.Items, types.Deduction{Source: types.DeductionNutrition, Label: "high sugar", Points: pts})
	}
	if in.Nutrition.HighSodium {
		bd.NutritionSubtotal += HighSodiumPenalty
		bd.Items = append(bd.Items, types.Deduction{Source: types.DeductionNutrition, Label: "high sodium", Points: HighSodiumPenalty})
	}
	if in.Nutrition.TransFat {
		bd.NutritionSubtotal += TransFatPenalty
		bd.Items = append(bd.Items, types.Deduction{Source: types.DeductionNutrition, Label: "trans fat", Points: TransFatPenalty})
	}

	subtotal := bd.AdditiveSubtotal + bd.PreferenceSubtotal + bd.NutritionSubtotal
	sensMult := profile.Sensitivity.Multiplier()
	bd.SensitivityMultiplier = sensMult
	bd.TotalDeduction = subtotal * sensMult

	if subtotal > 0 && sensMult != 1 {
		bd.Items = append(bd.Items, types.Deduction{
			Source: types.DeductionSensitivity,
			Label:  string(profile.Sensitivity),
			Points: bd.TotalDeduction - subtotal,
		})
		switch profile.Sensitivity {
		case types.SensitivityConservative:
			reasons = append(reasons, "Risk score amplified due to your Conservative sensitivity setting.")
		case types.SensitivityLenient:
			reasons = append(reasons, "Risk score reduced due to your Lenient sensitivity setting.")
		}
	}

	score := int(math.Round(clamp(100-bd.TotalDeduction, 0, 100)))
	risk := 100 - score
	return types.ScoreResult{
		Score:     score,
		RiskScore: risk,
		RiskLevel: types.BandRisk(risk),
		Reasons:   reasons,
		Breakdown: bd,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
