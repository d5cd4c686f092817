package scoring

import (
	"regexp"
	"strconv"

	"github.com/pageza/labellens/backend/internal/types"
)

// Label thresholds per serving.
const (
	SugarThresholdGrams = 10
	SodiumThresholdMg   = 400
)

var (
	sugarPattern    = regexp.MustCompile(`(?i)SUGARS?\s*:\s*(\d+)`)
	sodiumPattern   = regexp.MustCompile(`(?i)SODIUM\s*:\s*(\d+)`)
	transFatPattern = regexp.MustCompile(`(?i)TRANS\s*FAT|HYDROGENATED`)
)

// DetectNutritionFlags reads "Sugar: 12g" and "Sodium: 480mg" style values
// and looks for trans fat or hydrogenated oils.
func DetectNutritionFlags(text string) types.NutritionFlags {
	return types.NutritionFlags{
		HighSugar:  exceeds(sugarPattern, text, SugarThresholdGrams),
		HighSodium: exceeds(sodiumPattern, text, SodiumThresholdMg),
		TransFat:   transFatPattern.MatchString(text),
	}
}

func exceeds(re *regexp.Regexp, text string, limit int) bool {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}
	return n > limit
}
