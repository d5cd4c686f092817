package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pageza/labellens/backend/internal/additive"
	"github.com/pageza/labellens/backend/internal/types"
)

// KeywordTriggers maps a preference key to the ingredient keywords that
// conflict with it. Keys without an entry (jain, halal, ...) never trigger.
var KeywordTriggers = map[string][]string{
	types.LifestyleVegan:             {"milk", "whey", "casein", "honey", "gelatin", "egg", "carmine"},
	types.LifestyleVegetarian:        {"gelatin", "carmine", "meat", "chicken", "beef", "fish"},
	types.ConditionDiabetes:          {"sugar", "syrup", "fructose", "glucose", "maltodextrin", "dextrose", "sucrose"},
	types.LifestyleChildSafe:         {"artificial color", "red 40", "yellow 5", "blue 1", "aspartame", "sucralose", "saccharin"},
	types.ConditionGlutenIntolerant:  {"wheat", "barley", "rye", "malt", "oat"},
	types.ConditionLactoseIntolerant: {"milk", "cheese", "whey", "butter", "cream", "lactose"},
	types.ConditionNutAllergy:        {"peanut", "almond", "walnut", "cashew", "pecan", "macadamia", "pistachio"},
	types.ConditionSoyAllergy:        {"soy", "edamame", "tofu", "tempeh", "miso"},
	types.ConditionEggAllergy:        {"egg", "albumen", "lysozyme", "mayonnaise"},
}

// EvaluateTriggers checks every enabled preference against the text by plain
// substring containment on the lowercased text. Dietary lifestyle keys are
// evaluated before health conditions, each group in key order, and a key
// enabled in both groups is reported once.
func EvaluateTriggers(text string, profile types.PreferenceProfile) []types.TriggeredPreference {
	lower := strings.ToLower(text)
	out := []types.TriggeredPreference{}
	seen := make(map[string]bool)

	for _, group := range []map[string]bool{profile.DietaryLifestyle, profile.HealthConditions} {
		for _, key := range enabledKeys(group) {
			if seen[key] {
				continue
			}
			var hits []string
			for _, kw := range KeywordTriggers[key] {
				if strings.Contains(lower, kw) {
					hits = append(hits, kw)
				}
			}
			if len(hits) == 0 {
				continue
			}
			seen[key] = true
			out = append(out, types.TriggeredPreference{
				Key:      key,
				Keywords: hits,
				Reason:   fmt.Sprintf("Contains %s which conflicts with your %s preference.", strings.Join(hits, ", "), key),
			})
		}
	}
	return out
}

func enabledKeys(group map[string]bool) []string {
	keys := make([]string, 0, len(group))
	for k, on := range group {
		if on {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// AdditiveWarnings returns the group warnings of matched additives whose
// trigger group is enabled in the profile. Warnings carry no score penalty.
func AdditiveWarnings(matched []additive.Record, profile types.PreferenceProfile) []string {
	out := []string{}
	for _, r := range matched {
		if len(r.GroupWarnings) == 0 {
			continue
		}
		groups := make([]string, 0, len(r.GroupWarnings))
		for g := range r.GroupWarnings {
			groups = append(groups, g)
		}
		sort.Strings(groups)
		for _, g := range groups {
			if profile.Enabled(g) {
				out = append(out, fmt.Sprintf("%s (%s): %s", r.Name, r.Code, r.GroupWarnings[g]))
			}
		}
	}
	return out
}
