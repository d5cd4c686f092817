package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pageza/labellens/backend/internal/additive"
	"github.com/pageza/labellens/backend/internal/types"
)

func TestEvaluateTriggersDisabledProfile(t *testing.T) {
	got := EvaluateTriggers("milk, peanut, soy, wheat, sugar", types.DefaultProfile())
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestEvaluateTriggersGroupsAndOrder(t *testing.T) {
	p := types.DefaultProfile()
	p.HealthConditions[types.ConditionNutAllergy] = true
	p.HealthConditions[types.ConditionDiabetes] = true
	p.DietaryLifestyle[types.LifestyleChildSafe] = true
	p.DietaryLifestyle[types.LifestyleHalal] = true

	got := EvaluateTriggers("Glucose syrup, roasted ALMONDS, colour (Yellow 5)", p)

	keys := make([]string, 0, len(got))
	for _, tr := range got {
		keys = append(keys, tr.Key)
	}
	assert.Equal(t, []string{"childSafe", "diabetes", "nutAllergy"}, keys)
	assert.Equal(t, []string{"syrup", "glucose"}, got[1].Keywords)
}

func TestAdditiveWarnings(t *testing.T) {
	p := types.DefaultProfile()
	p.DietaryLifestyle[types.LifestyleChildSafe] = true

	matched := []additive.Record{
		{Code: "E102", Name: "Tartrazine", GroupWarnings: map[string]string{"childSafe": "Hyperactivity.", "vegan": "n/a"}},
		{Code: "E330", Name: "Citric Acid"},
	}
	assert.Equal(t, []string{"Tartrazine (E102): Hyperactivity."}, AdditiveWarnings(matched, p))
	assert.Empty(t, AdditiveWarnings(matched, types.DefaultProfile()))
}

func TestDetectNutritionFlagsThresholds(t *testing.T) {
	assert.False(t, DetectNutritionFlags("Sugar: 10g").HighSugar)
	assert.True(t, DetectNutritionFlags("sugars : 11 g").HighSugar)
	assert.False(t, DetectNutritionFlags("Sodium: 400mg").HighSodium)
	assert.True(t, DetectNutritionFlags("SODIUM:401").HighSodium)
	assert.True(t, DetectNutritionFlags("Trans Fat 0.5g").TransFat)
	assert.False(t, DetectNutritionFlags("Sugar, salt").Any())
}
