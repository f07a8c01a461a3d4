package prompts

import (
	"strings"
	"testing"

	"github.com/FireBushtree/stronger-body/internal/profiles"
)

func testProfile() *profiles.UserProfile {
	return &profiles.UserProfile{
		Height:              178,
		Gender:              profiles.GenderFemale,
		Age:                 28,
		CurrentWeight:       62,
		WeeklyWorkIntensity: profiles.IntensityModerate,
		TargetWeight:        58,
		BMI:                 19.6,
	}
}

func TestGenerateRoutesTemplates(t *testing.T) {
	profile := testProfile()

	tests := []struct {
		templateID string
		marker     string
	}{
		{TemplateDietPlan, "饮食计划"},
		{TemplateWorkoutPlan, "运动计划"},
		{TemplateNutritionCalc, "营养成分"},
		{TemplateHealthAssessment, "健康状况"},
	}

	for _, tt := range tests {
		prompt, err := Generate(tt.templateID, profile, "一碗米饭")
		if err != nil {
			t.Fatalf("Generate(%s) failed: %v", tt.templateID, err)
		}
		if !strings.Contains(prompt, tt.marker) {
			t.Errorf("%s prompt missing %q", tt.templateID, tt.marker)
		}
		// Every template demands one JSON object and shows its schema.
		if !strings.Contains(prompt, "{") || !strings.Contains(prompt, "JSON") {
			t.Errorf("%s prompt missing the JSON contract", tt.templateID)
		}
	}
}

func TestGenerateUnknownTemplate(t *testing.T) {
	if _, err := Generate("meal-prep", testProfile(), ""); err == nil {
		t.Error("expected error for unknown template")
	}
}

func TestDietPlanEmbedsProfile(t *testing.T) {
	prompt := DietPlan(testProfile())

	for _, want := range []string{"62kg", "178cm", "女", "28岁", "目标体重是58kg"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("diet prompt missing %q", want)
		}
	}
}

func TestNutritionCalculationEmbedsInput(t *testing.T) {
	prompt := NutritionCalculation("鸡胸肉100g，米饭一碗")
	if !strings.Contains(prompt, "鸡胸肉100g，米饭一碗") {
		t.Error("food description must appear verbatim in the prompt")
	}
}

func TestTargetClauseOptional(t *testing.T) {
	profile := testProfile()
	profile.TargetWeight = 0
	if strings.Contains(WorkoutPlan(profile), "目标体重") {
		t.Error("prompt must omit the target clause when no target weight is set")
	}
}
