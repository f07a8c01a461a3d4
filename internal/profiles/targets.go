package profiles

import "math"

// NutritionTargets are the daily intake targets derived from the profile.
// These are the "target" side of the target-vs-actual split: actual intake
// lives in the nutrition trend, targets are recomputed from the profile on
// every read and never stored.
type NutritionTargets struct {
	BMR          int     `json:"bmr"`          // kcal, Mifflin-St Jeor
	TDEE         int     `json:"tdee"`         // kcal, BMR x intensity multiplier
	CaloriesKcal int     `json:"caloriesKcal"` // daily budget shifted toward targetWeight
	ProteinG     float64 `json:"proteinG"`
	CarbsG       float64 `json:"carbsG"`
	FatG         float64 `json:"fatG"`
}

// intensityMultipliers maps weekly work intensity to a TDEE multiplier.
var intensityMultipliers = map[string]float64{
	IntensityLight:     1.375,
	IntensityModerate:  1.55,
	IntensityHeavy:     1.725,
	IntensityVeryHeavy: 1.9,
}

// DeriveTargets computes daily nutrition targets from the profile.
//
// BMR via Mifflin-St Jeor, TDEE via the intensity multiplier, then a
// 500 kcal deficit when the user wants to lose weight or a 300 kcal
// surplus when they want to gain. Macros split 30/40/30 between protein,
// carbs and fat (4/4/9 kcal per gram).
func DeriveTargets(p *UserProfile) NutritionTargets {
	bmr := 10*p.CurrentWeight + 6.25*p.Height - 5*float64(p.Age)
	if p.Gender == GenderFemale {
		bmr -= 161
	} else {
		bmr += 5
	}

	mult, ok := intensityMultipliers[p.WeeklyWorkIntensity]
	if !ok {
		mult = intensityMultipliers[IntensityModerate]
	}
	tdee := bmr * mult

	budget := tdee
	if p.TargetWeight > 0 {
		switch {
		case p.TargetWeight < p.CurrentWeight:
			budget = tdee - 500
		case p.TargetWeight > p.CurrentWeight:
			budget = tdee + 300
		}
	}
	// A cut should never push the budget below BMR.
	if budget < bmr {
		budget = bmr
	}

	return NutritionTargets{
		BMR:          int(math.Round(bmr)),
		TDEE:         int(math.Round(tdee)),
		CaloriesKcal: int(math.Round(budget)),
		ProteinG:     math.Round(budget*0.30/4*10) / 10,
		CarbsG:       math.Round(budget*0.40/4*10) / 10,
		FatG:         math.Round(budget*0.30/9*10) / 10,
	}
}
