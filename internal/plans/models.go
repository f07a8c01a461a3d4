package plans

// Plan content is kept exactly as the agent wrote it — calories, durations
// and macro amounts stay text ("385卡", "35分钟"). The dashboard renders
// them verbatim; only the nutrition trend normalizes numbers.

// Food is one item in a meal.
type Food struct {
	Name      string    `json:"name"`
	Amount    string    `json:"amount"`
	Calories  string    `json:"calories"`
	Nutrients Nutrients `json:"nutrients"`
}

// Nutrients is a macro breakdown as text.
type Nutrients struct {
	Protein string `json:"protein"`
	Carbs   string `json:"carbs"`
	Fat     string `json:"fat"`
}

// Meal is one of the day's three meals.
type Meal struct {
	Time          string `json:"time"`
	Foods         []Food `json:"foods"`
	TotalCalories string `json:"totalCalories"`
	Notes         string `json:"notes"`
}

// DietPlanSummary aggregates the day.
type DietPlanSummary struct {
	TotalDailyCalories string    `json:"totalDailyCalories"`
	DailyNutrients     Nutrients `json:"dailyNutrients"`
	Recommendations    []string  `json:"recommendations"`
}

// DietPlan is the agent-generated three-meal plan for one day.
type DietPlan struct {
	Breakfast Meal            `json:"breakfast"`
	Lunch     Meal            `json:"lunch"`
	Dinner    Meal            `json:"dinner"`
	Summary   DietPlanSummary `json:"summary"`
}

// Exercise is one movement in a workout section.
type Exercise struct {
	Name          string   `json:"name"`
	Duration      string   `json:"duration,omitempty"`
	Description   string   `json:"description"`
	Sets          string   `json:"sets,omitempty"`
	Reps          string   `json:"reps,omitempty"`
	RestTime      string   `json:"restTime,omitempty"`
	TargetMuscles []string `json:"targetMuscles,omitempty"`
}

// WorkoutSection is the warmup, main or cooldown block.
type WorkoutSection struct {
	Duration  string     `json:"duration"`
	Exercises []Exercise `json:"exercises"`
}

// WorkoutPlanSummary aggregates the session.
type WorkoutPlanSummary struct {
	TotalDuration           string   `json:"totalDuration"`
	EstimatedCaloriesBurned string   `json:"estimatedCaloriesBurned"`
	Difficulty              string   `json:"difficulty"`
	Recommendations         []string `json:"recommendations"`
}

// WorkoutPlan is the agent-generated workout for one day.
type WorkoutPlan struct {
	Warmup      WorkoutSection     `json:"warmup"`
	MainWorkout WorkoutSection     `json:"mainWorkout"`
	Cooldown    WorkoutSection     `json:"cooldown"`
	Summary     WorkoutPlanSummary `json:"summary"`
}

// Slot is the persisted envelope around a plan: only valid while its date
// is the current calendar day.
type Slot[P any] struct {
	Date      string `json:"date"` // YYYY-MM-DD
	CreatedAt int64  `json:"createdAt"` // unix ms
	Plan      P      `json:"plan"`
}
