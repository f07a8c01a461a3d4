package nutrition

// FoodNutrients is the per-item macro breakdown. Values stay as the agent
// sent them ("31g") — they are display data, not numbers we compute with.
type FoodNutrients struct {
	Protein string `json:"protein"`
	Carbs   string `json:"carbs"`
	Fat     string `json:"fat"`
}

// FoodItem is one recognized food in a logged meal.
type FoodItem struct {
	Name      string        `json:"name"`
	Amount    string        `json:"amount"`
	Calories  string        `json:"calories"`
	Nutrients FoodNutrients `json:"nutrients"`
}

// NutritionRecord is one day's aggregate intake. One record per calendar
// day, last write wins.
type NutritionRecord struct {
	Date          string     `json:"date"`     // YYYY-MM-DD
	Calories      int        `json:"calories"` // kcal
	Protein       float64    `json:"protein"`  // g
	Fat           float64    `json:"fat"`      // g
	Carbohydrates float64    `json:"carbohydrates"` // g
	Foods         []FoodItem `json:"foods,omitempty"`
	OriginalInput string     `json:"originalInput,omitempty"` // verbatim user text
	Analysis      string     `json:"analysis,omitempty"`      // agent commentary
	Timestamp     int64      `json:"timestamp"`               // capture instant, unix ms
}

// LogRequest is the POST /v1/nutrition/log body: a free-text description
// of what the user ate.
type LogRequest struct {
	Food string `json:"food"`
}

// AddRequest is the POST /v1/nutrition body for manual entry.
type AddRequest struct {
	Date          string  `json:"date"`
	Calories      int     `json:"calories"`
	Protein       float64 `json:"protein"`
	Fat           float64 `json:"fat"`
	Carbohydrates float64 `json:"carbohydrates"`
}

// RecordsResponse wraps a list of records.
type RecordsResponse struct {
	Records []NutritionRecord `json:"records"`
}
