package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/FireBushtree/stronger-body/internal/kv"
	"github.com/FireBushtree/stronger-body/internal/nutrition"
	"github.com/FireBushtree/stronger-body/internal/profiles"
	"github.com/FireBushtree/stronger-body/internal/weights"
)

func seededGenerator(t *testing.T) *Generator {
	t.Helper()
	ctx := context.Background()
	backend := kv.NewMemory()

	weightStore := weights.NewStore(backend)
	weightStore.Add(ctx, weights.WeightRecord{Date: "2025-03-01", Weight: 73.0, IsFasting: true})
	weightStore.Add(ctx, weights.WeightRecord{Date: "2025-03-03", Weight: 72.4, IsFasting: true, Note: "早晨"})

	nutritionStore := nutrition.NewStore(backend)
	nutritionStore.Add(ctx, nutrition.NutritionRecord{Date: "2025-03-02", Calories: 1800, Protein: 120, Fat: 50, Carbohydrates: 180})
	nutritionStore.Add(ctx, nutrition.NutritionRecord{Date: "2025-03-03", Calories: 2000, Protein: 130, Fat: 60, Carbohydrates: 200})

	return NewGenerator(weightStore, nutritionStore, profiles.NewStore(backend))
}

func TestGenerateCSV(t *testing.T) {
	generator := seededGenerator(t)

	data, err := generator.GenerateReport(context.Background(), CreateReportRequest{
		From: "2025-03-01", To: "2025-03-10", Format: FormatCSV,
	})
	if err != nil {
		t.Fatalf("GenerateReport failed: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	// Header plus one row per day with data.
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[0][0] != "date" || rows[0][1] != "weight_kg" || rows[0][4] != "calories_kcal" {
		t.Errorf("unexpected header: %v", rows[0])
	}

	// Weight-only day.
	if rows[1][0] != "2025-03-01" || rows[1][1] != "73.0" || rows[1][4] != "" {
		t.Errorf("unexpected weight-only row: %v", rows[1])
	}
	// Nutrition-only day.
	if rows[2][0] != "2025-03-02" || rows[2][1] != "" || rows[2][4] != "1800" {
		t.Errorf("unexpected nutrition-only row: %v", rows[2])
	}
	// Merged day.
	if rows[3][0] != "2025-03-03" || rows[3][1] != "72.4" || rows[3][3] != "早晨" || rows[3][4] != "2000" {
		t.Errorf("unexpected merged row: %v", rows[3])
	}
}

func TestGeneratePDF(t *testing.T) {
	generator := seededGenerator(t)

	data, err := generator.GenerateReport(context.Background(), CreateReportRequest{
		From: "2025-03-01", To: "2025-03-10", Format: FormatPDF,
	})
	if err != nil {
		t.Fatalf("GenerateReport failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output does not look like a PDF")
	}
}

func TestCalculateSummary(t *testing.T) {
	w1 := weights.WeightRecord{Date: "2025-03-01", Weight: 73.0, IsFasting: true}
	w2 := weights.WeightRecord{Date: "2025-03-02", Weight: 74.5, IsFasting: false} // fed, excluded from delta
	w3 := weights.WeightRecord{Date: "2025-03-03", Weight: 72.4, IsFasting: true}
	n1 := nutrition.NutritionRecord{Date: "2025-03-03", Calories: 2000, Protein: 130, Fat: 60, Carbohydrates: 200}

	summary := calculateSummary([]day{
		{Date: "2025-03-01", Weight: &w1},
		{Date: "2025-03-02", Weight: &w2},
		{Date: "2025-03-03", Weight: &w3, Nutrition: &n1},
	})

	if summary.WeightDelta != "-0.6 kg" {
		t.Errorf("expected fasting-only delta -0.6 kg, got %s", summary.WeightDelta)
	}
	if summary.WeighInDays != 3 || summary.IntakeDays != 1 {
		t.Errorf("unexpected day counts: %+v", summary)
	}
	if summary.AvgCalories == nil || *summary.AvgCalories != 2000 {
		t.Errorf("unexpected average calories: %v", summary.AvgCalories)
	}
}

func TestCalculateSummaryNoData(t *testing.T) {
	summary := calculateSummary(nil)
	if summary.WeightDelta != "no data" {
		t.Errorf("expected 'no data', got %s", summary.WeightDelta)
	}
	if summary.AvgCalories != nil {
		t.Error("expected nil averages with no intake days")
	}
}
