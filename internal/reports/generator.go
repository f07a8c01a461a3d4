package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"

	"github.com/FireBushtree/stronger-body/internal/nutrition"
	"github.com/FireBushtree/stronger-body/internal/profiles"
	"github.com/FireBushtree/stronger-body/internal/weights"
	"github.com/jung-kurt/gofpdf"
)

// Generator renders the weight and nutrition trends over a date range as
// PDF or CSV.
type Generator struct {
	weights   *weights.Store
	nutrition *nutrition.Store
	profiles  *profiles.Store
}

// NewGenerator creates a new report generator.
func NewGenerator(weightStore *weights.Store, nutritionStore *nutrition.Store, profileStore *profiles.Store) *Generator {
	return &Generator{
		weights:   weightStore,
		nutrition: nutritionStore,
		profiles:  profileStore,
	}
}

// day is one merged row of the report: a calendar day with whatever the
// two trends hold for it.
type day struct {
	Date      string
	Weight    *weights.WeightRecord
	Nutrition *nutrition.NutritionRecord
}

// GenerateReport renders the requested range and returns the file bytes.
func (g *Generator) GenerateReport(ctx context.Context, req CreateReportRequest) ([]byte, error) {
	days := g.collectDays(ctx, req.From, req.To)

	switch req.Format {
	case FormatPDF:
		return g.generatePDF(ctx, req, days)
	case FormatCSV:
		return g.generateCSV(days)
	default:
		return nil, fmt.Errorf("unsupported format: %s", req.Format)
	}
}

// collectDays merges the two trends into one date-sorted series.
func (g *Generator) collectDays(ctx context.Context, from, to string) []day {
	byDate := make(map[string]*day)

	for _, r := range g.weights.Range(ctx, from, to) {
		r := r
		byDate[r.Date] = &day{Date: r.Date, Weight: &r}
	}
	for _, r := range g.nutrition.Range(ctx, from, to) {
		r := r
		if d, ok := byDate[r.Date]; ok {
			d.Nutrition = &r
		} else {
			byDate[r.Date] = &day{Date: r.Date, Nutrition: &r}
		}
	}

	days := make([]day, 0, len(byDate))
	for _, d := range byDate {
		days = append(days, *d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

// generateCSV renders one row per day with data.
func (g *Generator) generateCSV(days []day) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"date", "weight_kg", "fasting", "note", "calories_kcal", "protein_g", "fat_g", "carbs_g"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, d := range days {
		row := []string{d.Date, "", "", "", "", "", "", ""}
		if d.Weight != nil {
			row[1] = fmt.Sprintf("%.1f", d.Weight.Weight)
			row[2] = strconv.FormatBool(d.Weight.IsFasting)
			row[3] = d.Weight.Note
		}
		if d.Nutrition != nil {
			row[4] = strconv.Itoa(d.Nutrition.Calories)
			row[5] = fmt.Sprintf("%.1f", d.Nutrition.Protein)
			row[6] = fmt.Sprintf("%.1f", d.Nutrition.Fat)
			row[7] = fmt.Sprintf("%.1f", d.Nutrition.Carbohydrates)
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// generatePDF renders the summary page plus a recent-days table.
func (g *Generator) generatePDF(ctx context.Context, req CreateReportRequest, days []day) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Body Report")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s - %s", req.From, req.To))
	pdf.Ln(12)

	if profile, ok := g.profiles.Get(ctx); ok {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 8, "Profile")
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 10)
		pdf.Cell(0, 6, fmt.Sprintf("Height: %.0f cm    Current weight: %.1f kg    BMI: %.1f", profile.Height, profile.CurrentWeight, profile.BMI))
		pdf.Ln(5)
		if profile.TargetWeight > 0 {
			pdf.Cell(0, 6, fmt.Sprintf("Target weight: %.1f kg", profile.TargetWeight))
			pdf.Ln(5)
		}
		pdf.Ln(7)
	}

	summary := calculateSummary(days)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Fasting weight change: %s", summary.WeightDelta))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Days with weigh-ins: %d", summary.WeighInDays))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Days with intake logs: %d", summary.IntakeDays))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Average intake: %s kcal, %s g protein, %s g fat, %s g carbs",
		formatFloat(summary.AvgCalories), formatFloat(summary.AvgProtein), formatFloat(summary.AvgFat), formatFloat(summary.AvgCarbs)))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, "Recent days")
	pdf.Ln(8)

	drawDaysTable(pdf, days)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Summary holds the aggregates shown on the PDF front page.
type Summary struct {
	WeightDelta string
	WeighInDays int
	IntakeDays  int
	AvgCalories *float64
	AvgProtein  *float64
	AvgFat      *float64
	AvgCarbs    *float64
}

// calculateSummary aggregates days. The weight delta uses fasting
// weigh-ins only: mixing fasting and fed weights makes the trend noise.
func calculateSummary(days []day) Summary {
	var firstFasting, lastFasting *float64
	var totalCalories, totalProtein, totalFat, totalCarbs float64

	summary := Summary{}

	for _, d := range days {
		if d.Weight != nil {
			summary.WeighInDays++
			if d.Weight.IsFasting {
				w := d.Weight.Weight
				if firstFasting == nil {
					firstFasting = &w
				}
				lastFasting = &w
			}
		}
		if d.Nutrition != nil {
			summary.IntakeDays++
			totalCalories += float64(d.Nutrition.Calories)
			totalProtein += d.Nutrition.Protein
			totalFat += d.Nutrition.Fat
			totalCarbs += d.Nutrition.Carbohydrates
		}
	}

	if firstFasting != nil && lastFasting != nil {
		summary.WeightDelta = fmt.Sprintf("%+.1f kg", *lastFasting-*firstFasting)
	} else {
		summary.WeightDelta = "no data"
	}

	if summary.IntakeDays > 0 {
		n := float64(summary.IntakeDays)
		avgCalories := totalCalories / n
		avgProtein := totalProtein / n
		avgFat := totalFat / n
		avgCarbs := totalCarbs / n
		summary.AvgCalories = &avgCalories
		summary.AvgProtein = &avgProtein
		summary.AvgFat = &avgFat
		summary.AvgCarbs = &avgCarbs
	}

	return summary
}

// drawDaysTable draws the last 14 days of the range.
func drawDaysTable(pdf *gofpdf.Fpdf, days []day) {
	if len(days) > 14 {
		days = days[len(days)-14:]
	}

	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(25, 6, "Date", "1", 0, "C", false, 0, "")
	pdf.CellFormat(22, 6, "Weight", "1", 0, "C", false, 0, "")
	pdf.CellFormat(18, 6, "Fasting", "1", 0, "C", false, 0, "")
	pdf.CellFormat(22, 6, "Kcal", "1", 0, "C", false, 0, "")
	pdf.CellFormat(22, 6, "Protein", "1", 0, "C", false, 0, "")
	pdf.CellFormat(22, 6, "Fat", "1", 0, "C", false, 0, "")
	pdf.CellFormat(22, 6, "Carbs", "1", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 8)
	for _, d := range days {
		weight, fasting := "", ""
		if d.Weight != nil {
			weight = fmt.Sprintf("%.1f", d.Weight.Weight)
			fasting = "no"
			if d.Weight.IsFasting {
				fasting = "yes"
			}
		}

		kcal, protein, fat, carbs := "", "", "", ""
		if d.Nutrition != nil {
			kcal = strconv.Itoa(d.Nutrition.Calories)
			protein = fmt.Sprintf("%.1f", d.Nutrition.Protein)
			fat = fmt.Sprintf("%.1f", d.Nutrition.Fat)
			carbs = fmt.Sprintf("%.1f", d.Nutrition.Carbohydrates)
		}

		pdf.CellFormat(25, 6, d.Date, "1", 0, "C", false, 0, "")
		pdf.CellFormat(22, 6, weight, "1", 0, "C", false, 0, "")
		pdf.CellFormat(18, 6, fasting, "1", 0, "C", false, 0, "")
		pdf.CellFormat(22, 6, kcal, "1", 0, "C", false, 0, "")
		pdf.CellFormat(22, 6, protein, "1", 0, "C", false, 0, "")
		pdf.CellFormat(22, 6, fat, "1", 0, "C", false, 0, "")
		pdf.CellFormat(22, 6, carbs, "1", 1, "C", false, 0, "")
	}
}

func formatFloat(val *float64) string {
	if val == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *val)
}
