package services

import (
	"testing"
	"time"

	"backend/models"
)

func entry(label string, day string, calories, protein, carbs, fat float64) models.NutritionLog {
	ts, _ := time.Parse("2006-01-02", day)
	return models.NutritionLog{
		FoodLabel:  label,
		Calories:   calories,
		Protein:    protein,
		Carbs:      carbs,
		Fat:        fat,
		OccurredAt: ts,
	}
}

func TestComputeDailyTotals(t *testing.T) {
	entries := []models.NutritionLog{
		entry("toast", "2024-01-01", 500, 20, 60, 15),
		entry("eggs", "2024-01-01", 300, 25, 2, 20),
		entry("salad", "2024-01-02", 400, 10, 30, 25),
	}

	got := computeDailyTotals(entries)
	if len(got) != 2 {
		t.Fatalf("expected 2 days, got %d", len(got))
	}
	if got[0].Date != "2024-01-01" || got[1].Date != "2024-01-02" {
		t.Errorf("days not in ascending order: %v, %v", got[0].Date, got[1].Date)
	}
	if got[0].Calories != 800 {
		t.Errorf("day 1 calories = %v, want 800", got[0].Calories)
	}
	if got[0].EntryCount != 2 {
		t.Errorf("day 1 entry count = %d, want 2", got[0].EntryCount)
	}
	if got[1].Calories != 400 {
		t.Errorf("day 2 calories = %v, want 400", got[1].Calories)
	}

	// Totals conserve: sum over days equals sum over entries.
	var daySum, entrySum float64
	for _, d := range got {
		daySum += d.Calories
	}
	for _, e := range entries {
		entrySum += e.Calories
	}
	if daySum != entrySum {
		t.Errorf("daily totals do not conserve calories: %v != %v", daySum, entrySum)
	}
}

func TestComputeDailyTotalsEmpty(t *testing.T) {
	got := computeDailyTotals(nil)
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no days, got %d", len(got))
	}
}

func TestComputeOverallStats(t *testing.T) {
	days := []DailyTotal{
		{Date: "2024-01-01", Calories: 800, Protein: 45, Carbs: 62, Fat: 35, EntryCount: 2},
		{Date: "2024-01-02", Calories: 400, Protein: 10, Carbs: 30, Fat: 25, EntryCount: 1},
	}

	got := computeOverallStats(days)
	if got.TotalEntries != 3 {
		t.Errorf("TotalEntries = %d, want 3", got.TotalEntries)
	}
	if got.TotalDays != 2 {
		t.Errorf("TotalDays = %d, want 2", got.TotalDays)
	}
	if got.Totals.Calories != 1200 {
		t.Errorf("total calories = %v, want 1200", got.Totals.Calories)
	}
	if got.PerDayAvg.Calories != 600 {
		t.Errorf("avg calories = %v, want 600", got.PerDayAvg.Calories)
	}
}

func TestComputeOverallStatsEmpty(t *testing.T) {
	got := computeOverallStats(nil)
	if got.TotalDays != 0 || got.TotalEntries != 0 {
		t.Errorf("expected zero counts, got %+v", got)
	}
	// Averages must be plain zeros, never NaN or Inf.
	for name, v := range map[string]float64{
		"calories": got.PerDayAvg.Calories,
		"protein":  got.PerDayAvg.Protein,
		"carbs":    got.PerDayAvg.Carbs,
		"fat":      got.PerDayAvg.Fat,
	} {
		if v != 0 {
			t.Errorf("avg %s = %v, want 0", name, v)
		}
	}
}

func TestComputeMacroBreakdown(t *testing.T) {
	// 2000 kcal: 150g protein (600 kcal), 200g carbs (800 kcal), 66.67g fat (600 kcal)
	got := computeMacroBreakdown(MacroTotals{Calories: 2000, Protein: 150, Carbs: 200, Fat: 66.67})
	if got.ProteinPct != 30 {
		t.Errorf("ProteinPct = %v, want 30", got.ProteinPct)
	}
	if got.CarbPct != 40 {
		t.Errorf("CarbPct = %v, want 40", got.CarbPct)
	}
	if got.FatPct != 30 {
		t.Errorf("FatPct = %v, want 30", got.FatPct)
	}
}

func TestComputeMacroBreakdownZeroCalories(t *testing.T) {
	got := computeMacroBreakdown(MacroTotals{Calories: 0, Protein: 50, Carbs: 50, Fat: 50})
	if got.ProteinPct != 0 || got.CarbPct != 0 || got.FatPct != 0 {
		t.Errorf("expected all-zero breakdown, got %+v", got)
	}
}

func TestTopFoods(t *testing.T) {
	entries := []models.NutritionLog{
		entry("apple", "2024-01-01", 80, 0, 20, 0),
		entry("banana", "2024-01-01", 100, 1, 25, 0),
		entry("apple", "2024-01-02", 80, 0, 20, 0),
		entry("Apple", "2024-01-02", 80, 0, 20, 0), // case-sensitive: distinct
		entry("rice", "2024-01-02", 200, 4, 45, 1),
	}

	got := topFoods(entries, 5)
	if len(got) != 4 {
		t.Fatalf("expected 4 distinct foods, got %d", len(got))
	}
	if got[0].Name != "apple" || got[0].Count != 2 {
		t.Errorf("top food = %+v, want apple x2", got[0])
	}
	// banana, Apple and rice all have count 1: first-encountered order wins.
	if got[1].Name != "banana" || got[2].Name != "Apple" || got[3].Name != "rice" {
		t.Errorf("tie order not stable: %+v", got[1:])
	}
}

func water(day string, ml float64) models.HydrationLog {
	ts, _ := time.Parse("2006-01-02", day)
	return models.HydrationLog{Milliliters: ml, OccurredAt: ts}
}

func TestHydrationDayCount(t *testing.T) {
	waters := []models.HydrationLog{
		water("2024-01-01", 250),
		water("2024-01-01", 500),
		water("2024-01-03", 300),
	}

	if got := hydrationDayCount(waters); got != 2 {
		t.Errorf("hydrationDayCount = %d, want 2", got)
	}
	if got := hydrationDayCount(nil); got != 0 {
		t.Errorf("hydrationDayCount(nil) = %d, want 0", got)
	}

	// A range with hydration entries but no nutrition entries must
	// still average over the hydration days.
	var total float64
	for _, w := range waters {
		total += w.Milliliters
	}
	if got := avg(total, hydrationDayCount(waters)); got != 525 {
		t.Errorf("hydration avg = %v, want 525", got)
	}
}

func TestTopFoodsTruncates(t *testing.T) {
	var entries []models.NutritionLog
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		entries = append(entries, entry(name, "2024-01-01", 100, 0, 0, 0))
	}

	if got := topFoods(entries, 5); len(got) != 5 {
		t.Errorf("expected truncation to 5, got %d", len(got))
	}
	// k <= 0 falls back to the default of 5.
	if got := topFoods(entries, 0); len(got) != 5 {
		t.Errorf("expected default k of 5, got %d", len(got))
	}
}
