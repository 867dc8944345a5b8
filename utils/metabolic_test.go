package utils

import (
	"math"
	"testing"
)

func TestCalculateBMR(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		heightCm float64
		ageYears int
		gender   string
		want     float64
	}{
		{"male", 70, 175, 30, "male", 1779.75},
		{"female", 60, 165, 25, "female", 1345.25},
		{"other uses female constant", 60, 165, 25, "other", 1345.25},
		{"missing weight falls back", 0, 175, 30, "male", DefaultBMR},
		{"missing height falls back", 70, 0, 30, "male", DefaultBMR},
		{"missing age falls back", 70, 175, 0, "male", DefaultBMR},
		{"missing gender falls back", 70, 175, 30, "", DefaultBMR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateBMR(tt.weightKg, tt.heightCm, tt.ageYears, tt.gender)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CalculateBMR() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalculateBMRMonotonicity(t *testing.T) {
	base := CalculateBMR(70, 175, 30, "male")
	if CalculateBMR(75, 175, 30, "male") <= base {
		t.Error("BMR should increase with weight")
	}
	if CalculateBMR(70, 180, 30, "male") <= base {
		t.Error("BMR should increase with height")
	}
	if CalculateBMR(70, 175, 40, "male") >= base {
		t.Error("BMR should decrease with age")
	}
}

func TestActivityMultiplier(t *testing.T) {
	tests := []struct {
		level string
		want  float64
	}{
		{"sedentary", 1.2},
		{"light", 1.375},
		{"moderate", 1.55},
		{"active", 1.725},
		{"very_active", 1.9},
		{"bogus", 1.3},
		{"", 1.3},
	}

	for _, tt := range tests {
		if got := ActivityMultiplier(tt.level); got != tt.want {
			t.Errorf("ActivityMultiplier(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestGoalAdjustedCalories(t *testing.T) {
	tests := []struct {
		goal string
		want float64
	}{
		{"weight_loss", 1500},
		{"weight_gain", 2500},
		{"maintain", 2000},
		{"unknown", 2000},
	}

	for _, tt := range tests {
		if got := GoalAdjustedCalories(2000, tt.goal); got != tt.want {
			t.Errorf("GoalAdjustedCalories(2000, %q) = %v, want %v", tt.goal, got, tt.want)
		}
	}
}

func TestCalculateMacroTargets(t *testing.T) {
	// BMR = 10*70 + 6.25*175 - 5*30 + 5 = 1779.75
	// TDEE = 1779.75 * 1.55 = 2758.6125
	// weight_loss calories = 2258.6125 -> 2259
	got := CalculateMacroTargets(70, 175, 30, "male", "moderate", "weight_loss")

	if got.BMR != 1780 {
		t.Errorf("BMR = %d, want 1780", got.BMR)
	}
	if got.TDEE != 2759 {
		t.Errorf("TDEE = %d, want 2759", got.TDEE)
	}
	if got.GoalAdjustedCalories != 2259 {
		t.Errorf("GoalAdjustedCalories = %d, want 2259", got.GoalAdjustedCalories)
	}
	// 35/35/30 split: protein 2258.6125*0.35/4 = 197.6 -> 198
	if got.ProteinG != 198 {
		t.Errorf("ProteinG = %d, want 198", got.ProteinG)
	}
	if got.CarbsG != 198 {
		t.Errorf("CarbsG = %d, want 198", got.CarbsG)
	}
	// fat 2258.6125*0.30/9 = 75.3 -> 75
	if got.FatG != 75 {
		t.Errorf("FatG = %d, want 75", got.FatG)
	}
	if got.ActivityMultiplier != 1.55 {
		t.Errorf("ActivityMultiplier = %v, want 1.55", got.ActivityMultiplier)
	}
}

func TestSplitForGoal(t *testing.T) {
	for _, goal := range []string{"weight_loss", "weight_gain", "maintain", ""} {
		s := SplitForGoal(goal)
		if s.ProteinPct+s.CarbPct+s.FatPct != 100 {
			t.Errorf("split for %q does not sum to 100: %+v", goal, s)
		}
	}
}
