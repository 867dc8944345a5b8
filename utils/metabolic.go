package utils

import (
	"math"
)

// activityMultipliers maps activity level strings to their TDEE multiplier.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// DefaultBMR is used when the profile is missing any of weight, height,
// age or gender.
const DefaultBMR = 1800.0

// CalculateBMR computes the Mifflin-St Jeor basal metabolic rate.
// Male gets the +5 constant, everyone else -161. Any missing input
// falls back to DefaultBMR.
func CalculateBMR(weightKg, heightCm float64, ageYears int, gender string) float64 {
	if weightKg <= 0 || heightCm <= 0 || ageYears <= 0 || gender == "" {
		return DefaultBMR
	}
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	if gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}
	return bmr
}

// ActivityMultiplier returns the TDEE multiplier for an activity level.
// Unknown or empty levels get 1.3 — a deliberately conservative default
// that is distinct from the "sedentary" multiplier.
func ActivityMultiplier(level string) float64 {
	if m, ok := activityMultipliers[level]; ok {
		return m
	}
	return 1.3
}

// CalculateTDEE scales BMR by the activity multiplier.
func CalculateTDEE(bmr float64, activityLevel string) float64 {
	return bmr * ActivityMultiplier(activityLevel)
}

// GoalAdjustedCalories applies a flat 500 kcal deficit or surplus.
func GoalAdjustedCalories(tdee float64, goalType string) float64 {
	switch goalType {
	case "weight_loss":
		return tdee - 500
	case "weight_gain":
		return tdee + 500
	default:
		return tdee
	}
}

// MacroSplit is the percentage of daily calories assigned to each macro.
// The split depends on the goal: cutting leans on protein, bulking on
// carbs. Protein and carbs convert at 4 kcal/g, fat at 9 kcal/g.
type MacroSplit struct {
	ProteinPct float64
	CarbPct    float64
	FatPct     float64
}

// SplitForGoal returns the canonical macro split for a goal type.
func SplitForGoal(goalType string) MacroSplit {
	switch goalType {
	case "weight_loss":
		return MacroSplit{ProteinPct: 35, CarbPct: 35, FatPct: 30}
	case "weight_gain":
		return MacroSplit{ProteinPct: 25, CarbPct: 50, FatPct: 25}
	default:
		return MacroSplit{ProteinPct: 30, CarbPct: 40, FatPct: 30}
	}
}

// MacroTargets is the full derived target set for a profile snapshot.
type MacroTargets struct {
	BMR                  int     `json:"bmr"`
	TDEE                 int     `json:"tdee"`
	GoalAdjustedCalories int     `json:"goal_adjusted_calories"`
	ProteinG             int     `json:"protein_g"`
	CarbsG               int     `json:"carbs_g"`
	FatG                 int     `json:"fat_g"`
	ActivityMultiplier   float64 `json:"activity_multiplier"`
}

// CalculateMacroTargets derives the complete target set from a profile
// snapshot. All outputs are rounded to the nearest integer except the
// multiplier, which is kept as-is for display.
func CalculateMacroTargets(weightKg, heightCm float64, ageYears int, gender, activityLevel, goalType string) MacroTargets {
	bmr := CalculateBMR(weightKg, heightCm, ageYears, gender)
	tdee := CalculateTDEE(bmr, activityLevel)
	cal := GoalAdjustedCalories(tdee, goalType)
	split := SplitForGoal(goalType)

	return MacroTargets{
		BMR:                  int(math.Round(bmr)),
		TDEE:                 int(math.Round(tdee)),
		GoalAdjustedCalories: int(math.Round(cal)),
		ProteinG:             int(math.Round(cal * split.ProteinPct / 100 / 4)),
		CarbsG:               int(math.Round(cal * split.CarbPct / 100 / 4)),
		FatG:                 int(math.Round(cal * split.FatPct / 100 / 9)),
		ActivityMultiplier:   ActivityMultiplier(activityLevel),
	}
}
