package utils

import (
	"errors"
	"math"
)

// CalculateBMI expects height in centimeters and weight in kilograms.
// The result is rounded to one decimal.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	// Sanity checks to avoid garbage input
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, errors.New("height/weight out of plausible range")
	}

	h := heightCm / 100.0 // to meters
	bmi := weightKg / (h * h)
	return math.Round(bmi*10) / 10, nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi <= 0:
		return "Unknown"
	case bmi < 18.5:
		return "Underweight"
	case bmi <= 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}

// GoalForBMI maps a BMI to a default goal type. Only used when the user
// has not chosen a goal themselves.
func GoalForBMI(bmi float64) string {
	switch {
	case bmi <= 0:
		return "maintain"
	case bmi < 18.5:
		return "weight_gain"
	case bmi > 25.0:
		return "weight_loss"
	default:
		return "maintain"
	}
}
