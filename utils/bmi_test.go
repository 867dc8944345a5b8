package utils

import "testing"

func TestCalculateBMI(t *testing.T) {
	tests := []struct {
		name     string
		heightCm float64
		weightKg float64
		want     float64
		wantErr  bool
	}{
		{"normal", 175, 70, 22.9, false},
		{"rounds to one decimal", 180, 80, 24.7, false},
		{"zero height", 0, 70, 0, true},
		{"zero weight", 175, 0, 0, true},
		{"implausible height", 300, 70, 0, true},
		{"implausible weight", 175, 500, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateBMI(tt.heightCm, tt.weightKg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CalculateBMI() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("CalculateBMI() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGoalForBMI(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{17.0, "weight_gain"},
		{18.5, "maintain"},
		{22.0, "maintain"},
		{25.0, "maintain"},
		{25.1, "weight_loss"},
		{31.0, "weight_loss"},
		{0, "maintain"},
	}

	for _, tt := range tests {
		if got := GoalForBMI(tt.bmi); got != tt.want {
			t.Errorf("GoalForBMI(%v) = %q, want %q", tt.bmi, got, tt.want)
		}
	}
}

func TestBMICategory(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{17.0, "Underweight"},
		{22.0, "Normal weight"},
		{27.0, "Overweight"},
		{32.0, "Obese"},
		{0, "Unknown"},
	}

	for _, tt := range tests {
		if got := BMICategory(tt.bmi); got != tt.want {
			t.Errorf("BMICategory(%v) = %q, want %q", tt.bmi, got, tt.want)
		}
	}
}
