package models

import (
    "gorm.io/gorm"
)

// Goal types a user can track towards.
const (
    GoalWeightLoss = "weight_loss"
    GoalWeightGain = "weight_gain"
    GoalMaintain   = "maintain"
)

type User struct {
    gorm.Model
    Email    string `gorm:"uniqueIndex;not null"`
    Password string `gorm:"not null"`
    Name     string

    // Onboarding profile. Zero values mean "not provided yet".
    HeightCm      float64
    WeightKg      float64
    BMI           float64 // derived from height/weight, 1 decimal
    AgeYears      int
    Gender        string // male|female|other
    ActivityLevel string // sedentary|light|moderate|active|very_active

    GoalType     string // weight_loss|weight_gain|maintain
    GoalExplicit bool   // true when the user picked the goal themselves

    DietaryPreference string
    Allergies         string // comma-separated
    Region            string
    HydrationGoalMl   float64

    Onboarded bool
    ResetCode string
}
