package models

import (
    "time"

    "gorm.io/gorm"
)

// How a nutrition log entry was produced.
const (
    SourceManual = "manual"
    SourceImage  = "image"
)

// NutritionLog is one logged food with its macro snapshot.
// Rows are owned by the user that created them; edits are last-write-wins.
type NutritionLog struct {
    gorm.Model
    UserID uint `gorm:"index;not null"`

    FoodLabel string  `gorm:"not null"`
    Calories  float64 // kcal
    Protein   float64 // g
    Carbs     float64 // g
    Fat       float64 // g

    ImageURL   string // set when the entry came from a photo scan
    Source     string // manual|image
    OccurredAt time.Time `gorm:"index;not null"`
}
