package models

import (
    "time"

    "gorm.io/gorm"
)

// Capture methods for a hydration entry.
const (
    HydrationManual = "manual"
    HydrationImage  = "image"
    HydrationCamera = "camera"
)

type HydrationLog struct {
    gorm.Model
    UserID uint `gorm:"index;not null"`

    Milliliters float64 `gorm:"not null"` // must be > 0
    Method      string  // manual|image|camera
    ImageURL    string
    OccurredAt  time.Time `gorm:"index;not null"`
}
