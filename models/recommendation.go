package models

import (
    "gorm.io/gorm"
)

// Recommendation caches a generated suggestion set for a user so the
// client can re-show the last batch without another model call.
// Payload holds the JSON-encoded item array exactly as served.
type Recommendation struct {
    gorm.Model
    UserID   uint   `gorm:"index;not null"`
    GoalType string
    Payload  string `gorm:"type:text"`
}
