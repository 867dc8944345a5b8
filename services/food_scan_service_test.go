package services

import (
	"testing"
	"time"

	"backend/models"
)

func TestEntriesFromScan(t *testing.T) {
	occurred := time.Date(2024, 3, 10, 12, 30, 0, 0, time.UTC)
	foods := []scannedFood{
		{FoodName: "rice", Calories: 200, Protein: 4, Carbs: 45, Fat: 1},
		{FoodName: "chicken", Calories: 300, Protein: 35, Carbs: -2, Fat: 10},
	}

	entries := entriesFromScan(7, foods, "https://cdn.example/meal.jpg", occurred)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	for i, e := range entries {
		if e.UserID != 7 {
			t.Errorf("entry %d owner = %d, want 7", i, e.UserID)
		}
		if e.Source != models.SourceImage {
			t.Errorf("entry %d source = %q, want image", i, e.Source)
		}
		if e.ImageURL != "https://cdn.example/meal.jpg" {
			t.Errorf("entry %d image url = %q", i, e.ImageURL)
		}
		if !e.OccurredAt.Equal(occurred) {
			t.Errorf("entry %d occurred at %v, want %v", i, e.OccurredAt, occurred)
		}
	}

	if entries[0].FoodLabel != "rice" || entries[1].FoodLabel != "chicken" {
		t.Errorf("labels = %q, %q", entries[0].FoodLabel, entries[1].FoodLabel)
	}
	// Negative model estimates are clamped, never stored.
	if entries[1].Carbs != 0 {
		t.Errorf("negative carbs not clamped: %v", entries[1].Carbs)
	}
}

func TestEntriesFromScanDefaultsTime(t *testing.T) {
	before := time.Now().UTC()
	entries := entriesFromScan(1, []scannedFood{{FoodName: "toast"}}, "", time.Time{})
	after := time.Now().UTC()

	got := entries[0].OccurredAt
	if got.Before(before) || got.After(after) {
		t.Errorf("zero occurredAt should default to now, got %v", got)
	}
}

func TestScanKeyPrefix(t *testing.T) {
	tests := []struct {
		kind   string
		userID uint
		want   string
	}{
		{"meal-photos", 42, "meal-photos/42"},
		{"water-photos", 42, "water-photos/42"},
	}

	for _, tt := range tests {
		if got := scanKeyPrefix(tt.kind, tt.userID); got != tt.want {
			t.Errorf("scanKeyPrefix(%q, %d) = %q, want %q", tt.kind, tt.userID, got, tt.want)
		}
	}
}
