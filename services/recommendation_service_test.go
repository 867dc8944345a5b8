package services

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"backend/models"
)

type fakeGenerator struct {
	text string
	err  error
}

func (f *fakeGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	return f.text, f.err
}

func (f *fakeGenerator) GenerateFromImage(ctx context.Context, prompt, mimeType string, image []byte) (string, error) {
	return f.text, f.err
}

func sampleItems() []RecommendationItem {
	return []RecommendationItem{
		{
			FoodName:     "Grilled chicken salad",
			Reason:       "High protein, low calorie",
			MealTime:     "lunch",
			IsVegetarian: false,
			Nutrition:    NutritionFacts{Calories: 350, Protein: 35, Carbs: 12, Fat: 18},
			Description:  "Chicken breast over mixed leaves.",
		},
		{
			FoodName:     "Oats with berries",
			Reason:       "Slow-release carbs",
			MealTime:     "breakfast",
			IsVegetarian: true,
			Nutrition:    NutritionFacts{Calories: 250, Protein: 8, Carbs: 45, Fat: 5},
			Description:  "Rolled oats with berries.",
		},
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			"json fence",
			"Here you go:\n```json\n[{\"a\":1}]\n```\nEnjoy!",
			"[{\"a\":1}]",
		},
		{
			"plain fence",
			"```\n[{\"a\":1}]\n```",
			"[{\"a\":1}]",
		},
		{
			"no fence",
			"  [{\"a\":1}]  ",
			"[{\"a\":1}]",
		},
		{
			"unclosed fence falls through to whole text",
			"```json\n[{\"a\":1}]",
			"```json\n[{\"a\":1}]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.text); got != tt.want {
				t.Errorf("extractJSON() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetRecommendationsRoundTrip(t *testing.T) {
	items := sampleItems()
	payload, _ := json.Marshal(items)
	gen := &fakeGenerator{text: "Sure!\n```json\n" + string(payload) + "\n```"}

	svc := NewRecommendationService(nil, gen)
	user := &models.User{BMI: 27.5, GoalType: "weight_loss"}

	got := svc.GetRecommendations(context.Background(), user, MacroTotals{Calories: 1800})
	if !reflect.DeepEqual(got, items) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, items)
	}
}

func TestGetRecommendationsMalformedFallsBack(t *testing.T) {
	tests := []struct {
		name string
		gen  *fakeGenerator
	}{
		{"truncated json", &fakeGenerator{text: "```json\n[{\"food_name\":\"x\""}},
		{"plain prose", &fakeGenerator{text: "Eat more vegetables and drink water."}},
		{"empty array", &fakeGenerator{text: "[]"}},
		{"call error", &fakeGenerator{err: errors.New("upstream timeout")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewRecommendationService(nil, tt.gen)
			user := &models.User{GoalType: "weight_gain"}

			got := svc.GetRecommendations(context.Background(), user, MacroTotals{})
			want := FallbackRecommendations("weight_gain")
			if !reflect.DeepEqual(got, want) {
				t.Errorf("expected the weight_gain fallback table, got %d items", len(got))
			}
		})
	}
}

func TestFallbackTablesCoverGrid(t *testing.T) {
	for _, goal := range []string{"weight_loss", "weight_gain", "maintain", "", "bogus"} {
		items := FallbackRecommendations(goal)
		if len(items) != 8 {
			t.Fatalf("fallback for %q has %d items, want 8", goal, len(items))
		}

		// One vegetarian and one non-vegetarian per meal time.
		type slot struct {
			mealTime string
			veg      bool
		}
		seen := map[slot]int{}
		for _, it := range items {
			seen[slot{it.MealTime, it.IsVegetarian}]++
		}
		for _, mt := range []string{"breakfast", "lunch", "dinner", "snack"} {
			for _, veg := range []bool{true, false} {
				if seen[slot{mt, veg}] != 1 {
					t.Errorf("fallback for %q: %s veg=%v appears %d times, want 1",
						goal, mt, veg, seen[slot{mt, veg}])
				}
			}
		}
	}
}

func TestBuildRecommendationPrompt(t *testing.T) {
	user := &models.User{
		BMI:               27.5,
		GoalType:          "weight_loss",
		WeightKg:          80,
		HeightCm:          175,
		AgeYears:          35,
		Gender:            "female",
		ActivityLevel:     "light",
		DietaryPreference: "vegetarian",
		Allergies:         "peanuts,shellfish",
	}

	prompt := buildRecommendationPrompt(user, MacroTotals{Calories: 1900, Protein: 70, Carbs: 220, Fat: 65})

	for _, want := range []string{
		"27.5", "Overweight", "weight_loss",
		"vegetarian", "peanuts,shellfish",
		"1900 kcal", "JSON",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}
