package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type NutritionFacts struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein_g"`
	Carbs    float64 `json:"carbs_g"`
	Fat      float64 `json:"fat_g"`
}

type RecommendationItem struct {
	FoodName     string         `json:"food_name"`
	Reason       string         `json:"reason"`
	MealTime     string         `json:"meal_time"` // breakfast|lunch|dinner|snack
	IsVegetarian bool           `json:"is_vegetarian"`
	Nutrition    NutritionFacts `json:"nutrition"`
	Description  string         `json:"description"`
}

type RecommendationService struct {
	db  *gorm.DB
	gen TextGenerator
}

func NewRecommendationService(db *gorm.DB, gen TextGenerator) *RecommendationService {
	return &RecommendationService{db: db, gen: gen}
}

// GetRecommendations produces 8 meal suggestions for the user. The
// generative call is a single bounded attempt; any failure (transport,
// empty output, unparseable output) degrades to the static table for
// the user's goal. Callers always get a usable list, never an error.
func (s *RecommendationService) GetRecommendations(ctx context.Context, user *models.User, current MacroTotals) []RecommendationItem {
	goal := user.GoalType
	if goal == "" {
		goal = models.GoalMaintain
	}

	prompt := buildRecommendationPrompt(user, current)

	text, err := s.gen.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("recommendation generation failed for user %d: %v", user.ID, err)
		return FallbackRecommendations(goal)
	}

	items, err := parseRecommendationItems(text)
	if err != nil {
		preview := text
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		log.Printf("recommendation parse failed for user %d: %v | body: %s", user.ID, err, preview)
		return FallbackRecommendations(goal)
	}
	return items
}

// Cache persists the served item list verbatim so the client can
// re-fetch the last batch without a model call.
func (s *RecommendationService) Cache(ctx context.Context, userID uint, goalType string, items []RecommendationItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	rec := models.Recommendation{
		UserID:   userID,
		GoalType: goalType,
		Payload:  string(payload),
	}
	return s.db.WithContext(ctx).Create(&rec).Error
}

// LastCached returns the most recently cached batch, if any.
func (s *RecommendationService) LastCached(ctx context.Context, userID uint) ([]RecommendationItem, error) {
	var rec models.Recommendation
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&rec).Error; err != nil {
		return nil, err
	}
	var items []RecommendationItem
	if err := json.Unmarshal([]byte(rec.Payload), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func buildRecommendationPrompt(user *models.User, current MacroTotals) string {
	targets := utils.CalculateMacroTargets(
		user.WeightKg, user.HeightCm, user.AgeYears,
		user.Gender, user.ActivityLevel, user.GoalType,
	)

	var sb strings.Builder
	sb.WriteString("You are a nutritionist. Suggest foods for this user:\n")
	fmt.Fprintf(&sb, "- BMI: %.1f (%s)\n", user.BMI, utils.BMICategory(user.BMI))
	fmt.Fprintf(&sb, "- Goal: %s\n", user.GoalType)
	if user.DietaryPreference != "" {
		fmt.Fprintf(&sb, "- Dietary preference: %s\n", user.DietaryPreference)
	}
	if user.Allergies != "" {
		fmt.Fprintf(&sb, "- Allergies to avoid: %s\n", user.Allergies)
	}
	if user.Region != "" {
		fmt.Fprintf(&sb, "- Region (prefer local cuisine): %s\n", user.Region)
	}
	fmt.Fprintf(&sb, "- Recent daily average intake: %.0f kcal, %.0fg protein, %.0fg carbs, %.0fg fat\n",
		current.Calories, current.Protein, current.Carbs, current.Fat)
	fmt.Fprintf(&sb, "- Daily targets: %d kcal, %dg protein, %dg carbs, %dg fat\n",
		targets.GoalAdjustedCalories, targets.ProteinG, targets.CarbsG, targets.FatG)

	sb.WriteString(`
Return exactly 8 suggestions: one vegetarian and one non-vegetarian for
each of breakfast, lunch, dinner and snack. Respond with ONLY a JSON
array, each element shaped like:
{"food_name":"...","reason":"...","meal_time":"breakfast","is_vegetarian":true,"nutrition":{"calories":0,"protein_g":0,"carbs_g":0,"fat_g":0},"description":"..."}
`)
	return sb.String()
}

// extractJSON pulls the JSON payload out of a model response. A fenced
// block wins ("json" fence first, then any fence); otherwise the whole
// text is assumed to be JSON.
func extractJSON(text string) string {
	for _, fence := range []string{"```json", "```"} {
		start := strings.Index(text, fence)
		if start < 0 {
			continue
		}
		rest := text[start+len(fence):]
		end := strings.Index(rest, "```")
		if end < 0 {
			continue
		}
		return strings.TrimSpace(rest[:end])
	}
	return strings.TrimSpace(text)
}

func parseRecommendationItems(text string) ([]RecommendationItem, error) {
	raw := extractJSON(text)
	var items []RecommendationItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	// A well-formed but empty array is deliberately treated like a
	// parse failure: the caller contract is "always a usable list", so
	// an empty model answer degrades to the fallback table instead of
	// being returned verbatim.
	if len(items) == 0 {
		return nil, fmt.Errorf("empty recommendation list")
	}
	return items, nil
}
