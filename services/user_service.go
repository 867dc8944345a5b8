package services

import (
	"context"
	"errors"
	"strings"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type UserService struct{ db *gorm.DB }

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

type ProfileInput struct {
	Name              string   `json:"name"`
	HeightCm          float64  `json:"height_cm" binding:"omitempty,gt=0"`
	WeightKg          float64  `json:"weight_kg" binding:"omitempty,gt=0"`
	AgeYears          int      `json:"age_years" binding:"omitempty,gt=0"`
	Gender            string   `json:"gender" binding:"omitempty,oneof=male female other"`
	ActivityLevel     string   `json:"activity_level" binding:"omitempty,oneof=sedentary light moderate active very_active"`
	GoalType          string   `json:"goal_type" binding:"omitempty,oneof=weight_loss weight_gain maintain"`
	DietaryPreference string   `json:"dietary_preference"`
	Allergies         []string `json:"allergies"`
	Region            string   `json:"region"`
	HydrationGoalMl   float64  `json:"hydration_goal_ml" binding:"omitempty,gt=0"`
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"id":                 user.ID,
		"email":              user.Email,
		"name":               user.Name,
		"height_cm":          user.HeightCm,
		"weight_kg":          user.WeightKg,
		"bmi":                user.BMI,
		"bmi_category":       utils.BMICategory(user.BMI),
		"age_years":          user.AgeYears,
		"gender":             user.Gender,
		"activity_level":     user.ActivityLevel,
		"goal_type":          user.GoalType,
		"dietary_preference": user.DietaryPreference,
		"allergies":          splitCSV(user.Allergies),
		"region":             user.Region,
		"hydration_goal_ml":  user.HydrationGoalMl,
		"onboarded":          user.Onboarded,
	}, nil
}

// UpdateProfile applies a partial profile edit. A height or weight
// change recomputes BMI; the BMI-derived goal is applied only while the
// user has never picked a goal explicitly.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in ProfileInput) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.HeightCm > 0 {
		user.HeightCm = in.HeightCm
	}
	if in.WeightKg > 0 {
		user.WeightKg = in.WeightKg
	}
	if in.AgeYears > 0 {
		user.AgeYears = in.AgeYears
	}
	if in.Gender != "" {
		user.Gender = in.Gender
	}
	if in.ActivityLevel != "" {
		user.ActivityLevel = in.ActivityLevel
	}
	if in.DietaryPreference != "" {
		user.DietaryPreference = in.DietaryPreference
	}
	if in.Allergies != nil {
		user.Allergies = strings.Join(in.Allergies, ",")
	}
	if in.Region != "" {
		user.Region = in.Region
	}
	if in.HydrationGoalMl > 0 {
		user.HydrationGoalMl = in.HydrationGoalMl
	}
	if in.GoalType != "" {
		user.GoalType = in.GoalType
		user.GoalExplicit = true
	}

	s.refreshDerived(&user)

	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

type OnboardingInput struct {
	HeightCm          float64  `json:"height_cm" binding:"required,gt=0"`
	WeightKg          float64  `json:"weight_kg" binding:"required,gt=0"`
	AgeYears          int      `json:"age_years" binding:"required,gt=0"`
	Gender            string   `json:"gender" binding:"required,oneof=male female other"`
	ActivityLevel     string   `json:"activity_level" binding:"required,oneof=sedentary light moderate active very_active"`
	GoalType          string   `json:"goal_type" binding:"omitempty,oneof=weight_loss weight_gain maintain"`
	DietaryPreference string   `json:"dietary_preference"`
	Allergies         []string `json:"allergies"`
	Region            string   `json:"region"`
	HydrationGoalMl   float64  `json:"hydration_goal_ml" binding:"omitempty,gt=0"`
}

// CompleteOnboarding fills in the profile and marks it onboarded.
// Omitting goal_type derives one from BMI.
func (s *UserService) CompleteOnboarding(ctx context.Context, userID uint, in OnboardingInput) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}
	if user.Onboarded {
		return nil, errors.New("onboarding already completed")
	}

	user.HeightCm = in.HeightCm
	user.WeightKg = in.WeightKg
	user.AgeYears = in.AgeYears
	user.Gender = in.Gender
	user.ActivityLevel = in.ActivityLevel
	user.DietaryPreference = in.DietaryPreference
	user.Allergies = strings.Join(in.Allergies, ",")
	user.Region = in.Region
	if in.HydrationGoalMl > 0 {
		user.HydrationGoalMl = in.HydrationGoalMl
	} else {
		user.HydrationGoalMl = 2000
	}
	if in.GoalType != "" {
		user.GoalType = in.GoalType
		user.GoalExplicit = true
	}

	s.refreshDerived(&user)
	user.Onboarded = true

	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// refreshDerived recomputes BMI and, unless the goal was user-chosen,
// the BMI-derived goal type.
func (s *UserService) refreshDerived(user *models.User) {
	if bmi, err := utils.CalculateBMI(user.HeightCm, user.WeightKg); err == nil {
		user.BMI = bmi
	}
	if !user.GoalExplicit {
		user.GoalType = utils.GoalForBMI(user.BMI)
	}
}

func (s *UserService) FindByID(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func splitCSV(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}
