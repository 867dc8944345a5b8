package services

import (
	"context"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type NutritionService struct{ db *gorm.DB }

func NewNutritionService(db *gorm.DB) *NutritionService { return &NutritionService{db: db} }

type NutritionLogInput struct {
	FoodLabel  string    `json:"food_label" binding:"required"`
	Calories   float64   `json:"calories" binding:"min=0"`
	Protein    float64   `json:"protein_g" binding:"min=0"`
	Carbs      float64   `json:"carbs_g" binding:"min=0"`
	Fat        float64   `json:"fat_g" binding:"min=0"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (s *NutritionService) Add(ctx context.Context, userID uint, in NutritionLogInput) (*models.NutritionLog, error) {
	occurred := in.OccurredAt
	if occurred.IsZero() {
		occurred = time.Now().UTC()
	}
	entry := &models.NutritionLog{
		UserID:     userID,
		FoodLabel:  in.FoodLabel,
		Calories:   in.Calories,
		Protein:    in.Protein,
		Carbs:      in.Carbs,
		Fat:        in.Fat,
		Source:     models.SourceManual,
		OccurredAt: occurred,
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *NutritionService) Get(ctx context.Context, userID, entryID uint) (*models.NutritionLog, error) {
	var entry models.NutritionLog
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error
	if err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &entry, nil
}

// ListByDateRange returns the owner's entries in the half-open range
// [from, to), oldest first.
func (s *NutritionService) ListByDateRange(ctx context.Context, userID uint, from, to time.Time) ([]models.NutritionLog, error) {
	var entries []models.NutritionLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND occurred_at >= ? AND occurred_at < ?", userID, from, to).
		Order("occurred_at ASC").
		Find(&entries).Error
	return entries, err
}

func (s *NutritionService) ListRecent(ctx context.Context, userID uint, limit int) ([]models.NutritionLog, error) {
	if limit <= 0 {
		limit = 20
	}
	var entries []models.NutritionLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

// Update applies a corrective edit to an owned entry. Last write wins;
// there is no version check.
func (s *NutritionService) Update(ctx context.Context, userID, entryID uint, in NutritionLogInput) (*models.NutritionLog, error) {
	var entry models.NutritionLog
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error; err != nil {
		return nil, err
	}

	entry.FoodLabel = in.FoodLabel
	entry.Calories = in.Calories
	entry.Protein = in.Protein
	entry.Carbs = in.Carbs
	entry.Fat = in.Fat
	if !in.OccurredAt.IsZero() {
		entry.OccurredAt = in.OccurredAt
	}
	if err := s.db.WithContext(ctx).Save(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *NutritionService) Delete(ctx context.Context, userID, entryID uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.NutritionLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
