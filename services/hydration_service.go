package services

import (
	"context"
	"errors"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type HydrationService struct{ db *gorm.DB }

func NewHydrationService(db *gorm.DB) *HydrationService { return &HydrationService{db: db} }

type HydrationLogInput struct {
	Milliliters float64   `json:"milliliters" binding:"required,gt=0"`
	Method      string    `json:"method" binding:"omitempty,oneof=manual image camera"`
	ImageURL    string    `json:"image_url"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func (s *HydrationService) Add(ctx context.Context, userID uint, in HydrationLogInput) (*models.HydrationLog, error) {
	if in.Milliliters <= 0 {
		return nil, errors.New("milliliters must be positive")
	}
	method := in.Method
	if method == "" {
		method = models.HydrationManual
	}
	occurred := in.OccurredAt
	if occurred.IsZero() {
		occurred = time.Now().UTC()
	}
	entry := &models.HydrationLog{
		UserID:      userID,
		Milliliters: in.Milliliters,
		Method:      method,
		ImageURL:    in.ImageURL,
		OccurredAt:  occurred,
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *HydrationService) ListByDateRange(ctx context.Context, userID uint, from, to time.Time) ([]models.HydrationLog, error) {
	var entries []models.HydrationLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND occurred_at >= ? AND occurred_at < ?", userID, from, to).
		Order("occurred_at ASC").
		Find(&entries).Error
	return entries, err
}

// Update applies a corrective edit to an owned entry. Last write wins;
// there is no version check.
func (s *HydrationService) Update(ctx context.Context, userID, entryID uint, in HydrationLogInput) (*models.HydrationLog, error) {
	if in.Milliliters <= 0 {
		return nil, errors.New("milliliters must be positive")
	}

	var entry models.HydrationLog
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error; err != nil {
		return nil, err
	}

	entry.Milliliters = in.Milliliters
	if in.Method != "" {
		entry.Method = in.Method
	}
	if in.ImageURL != "" {
		entry.ImageURL = in.ImageURL
	}
	if !in.OccurredAt.IsZero() {
		entry.OccurredAt = in.OccurredAt
	}
	if err := s.db.WithContext(ctx).Save(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// DailyStatus sums today's intake against the profile goal.
type DailyStatus struct {
	Date    string  `json:"date"`
	TotalMl float64 `json:"total_ml"`
	GoalMl  float64 `json:"goal_ml"`
	Percent float64 `json:"percent"`
	Entries int     `json:"entries"`
}

func (s *HydrationService) TodayStatus(ctx context.Context, userID uint, goalMl float64) (*DailyStatus, error) {
	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	entries, err := s.ListByDateRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	st := &DailyStatus{
		Date:    from.Format("2006-01-02"),
		GoalMl:  goalMl,
		Entries: len(entries),
	}
	for _, e := range entries {
		st.TotalMl += e.Milliliters
	}
	if goalMl > 0 {
		st.Percent = round2(st.TotalMl / goalMl * 100)
	}
	return st, nil
}

func (s *HydrationService) Delete(ctx context.Context, userID, entryID uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.HydrationLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
