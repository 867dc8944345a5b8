package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

// FoodScanService turns a meal photo into nutrition log entries using
// the vision model. Unlike recommendations there is no fallback here:
// a photo the model cannot read is an upstream error the caller sees.
type FoodScanService struct {
	db  *gorm.DB
	gen TextGenerator
}

func NewFoodScanService(db *gorm.DB, gen TextGenerator) *FoodScanService {
	return &FoodScanService{db: db, gen: gen}
}

type scannedFood struct {
	FoodName string  `json:"food_name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein_g"`
	Carbs    float64 `json:"carbs_g"`
	Fat      float64 `json:"fat_g"`
}

const foodScanPrompt = `Identify every food item in this photo and estimate its
nutrition for the visible portion. Respond with ONLY a JSON array, each
element shaped like:
{"food_name":"...","calories":0,"protein_g":0,"carbs_g":0,"fat_g":0}`

// ScanAndLog uploads the photo, asks the vision model for the foods it
// contains and logs one entry per recognized food. The insert is a
// single batch so a failure persists nothing.
func (s *FoodScanService) ScanAndLog(ctx context.Context, userID uint, imageBase64 string, occurredAt time.Time) ([]models.NutritionLog, error) {
	mimeType, imageData, err := utils.DecodeDataURI(imageBase64)
	if err != nil {
		return nil, err
	}
	if mimeType != "image/png" && mimeType != "image/jpeg" {
		return nil, fmt.Errorf("unsupported image type %q", mimeType)
	}

	imageURL, err := utils.UploadBase64ImageToS3(imageBase64, scanKeyPrefix("meal-photos", userID))
	if err != nil {
		return nil, fmt.Errorf("image upload failed: %w", err)
	}

	text, err := s.gen.GenerateFromImage(ctx, foodScanPrompt, mimeType, imageData)
	if err != nil {
		return nil, fmt.Errorf("food recognition failed: %w", err)
	}

	var foods []scannedFood
	if err := json.Unmarshal([]byte(extractJSON(text)), &foods); err != nil {
		return nil, fmt.Errorf("could not parse recognition result: %w", err)
	}
	if len(foods) == 0 {
		return nil, fmt.Errorf("no food recognized in image")
	}

	entries := entriesFromScan(userID, foods, imageURL, occurredAt)
	if err := s.db.WithContext(ctx).Create(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// entriesFromScan maps recognized foods onto log rows. Negative model
// estimates are clamped to zero; a zero occurredAt defaults to now.
func entriesFromScan(userID uint, foods []scannedFood, imageURL string, occurredAt time.Time) []models.NutritionLog {
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	entries := make([]models.NutritionLog, 0, len(foods))
	for _, f := range foods {
		entries = append(entries, models.NutritionLog{
			UserID:     userID,
			FoodLabel:  f.FoodName,
			Calories:   nonNegative(f.Calories),
			Protein:    nonNegative(f.Protein),
			Carbs:      nonNegative(f.Carbs),
			Fat:        nonNegative(f.Fat),
			ImageURL:   imageURL,
			Source:     models.SourceImage,
			OccurredAt: occurredAt,
		})
	}
	return entries
}

const waterScanPrompt = `Estimate how many milliliters of water or other drink
are in the container in this photo. Respond with ONLY a JSON object
shaped like: {"milliliters":0}`

// EstimateWater reads a drink photo and returns the estimated volume.
func (s *FoodScanService) EstimateWater(ctx context.Context, userID uint, imageBase64 string) (float64, string, error) {
	mimeType, imageData, err := utils.DecodeDataURI(imageBase64)
	if err != nil {
		return 0, "", err
	}
	if mimeType != "image/png" && mimeType != "image/jpeg" {
		return 0, "", fmt.Errorf("unsupported image type %q", mimeType)
	}

	imageURL, err := utils.UploadBase64ImageToS3(imageBase64, scanKeyPrefix("water-photos", userID))
	if err != nil {
		return 0, "", fmt.Errorf("image upload failed: %w", err)
	}

	text, err := s.gen.GenerateFromImage(ctx, waterScanPrompt, mimeType, imageData)
	if err != nil {
		return 0, "", fmt.Errorf("volume estimation failed: %w", err)
	}

	var out struct {
		Milliliters float64 `json:"milliliters"`
	}
	if err := json.Unmarshal([]byte(extractJSON(text)), &out); err != nil {
		return 0, "", fmt.Errorf("could not parse estimation result: %w", err)
	}
	if out.Milliliters <= 0 {
		return 0, "", fmt.Errorf("no drink recognized in image")
	}
	return out.Milliliters, imageURL, nil
}

// scanKeyPrefix namespaces uploaded scan photos by owner.
func scanKeyPrefix(kind string, userID uint) string {
	return fmt.Sprintf("%s/%d", kind, userID)
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
