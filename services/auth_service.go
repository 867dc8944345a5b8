package services

import (
	"context"
	"errors"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type AuthService struct{ db *gorm.DB }

func NewAuthService(db *gorm.DB) *AuthService { return &AuthService{db: db} }

func (s *AuthService) Register(ctx context.Context, email, password, name string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		Name:     name,
		GoalType: models.GoalMaintain,
	}
	return s.db.WithContext(ctx).Create(&user).Error
}

func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return "", errors.New("user not found")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(user.Email)
}

// StartPasswordReset stores a one-time code on the user row and emails
// it. Callers should treat "user not found" the same as success to
// avoid leaking which emails are registered.
func (s *AuthService) StartPasswordReset(ctx context.Context, email string) error {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return err
	}

	code := utils.GenerateRandomToken(8)
	user.ResetCode = code
	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return err
	}
	return utils.SendResetEmail(user.Email, code)
}

func (s *AuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return errors.New("user not found")
	}
	if user.ResetCode == "" || user.ResetCode != code {
		return errors.New("invalid reset code")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.ResetCode = ""
	return s.db.WithContext(ctx).Save(&user).Error
}
