package services

import (
	"errors"
	"fmt"

	"github.com/weijinqqq/smart-fitness-backend/models"
	"github.com/weijinqqq/smart-fitness-backend/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Register creates a new account. Username and email must be unique; a clash
// returns ErrConflict and leaves the existing user untouched.
func (s *UserService) Register(username, email, password string) (*models.User, error) {
	var count int64
	s.db.Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("username or email %w", ErrConflict)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.db.Create(&user).Error; err != nil {
		// Unique index backs the pre-check against concurrent registrations.
		return nil, fmt.Errorf("username or email %w", ErrConflict)
	}
	return &user, nil
}

func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (s *UserService) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ProfileUpdate carries partial profile fields; zero values are skipped.
type ProfileUpdate struct {
	Username    string
	Email       string
	Height      float64
	Weight      float64
	Age         int
	FitnessGoal string
	Location    string
}

func (s *UserService) UpdateProfile(id uint, input ProfileUpdate) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	if input.Username != "" && input.Username != user.Username {
		var count int64
		s.db.Model(&models.User{}).Where("username = ?", input.Username).Count(&count)
		if count > 0 {
			return nil, fmt.Errorf("username %w", ErrConflict)
		}
		user.Username = input.Username
	}
	if input.Email != "" && input.Email != user.Email {
		var count int64
		s.db.Model(&models.User{}).Where("email = ?", input.Email).Count(&count)
		if count > 0 {
			return nil, fmt.Errorf("email %w", ErrConflict)
		}
		user.Email = input.Email
	}
	if input.Height > 0 {
		user.Height = input.Height
	}
	if input.Weight > 0 {
		user.Weight = input.Weight
	}
	if input.Age > 0 {
		user.Age = input.Age
	}
	if input.FitnessGoal != "" {
		user.FitnessGoal = input.FitnessGoal
	}
	if input.Location != "" {
		user.Location = input.Location
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
