package database

import (
	"context"
	"time"

	"gorm.io/gorm"

	"forecastapi.app/internal/ports"
	"forecastapi.app/pkg/errors"
)

// UserModel represents the database model for user profiles
type UserModel struct {
	ID          uint   `gorm:"primaryKey"`
	Username    string `gorm:"uniqueIndex;size:32;not null"`
	Email       string `gorm:"not null"`
	DefaultCity string `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (UserModel) TableName() string {
	return "users"
}

// UserRepositoryAdapter implements the UserRepository port using GORM
type UserRepositoryAdapter struct {
	db *gorm.DB
}

// NewUserRepositoryAdapter creates a new user repository adapter
func NewUserRepositoryAdapter(db *gorm.DB) ports.UserRepository {
	return &UserRepositoryAdapter{db: db}
}

// Save persists a user profile, creating it when it has no ID yet
func (r *UserRepositoryAdapter) Save(ctx context.Context, user *ports.UserData) error {
	if user == nil {
		return errors.NewValidationError("user cannot be nil")
	}

	model := r.dataToModel(user)
	var result *gorm.DB

	if user.ID == 0 {
		result = r.db.WithContext(ctx).Create(model)
	} else {
		result = r.db.WithContext(ctx).Save(model)
	}

	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return errors.NewAlreadyExistsError("username already taken")
		}
		return errors.NewDatabaseError("failed to save user", result.Error)
	}

	user.ID = model.ID
	user.CreatedAt = model.CreatedAt
	user.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByUsername retrieves a user profile by username
func (r *UserRepositoryAdapter) FindByUsername(ctx context.Context, username string) (*ports.UserData, error) {
	if username == "" {
		return nil, errors.NewValidationError("username cannot be empty")
	}

	var model UserModel
	result := r.db.WithContext(ctx).Where("username = ?", username).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, errors.NewDatabaseError("failed to find user", result.Error)
	}

	return r.modelToData(&model), nil
}

// UpdateDefaultCity changes the default city of an existing user
func (r *UserRepositoryAdapter) UpdateDefaultCity(ctx context.Context, username, city string) error {
	if username == "" {
		return errors.NewValidationError("username cannot be empty")
	}
	if city == "" {
		return errors.NewValidationError("city cannot be empty")
	}

	result := r.db.WithContext(ctx).
		Model(&UserModel{}).
		Where("username = ?", username).
		Update("default_city", city)
	if result.Error != nil {
		return errors.NewDatabaseError("failed to update default city", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("user not found")
	}

	return nil
}

func (r *UserRepositoryAdapter) dataToModel(data *ports.UserData) *UserModel {
	return &UserModel{
		ID:          data.ID,
		Username:    data.Username,
		Email:       data.Email,
		DefaultCity: data.DefaultCity,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func (r *UserRepositoryAdapter) modelToData(model *UserModel) *ports.UserData {
	return &ports.UserData{
		ID:          model.ID,
		Username:    model.Username,
		Email:       model.Email,
		DefaultCity: model.DefaultCity,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
