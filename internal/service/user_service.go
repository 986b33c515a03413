// Package service contains the validation and orchestration layer between
// HTTP handlers and repositories.
package service

import (
	"context"

	"blogly/internal/middleware"
	"blogly/internal/models"
	"blogly/internal/repository"
)

const (
	maxNameLen = 50
)

// UserService wraps user CRUD with validation rules.
type UserService struct {
	userRepo repository.UserRepository
}

// UserInput carries the form fields for creating or editing a user.
type UserInput struct {
	FirstName string
	LastName  string
	ImgURL    string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) CreateUser(ctx context.Context, in UserInput) (*models.User, error) {
	if err := validateUserInput(in); err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		ImgURL:    imgURLOrDefault(in.ImgURL),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	middleware.EntityWrites.WithLabelValues("user", "create").Inc()
	return user, nil
}

// UpdateUser overwrites all mutable fields unconditionally. An empty image
// URL falls back to the placeholder, same as on creation.
func (s *UserService) UpdateUser(ctx context.Context, id uint, in UserInput) (*models.User, error) {
	if err := validateUserInput(in); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.ImgURL = imgURLOrDefault(in.ImgURL)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	middleware.EntityWrites.WithLabelValues("user", "update").Inc()
	return user, nil
}

// DeleteUser cascades to the user's posts and their tag associations.
func (s *UserService) DeleteUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	middleware.EntityWrites.WithLabelValues("user", "delete").Inc()
	return user, nil
}

func validateUserInput(in UserInput) error {
	if in.FirstName == "" {
		return models.NewValidationError("First name is required")
	}
	if in.LastName == "" {
		return models.NewValidationError("Last name is required")
	}
	if len(in.FirstName) > maxNameLen {
		return models.NewValidationError("First name too long (max 50 characters)")
	}
	if len(in.LastName) > maxNameLen {
		return models.NewValidationError("Last name too long (max 50 characters)")
	}
	return nil
}

func imgURLOrDefault(imgURL string) string {
	if imgURL == "" {
		return models.DefaultImageURL
	}
	return imgURL
}
