package service

import (
	"context"

	"blogly/internal/middleware"
	"blogly/internal/models"
	"blogly/internal/repository"
)

const (
	maxTagNameLen = 30
)

// TagService wraps tag CRUD with validation and uniqueness checks.
type TagService struct {
	tagRepo repository.TagRepository
}

func NewTagService(tagRepo repository.TagRepository) *TagService {
	return &TagService{tagRepo: tagRepo}
}

func (s *TagService) ListTags(ctx context.Context) ([]models.Tag, error) {
	return s.tagRepo.List(ctx)
}

func (s *TagService) GetTag(ctx context.Context, id uint) (*models.Tag, error) {
	return s.tagRepo.GetByID(ctx, id)
}

// CreateTag persists a new tag. Names are unique site-wide; a duplicate
// yields a CONFLICT error backed by the database unique index.
func (s *TagService) CreateTag(ctx context.Context, name string) (*models.Tag, error) {
	if err := validateTagName(name); err != nil {
		return nil, err
	}
	if err := s.checkNameAvailable(ctx, name, 0); err != nil {
		return nil, err
	}

	tag := &models.Tag{Name: name}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}
	middleware.EntityWrites.WithLabelValues("tag", "create").Inc()
	return tag, nil
}

// UpdateTag renames the tag, re-checking uniqueness against other tags.
func (s *TagService) UpdateTag(ctx context.Context, id uint, name string) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateTagName(name); err != nil {
		return nil, err
	}
	if err := s.checkNameAvailable(ctx, name, id); err != nil {
		return nil, err
	}

	tag.Name = name
	if err := s.tagRepo.Update(ctx, tag); err != nil {
		return nil, err
	}
	middleware.EntityWrites.WithLabelValues("tag", "update").Inc()
	return tag, nil
}

// DeleteTag removes the tag and its post associations. Posts survive.
func (s *TagService) DeleteTag(ctx context.Context, id uint) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.tagRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	middleware.EntityWrites.WithLabelValues("tag", "delete").Inc()
	return tag, nil
}

func (s *TagService) checkNameAvailable(ctx context.Context, name string, selfID uint) error {
	existing, err := s.tagRepo.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return models.NewConflictError("Tag name already in use: " + name)
	}
	return nil
}

func validateTagName(name string) error {
	if name == "" {
		return models.NewValidationError("Tag name is required")
	}
	if len(name) > maxTagNameLen {
		return models.NewValidationError("Tag name too long (max 30 characters)")
	}
	return nil
}
