package service

import (
	"context"

	"blogly/internal/middleware"
	"blogly/internal/models"
	"blogly/internal/repository"
)

const (
	maxTitleLen = 100
)

// PostService wraps post CRUD with validation and tag resolution.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	tagRepo  repository.TagRepository
}

// PostInput carries the form fields for creating or editing a post.
// TagIDs come from the multi-value "tag" checkbox field; ids that do not
// resolve to an existing tag are ignored without error.
type PostInput struct {
	Title   string
	Content string
	TagIDs  []uint
}

func NewPostService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	tagRepo repository.TagRepository,
) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		tagRepo:  tagRepo,
	}
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// CreatePost persists a new post owned by userID. The owning user must
// exist; CreatedAt is assigned by the database layer at insert time.
func (s *PostService) CreatePost(ctx context.Context, userID uint, in PostInput) (*models.Post, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if err := validatePostInput(in); err != nil {
		return nil, err
	}

	tags, err := s.tagRepo.GetByIDs(ctx, in.TagIDs)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:   in.Title,
		Content: in.Content,
		UserID:  userID,
		Tags:    tags,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	middleware.EntityWrites.WithLabelValues("post", "create").Inc()
	return post, nil
}

// UpdatePost overwrites title and content and replaces the tag set with
// the newly resolved one. The creation timestamp is left untouched.
func (s *PostService) UpdatePost(ctx context.Context, id uint, in PostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validatePostInput(in); err != nil {
		return nil, err
	}

	tags, err := s.tagRepo.GetByIDs(ctx, in.TagIDs)
	if err != nil {
		return nil, err
	}

	if err := s.postRepo.Update(ctx, id, in.Title, in.Content); err != nil {
		return nil, err
	}
	if err := s.postRepo.ReplaceTags(ctx, post, tags); err != nil {
		return nil, err
	}
	middleware.EntityWrites.WithLabelValues("post", "update").Inc()
	return s.postRepo.GetByID(ctx, id)
}

// DeletePost removes the post and returns it so the handler can redirect
// to the owning user's page after deletion.
func (s *PostService) DeletePost(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	middleware.EntityWrites.WithLabelValues("post", "delete").Inc()
	return post, nil
}

func validatePostInput(in PostInput) error {
	if in.Title == "" {
		return models.NewValidationError("Title is required")
	}
	if len(in.Title) > maxTitleLen {
		return models.NewValidationError("Title too long (max 100 characters)")
	}
	if in.Content == "" {
		return models.NewValidationError("Content is required")
	}
	return nil
}
