package service

import (
	"context"
	"strings"
	"testing"

	"blogly/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func existingUserRepo() *mockUserRepo {
	return &mockUserRepo{
		getByIDFn: func(ctx context.Context, id uint) (*models.User, error) {
			if id != 1 {
				return nil, models.NewNotFoundError("User", id)
			}
			return &models.User{ID: 1, FirstName: "Jane", LastName: "Doe"}, nil
		},
	}
}

// resolvingTagRepo drops ids above 100, mirroring how unknown checkbox
// values disappear from the resolved set.
func resolvingTagRepo() *mockTagRepo {
	return &mockTagRepo{
		getByIDsFn: func(ctx context.Context, ids []uint) ([]models.Tag, error) {
			tags := []models.Tag{}
			for _, id := range ids {
				if id <= 100 {
					tags = append(tags, models.Tag{ID: id, Name: "tag"})
				}
			}
			return tags, nil
		},
	}
}

func TestCreatePost(t *testing.T) {
	tests := []struct {
		name        string
		userID      uint
		input       PostInput
		wantErrCode string
		wantTags    int
	}{
		{
			name:   "valid input",
			userID: 1,
			input:  PostInput{Title: "First", Content: "Body"},
		},
		{
			name:     "unknown tag ids dropped",
			userID:   1,
			input:    PostInput{Title: "First", Content: "Body", TagIDs: []uint{1, 2, 999}},
			wantTags: 2,
		},
		{
			name:        "missing owner",
			userID:      42,
			input:       PostInput{Title: "First", Content: "Body"},
			wantErrCode: "NOT_FOUND",
		},
		{
			name:        "missing title",
			userID:      1,
			input:       PostInput{Content: "Body"},
			wantErrCode: "VALIDATION_ERROR",
		},
		{
			name:        "title too long",
			userID:      1,
			input:       PostInput{Title: strings.Repeat("a", 101), Content: "Body"},
			wantErrCode: "VALIDATION_ERROR",
		},
		{
			name:        "missing content",
			userID:      1,
			input:       PostInput{Title: "First"},
			wantErrCode: "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := &mockPostRepo{
				createFn: func(ctx context.Context, post *models.Post) error {
					post.ID = 1
					return nil
				},
			}
			svc := NewPostService(postRepo, existingUserRepo(), resolvingTagRepo())

			post, err := svc.CreatePost(context.Background(), tt.userID, tt.input)
			if tt.wantErrCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErrCode, models.ErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input.Title, post.Title)
			assert.Equal(t, tt.userID, post.UserID)
			assert.Len(t, post.Tags, tt.wantTags)
		})
	}
}

func TestUpdatePost(t *testing.T) {
	var replaced []models.Tag
	postRepo := &mockPostRepo{
		getByIDFn: func(ctx context.Context, id uint) (*models.Post, error) {
			if id != 5 {
				return nil, models.NewNotFoundError("Post", id)
			}
			return &models.Post{ID: 5, Title: "Before", Content: "Old", UserID: 1}, nil
		},
		updateFn: func(ctx context.Context, id uint, title, content string) error { return nil },
		replaceTagsFn: func(ctx context.Context, post *models.Post, tags []models.Tag) error {
			replaced = tags
			return nil
		},
	}
	svc := NewPostService(postRepo, existingUserRepo(), resolvingTagRepo())

	t.Run("not found", func(t *testing.T) {
		_, err := svc.UpdatePost(context.Background(), 99, PostInput{Title: "After", Content: "New"})
		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", models.ErrorCode(err))
	})

	t.Run("replaces tag set", func(t *testing.T) {
		_, err := svc.UpdatePost(context.Background(), 5, PostInput{Title: "After", Content: "New", TagIDs: []uint{3, 999}})
		require.NoError(t, err)
		require.Len(t, replaced, 1)
		assert.Equal(t, uint(3), replaced[0].ID)
	})

	t.Run("empty tag list clears associations", func(t *testing.T) {
		_, err := svc.UpdatePost(context.Background(), 5, PostInput{Title: "After", Content: "New"})
		require.NoError(t, err)
		assert.Empty(t, replaced)
	})
}

func TestDeletePost(t *testing.T) {
	deleted := uint(0)
	postRepo := &mockPostRepo{
		getByIDFn: func(ctx context.Context, id uint) (*models.Post, error) {
			if id != 5 {
				return nil, models.NewNotFoundError("Post", id)
			}
			return &models.Post{ID: 5, Title: "Doomed", UserID: 1}, nil
		},
		deleteFn: func(ctx context.Context, id uint) error {
			deleted = id
			return nil
		},
	}
	svc := NewPostService(postRepo, existingUserRepo(), resolvingTagRepo())

	post, err := svc.DeletePost(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, uint(5), deleted)
	// The returned post carries the owner for the post-delete redirect.
	assert.Equal(t, uint(1), post.UserID)

	_, err = svc.DeletePost(context.Background(), 99)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", models.ErrorCode(err))
}
