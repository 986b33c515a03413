package service

import (
	"context"

	"blogly/internal/models"
)

// mockUserRepo lets each test wire just the calls it cares about.
type mockUserRepo struct {
	getByIDFn func(ctx context.Context, id uint) (*models.User, error)
	listFn    func(ctx context.Context) ([]models.User, error)
	createFn  func(ctx context.Context, user *models.User) error
	updateFn  func(ctx context.Context, user *models.User) error
	deleteFn  func(ctx context.Context, id uint) error
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockUserRepo) List(ctx context.Context) ([]models.User, error) {
	return m.listFn(ctx)
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	return m.createFn(ctx, user)
}

func (m *mockUserRepo) Update(ctx context.Context, user *models.User) error {
	return m.updateFn(ctx, user)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

type mockPostRepo struct {
	createFn      func(ctx context.Context, post *models.Post) error
	getByIDFn     func(ctx context.Context, id uint) (*models.Post, error)
	updateFn      func(ctx context.Context, id uint, title, content string) error
	replaceTagsFn func(ctx context.Context, post *models.Post, tags []models.Tag) error
	deleteFn      func(ctx context.Context, id uint) error
}

func (m *mockPostRepo) Create(ctx context.Context, post *models.Post) error {
	return m.createFn(ctx, post)
}

func (m *mockPostRepo) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockPostRepo) Update(ctx context.Context, id uint, title, content string) error {
	return m.updateFn(ctx, id, title, content)
}

func (m *mockPostRepo) ReplaceTags(ctx context.Context, post *models.Post, tags []models.Tag) error {
	return m.replaceTagsFn(ctx, post, tags)
}

func (m *mockPostRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

type mockTagRepo struct {
	getByIDFn   func(ctx context.Context, id uint) (*models.Tag, error)
	getByNameFn func(ctx context.Context, name string) (*models.Tag, error)
	getByIDsFn  func(ctx context.Context, ids []uint) ([]models.Tag, error)
	listFn      func(ctx context.Context) ([]models.Tag, error)
	createFn    func(ctx context.Context, tag *models.Tag) error
	updateFn    func(ctx context.Context, tag *models.Tag) error
	deleteFn    func(ctx context.Context, id uint) error
}

func (m *mockTagRepo) GetByID(ctx context.Context, id uint) (*models.Tag, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockTagRepo) GetByName(ctx context.Context, name string) (*models.Tag, error) {
	return m.getByNameFn(ctx, name)
}

func (m *mockTagRepo) GetByIDs(ctx context.Context, ids []uint) ([]models.Tag, error) {
	return m.getByIDsFn(ctx, ids)
}

func (m *mockTagRepo) List(ctx context.Context) ([]models.Tag, error) {
	return m.listFn(ctx)
}

func (m *mockTagRepo) Create(ctx context.Context, tag *models.Tag) error {
	return m.createFn(ctx, tag)
}

func (m *mockTagRepo) Update(ctx context.Context, tag *models.Tag) error {
	return m.updateFn(ctx, tag)
}

func (m *mockTagRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}
