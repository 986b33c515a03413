package server

import (
	"fmt"

	"blogly/internal/models"
	"blogly/internal/service"

	"github.com/gofiber/fiber/v2"
)

// tagOption is a tag checkbox on the post create/edit forms.
type tagOption struct {
	ID      uint
	Name    string
	Checked bool
}

func tagOptions(all []models.Tag, selected []models.Tag) []tagOption {
	chosen := make(map[uint]bool, len(selected))
	for _, t := range selected {
		chosen[t.ID] = true
	}
	opts := make([]tagOption, 0, len(all))
	for _, t := range all {
		opts = append(opts, tagOption{ID: t.ID, Name: t.Name, Checked: chosen[t.ID]})
	}
	return opts
}

// NewPostForm handles GET /users/:id/posts/new
func (s *Server) NewPostForm(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return s.renderError(c, err)
	}

	user, err := s.userService.GetUser(c.Context(), userID)
	if err != nil {
		return s.renderError(c, err)
	}
	tags, err := s.tagService.ListTags(c.Context())
	if err != nil {
		return s.renderError(c, err)
	}

	return s.render(c, "posts/new", fiber.Map{"User": user, "Tags": tags})
}

// CreatePost handles POST /users/:id/posts/new
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return s.renderError(c, err)
	}

	in := service.PostInput{
		Title:   c.FormValue("title"),
		Content: c.FormValue("content"),
		TagIDs:  formTagIDs(c),
	}

	post, err := s.postService.CreatePost(c.Context(), userID, in)
	if err != nil {
		return s.renderError(c, err)
	}

	s.flash(c, fmt.Sprintf("Post '%s' added.", post.Title))
	return c.Redirect(fmt.Sprintf("/users/%d", userID), fiber.StatusFound)
}

// ShowPost handles GET /posts/:id
func (s *Server) ShowPost(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return s.renderError(c, err)
	}

	post, err := s.postService.GetPost(c.Context(), id)
	if err != nil {
		return s.renderError(c, err)
	}
	return s.render(c, "posts/show", fiber.Map{"Post": post})
}

// EditPostForm handles GET /posts/:id/edit
func (s *Server) EditPostForm(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return s.renderError(c, err)
	}

	post, err := s.postService.GetPost(c.Context(), id)
	if err != nil {
		return s.renderError(c, err)
	}
	tags, err := s.tagService.ListTags(c.Context())
	if err != nil {
		return s.renderError(c, err)
	}

	return s.render(c, "posts/edit", fiber.Map{
		"Post": post,
		"Tags": tagOptions(tags, post.Tags),
	})
}

// UpdatePost handles POST /posts/:id/edit
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return s.renderError(c, err)
	}

	in := service.PostInput{
		Title:   c.FormValue("title"),
		Content: c.FormValue("content"),
		TagIDs:  formTagIDs(c),
	}

	post, err := s.postService.UpdatePost(c.Context(), id, in)
	if err != nil {
		return s.renderError(c, err)
	}

	s.flash(c, fmt.Sprintf("Post '%s' edited.", post.Title))
	return c.Redirect(fmt.Sprintf("/posts/%d", id), fiber.StatusFound)
}

// DeletePost handles POST /posts/:id/delete. The owning user id is
// captured before deletion for the redirect target.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return s.renderError(c, err)
	}

	post, err := s.postService.DeletePost(c.Context(), id)
	if err != nil {
		return s.renderError(c, err)
	}

	s.flash(c, fmt.Sprintf("Post '%s' deleted.", post.Title))
	return c.Redirect(fmt.Sprintf("/users/%d", post.UserID), fiber.StatusFound)
}
