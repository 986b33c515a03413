package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ListTags handles GET /tags
func (s *Server) ListTags(c *fiber.Ctx) error {
	tags, err := s.tagService.ListTags(c.Context())
	if err != nil {
		return s.renderError(c, err)
	}
	return s.render(c, "tags/index", fiber.Map{"Tags": tags})
}

// NewTagForm handles GET /tags/new
func (s *Server) NewTagForm(c *fiber.Ctx) error {
	return s.render(c, "tags/new", nil)
}

// CreateTag handles POST /tags/new
func (s *Server) CreateTag(c *fiber.Ctx) error {
	tag, err := s.tagService.CreateTag(c.Context(), c.FormValue("tag_name"))
	if err != nil {
		return s.renderError(c, err)
	}

	s.flash(c, fmt.Sprintf("Tag '%s' added.", tag.Name))
	return c.Redirect("/tags", fiber.StatusFound)
}

// ShowTag handles GET /tags/:id
func (s *Server) ShowTag(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return s.renderError(c, err)
	}

	tag, err := s.tagService.GetTag(c.Context(), id)
	if err != nil {
		return s.renderError(c, err)
	}
	return s.render(c, "tags/show", fiber.Map{"Tag": tag})
}

// EditTagForm handles GET /tags/:id/edit
func (s *Server) EditTagForm(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return s.renderError(c, err)
	}

	tag, err := s.tagService.GetTag(c.Context(), id)
	if err != nil {
		return s.renderError(c, err)
	}
	return s.render(c, "tags/edit", fiber.Map{"Tag": tag})
}

// UpdateTag handles POST /tags/:id/edit
func (s *Server) UpdateTag(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return s.renderError(c, err)
	}

	tag, err := s.tagService.UpdateTag(c.Context(), id, c.FormValue("tag_name"))
	if err != nil {
		return s.renderError(c, err)
	}

	s.flash(c, fmt.Sprintf("Tag '%s' edited.", tag.Name))
	return c.Redirect("/tags", fiber.StatusFound)
}

// DeleteTag handles POST /tags/:id/delete
func (s *Server) DeleteTag(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return s.renderError(c, err)
	}

	tag, err := s.tagService.DeleteTag(c.Context(), id)
	if err != nil {
		return s.renderError(c, err)
	}

	s.flash(c, fmt.Sprintf("Tag '%s' deleted.", tag.Name))
	return c.Redirect("/tags", fiber.StatusFound)
}
