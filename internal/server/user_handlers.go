package server

import (
	"fmt"

	"blogly/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListUsers handles GET /users
func (s *Server) ListUsers(c *fiber.Ctx) error {
	users, err := s.userService.ListUsers(c.Context())
	if err != nil {
		return s.renderError(c, err)
	}
	return s.render(c, "users/index", fiber.Map{"Users": users})
}

// NewUserForm handles GET /users/new
func (s *Server) NewUserForm(c *fiber.Ctx) error {
	return s.render(c, "users/new", nil)
}

// CreateUser handles POST /users/new
func (s *Server) CreateUser(c *fiber.Ctx) error {
	in := service.UserInput{
		FirstName: c.FormValue("first_name"),
		LastName:  c.FormValue("last_name"),
		ImgURL:    c.FormValue("img_url"),
	}

	user, err := s.userService.CreateUser(c.Context(), in)
	if err != nil {
		return s.renderError(c, err)
	}

	s.flash(c, fmt.Sprintf("User %s added.", user.FullName()))
	return c.Redirect("/users", fiber.StatusFound)
}

// ShowUser handles GET /users/:id
func (s *Server) ShowUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return s.renderError(c, err)
	}

	user, err := s.userService.GetUser(c.Context(), id)
	if err != nil {
		return s.renderError(c, err)
	}
	return s.render(c, "users/show", fiber.Map{"User": user})
}

// EditUserForm handles GET /users/:id/edit
func (s *Server) EditUserForm(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return s.renderError(c, err)
	}

	user, err := s.userService.GetUser(c.Context(), id)
	if err != nil {
		return s.renderError(c, err)
	}
	return s.render(c, "users/edit", fiber.Map{"User": user})
}

// UpdateUser handles POST /users/:id/edit
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return s.renderError(c, err)
	}

	in := service.UserInput{
		FirstName: c.FormValue("first_name"),
		LastName:  c.FormValue("last_name"),
		ImgURL:    c.FormValue("img_url"),
	}

	user, err := s.userService.UpdateUser(c.Context(), id, in)
	if err != nil {
		return s.renderError(c, err)
	}

	s.flash(c, fmt.Sprintf("User %s edited.", user.FullName()))
	return c.Redirect("/users", fiber.StatusFound)
}

// DeleteUser handles POST /users/:id/delete
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return s.renderError(c, err)
	}

	user, err := s.userService.DeleteUser(c.Context(), id)
	if err != nil {
		return s.renderError(c, err)
	}

	s.flash(c, fmt.Sprintf("User %s deleted.", user.FullName()))
	return c.Redirect("/users", fiber.StatusFound)
}
