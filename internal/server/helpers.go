package server

import (
	"strconv"
	"strings"

	"blogly/internal/middleware"
	"blogly/internal/models"

	"github.com/gofiber/fiber/v2"
)

const flashesKey = "flashes"

// parseIDParam extracts a positive integer id from the named route param.
// Non-numeric ids behave like missing entities and 404.
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewNotFoundError("Page", raw)
	}
	return uint(id), nil
}

// formTagIDs reads the multi-value "tag" checkbox field. Values that are
// not integers are skipped.
func formTagIDs(c *fiber.Ctx) []uint {
	var ids []uint
	for _, raw := range c.Request().PostArgs().PeekMulti("tag") {
		id, err := strconv.ParseUint(string(raw), 10, 32)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids
}

// flash queues a confirmation message for the next rendered page.
func (s *Server) flash(c *fiber.Ctx, msg string) {
	sess, err := s.sessions.Get(c)
	if err != nil {
		middleware.Logger.Warn("session unavailable, dropping flash", "error", err.Error())
		return
	}
	existing, _ := sess.Get(flashesKey).(string)
	if existing != "" {
		msg = existing + "\n" + msg
	}
	sess.Set(flashesKey, msg)
	if err := sess.Save(); err != nil {
		middleware.Logger.Warn("failed to save session", "error", err.Error())
	}
}

// takeFlashes returns and clears any queued flash messages.
func (s *Server) takeFlashes(c *fiber.Ctx) []string {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return nil
	}
	stored, _ := sess.Get(flashesKey).(string)
	if stored == "" {
		return nil
	}
	sess.Delete(flashesKey)
	if err := sess.Save(); err != nil {
		middleware.Logger.Warn("failed to save session", "error", err.Error())
	}
	return strings.Split(stored, "\n")
}

// render draws the named page inside the main layout, attaching any
// pending flash messages.
func (s *Server) render(c *fiber.Ctx, name string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Flashes"] = s.takeFlashes(c)
	return c.Render(name, data, "layouts/main")
}

// renderError translates an error into the matching HTML error page.
// Internal errors are logged; their details are never rendered.
func (s *Server) renderError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch models.ErrorCode(err) {
	case "NOT_FOUND":
		status = fiber.StatusNotFound
	case "VALIDATION_ERROR":
		status = fiber.StatusBadRequest
	case "CONFLICT":
		status = fiber.StatusConflict
	}

	if status == fiber.StatusInternalServerError {
		middleware.Logger.Error("handler error",
			"path", c.Path(),
			"method", c.Method(),
			"error", err.Error(),
		)
		return c.Status(status).Render("errors/error", fiber.Map{
			"Status":  status,
			"Message": "An unexpected error occurred",
		}, "layouts/main")
	}

	if status == fiber.StatusNotFound {
		return c.Status(status).Render("errors/404", fiber.Map{}, "layouts/main")
	}

	return c.Status(status).Render("errors/error", fiber.Map{
		"Status":  status,
		"Message": err.Error(),
	}, "layouts/main")
}
