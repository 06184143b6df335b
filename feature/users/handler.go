package users

import (
	"context"

	"blog-api/core/apierr"
	"blog-api/core/ident"
	"blog-api/core/logger"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for users.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the user routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/users")
	group.Get("/", h.HandleList)
	group.Get("/:username", h.HandleGet)
	group.Post("/", h.HandleCreate)
	group.Put("/:username", h.HandleReplace)
	group.Patch("/:username", h.HandleMerge)
	group.Delete("/:username", h.HandleDelete)
}

// HandleList returns all users.
// @Summary List Users
// @Tags users
// @Produce json
// @Success 200 {array} users.User "Users"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /users [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	list, err := h.service.List(c.Context())
	if err != nil {
		return apierr.Respond(c, l, err)
	}
	return c.JSON(list)
}

// HandleGet returns a single user.
// @Summary Get User
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} users.User "User"
// @Failure 400 {object} map[string]string "Invalid username"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /users/{username} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	username, ok := ident.Username(c.Params("username"))
	if !ok {
		return apierr.Respond(c, l, apierr.Validation("Bad request. Invalid username."))
	}

	user, err := h.service.Get(c.Context(), username)
	if err != nil {
		return apierr.Respond(c, l, err)
	}
	return c.JSON(user)
}

// HandleCreate creates a user.
// @Summary Create User
// @Tags users
// @Accept json
// @Produce json
// @Success 201 {object} users.User "Created user"
// @Failure 400 {object} map[string]string "Missing or invalid fields"
// @Failure 409 {object} map[string]string "Username or email taken"
// @Router /users [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	payload := map[string]any{}
	if err := c.BodyParser(&payload); err != nil {
		return apierr.Respond(c, l, apierr.Validation("Missing fields or invalid format!"))
	}

	user, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return apierr.Respond(c, l, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleReplace fully replaces a user.
// @Summary Replace User
// @Tags users
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} users.User "Updated user"
// @Failure 400 {object} map[string]string "Missing required fields"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 409 {object} map[string]string "Username or email taken"
// @Router /users/{username} [put]
func (h *Handler) HandleReplace(c *fiber.Ctx) error {
	return h.handleUpdate(c, h.service.Replace, "PUT request missing required fields!")
}

// HandleMerge partially updates a user.
// @Summary Patch User
// @Tags users
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} users.User "Updated user"
// @Failure 400 {object} map[string]string "Empty or invalid payload"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 409 {object} map[string]string "Username or email taken"
// @Router /users/{username} [patch]
func (h *Handler) HandleMerge(c *fiber.Ctx) error {
	return h.handleUpdate(c, h.service.Merge, "Missing fields or invalid format!")
}

func (h *Handler) handleUpdate(c *fiber.Ctx, op func(ctx context.Context, username string, payload map[string]any) (*User, error), parseMsg string) error {
	l := logger.WithRayID(h.service.logger, c)

	username, ok := ident.Username(c.Params("username"))
	if !ok {
		return apierr.Respond(c, l, apierr.Validation("Bad request. Invalid username."))
	}

	payload := map[string]any{}
	if err := c.BodyParser(&payload); err != nil {
		return apierr.Respond(c, l, apierr.Validation(parseMsg))
	}

	user, err := op(c.Context(), username, payload)
	if err != nil {
		return apierr.Respond(c, l, err)
	}
	return c.JSON(user)
}

// HandleDelete deletes a user.
// @Summary Delete User
// @Tags users
// @Param username path string true "Username"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]string "Invalid username"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /users/{username} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	username, ok := ident.Username(c.Params("username"))
	if !ok {
		return apierr.Respond(c, l, apierr.Validation("Bad request. Invalid username."))
	}

	if err := h.service.Delete(c.Context(), username); err != nil {
		return apierr.Respond(c, l, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
