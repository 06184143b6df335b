package posts

import (
	"context"

	"blog-api/core/apierr"
	"blog-api/core/ident"
	"blog-api/core/logger"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for posts.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the post routes. The search route must precede the
// :postID route so "search" is not consumed as an identifier.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/posts")
	group.Get("/", h.HandleList)
	group.Get("/search", h.HandleSearch)
	group.Get("/:postID", h.HandleGet)
	group.Post("/", h.HandleCreate)
	group.Put("/:postID", h.HandleReplace)
	group.Patch("/:postID", h.HandleMerge)
	group.Delete("/:postID", h.HandleDelete)
}

// HandleList returns all posts.
// @Summary List Posts
// @Tags posts
// @Produce json
// @Success 200 {array} posts.Post "Posts"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /posts [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	list, err := h.service.List(c.Context())
	if err != nil {
		return apierr.Respond(c, l, err)
	}
	return c.JSON(list)
}

// HandleSearch returns posts matching the term query parameter.
// @Summary Search Posts
// @Tags posts
// @Produce json
// @Param term query string false "Substring to match against title, content, category and tags"
// @Success 200 {array} posts.Post "Matching posts"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /posts/search [get]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	list, err := h.service.Search(c.Context(), c.Query("term"))
	if err != nil {
		return apierr.Respond(c, l, err)
	}
	return c.JSON(list)
}

// HandleGet returns a single post.
// @Summary Get Post
// @Tags posts
// @Produce json
// @Param postID path int true "Post ID"
// @Success 200 {object} posts.Post "Post"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /posts/{postID} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, ok := ident.ParseID(c.Params("postID"))
	if !ok {
		return apierr.Respond(c, l, apierr.Validation("Bad request. Invalid ID."))
	}

	post, err := h.service.Get(c.Context(), id)
	if err != nil {
		return apierr.Respond(c, l, err)
	}
	return c.JSON(post)
}

// HandleCreate creates a post.
// @Summary Create Post
// @Tags posts
// @Accept json
// @Produce json
// @Success 201 {object} posts.Post "Created post"
// @Failure 400 {object} map[string]string "Missing or invalid fields"
// @Router /posts [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	payload := map[string]any{}
	if err := c.BodyParser(&payload); err != nil {
		return apierr.Respond(c, l, apierr.Validation("Missing fields or invalid format!"))
	}

	post, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return apierr.Respond(c, l, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// HandleReplace fully replaces a post.
// @Summary Replace Post
// @Tags posts
// @Accept json
// @Produce json
// @Param postID path int true "Post ID"
// @Success 200 {object} posts.Post "Updated post"
// @Failure 400 {object} map[string]string "Missing required fields"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /posts/{postID} [put]
func (h *Handler) HandleReplace(c *fiber.Ctx) error {
	return h.handleUpdate(c, h.service.Replace, "PUT request missing required fields!")
}

// HandleMerge partially updates a post.
// @Summary Patch Post
// @Tags posts
// @Accept json
// @Produce json
// @Param postID path int true "Post ID"
// @Success 200 {object} posts.Post "Updated post"
// @Failure 400 {object} map[string]string "Empty or invalid payload"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /posts/{postID} [patch]
func (h *Handler) HandleMerge(c *fiber.Ctx) error {
	return h.handleUpdate(c, h.service.Merge, "Missing fields or invalid format!")
}

func (h *Handler) handleUpdate(c *fiber.Ctx, op func(ctx context.Context, id int64, payload map[string]any) (*Post, error), parseMsg string) error {
	l := logger.WithRayID(h.service.logger, c)

	id, ok := ident.ParseID(c.Params("postID"))
	if !ok {
		return apierr.Respond(c, l, apierr.Validation("Bad request. Invalid ID."))
	}

	payload := map[string]any{}
	if err := c.BodyParser(&payload); err != nil {
		return apierr.Respond(c, l, apierr.Validation(parseMsg))
	}

	post, err := op(c.Context(), id, payload)
	if err != nil {
		return apierr.Respond(c, l, err)
	}
	return c.JSON(post)
}

// HandleDelete deletes a post.
// @Summary Delete Post
// @Tags posts
// @Param postID path int true "Post ID"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /posts/{postID} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, ok := ident.ParseID(c.Params("postID"))
	if !ok {
		return apierr.Respond(c, l, apierr.Validation("Bad request. Invalid ID."))
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return apierr.Respond(c, l, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
