package comments

import (
	"context"

	"blog-api/core/apierr"
	"blog-api/core/ident"
	"blog-api/core/logger"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for comments.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the comment routes under their parent post path.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/posts/:postID/comments")
	group.Get("/", h.HandleList)
	group.Get("/:commentID", h.HandleGet)
	group.Post("/", h.HandleCreate)
	group.Put("/:commentID", h.HandleReplace)
	group.Patch("/:commentID", h.HandleMerge)
	group.Delete("/:commentID", h.HandleDelete)
}

// HandleList returns all comments of a post.
// @Summary List Comments
// @Tags comments
// @Produce json
// @Param postID path int true "Post ID"
// @Success 200 {array} comments.Comment "Comments"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Post Not Found"
// @Router /posts/{postID}/comments [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	postID, ok := ident.ParseID(c.Params("postID"))
	if !ok {
		return apierr.Respond(c, l, apierr.Validation("Bad request. Invalid ID."))
	}

	list, err := h.service.List(c.Context(), postID)
	if err != nil {
		return apierr.Respond(c, l, err)
	}
	return c.JSON(list)
}

// HandleGet returns a single comment.
// @Summary Get Comment
// @Tags comments
// @Produce json
// @Param postID path int true "Post ID"
// @Param commentID path int true "Comment ID"
// @Success 200 {object} comments.Comment "Comment"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /posts/{postID}/comments/{commentID} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	postID, commentID, ok := parsePath(c)
	if !ok {
		return apierr.Respond(c, l, apierr.Validation("Bad request. Invalid ID."))
	}

	comment, err := h.service.Get(c.Context(), postID, commentID)
	if err != nil {
		return apierr.Respond(c, l, err)
	}
	return c.JSON(comment)
}

// HandleCreate creates a comment under a post.
// @Summary Create Comment
// @Tags comments
// @Accept json
// @Produce json
// @Param postID path int true "Post ID"
// @Success 201 {object} comments.Comment "Created comment"
// @Failure 400 {object} map[string]string "Missing or invalid fields"
// @Failure 404 {object} map[string]string "Post Not Found"
// @Router /posts/{postID}/comments [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	postID, ok := ident.ParseID(c.Params("postID"))
	if !ok {
		return apierr.Respond(c, l, apierr.Validation("Bad request. Invalid ID."))
	}

	payload := map[string]any{}
	if err := c.BodyParser(&payload); err != nil {
		return apierr.Respond(c, l, apierr.Validation("Missing fields or invalid format!"))
	}

	comment, err := h.service.Create(c.Context(), postID, payload)
	if err != nil {
		return apierr.Respond(c, l, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// HandleReplace fully replaces a comment.
// @Summary Replace Comment
// @Tags comments
// @Accept json
// @Produce json
// @Param postID path int true "Post ID"
// @Param commentID path int true "Comment ID"
// @Success 200 {object} comments.Comment "Updated comment"
// @Failure 400 {object} map[string]string "Missing fields or wrong parent"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /posts/{postID}/comments/{commentID} [put]
func (h *Handler) HandleReplace(c *fiber.Ctx) error {
	return h.handleUpdate(c, h.service.Replace, "PUT request missing required fields!")
}

// HandleMerge partially updates a comment.
// @Summary Patch Comment
// @Tags comments
// @Accept json
// @Produce json
// @Param postID path int true "Post ID"
// @Param commentID path int true "Comment ID"
// @Success 200 {object} comments.Comment "Updated comment"
// @Failure 400 {object} map[string]string "Empty payload or wrong parent"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /posts/{postID}/comments/{commentID} [patch]
func (h *Handler) HandleMerge(c *fiber.Ctx) error {
	return h.handleUpdate(c, h.service.Merge, "Missing fields or invalid format!")
}

func (h *Handler) handleUpdate(c *fiber.Ctx, op func(ctx context.Context, postID, commentID int64, payload map[string]any) (*Comment, error), parseMsg string) error {
	l := logger.WithRayID(h.service.logger, c)

	postID, commentID, ok := parsePath(c)
	if !ok {
		return apierr.Respond(c, l, apierr.Validation("Bad request. Invalid ID."))
	}

	payload := map[string]any{}
	if err := c.BodyParser(&payload); err != nil {
		return apierr.Respond(c, l, apierr.Validation(parseMsg))
	}

	comment, err := op(c.Context(), postID, commentID, payload)
	if err != nil {
		return apierr.Respond(c, l, err)
	}
	return c.JSON(comment)
}

// HandleDelete deletes a comment.
// @Summary Delete Comment
// @Tags comments
// @Param postID path int true "Post ID"
// @Param commentID path int true "Comment ID"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]string "Invalid ID or wrong parent"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /posts/{postID}/comments/{commentID} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	postID, commentID, ok := parsePath(c)
	if !ok {
		return apierr.Respond(c, l, apierr.Validation("Bad request. Invalid ID."))
	}

	if err := h.service.Delete(c.Context(), postID, commentID); err != nil {
		return apierr.Respond(c, l, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parsePath(c *fiber.Ctx) (postID, commentID int64, ok bool) {
	postID, ok = ident.ParseID(c.Params("postID"))
	if !ok {
		return 0, 0, false
	}
	commentID, ok = ident.ParseID(c.Params("commentID"))
	if !ok {
		return 0, 0, false
	}
	return postID, commentID, true
}
