package handlers

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/NazirHussain1/inkwell-backend/dto"
	"github.com/NazirHussain1/inkwell-backend/internal/authctx"
	"github.com/NazirHussain1/inkwell-backend/internal/validator"
)

type CommentHandler struct {
	Posts    PostFinder
	Comments CommentStore
	Validate *validator.Validator
	Log      *slog.Logger
	Dev      bool
}

// GET /api/posts/:slug/comments
// Public. Top-level comments newest-first, replies oldest-first. When the
// request carries a session, each comment reports whether the caller liked
// it.
func (h *CommentHandler) List(c *fiber.Ctx) error {
	post, err := h.Posts.FindBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondError(c, h.Log, h.Dev, "list comments", err)
	}

	viewer, _ := authctx.UserIDFrom(c)
	threads, err := h.Comments.ListThreads(c.Context(), post.ID, viewer)
	if err != nil {
		return respondError(c, h.Log, h.Dev, "list comments", err)
	}
	return c.JSON(threads)
}

// POST /api/posts/:slug/comments  body: { text, parentComment? }
// Requires auth. parentComment must be a top-level comment on the same post.
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var body dto.CreateCommentReq
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	body.Text = strings.TrimSpace(body.Text)
	if msgs := h.Validate.Struct(body); msgs != nil {
		return badRequest(c, strings.Join(msgs, "; "))
	}

	post, err := h.Posts.FindBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondError(c, h.Log, h.Dev, "create comment", err)
	}

	var parentID *bson.ObjectID
	if body.ParentComment != "" {
		oid, err := bson.ObjectIDFromHex(body.ParentComment)
		if err != nil {
			return badRequest(c, "invalid parentComment id")
		}
		parentID = &oid
	}

	com, err := h.Comments.Create(c.Context(), post.ID, uid, body.Text, parentID)
	if err != nil {
		return respondError(c, h.Log, h.Dev, "create comment", err)
	}
	return c.JSON(dto.CreateCommentResp{Message: "comment added", Comment: *com})
}

// PUT /api/posts/:slug/comments  body: { commentId }
// Requires auth. Toggles the caller's like on the comment.
func (h *CommentHandler) ToggleLike(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var body dto.ToggleCommentLikeReq
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	if msgs := h.Validate.Struct(body); msgs != nil {
		return badRequest(c, strings.Join(msgs, "; "))
	}

	if _, err := h.Posts.FindBySlug(c.Context(), c.Params("slug")); err != nil {
		return respondError(c, h.Log, h.Dev, "toggle comment like", err)
	}

	cid, err := bson.ObjectIDFromHex(body.CommentID)
	if err != nil {
		return badRequest(c, "invalid commentId")
	}

	liked, err := h.Comments.ToggleLike(c.Context(), cid, uid)
	if err != nil {
		return respondError(c, h.Log, h.Dev, "toggle comment like", err)
	}
	return c.JSON(dto.ToggleLikeResp{Liked: liked})
}
