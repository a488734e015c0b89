package handlers

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/NazirHussain1/inkwell-backend/dto"
	"github.com/NazirHussain1/inkwell-backend/internal/authctx"
	"github.com/NazirHussain1/inkwell-backend/internal/validator"
	"github.com/NazirHussain1/inkwell-backend/model"
)

type PostHandler struct {
	Posts    PostStore
	Comments CommentStore
	Validate *validator.Validator
	Log      *slog.Logger
	Dev      bool
}

// POST /api/posts  body: { title, body, tags?, categoryIds? }
func (h *PostHandler) Create(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var body dto.CreatePostReq
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	if msgs := h.Validate.Struct(body); msgs != nil {
		return badRequest(c, strings.Join(msgs, "; "))
	}

	categoryIDs := make([]bson.ObjectID, 0, len(body.CategoryIDs))
	for _, cidStr := range body.CategoryIDs {
		cid, err := bson.ObjectIDFromHex(cidStr)
		if err != nil {
			return badRequest(c, "invalid categoryId: "+cidStr)
		}
		categoryIDs = append(categoryIDs, cid)
	}

	post, err := h.Posts.Create(c.Context(), uid, body.Title, body.Body, body.Tags, categoryIDs)
	if err != nil {
		return respondError(c, h.Log, h.Dev, "create post", err)
	}
	return c.Status(fiber.StatusCreated).JSON(toPostResp(*post))
}

// GET /api/posts/:slug. Public.
func (h *PostHandler) Get(c *fiber.Ctx) error {
	post, err := h.Posts.FindBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondError(c, h.Log, h.Dev, "get post", err)
	}
	return c.JSON(toPostResp(*post))
}

// PUT /api/posts/:slug. Author only.
func (h *PostHandler) Update(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var body dto.UpdatePostReq
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	if msgs := h.Validate.Struct(body); msgs != nil {
		return badRequest(c, strings.Join(msgs, "; "))
	}

	post, err := h.Posts.FindBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondError(c, h.Log, h.Dev, "update post", err)
	}
	if post.AuthorID != uid {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Message: "forbidden"})
	}

	updated, err := h.Posts.Update(c.Context(), post.ID, body.Title, body.Body, body.Tags)
	if err != nil {
		return respondError(c, h.Log, h.Dev, "update post", err)
	}
	return c.JSON(toPostResp(*updated))
}

// DELETE /api/posts/:slug. Author only. Cascades to the post comments.
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return unauthorized(c)
	}

	post, err := h.Posts.FindBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondError(c, h.Log, h.Dev, "delete post", err)
	}
	if post.AuthorID != uid {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Message: "forbidden"})
	}

	if err := h.Posts.Delete(c.Context(), post.ID); err != nil {
		return respondError(c, h.Log, h.Dev, "delete post", err)
	}
	if err := h.Comments.DeleteByPost(c.Context(), post.ID); err != nil {
		return respondError(c, h.Log, h.Dev, "delete post comments", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// toPostResp strips zero-count reactions before the post goes out.
func toPostResp(p model.Post) dto.PostResp {
	clean := make(map[model.ReactionKind]int, len(p.Reactions))
	for k, n := range p.Reactions {
		if n > 0 {
			clean[k] = n
		}
	}
	p.Reactions = nil
	return dto.PostResp{Post: p, Reactions: clean}
}
