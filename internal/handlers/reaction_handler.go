package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/NazirHussain1/inkwell-backend/dto"
	"github.com/NazirHussain1/inkwell-backend/internal/authctx"
	"github.com/NazirHussain1/inkwell-backend/model"
)

type ReactionHandler struct {
	Posts     PostFinder
	Reactions ReactionStore
	Log       *slog.Logger
	Dev       bool
}

// POST /api/posts/:slug  body: { reaction: kind | null }
// Requires auth. Sets, switches or clears the caller's reaction; re-sending
// the current kind is a no-op (reactions do not toggle).
func (h *ReactionHandler) Set(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var body dto.SetReactionReq
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	if body.Reaction != nil && !model.ValidReactionKind(*body.Reaction) {
		return badRequest(c, "invalid reaction kind")
	}

	post, err := h.Posts.FindBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondError(c, h.Log, h.Dev, "set reaction", err)
	}

	summary, err := h.Reactions.Set(c.Context(), post.ID, uid, body.Reaction)
	if err != nil {
		return respondError(c, h.Log, h.Dev, "set reaction", err)
	}
	return c.JSON(summary)
}
