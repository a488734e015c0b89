package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/NazirHussain1/inkwell-backend/dto"
	"github.com/NazirHussain1/inkwell-backend/internal/repository"
)

type FeedHandler struct {
	Posts PostStore
	Log   *slog.Logger
	Dev   bool
}

// GET /api/posts/feed?limit=20&cursor=...&tag=...&category=...&author=...
// Public, newest-first, keyset pagination.
func (h *FeedHandler) List(c *fiber.Ctx) error {
	opts := repository.FeedOptions{
		Tag:    c.Query("tag"),
		Limit:  int64(c.QueryInt("limit")),
		Cursor: c.Query("cursor"),
	}
	if cat := c.Query("category"); cat != "" {
		oid, err := bson.ObjectIDFromHex(cat)
		if err != nil {
			return badRequest(c, "invalid category id")
		}
		opts.Category = oid
	}
	if author := c.Query("author"); author != "" {
		oid, err := bson.ObjectIDFromHex(author)
		if err != nil {
			return badRequest(c, "invalid author id")
		}
		opts.AuthorID = oid
	}

	items, next, err := h.Posts.ListFeed(c.Context(), opts)
	if err != nil {
		return respondError(c, h.Log, h.Dev, "list feed", err)
	}

	out := make([]dto.PostResp, 0, len(items))
	for _, p := range items {
		out = append(out, toPostResp(p))
	}
	return c.JSON(dto.ListResp[dto.PostResp]{
		Items:      out,
		NextCursor: next,
		HasMore:    next != nil,
	})
}
