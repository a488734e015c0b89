package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/NazirHussain1/inkwell-backend/dto"
	"github.com/NazirHussain1/inkwell-backend/internal/repository"
)

type CategoryHandler struct {
	Categories CategoryStore
	PostStore  PostStore
	Log        *slog.Logger
	Dev        bool
}

// GET /api/categories
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	cats, err := h.Categories.List(c.Context())
	if err != nil {
		return respondError(c, h.Log, h.Dev, "list categories", err)
	}
	return c.JSON(cats)
}

// GET /api/categories/:slug/posts?limit=...&cursor=...
func (h *CategoryHandler) Posts(c *fiber.Ctx) error {
	cat, err := h.Categories.FindBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondError(c, h.Log, h.Dev, "category posts", err)
	}

	items, next, err := h.PostStore.ListFeed(c.Context(), repository.FeedOptions{
		Category: cat.ID,
		Limit:    int64(c.QueryInt("limit")),
		Cursor:   c.Query("cursor"),
	})
	if err != nil {
		return respondError(c, h.Log, h.Dev, "category posts", err)
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
