package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/NazirHussain1/inkwell-backend/configs"
)

type TrendingHandler struct {
	Trending TrendingStore
	Log      *slog.Logger
	Dev      bool
}

// GET /api/trending/hashtags?window=day|all&limit=10
func (h *TrendingHandler) Hashtags(c *fiber.Ctx) error {
	k := c.QueryInt("limit", configs.DefaultTrendingK)
	if k <= 0 {
		k = configs.DefaultTrendingK
	}
	if k > configs.MaxTrendingK {
		k = configs.MaxTrendingK
	}

	window := c.Query("window", "day")
	switch window {
	case "day":
		tags, err := h.Trending.TopHashtagsToday(c.Context(), k)
		if err != nil {
			return respondError(c, h.Log, h.Dev, "trending hashtags", err)
		}
		return c.JSON(fiber.Map{"window": window, "hashtags": tags})
	case "all":
		tags, err := h.Trending.TopHashtagsAllTime(c.Context(), k)
		if err != nil {
			return respondError(c, h.Log, h.Dev, "trending hashtags", err)
		}
		return c.JSON(fiber.Map{"window": window, "hashtags": tags})
	default:
		return badRequest(c, "window must be 'day' or 'all'")
	}
}
