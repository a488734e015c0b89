package handlers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/NazirHussain1/inkwell-backend/dto"
	"github.com/NazirHussain1/inkwell-backend/internal/authctx"
	"github.com/NazirHussain1/inkwell-backend/internal/repository"
)

type FollowHandler struct {
	Follows FollowStore
	Users   UserStore
	Log     *slog.Logger
	Dev     bool
}

// PUT /api/users/:id/follow. Requires auth, toggles the follow edge.
func (h *FollowHandler) Toggle(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return unauthorized(c)
	}

	followee, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}
	if followee == uid {
		return badRequest(c, "cannot follow yourself")
	}

	exists, err := h.Users.Exists(c.Context(), followee)
	if err != nil {
		return respondError(c, h.Log, h.Dev, "toggle follow", err)
	}
	if !exists {
		return respondError(c, h.Log, h.Dev, "toggle follow", repository.ErrNotFound)
	}

	following, err := h.Follows.Toggle(c.Context(), uid, followee)
	if err != nil {
		return respondError(c, h.Log, h.Dev, "toggle follow", err)
	}
	return c.JSON(dto.ToggleFollowResp{Following: following})
}

// GET /api/users/:id/followers
func (h *FollowHandler) Followers(c *fiber.Ctx) error {
	return h.list(c, h.Follows.Followers)
}

// GET /api/users/:id/following
func (h *FollowHandler) Following(c *fiber.Ctx) error {
	return h.list(c, h.Follows.Following)
}

func (h *FollowHandler) list(c *fiber.Ctx, fetch func(ctx context.Context, id bson.ObjectID) ([]bson.ObjectID, error)) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	ids, err := fetch(c.Context(), id)
	if err != nil {
		return respondError(c, h.Log, h.Dev, "list follows", err)
	}

	users := make([]dto.FollowUser, 0, len(ids))
	for _, oid := range ids {
		u, err := h.Users.FindByID(c.Context(), oid)
		if errors.Is(err, repository.ErrNotFound) {
			// Edge outlived a deleted account.
			continue
		}
		if err != nil {
			return respondError(c, h.Log, h.Dev, "list follows", err)
		}
		users = append(users, dto.FollowUser{ID: u.ID.Hex(), Username: u.Username})
	}
	return c.JSON(dto.FollowListResp{Users: users, Count: len(users)})
}
