package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/NazirHussain1/inkwell-backend/dto"
	"github.com/NazirHussain1/inkwell-backend/internal/cursor"
	"github.com/NazirHussain1/inkwell-backend/internal/repository"
)

// respondError maps domain errors to the HTTP status table. Storage errors
// never reach the client verbatim outside development mode.
func respondError(c *fiber.Ctx, logger *slog.Logger, dev bool, op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "not found"})
	case errors.Is(err, repository.ErrInvalidParent),
		errors.Is(err, repository.ErrInvalidReaction),
		errors.Is(err, cursor.ErrInvalidCursor):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, repository.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Message: "already exists"})
	case errors.Is(err, repository.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Message: "conflicting update, retry"})
	}

	logger.Error(op, "err", err)
	msg := "internal server error"
	if dev {
		msg = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: msg})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "unauthorized"})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: msg})
}
