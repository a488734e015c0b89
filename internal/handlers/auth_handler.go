package handlers

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/NazirHussain1/inkwell-backend/dto"
	"github.com/NazirHussain1/inkwell-backend/internal/auth"
	"github.com/NazirHussain1/inkwell-backend/internal/middleware"
	"github.com/NazirHussain1/inkwell-backend/internal/validator"
)

type AuthHandler struct {
	Users     UserStore
	JWTSecret string
	Validate  *validator.Validator
	Log       *slog.Logger
	Dev       bool
}

// POST /api/auth/signup  body: { username, email, password, bio? }
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var body dto.SignupReq
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	if msgs := h.Validate.Struct(body); msgs != nil {
		return badRequest(c, strings.Join(msgs, "; "))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return respondError(c, h.Log, h.Dev, "signup", err)
	}

	user, err := h.Users.Create(c.Context(), body.Username, strings.ToLower(body.Email), string(hash), body.Bio)
	if err != nil {
		return respondError(c, h.Log, h.Dev, "signup", err)
	}

	return h.issueSession(c, user.ID.Hex(), func() dto.AuthResp {
		return dto.AuthResp{User: *user}
	})
}

// POST /api/auth/login  body: { email, password }
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body dto.LoginReq
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	if msgs := h.Validate.Struct(body); msgs != nil {
		return badRequest(c, strings.Join(msgs, "; "))
	}

	user, err := h.Users.FindByEmail(c.Context(), strings.ToLower(body.Email))
	if err != nil {
		// Uniform response for unknown email and bad password.
		return unauthorized(c)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)) != nil {
		return unauthorized(c)
	}

	return h.issueSession(c, user.ID.Hex(), func() dto.AuthResp {
		return dto.AuthResp{User: *user}
	})
}

// POST /api/auth/logout. Clears the session cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{"message": "logged out"})
}

func (h *AuthHandler) issueSession(c *fiber.Ctx, userIDHex string, build func() dto.AuthResp) error {
	token, err := auth.Sign(h.JWTSecret, userIDHex, auth.DefaultTTL)
	if err != nil {
		return respondError(c, h.Log, h.Dev, "issue session", err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    token,
		Expires:  time.Now().Add(auth.DefaultTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	resp := build()
	resp.Token = token
	return c.JSON(resp)
}
