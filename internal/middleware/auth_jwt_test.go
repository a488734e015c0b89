package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NazirHussain1/inkwell-backend/internal/auth"
)

const testSecret = "test-secret"

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(JWTUidOnly(testSecret))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("user_id")})
	})
	app.Get("/private", RequireAuth(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func doWhoami(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestAnonymousPassesThrough(t *testing.T) {
	app := newApp()
	status, body := doWhoami(t, app, httptest.NewRequest("GET", "/whoami", nil))
	assert.Equal(t, 200, status)
	assert.Nil(t, body["user_id"])
}

func TestCookieToken(t *testing.T) {
	app := newApp()
	token, err := auth.Sign(testSecret, "68bf0f1a2a3c4d5e6f708091", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token})
	status, body := doWhoami(t, app, req)
	assert.Equal(t, 200, status)
	assert.Equal(t, "68bf0f1a2a3c4d5e6f708091", body["user_id"])
}

func TestBearerToken(t *testing.T) {
	app := newApp()
	token, err := auth.Sign(testSecret, "68bf0f1a2a3c4d5e6f708091", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestInvalidTokenRejected(t *testing.T) {
	app := newApp()
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestRequireAuthBlocksAnonymous(t *testing.T) {
	app := newApp()
	req := httptest.NewRequest("GET", "/private", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestRequireAuthBlocksMalformedUserID(t *testing.T) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "not-an-object-id")
		return c.Next()
	})
	app.Get("/private", RequireAuth(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/private", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}
