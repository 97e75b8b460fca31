package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"finbook/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func setupConfig() {
	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4}
}

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", JWTMiddleware, func(c *fiber.Ctx) error {
		userId := c.Locals("userId").(uint)
		return JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{"userId": userId})
	})
	return app
}

func TestJWTRoundtrip(t *testing.T) {
	setupConfig()
	app := protectedApp()

	token, err := GenerateJWT(42, "Test User", "test@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `"userId":42`)
}

func TestJWTMiddlewareRejectsBadTokens(t *testing.T) {
	setupConfig()
	app := protectedApp()

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc"},
		{"garbage token", "Bearer not.a.token"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestJWTMiddlewareRejectsForeignSignature(t *testing.T) {
	setupConfig()
	token, err := GenerateJWT(42, "Test User", "test@example.com")
	require.NoError(t, err)

	// token signed with a different secret must not pass
	config.AppConfig.JWTKey = "rotated-secret"
	app := protectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
