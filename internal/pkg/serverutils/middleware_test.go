package serverutils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/RishavSingh2203/freaky-fit/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", JwtMiddleware, func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"user_id": ctx.Locals("user_id"),
			"role":    ctx.Locals("role"),
		})
	})
	app.Get("/admin", JwtMiddleware, RequireRoles(entity.UserRoleAdmin), func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})
	app.Get("/staff", JwtMiddleware, RequireRoles(entity.UserRoleAdmin, entity.UserRoleTrainer), func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestJwtMiddlewareMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	app := protectedApp()

	req := httptest.NewRequest("GET", "/me", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJwtMiddlewareBadToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	app := protectedApp()

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJwtMiddlewareWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	app := protectedApp()

	forged := signToken(t, "other-secret", jwt.MapClaims{
		"user_id": "abc",
		"role":    "ADMIN",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJwtMiddlewareValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	app := protectedApp()

	token := signToken(t, "secret", jwt.MapClaims{
		"user_id": "abc",
		"role":    "USER",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRolesBlocksWrongRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	app := protectedApp()

	token := signToken(t, "secret", jwt.MapClaims{
		"user_id": "abc",
		"role":    "USER",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRolesAllowsAnyListedRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	app := protectedApp()

	for _, role := range []string{"ADMIN", "TRAINER"} {
		token := signToken(t, "secret", jwt.MapClaims{
			"user_id": "abc",
			"role":    role,
			"exp":     time.Now().Add(time.Hour).Unix(),
		})

		req := httptest.NewRequest("GET", "/staff", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "role %s", role)
	}
}

func TestRequireRolesWithoutRoleClaim(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	app := protectedApp()

	token := signToken(t, "secret", jwt.MapClaims{
		"user_id": "abc",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
