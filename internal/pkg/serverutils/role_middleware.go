package serverutils

import (
	"github.com/RishavSingh2203/freaky-fit/internal/entity"

	"github.com/gofiber/fiber/v2"
)

// RequireRoles guards a route group behind one or more roles. It must run
// after JwtMiddleware, which stores the token's role claim in Locals.
func RequireRoles(roles ...entity.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		claim, ok := ctx.Locals("role").(string)
		if !ok {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Forbidden"})
		}
		for _, role := range roles {
			if claim == string(role) {
				return ctx.Next()
			}
		}
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Forbidden"})
	}
}
