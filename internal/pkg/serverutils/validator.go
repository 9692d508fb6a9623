package serverutils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest parses the JSON body into req and runs struct validation,
// turning the first violation into a 400 with a readable message.
func ValidateRequest(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := validate.Struct(req); err != nil {
		if violations, ok := err.(validator.ValidationErrors); ok && len(violations) > 0 {
			return fiber.NewError(fiber.StatusBadRequest, violationMessage(violations[0]))
		}
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return nil
}

func violationMessage(v validator.FieldError) string {
	switch v.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", v.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", v.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", v.Field(), v.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", v.Field(), v.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", v.Field(), v.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", v.Field(), v.Param())
	default:
		return fmt.Sprintf("%s is invalid", v.Field())
	}
}
