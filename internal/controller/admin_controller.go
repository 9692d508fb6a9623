package controller

import (
	"errors"

	"github.com/RishavSingh2203/freaky-fit/internal/dto"
	"github.com/RishavSingh2203/freaky-fit/internal/entity"
	"github.com/RishavSingh2203/freaky-fit/internal/pkg/logger"
	"github.com/RishavSingh2203/freaky-fit/internal/pkg/serverutils"
	"github.com/RishavSingh2203/freaky-fit/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(router fiber.Router)
}

// AdminController serves the management console. Its error bodies use the
// console's bare {"error": ...} contract rather than the public envelope.
type AdminController struct {
	adminService service.IAdminService
	logger       logger.ILogger
}

func NewAdminController(adminService service.IAdminService, logger logger.ILogger) IAdminController {
	return &AdminController{
		adminService: adminService,
		logger:       logger,
	}
}

func (c *AdminController) RegisterRoutes(router fiber.Router) {
	admin := router.Group("/admin", serverutils.JwtMiddleware, serverutils.RequireRoles(entity.UserRoleAdmin))

	admin.Get("/trainers", c.ListTrainers)
	admin.Post("/trainers", c.CreateTrainer)
	admin.Patch("/trainers/:id", c.UpdateTrainer)
	admin.Patch("/trainers/:id/info", c.UpdateTrainerInfo)
	admin.Delete("/trainers/:id", c.DeleteTrainer)

	admin.Get("/users", c.ListUsers)
	admin.Patch("/users/:id/role", c.UpdateUserRole)
}

func (c *AdminController) ListTrainers(ctx *fiber.Ctx) error {
	trainers, err := c.adminService.ListTrainers(ctx.Context())
	if err != nil {
		return c.serverError(ctx, "list trainers", err)
	}
	return ctx.JSON(trainers)
}

func (c *AdminController) CreateTrainer(ctx *fiber.Ctx) error {
	req := new(dto.CreateTrainerRequest)
	if err := serverutils.ValidateRequest(ctx, req); err != nil {
		return badRequest(ctx, err)
	}

	trainer, err := c.adminService.CreateTrainer(ctx.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email already registered"})
		}
		return c.serverError(ctx, "create trainer", err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(trainer)
}

func (c *AdminController) UpdateTrainer(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	req := new(dto.UpdateTrainerRequest)
	if err := serverutils.ValidateRequest(ctx, req); err != nil {
		return badRequest(ctx, err)
	}

	trainer, err := c.adminService.UpdateTrainer(ctx.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrTrainerNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trainer not found"})
		}
		return c.serverError(ctx, "update trainer", err)
	}

	return ctx.JSON(trainer)
}

func (c *AdminController) UpdateTrainerInfo(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	req := new(dto.UpdateTrainerInfoRequest)
	if err := serverutils.ValidateRequest(ctx, req); err != nil {
		return badRequest(ctx, err)
	}

	trainer, err := c.adminService.UpdateTrainerInfo(ctx.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrTrainerNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trainer not found"})
		}
		return c.serverError(ctx, "update trainer info", err)
	}

	return ctx.JSON(trainer)
}

func (c *AdminController) DeleteTrainer(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := c.adminService.DeleteTrainer(ctx.Context(), id); err != nil {
		if errors.Is(err, service.ErrTrainerNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trainer not found"})
		}
		return c.serverError(ctx, "delete trainer", err)
	}

	return ctx.JSON(fiber.Map{"message": "Trainer deleted"})
}

func (c *AdminController) ListUsers(ctx *fiber.Ctx) error {
	users, err := c.adminService.ListUsers(ctx.Context(), ctx.QueryInt("limit", 50), ctx.QueryInt("offset", 0))
	if err != nil {
		return c.serverError(ctx, "list users", err)
	}
	return ctx.JSON(users)
}

func (c *AdminController) UpdateUserRole(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	req := new(dto.UpdateUserRoleRequest)
	if err := serverutils.ValidateRequest(ctx, req); err != nil {
		return badRequest(ctx, err)
	}

	user, err := c.adminService.UpdateUserRole(ctx.Context(), id, entity.UserRole(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		case errors.Is(err, service.ErrInvalidRole):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid role"})
		}
		return c.serverError(ctx, "update user role", err)
	}

	return ctx.JSON(user)
}

func (c *AdminController) serverError(ctx *fiber.Ctx, op string, err error) error {
	c.logger.Error("admin", op+" failed", map[string]interface{}{
		"error": err.Error(),
	})
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
}

func badRequest(ctx *fiber.Ctx, err error) error {
	msg := "Invalid request"
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		msg = fiberErr.Message
	}
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
