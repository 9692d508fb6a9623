package controller

import (
	"errors"

	"github.com/RishavSingh2203/freaky-fit/internal/dto"
	"github.com/RishavSingh2203/freaky-fit/internal/entity"
	"github.com/RishavSingh2203/freaky-fit/internal/pkg/serverutils"
	"github.com/RishavSingh2203/freaky-fit/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(router fiber.Router)
}

type SessionController struct {
	sessionService service.ISessionService
}

func NewSessionController(sessionService service.ISessionService) ISessionController {
	return &SessionController{sessionService: sessionService}
}

func (c *SessionController) RegisterRoutes(router fiber.Router) {
	sessions := router.Group("/sessions", serverutils.JwtMiddleware)
	sessions.Post("/", serverutils.RequireRoles(entity.UserRoleUser), c.Book)
	sessions.Get("/", c.List)
	sessions.Patch("/:id/status", serverutils.RequireRoles(entity.UserRoleTrainer), c.UpdateStatus)
}

func (c *SessionController) Book(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	req := new(dto.BookSessionRequest)
	if err := serverutils.ValidateRequest(ctx, req); err != nil {
		return err
	}

	session, err := c.sessionService.Book(ctx.Context(), userId, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotATrainer):
			return fiber.NewError(fiber.StatusBadRequest, "Selected user is not a trainer")
		case errors.Is(err, service.ErrTrainerNotVerified):
			return fiber.NewError(fiber.StatusBadRequest, "Trainer is not accepting sessions")
		case errors.Is(err, service.ErrUserNotFound):
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Session requested", session))
}

// List returns the caller's sessions: booked ones for regular users,
// incoming ones for trainers.
func (c *SessionController) List(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	role, _ := ctx.Locals("role").(string)

	var sessions []dto.SessionResponse
	if role == string(entity.UserRoleTrainer) {
		sessions, err = c.sessionService.ListForTrainer(ctx.Context(), userId, ctx.Query("status"))
	} else {
		sessions, err = c.sessionService.ListForUser(ctx.Context(), userId)
	}
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Sessions retrieved", sessions))
}

func (c *SessionController) UpdateStatus(ctx *fiber.Ctx) error {
	trainerId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	sessionId, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	req := new(dto.UpdateSessionStatusRequest)
	if err := serverutils.ValidateRequest(ctx, req); err != nil {
		return err
	}

	session, err := c.sessionService.UpdateStatus(ctx.Context(), trainerId, sessionId, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Session not found")
		case errors.Is(err, service.ErrNotSessionOwner):
			return fiber.NewError(fiber.StatusForbidden, "Session belongs to another trainer")
		case errors.Is(err, service.ErrBadTransition):
			return fiber.NewError(fiber.StatusBadRequest, "Invalid status transition")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session updated", session))
}
