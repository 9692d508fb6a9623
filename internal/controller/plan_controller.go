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

type IPlanController interface {
	RegisterRoutes(router fiber.Router)
}

type PlanController struct {
	planService         service.IPlanService
	subscriptionService service.ISubscriptionService
	logger              logger.ILogger
}

func NewPlanController(
	planService service.IPlanService,
	subscriptionService service.ISubscriptionService,
	logger logger.ILogger,
) IPlanController {
	return &PlanController{
		planService:         planService,
		subscriptionService: subscriptionService,
		logger:              logger,
	}
}

func (c *PlanController) RegisterRoutes(router fiber.Router) {
	plans := router.Group("/plans", serverutils.JwtMiddleware)
	plans.Post("/workout", c.requireQuota(entity.PlanKindWorkout), c.GenerateWorkoutPlan)
	plans.Post("/meal", c.requireQuota(entity.PlanKindMeal), c.GenerateMealPlan)
}

// requireQuota consumes one unit of generation quota before the handler
// runs. Free users past the cap get a 403 with subscriptionRequired so the
// client can route them to the upgrade screen.
func (c *PlanController) requireQuota(kind entity.PlanKind) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userId, err := currentUserId(ctx)
		if err != nil {
			return err
		}

		if _, err := c.subscriptionService.Consume(ctx.Context(), userId, kind); err != nil {
			var quotaErr *dto.QuotaExceededError
			if errors.As(err, &quotaErr) {
				return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"success":              false,
					"message":              quotaErr.Error(),
					"subscriptionRequired": true,
				})
			}
			c.logger.Error("plan", "quota check failed", map[string]interface{}{
				"user":  userId.String(),
				"error": err.Error(),
			})
			return fiber.NewError(fiber.StatusInternalServerError, "Server error")
		}
		return ctx.Next()
	}
}

func (c *PlanController) GenerateWorkoutPlan(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	req := new(dto.GeneratePlanRequest)
	if err := serverutils.ValidateRequest(ctx, req); err != nil {
		return err
	}

	res := c.planService.GenerateWorkoutPlan(ctx.Context(), userId, req)
	return ctx.JSON(res)
}

func (c *PlanController) GenerateMealPlan(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	req := new(dto.GeneratePlanRequest)
	if err := serverutils.ValidateRequest(ctx, req); err != nil {
		return err
	}

	res := c.planService.GenerateMealPlan(ctx.Context(), userId, req)
	return ctx.JSON(res)
}
