package controller

import (
	"errors"

	"github.com/RishavSingh2203/freaky-fit/internal/dto"
	"github.com/RishavSingh2203/freaky-fit/internal/pkg/serverutils"
	"github.com/RishavSingh2203/freaky-fit/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPaymentController interface {
	RegisterRoutes(router fiber.Router)
}

type PaymentController struct {
	paymentService      service.IPaymentService
	subscriptionService service.ISubscriptionService
	userService         service.IUserService
}

func NewPaymentController(
	paymentService service.IPaymentService,
	subscriptionService service.ISubscriptionService,
	userService service.IUserService,
) IPaymentController {
	return &PaymentController{
		paymentService:      paymentService,
		subscriptionService: subscriptionService,
		userService:         userService,
	}
}

func (c *PaymentController) RegisterRoutes(router fiber.Router) {
	subs := router.Group("/subscriptions")
	subs.Get("/me", serverutils.JwtMiddleware, c.Status)
	subs.Post("/upgrade", serverutils.JwtMiddleware, c.Upgrade)

	// Midtrans calls this server to server, no JWT involved.
	subs.Post("/webhook/midtrans", c.Webhook)
}

func (c *PaymentController) Status(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	status, err := c.subscriptionService.Status(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Subscription retrieved", status))
}

func (c *PaymentController) Upgrade(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	profile, err := c.userService.GetProfile(ctx.Context(), userId)
	if err != nil {
		return err
	}

	// Status provisions the FREE subscription if the user never had one,
	// so the upgrade path always has a record to pin the order on.
	if _, err := c.subscriptionService.Status(ctx.Context(), userId); err != nil {
		return err
	}

	res, err := c.paymentService.CreateUpgrade(ctx.Context(), userId, profile.Email, profile.FullName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyPremium):
			return fiber.NewError(fiber.StatusConflict, "Subscription is already premium")
		case errors.Is(err, service.ErrSubNotFound):
			return fiber.NewError(fiber.StatusNotFound, "No active subscription")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Payment initiated", res))
}

func (c *PaymentController) Webhook(ctx *fiber.Ctx) error {
	req := new(dto.MidtransWebhookRequest)
	if err := ctx.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid notification body")
	}

	if err := c.paymentService.HandleWebhook(ctx.Context(), req); err != nil {
		switch {
		case errors.Is(err, service.ErrBadSignature):
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid signature")
		case errors.Is(err, service.ErrOrderNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Order not found")
		}
		return err
	}

	return ctx.JSON(fiber.Map{"status": "ok"})
}
