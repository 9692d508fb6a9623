package controller

import (
	"errors"

	"github.com/RishavSingh2203/freaky-fit/internal/pkg/serverutils"
	"github.com/RishavSingh2203/freaky-fit/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITrainerController interface {
	RegisterRoutes(router fiber.Router)
}

type TrainerController struct {
	trainerService service.ITrainerService
}

func NewTrainerController(trainerService service.ITrainerService) ITrainerController {
	return &TrainerController{trainerService: trainerService}
}

func (c *TrainerController) RegisterRoutes(router fiber.Router) {
	// Trainer discovery is public so the catalog renders before sign-up.
	trainers := router.Group("/trainers")
	trainers.Get("/", c.ListTrainers)
	trainers.Get("/:id", c.GetTrainer)
}

func (c *TrainerController) ListTrainers(ctx *fiber.Ctx) error {
	trainers, err := c.trainerService.ListVerifiedTrainers(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Trainers retrieved", trainers))
}

func (c *TrainerController) GetTrainer(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	trainer, err := c.trainerService.GetTrainer(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTrainerNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Trainer not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Trainer retrieved", trainer))
}
