package service

import (
	"context"

	"github.com/RishavSingh2203/freaky-fit/internal/dto"
	"github.com/RishavSingh2203/freaky-fit/internal/repository/specification"
	"github.com/RishavSingh2203/freaky-fit/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITrainerService interface {
	ListVerifiedTrainers(ctx context.Context) ([]dto.UserDTO, error)
	GetTrainer(ctx context.Context, id uuid.UUID) (*dto.UserDTO, error)
}

type TrainerService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTrainerService(uowFactory unitofwork.RepositoryFactory) ITrainerService {
	return &TrainerService{uowFactory: uowFactory}
}

func (s *TrainerService) ListVerifiedTrainers(ctx context.Context) ([]dto.UserDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	trainers, err := uow.UserRepository().FindAll(ctx,
		specification.VerifiedTrainers{},
		specification.OrderBy{Field: "full_name", Desc: false},
	)
	if err != nil {
		return nil, err
	}
	return dto.NewUserDTOs(trainers), nil
}

func (s *TrainerService) GetTrainer(ctx context.Context, id uuid.UUID) (*dto.UserDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	trainer, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if trainer == nil || !trainer.IsTrainer() {
		return nil, ErrTrainerNotFound
	}

	res := dto.NewUserDTO(trainer)
	return &res, nil
}
