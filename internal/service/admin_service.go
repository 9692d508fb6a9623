package service

import (
	"context"
	"errors"

	"github.com/RishavSingh2203/freaky-fit/internal/dto"
	"github.com/RishavSingh2203/freaky-fit/internal/entity"
	"github.com/RishavSingh2203/freaky-fit/internal/pkg/logger"
	"github.com/RishavSingh2203/freaky-fit/internal/repository/specification"
	"github.com/RishavSingh2203/freaky-fit/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrTrainerNotFound = errors.New("trainer not found")
	ErrInvalidRole     = errors.New("invalid role")
)

type IAdminService interface {
	ListTrainers(ctx context.Context) ([]dto.UserDTO, error)
	CreateTrainer(ctx context.Context, req *dto.CreateTrainerRequest) (*dto.UserDTO, error)
	UpdateTrainer(ctx context.Context, id uuid.UUID, req *dto.UpdateTrainerRequest) (*dto.UserDTO, error)
	UpdateTrainerInfo(ctx context.Context, id uuid.UUID, req *dto.UpdateTrainerInfoRequest) (*dto.UserDTO, error)
	DeleteTrainer(ctx context.Context, id uuid.UUID) error

	ListUsers(ctx context.Context, limit, offset int) ([]dto.UserDTO, error)
	UpdateUserRole(ctx context.Context, id uuid.UUID, role entity.UserRole) (*dto.UserDTO, error)
}

type AdminService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) IAdminService {
	return &AdminService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (s *AdminService) ListTrainers(ctx context.Context) ([]dto.UserDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	trainers, err := uow.UserRepository().FindAll(ctx,
		specification.ByRole{Role: entity.UserRoleTrainer},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return dto.NewUserDTOs(trainers), nil
}

func (s *AdminService) CreateTrainer(ctx context.Context, req *dto.CreateTrainerRequest) (*dto.UserDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	trainer := &entity.User{
		Email:          req.Email,
		PasswordHash:   &hashStr,
		FullName:       req.FullName,
		Role:           entity.UserRoleTrainer,
		Specialization: &req.Specialization,
		HourlyRate:     &req.HourlyRate,
		Verified:       true,
	}
	if req.Bio != "" {
		trainer.Bio = &req.Bio
	}

	if err := uow.UserRepository().Create(ctx, trainer); err != nil {
		return nil, err
	}

	s.logger.Info("admin", "trainer created", map[string]interface{}{
		"trainer": trainer.Id.String(),
	})

	res := dto.NewUserDTO(trainer)
	return &res, nil
}

func (s *AdminService) UpdateTrainer(ctx context.Context, id uuid.UUID, req *dto.UpdateTrainerRequest) (*dto.UserDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	trainer, err := s.findTrainer(ctx, uow, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		trainer.FullName = *req.FullName
	}
	if req.Specialization != nil {
		trainer.Specialization = req.Specialization
	}
	if req.HourlyRate != nil {
		trainer.HourlyRate = req.HourlyRate
	}
	if req.Bio != nil {
		trainer.Bio = req.Bio
	}

	if err := uow.UserRepository().Update(ctx, trainer); err != nil {
		return nil, err
	}

	res := dto.NewUserDTO(trainer)
	return &res, nil
}

func (s *AdminService) UpdateTrainerInfo(ctx context.Context, id uuid.UUID, req *dto.UpdateTrainerInfoRequest) (*dto.UserDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	trainer, err := s.findTrainer(ctx, uow, id)
	if err != nil {
		return nil, err
	}

	if req.Specialization != nil {
		trainer.Specialization = req.Specialization
	}
	if req.HourlyRate != nil {
		trainer.HourlyRate = req.HourlyRate
	}
	if req.Bio != nil {
		trainer.Bio = req.Bio
	}
	if req.Verified != nil {
		trainer.Verified = *req.Verified
	}

	if err := uow.UserRepository().Update(ctx, trainer); err != nil {
		return nil, err
	}

	res := dto.NewUserDTO(trainer)
	return &res, nil
}

func (s *AdminService) DeleteTrainer(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findTrainer(ctx, uow, id); err != nil {
		return err
	}

	if err := uow.UserRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("admin", "trainer deleted", map[string]interface{}{
		"trainer": id.String(),
	})
	return nil
}

func (s *AdminService) ListUsers(ctx context.Context, limit, offset int) ([]dto.UserDTO, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	users, err := uow.UserRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}
	return dto.NewUserDTOs(users), nil
}

func (s *AdminService) UpdateUserRole(ctx context.Context, id uuid.UUID, role entity.UserRole) (*dto.UserDTO, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := uow.UserRepository().UpdateRole(ctx, id, role); err != nil {
		return nil, err
	}
	user.Role = role

	s.logger.Info("admin", "user role updated", map[string]interface{}{
		"user": id.String(),
		"role": string(role),
	})

	res := dto.NewUserDTO(user)
	return &res, nil
}

func (s *AdminService) findTrainer(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.User, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsTrainer() {
		return nil, ErrTrainerNotFound
	}
	return user, nil
}
