package service

import (
	"context"
	"errors"

	"github.com/RishavSingh2203/freaky-fit/internal/dto"
	"github.com/RishavSingh2203/freaky-fit/internal/repository/specification"
	"github.com/RishavSingh2203/freaky-fit/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrNotificationNotFound = errors.New("notification not found")
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserDTO, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserDTO, error)
	ListNotifications(ctx context.Context, userId uuid.UUID) ([]dto.NotificationResponse, error)
	MarkNotificationRead(ctx context.Context, userId, notificationId uuid.UUID) error
}

type UserService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &UserService{uowFactory: uowFactory}
}

func (s *UserService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	res := dto.NewUserDTO(user)
	return &res, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.FullName = req.FullName
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	res := dto.NewUserDTO(user)
	return &res, nil
}

func (s *UserService) ListNotifications(ctx context.Context, userId uuid.UUID) ([]dto.NotificationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notifications, err := uow.NotificationRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	return dto.NewNotificationResponses(notifications), nil
}

func (s *UserService) MarkNotificationRead(ctx context.Context, userId, notificationId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notifications, err := uow.NotificationRepository().FindAll(ctx,
		specification.ByID{ID: notificationId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if len(notifications) == 0 {
		return ErrNotificationNotFound
	}

	return uow.NotificationRepository().MarkRead(ctx, notificationId)
}
