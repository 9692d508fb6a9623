package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/RishavSingh2203/freaky-fit/internal/dto"
	"github.com/RishavSingh2203/freaky-fit/internal/entity"
	"github.com/RishavSingh2203/freaky-fit/internal/pkg/logger"
	"github.com/RishavSingh2203/freaky-fit/internal/pkg/mailer"
	"github.com/RishavSingh2203/freaky-fit/internal/repository/specification"
	"github.com/RishavSingh2203/freaky-fit/internal/repository/unitofwork"
	"github.com/RishavSingh2203/freaky-fit/pkg/events"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrNotSessionOwner    = errors.New("session belongs to another trainer")
	ErrBadTransition      = errors.New("invalid status transition")
	ErrNotATrainer        = errors.New("selected user is not a trainer")
	ErrTrainerNotVerified = errors.New("trainer is not accepting sessions")
)

type ISessionService interface {
	Book(ctx context.Context, userId uuid.UUID, req *dto.BookSessionRequest) (*dto.SessionResponse, error)
	ListForUser(ctx context.Context, userId uuid.UUID) ([]dto.SessionResponse, error)
	ListForTrainer(ctx context.Context, trainerId uuid.UUID, status string) ([]dto.SessionResponse, error)
	UpdateStatus(ctx context.Context, trainerId, sessionId uuid.UUID, req *dto.UpdateSessionStatusRequest) (*dto.SessionResponse, error)
}

type SessionService struct {
	uowFactory  unitofwork.RepositoryFactory
	publisher   IPublisherService
	mailer      mailer.IEmailService
	logger      logger.ILogger
	eventsTopic string
}

func NewSessionService(
	uowFactory unitofwork.RepositoryFactory,
	publisher IPublisherService,
	emailService mailer.IEmailService,
	logger logger.ILogger,
	eventsTopic string,
) ISessionService {
	return &SessionService{
		uowFactory:  uowFactory,
		publisher:   publisher,
		mailer:      emailService,
		logger:      logger,
		eventsTopic: eventsTopic,
	}
}

func (s *SessionService) Book(ctx context.Context, userId uuid.UUID, req *dto.BookSessionRequest) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	trainer, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: req.TrainerId})
	if err != nil {
		return nil, err
	}
	if trainer == nil || !trainer.IsTrainer() {
		return nil, ErrNotATrainer
	}
	if !trainer.Verified {
		return nil, ErrTrainerNotVerified
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	session := &entity.TrainingSession{
		TrainerId:       req.TrainerId,
		UserId:          userId,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: req.DurationMinutes,
		Status:          entity.SessionStatusPending,
		Notes:           req.Notes,
	}

	if err := uow.SessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(s.eventsTopic, events.NewSessionBooked(trainer.Id, user.FullName)); err != nil {
		s.logger.Warn("session", "failed to publish booking event", map[string]interface{}{
			"session": session.Id.String(),
			"error":   err.Error(),
		})
	}

	res := dto.NewSessionResponse(session)
	return &res, nil
}

func (s *SessionService) ListForUser(ctx context.Context, userId uuid.UUID) ([]dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.SessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "scheduled_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return dto.NewSessionResponses(sessions), nil
}

func (s *SessionService) ListForTrainer(ctx context.Context, trainerId uuid.UUID, status string) ([]dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.ByTrainer{TrainerID: trainerId},
		specification.OrderBy{Field: "scheduled_at", Desc: true},
	}
	if status != "" {
		specs = append(specs, specification.ByStatus{Status: status})
	}

	sessions, err := uow.SessionRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	return dto.NewSessionResponses(sessions), nil
}

func (s *SessionService) UpdateStatus(ctx context.Context, trainerId, sessionId uuid.UUID, req *dto.UpdateSessionStatusRequest) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if session.TrainerId != trainerId {
		return nil, ErrNotSessionOwner
	}

	next := entity.SessionStatus(req.Status)
	if !session.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrBadTransition, session.Status, next)
	}

	session.Status = next
	if req.MeetingLink != nil {
		session.MeetingLink = req.MeetingLink
	}

	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(s.eventsTopic, events.NewSessionStatusChanged(session.UserId, string(next))); err != nil {
		s.logger.Warn("session", "failed to publish status event", map[string]interface{}{
			"session": session.Id.String(),
			"error":   err.Error(),
		})
	}

	// Status mail is best effort and must not block the response.
	if user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: session.UserId}); err == nil && user != nil {
		go func(email, status string) {
			if err := s.mailer.SendSessionUpdate(email, status); err != nil {
				s.logger.Warn("session", "failed to send status email", map[string]interface{}{
					"email": email,
					"error": err.Error(),
				})
			}
		}(user.Email, string(next))
	}

	res := dto.NewSessionResponse(session)
	return &res, nil
}
