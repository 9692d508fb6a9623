package service

import (
	"context"
	"time"

	"github.com/RishavSingh2203/freaky-fit/internal/dto"
	"github.com/RishavSingh2203/freaky-fit/internal/entity"
	"github.com/RishavSingh2203/freaky-fit/internal/pkg/logger"
	"github.com/RishavSingh2203/freaky-fit/internal/repository/specification"
	"github.com/RishavSingh2203/freaky-fit/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ISubscriptionService interface {
	// Consume resolves the user's active subscription, provisioning a
	// FREE one when none exists, and spends one unit of quota for the
	// given plan kind. Returns *dto.QuotaExceededError when the free
	// tier cap is already reached.
	Consume(ctx context.Context, userId uuid.UUID, kind entity.PlanKind) (*entity.Subscription, error)

	Status(ctx context.Context, userId uuid.UUID) (*dto.SubscriptionStatusResponse, error)
}

type SubscriptionService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewSubscriptionService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) ISubscriptionService {
	return &SubscriptionService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (s *SubscriptionService) Consume(ctx context.Context, userId uuid.UUID, kind entity.PlanKind) (*entity.Subscription, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := s.resolve(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	// Premium never decrements anything.
	if sub.Plan == entity.PlanTierPremium {
		return sub, nil
	}

	ok, err := uow.SubscriptionRepository().IncrementUsage(ctx, sub.Id, kind, entity.FreeTierQuota)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.logger.Info("subscription", "free quota exhausted", map[string]interface{}{
			"user": userId.String(),
			"kind": string(kind),
		})
		return nil, &dto.QuotaExceededError{Kind: string(kind)}
	}

	// Refresh counters after the conditional increment.
	sub, err = uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: sub.Id})
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *SubscriptionService) Status(ctx context.Context, userId uuid.UUID) (*dto.SubscriptionStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := s.resolve(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	return dto.NewSubscriptionStatusResponse(sub), nil
}

// resolve finds the active subscription or lazily provisions a FREE one.
func (s *SubscriptionService) resolve(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*entity.Subscription, error) {
	now := time.Now()

	sub, err := uow.SubscriptionRepository().FindOne(ctx, specification.ActiveForUser{UserID: userId, Now: now})
	if err != nil {
		return nil, err
	}
	if sub != nil {
		return sub, nil
	}

	sub = &entity.Subscription{
		UserId:    userId,
		Plan:      entity.PlanTierFree,
		Active:    true,
		StartDate: now,
		EndDate:   now.AddDate(1, 0, 0),
	}
	if err := uow.SubscriptionRepository().Create(ctx, sub); err != nil {
		// Two first requests can race past the lookup; the partial unique
		// index on (user_id) where active fails the loser's insert, so
		// re-read the winner's record.
		existing, findErr := uow.SubscriptionRepository().FindOne(ctx, specification.ActiveForUser{UserID: userId, Now: now})
		if findErr == nil && existing != nil {
			return existing, nil
		}
		return nil, err
	}

	s.logger.Info("subscription", "provisioned free subscription", map[string]interface{}{
		"user": userId.String(),
	})
	return sub, nil
}
