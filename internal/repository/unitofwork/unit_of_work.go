package unitofwork

import (
	"context"

	"github.com/RishavSingh2203/freaky-fit/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	SubscriptionRepository() contract.SubscriptionRepository
	SessionRepository() contract.SessionRepository
	NotificationRepository() contract.NotificationRepository
}
