package contract

import (
	"context"
	"time"

	"github.com/RishavSingh2203/freaky-fit/internal/entity"
	"github.com/RishavSingh2203/freaky-fit/internal/repository/specification"

	"github.com/google/uuid"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *entity.Subscription) error
	Update(ctx context.Context, subscription *entity.Subscription) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscription, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscription, error)

	// IncrementUsage atomically consumes one unit of quota for the given
	// plan kind. It reports false without mutating anything when the
	// counter already reached limit. Conditional single-statement UPDATE,
	// so concurrent requests from the same user cannot both pass the cap.
	IncrementUsage(ctx context.Context, id uuid.UUID, kind entity.PlanKind, limit int) (bool, error)

	// MarkPremium flips the subscription to the PREMIUM tier and extends
	// its period end. Used by the payment webhook on settlement.
	MarkPremium(ctx context.Context, id uuid.UUID, periodEnd time.Time) error
}
