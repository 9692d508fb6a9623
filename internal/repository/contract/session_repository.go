package contract

import (
	"context"

	"github.com/RishavSingh2203/freaky-fit/internal/entity"
	"github.com/RishavSingh2203/freaky-fit/internal/repository/specification"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.TrainingSession) error
	Update(ctx context.Context, session *entity.TrainingSession) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TrainingSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TrainingSession, error)
}
