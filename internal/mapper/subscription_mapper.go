package mapper

import (
	"github.com/RishavSingh2203/freaky-fit/internal/entity"
	"github.com/RishavSingh2203/freaky-fit/internal/model"
)

type SubscriptionMapper struct{}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{}
}

func (m *SubscriptionMapper) ToEntity(s *model.Subscription) *entity.Subscription {
	if s == nil {
		return nil
	}
	return &entity.Subscription{
		Id:                    s.Id,
		UserId:                s.UserId,
		Plan:                  entity.PlanTier(s.Plan),
		Active:                s.Active,
		StartDate:             s.StartDate,
		EndDate:               s.EndDate,
		WorkoutPlansGenerated: s.WorkoutPlansGenerated,
		MealPlansGenerated:    s.MealPlansGenerated,
		MidtransOrderId:       s.MidtransOrderId,
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}

func (m *SubscriptionMapper) ToModel(s *entity.Subscription) *model.Subscription {
	if s == nil {
		return nil
	}
	return &model.Subscription{
		Id:                    s.Id,
		UserId:                s.UserId,
		Plan:                  string(s.Plan),
		Active:                s.Active,
		StartDate:             s.StartDate,
		EndDate:               s.EndDate,
		WorkoutPlansGenerated: s.WorkoutPlansGenerated,
		MealPlansGenerated:    s.MealPlansGenerated,
		MidtransOrderId:       s.MidtransOrderId,
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}
