package mapper

import (
	"github.com/RishavSingh2203/freaky-fit/internal/entity"
	"github.com/RishavSingh2203/freaky-fit/internal/model"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) ToEntity(s *model.TrainingSession) *entity.TrainingSession {
	if s == nil {
		return nil
	}
	return &entity.TrainingSession{
		Id:              s.Id,
		TrainerId:       s.TrainerId,
		UserId:          s.UserId,
		ScheduledAt:     s.ScheduledAt,
		DurationMinutes: s.DurationMinutes,
		Status:          entity.SessionStatus(s.Status),
		MeetingLink:     s.MeetingLink,
		Notes:           s.Notes,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func (m *SessionMapper) ToModel(s *entity.TrainingSession) *model.TrainingSession {
	if s == nil {
		return nil
	}
	return &model.TrainingSession{
		Id:              s.Id,
		TrainerId:       s.TrainerId,
		UserId:          s.UserId,
		ScheduledAt:     s.ScheduledAt,
		DurationMinutes: s.DurationMinutes,
		Status:          string(s.Status),
		MeetingLink:     s.MeetingLink,
		Notes:           s.Notes,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func (m *SessionMapper) ToEntities(sessions []*model.TrainingSession) []*entity.TrainingSession {
	entities := make([]*entity.TrainingSession, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
