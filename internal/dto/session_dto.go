package dto

import (
	"time"

	"github.com/RishavSingh2203/freaky-fit/internal/entity"

	"github.com/google/uuid"
)

type BookSessionRequest struct {
	TrainerId       uuid.UUID `json:"trainerId" validate:"required"`
	ScheduledAt     time.Time `json:"scheduledAt" validate:"required"`
	DurationMinutes int       `json:"durationMinutes" validate:"required,min=15,max=240"`
	Notes           *string   `json:"notes"`
}

type UpdateSessionStatusRequest struct {
	Status      string  `json:"status" validate:"required,oneof=ACCEPTED REJECTED COMPLETED"`
	MeetingLink *string `json:"meetingLink"`
}

type SessionResponse struct {
	Id              uuid.UUID `json:"id"`
	TrainerId       uuid.UUID `json:"trainerId"`
	UserId          uuid.UUID `json:"userId"`
	ScheduledAt     time.Time `json:"scheduledAt"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	MeetingLink     *string   `json:"meetingLink,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func NewSessionResponse(s *entity.TrainingSession) SessionResponse {
	return SessionResponse{
		Id:              s.Id,
		TrainerId:       s.TrainerId,
		UserId:          s.UserId,
		ScheduledAt:     s.ScheduledAt,
		DurationMinutes: s.DurationMinutes,
		Status:          string(s.Status),
		MeetingLink:     s.MeetingLink,
		Notes:           s.Notes,
		CreatedAt:       s.CreatedAt,
	}
}

func NewSessionResponses(sessions []*entity.TrainingSession) []SessionResponse {
	res := make([]SessionResponse, len(sessions))
	for i, s := range sessions {
		res[i] = NewSessionResponse(s)
	}
	return res
}
