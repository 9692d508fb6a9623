package entity

import (
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	SessionStatusPending   SessionStatus = "PENDING"
	SessionStatusAccepted  SessionStatus = "ACCEPTED"
	SessionStatusRejected  SessionStatus = "REJECTED"
	SessionStatusCompleted SessionStatus = "COMPLETED"
)

// CanTransitionTo enforces the session lifecycle:
// PENDING -> ACCEPTED | REJECTED, ACCEPTED -> COMPLETED.
func (s SessionStatus) CanTransitionTo(next SessionStatus) bool {
	switch s {
	case SessionStatusPending:
		return next == SessionStatusAccepted || next == SessionStatusRejected
	case SessionStatusAccepted:
		return next == SessionStatusCompleted
	}
	return false
}

type TrainingSession struct {
	Id        uuid.UUID
	TrainerId uuid.UUID
	UserId    uuid.UUID

	ScheduledAt     time.Time
	DurationMinutes int
	Status          SessionStatus

	MeetingLink *string
	Notes       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
