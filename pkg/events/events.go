package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventUserRegistered      = "USER_REGISTERED"
	EventPlanGenerated       = "PLAN_GENERATED"
	EventSubscriptionUpgrade = "SUBSCRIPTION_UPGRADED"
	EventSessionBooked       = "SESSION_BOOKED"
	EventSessionStatusChange = "SESSION_STATUS_CHANGED"
)

// Event is the contract every published domain event satisfies.
type Event interface {
	EventName() string
	OccurredAt() time.Time
}

type BaseEvent struct {
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
	UserId    uuid.UUID `json:"userId"`
	Message   string    `json:"message"`
}

func (e BaseEvent) EventName() string     { return e.Name }
func (e BaseEvent) OccurredAt() time.Time { return e.Timestamp }

func newBaseEvent(name string, userId uuid.UUID, message string) BaseEvent {
	return BaseEvent{
		Name:      name,
		Timestamp: time.Now(),
		UserId:    userId,
		Message:   message,
	}
}

func NewUserRegistered(userId uuid.UUID, fullName string) BaseEvent {
	return newBaseEvent(EventUserRegistered, userId, "Welcome aboard, "+fullName+"! Your account is ready.")
}

func NewPlanGenerated(userId uuid.UUID, kind string) BaseEvent {
	return newBaseEvent(EventPlanGenerated, userId, "Your new "+kind+" plan is ready.")
}

func NewSubscriptionUpgraded(userId uuid.UUID) BaseEvent {
	return newBaseEvent(EventSubscriptionUpgrade, userId, "Your premium subscription is now active. Enjoy unlimited plans!")
}

func NewSessionBooked(trainerId uuid.UUID, userName string) BaseEvent {
	return newBaseEvent(EventSessionBooked, trainerId, userName+" requested a training session.")
}

func NewSessionStatusChanged(userId uuid.UUID, status string) BaseEvent {
	return newBaseEvent(EventSessionStatusChange, userId, "Your training session is now "+status+".")
}
