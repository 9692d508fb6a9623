package model

import (
	"time"

	"github.com/google/uuid"
)

type TrainingSession struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TrainerId uuid.UUID `gorm:"type:uuid;not null;index"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`

	ScheduledAt     time.Time `gorm:"not null"`
	DurationMinutes int       `gorm:"not null"`
	Status          string    `gorm:"type:varchar(20);not null;default:'PENDING';index"`

	MeetingLink *string `gorm:"type:varchar(512)"`
	Notes       *string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (TrainingSession) TableName() string {
	return "training_sessions"
}
