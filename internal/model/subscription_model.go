package model

import (
	"time"

	"github.com/google/uuid"
)

type Subscription struct {
	Id     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	// At most one active subscription per user, enforced by a partial
	// unique index so concurrent lazy provisioning cannot double-insert.
	UserId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_subscriptions_user_active,where:active"`
	Plan   string    `gorm:"type:varchar(20);not null;default:'FREE'"`
	Active bool      `gorm:"default:true;index"`

	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`

	WorkoutPlansGenerated int `gorm:"default:0"`
	MealPlansGenerated    int `gorm:"default:0"`

	MidtransOrderId *string `gorm:"type:varchar(255);index"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
