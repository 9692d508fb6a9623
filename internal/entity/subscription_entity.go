package entity

import (
	"time"

	"github.com/google/uuid"
)

type PlanTier string
type PlanKind string

const (
	PlanTierFree    PlanTier = "FREE"
	PlanTierPremium PlanTier = "PREMIUM"

	PlanKindWorkout PlanKind = "workout"
	PlanKindMeal    PlanKind = "meal"
)

// FreeTierQuota is the number of generations a FREE subscription may consume
// per plan kind for the life of the record. Counters never reset.
const FreeTierQuota = 2

type Subscription struct {
	Id     uuid.UUID
	UserId uuid.UUID
	Plan   PlanTier
	Active bool

	StartDate time.Time
	EndDate   time.Time

	WorkoutPlansGenerated int
	MealPlansGenerated    int

	MidtransOrderId *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// GeneratedCount returns the consumed counter for the given plan kind.
func (s *Subscription) GeneratedCount(kind PlanKind) int {
	if kind == PlanKindMeal {
		return s.MealPlansGenerated
	}
	return s.WorkoutPlansGenerated
}

// Remaining returns how many free-tier generations are left for the kind.
// PREMIUM subscriptions are unlimited, reported as -1.
func (s *Subscription) Remaining(kind PlanKind) int {
	if s.Plan == PlanTierPremium {
		return -1
	}
	left := FreeTierQuota - s.GeneratedCount(kind)
	if left < 0 {
		return 0
	}
	return left
}
