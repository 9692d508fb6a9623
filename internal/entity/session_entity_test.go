package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionStatusTransitions(t *testing.T) {
	cases := []struct {
		from    SessionStatus
		to      SessionStatus
		allowed bool
	}{
		{SessionStatusPending, SessionStatusAccepted, true},
		{SessionStatusPending, SessionStatusRejected, true},
		{SessionStatusPending, SessionStatusCompleted, false},
		{SessionStatusAccepted, SessionStatusCompleted, true},
		{SessionStatusAccepted, SessionStatusRejected, false},
		{SessionStatusAccepted, SessionStatusPending, false},
		{SessionStatusRejected, SessionStatusAccepted, false},
		{SessionStatusCompleted, SessionStatusPending, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestSubscriptionRemaining(t *testing.T) {
	free := &Subscription{Plan: PlanTierFree, WorkoutPlansGenerated: 1, MealPlansGenerated: 3}
	assert.Equal(t, FreeTierQuota-1, free.Remaining(PlanKindWorkout))
	// Counters past the cap never report negative remaining.
	assert.Equal(t, 0, free.Remaining(PlanKindMeal))

	premium := &Subscription{Plan: PlanTierPremium, WorkoutPlansGenerated: 100}
	assert.Equal(t, -1, premium.Remaining(PlanKindWorkout))
	assert.Equal(t, -1, premium.Remaining(PlanKindMeal))
}

func TestUserRoleValid(t *testing.T) {
	assert.True(t, UserRoleUser.Valid())
	assert.True(t, UserRoleTrainer.Valid())
	assert.True(t, UserRoleAdmin.Valid())
	assert.False(t, UserRole("SUPERADMIN").Valid())
	assert.False(t, UserRole("").Valid())
}
