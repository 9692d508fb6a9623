package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleUser    UserRole = "USER"
	UserRoleTrainer UserRole = "TRAINER"
	UserRoleAdmin   UserRole = "ADMIN"
)

// Valid reports whether the role belongs to the closed set of role tags.
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleUser, UserRoleTrainer, UserRoleAdmin:
		return true
	}
	return false
}

type User struct {
	Id           uuid.UUID
	Email        string
	PasswordHash *string
	FullName     string
	Role         UserRole

	// Trainer-only fields, nil for regular users
	Specialization *string
	HourlyRate     *float64
	Bio            *string
	Verified       bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) IsTrainer() bool {
	return u.Role == UserRoleTrainer
}
