package specification

import (
	"gorm.io/gorm"

	"github.com/RishavSingh2203/freaky-fit/internal/entity"
	"github.com/google/uuid"
)

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

type ByRole struct {
	Role entity.UserRole
}

func (s ByRole) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("role = ?", string(s.Role))
}

type UserOwnedBy struct {
	UserID uuid.UUID
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type VerifiedTrainers struct{}

func (s VerifiedTrainers) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("role = ? AND verified = ?", string(entity.UserRoleTrainer), true)
}
