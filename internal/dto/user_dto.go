package dto

import (
	"time"

	"github.com/RishavSingh2203/freaky-fit/internal/entity"

	"github.com/google/uuid"
)

// UserDTO is the response projection of a user. Credential material is
// excluded by construction: there is no field it could leak through.
type UserDTO struct {
	Id       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"fullName"`
	Role     string    `json:"role"`

	Specialization *string  `json:"specialization,omitempty"`
	HourlyRate     *float64 `json:"hourlyRate,omitempty"`
	Bio            *string  `json:"bio,omitempty"`
	Verified       bool     `json:"verified"`

	CreatedAt time.Time `json:"createdAt"`
}

func NewUserDTO(u *entity.User) UserDTO {
	return UserDTO{
		Id:             u.Id,
		Email:          u.Email,
		FullName:       u.FullName,
		Role:           string(u.Role),
		Specialization: u.Specialization,
		HourlyRate:     u.HourlyRate,
		Bio:            u.Bio,
		Verified:       u.Verified,
		CreatedAt:      u.CreatedAt,
	}
}

func NewUserDTOs(users []*entity.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, u := range users {
		dtos[i] = NewUserDTO(u)
	}
	return dtos
}

type UpdateProfileRequest struct {
	FullName string `json:"fullName" validate:"required"`
}
