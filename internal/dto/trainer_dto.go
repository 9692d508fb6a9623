package dto

type CreateTrainerRequest struct {
	Email          string  `json:"email" validate:"required,email"`
	Password       string  `json:"password" validate:"required,min=8"`
	FullName       string  `json:"fullName" validate:"required"`
	Specialization string  `json:"specialization" validate:"required"`
	HourlyRate     float64 `json:"hourlyRate" validate:"required,gt=0"`
	Bio            string  `json:"bio"`
}

type UpdateTrainerRequest struct {
	FullName       *string  `json:"fullName"`
	Specialization *string  `json:"specialization"`
	HourlyRate     *float64 `json:"hourlyRate" validate:"omitempty,gt=0"`
	Bio            *string  `json:"bio"`
}

type UpdateTrainerInfoRequest struct {
	Specialization *string  `json:"specialization"`
	HourlyRate     *float64 `json:"hourlyRate" validate:"omitempty,gt=0"`
	Bio            *string  `json:"bio"`
	Verified       *bool    `json:"verified"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=USER TRAINER ADMIN"`
}
