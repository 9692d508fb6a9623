package mapper

import (
	"github.com/RishavSingh2203/freaky-fit/internal/entity"
	"github.com/RishavSingh2203/freaky-fit/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:             u.Id,
		Email:          u.Email,
		PasswordHash:   u.PasswordHash,
		FullName:       u.FullName,
		Role:           entity.UserRole(u.Role),
		Specialization: u.Specialization,
		HourlyRate:     u.HourlyRate,
		Bio:            u.Bio,
		Verified:       u.Verified,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:             u.Id,
		Email:          u.Email,
		PasswordHash:   u.PasswordHash,
		FullName:       u.FullName,
		Role:           string(u.Role),
		Specialization: u.Specialization,
		HourlyRate:     u.HourlyRate,
		Bio:            u.Bio,
		Verified:       u.Verified,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}
