package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByTrainer struct {
	TrainerID uuid.UUID
}

func (s ByTrainer) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("trainer_id = ?", s.TrainerID)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}
