package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActiveForUser matches the user's active, non-expired subscription.
// The "at most one" invariant is enforced by this filter, not by a
// uniqueness constraint.
type ActiveForUser struct {
	UserID uuid.UUID
	Now    time.Time
}

func (s ActiveForUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ? AND active = ? AND end_date >= ?", s.UserID, true, s.Now)
}

type ByMidtransOrderId struct {
	OrderID string
}

func (s ByMidtransOrderId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("midtrans_order_id = ?", s.OrderID)
}
