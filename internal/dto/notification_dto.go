package dto

import (
	"time"

	"github.com/RishavSingh2203/freaky-fit/internal/entity"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	Id        uuid.UUID `json:"id"`
	TypeCode  string    `json:"typeCode"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewNotificationResponses(notifications []*entity.Notification) []NotificationResponse {
	res := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		res[i] = NotificationResponse{
			Id:        n.Id,
			TypeCode:  n.TypeCode,
			Message:   n.Message,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		}
	}
	return res
}
