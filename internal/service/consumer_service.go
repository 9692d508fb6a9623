package service

import (
	"context"
	"encoding/json"

	"github.com/RishavSingh2203/freaky-fit/internal/entity"
	"github.com/RishavSingh2203/freaky-fit/internal/pkg/logger"
	"github.com/RishavSingh2203/freaky-fit/internal/repository/unitofwork"
	"github.com/RishavSingh2203/freaky-fit/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// ConsumerService drains the domain-events topic and persists each event
// as an in-app notification for its target user.
type ConsumerService struct {
	subscriber message.Subscriber
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
	topic      string
}

func NewConsumerService(
	subscriber message.Subscriber,
	uowFactory unitofwork.RepositoryFactory,
	logger logger.ILogger,
	topic string,
) *ConsumerService {
	return &ConsumerService{
		subscriber: subscriber,
		uowFactory: uowFactory,
		logger:     logger,
		topic:      topic,
	}
}

// Start blocks on the subscription channel until ctx is cancelled.
// Run it in its own goroutine.
func (s *ConsumerService) Start(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, s.topic)
	if err != nil {
		return err
	}

	s.logger.Info("consumer", "listening for domain events", map[string]interface{}{
		"topic": s.topic,
	})

	for msg := range messages {
		s.handle(ctx, msg)
	}
	return nil
}

func (s *ConsumerService) handle(ctx context.Context, msg *message.Message) {
	// Ack unconditionally: a notification we cannot persist is logged
	// and dropped, never redelivered in a loop.
	defer msg.Ack()

	var event events.BaseEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		s.logger.Warn("consumer", "malformed event payload", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return
	}

	if event.UserId == uuid.Nil {
		return
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	err := uow.NotificationRepository().Create(ctx, &entity.Notification{
		UserId:   event.UserId,
		TypeCode: event.Name,
		Message:  event.Message,
	})
	if err != nil {
		s.logger.Error("consumer", "failed to persist notification", map[string]interface{}{
			"event": event.Name,
			"user":  event.UserId.String(),
			"error": err.Error(),
		})
	}
}
