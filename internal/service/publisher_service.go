package service

import (
	"encoding/json"

	"github.com/RishavSingh2203/freaky-fit/internal/pkg/logger"
	"github.com/RishavSingh2203/freaky-fit/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

type IPublisherService interface {
	Publish(topic string, event events.Event) error
	Close() error
}

type PublisherService struct {
	publisher message.Publisher
	logger    logger.ILogger
}

func NewPublisherService(publisher message.Publisher, logger logger.ILogger) IPublisherService {
	return &PublisherService{
		publisher: publisher,
		logger:    logger,
	}
}

func (s *PublisherService) Publish(topic string, event events.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_name", event.EventName())

	if err := s.publisher.Publish(topic, msg); err != nil {
		s.logger.Error("publisher", "failed to publish event", map[string]interface{}{
			"topic": topic,
			"event": event.EventName(),
			"error": err.Error(),
		})
		return err
	}

	s.logger.Debug("publisher", "event published", map[string]interface{}{
		"topic": topic,
		"event": event.EventName(),
	})
	return nil
}

func (s *PublisherService) Close() error {
	return s.publisher.Close()
}
