package service

import (
	"context"
	"encoding/json"

	"landing-cms-be/internal/pkg/logger"
	"landing-cms-be/pkg/events"
	pktNats "landing-cms-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IPublisherService emits system events after commits. Publishing is
// fire-and-forget: a failed event never fails the request that triggered it.
type IPublisherService interface {
	PublishLandingUpdated(ctx context.Context, collections []string, actor string)
	PublishContentChanged(ctx context.Context, entity string, id uint, action string)
}

type publisherService struct {
	pubSub *gochannel.GoChannel
	mirror *pktNats.Publisher // optional NATS fanout, nil when unconfigured
	logger logger.ILogger
}

func NewPublisherService(pubSub *gochannel.GoChannel, mirror *pktNats.Publisher, log logger.ILogger) IPublisherService {
	return &publisherService{
		pubSub: pubSub,
		mirror: mirror,
		logger: log,
	}
}

func (s *publisherService) PublishLandingUpdated(ctx context.Context, collections []string, actor string) {
	s.publish(ctx, events.NewLandingUpdated(collections, actor))
}

func (s *publisherService) PublishContentChanged(ctx context.Context, entity string, id uint, action string) {
	s.publish(ctx, events.NewContentChanged(entity, id, action))
}

func (s *publisherService) publish(ctx context.Context, event events.Event) {
	body := map[string]interface{}{
		"type":       event.EventType(),
		"payload":    event.Payload(),
		"occurredAt": event.Timestamp(),
	}
	data, err := json.Marshal(body)
	if err != nil {
		s.logger.Error("Publisher", "failed to marshal event", map[string]interface{}{"error": err.Error()})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	if err := s.pubSub.Publish(events.TopicLandingEvents, msg); err != nil {
		s.logger.Error("Publisher", "failed to publish event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}

	if s.mirror != nil {
		if err := s.mirror.Publish(ctx, event); err != nil {
			s.logger.Warn("Publisher", "NATS mirror publish failed", map[string]interface{}{
				"type":  event.EventType(),
				"error": err.Error(),
			})
		}
	}
}
