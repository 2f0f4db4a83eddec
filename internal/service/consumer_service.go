package service

import (
	"context"
	"encoding/json"

	"landing-cms-be/internal/model"
	"landing-cms-be/internal/pkg/logger"
	"landing-cms-be/internal/pkg/mailer"
	"landing-cms-be/internal/repository/unitofwork"
	"landing-cms-be/internal/websocket"
	"landing-cms-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/datatypes"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process event bus: every event becomes an
// audit row, gets pushed to connected editors over websocket, and a publish
// additionally triggers an admin notification mail when SMTP is configured.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	uowFactory unitofwork.RepositoryFactory
	hub        *websocket.Hub
	mail       mailer.IEmailService // nil when SMTP unconfigured
	adminEmail string
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	uowFactory unitofwork.RepositoryFactory,
	hub *websocket.Hub,
	mail mailer.IEmailService,
	adminEmail string,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		uowFactory: uowFactory,
		hub:        hub,
		mail:       mail,
		adminEmail: adminEmail,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, events.TopicLandingEvents)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

type eventEnvelope struct {
	Type    string                 `json:"type"`
	Payload map[string]interface{} `json:"payload"`
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	var env eventEnvelope
	if err := json.Unmarshal(msg.Payload, &env); err != nil {
		cs.logger.Error("Consumer", "malformed event payload", map[string]interface{}{"error": err.Error()})
		return
	}

	actor, _ := env.Payload["actor"].(string)
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	logRow := &model.SystemLog{
		EventType: env.Type,
		Actor:     actor,
		Details:   datatypes.JSON(msg.Payload),
	}
	if err := uow.SystemLogRepository().Create(ctx, logRow); err != nil {
		cs.logger.Error("Consumer", "failed to write audit row", map[string]interface{}{"error": err.Error()})
	}

	if cs.hub != nil {
		cs.hub.Broadcast(msg.Payload)
	}

	if env.Type == events.TypeLandingUpdated && cs.mail != nil && cs.adminEmail != "" {
		if err := cs.mail.SendPublishNotice(cs.adminEmail, actor); err != nil {
			cs.logger.Warn("Consumer", "publish notification mail failed", map[string]interface{}{"error": err.Error()})
		}
	}
}
