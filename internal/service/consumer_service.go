package service

import (
	"context"

	"timo-intelligence-be/internal/pkg/logger"
	"timo-intelligence-be/internal/websocket"
	"timo-intelligence-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IConsumerService bridges the in-process event bus to the websocket
// hub so admin sessions see save-status changes live.
type IConsumerService interface {
	Start(ctx context.Context) error
}

type consumerService struct {
	pubSub *gochannel.GoChannel
	hub    *websocket.Hub
	log    logger.ILogger
}

func NewConsumerService(pubSub *gochannel.GoChannel, hub *websocket.Hub, log logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub: pubSub,
		hub:    hub,
		log:    log,
	}
}

func (s *consumerService) Start(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, events.TopicSaveStatus)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.hub.Broadcast(msg.Payload)
			msg.Ack()
		}
		s.log.Info("Consumer", "Save status subscription closed", nil)
	}()

	return nil
}
