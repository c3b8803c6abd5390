package service

import (
	"context"
	"encoding/json"

	"plot-editor-be/internal/dto"
	"plot-editor-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	PublishPlotContentSaved(ctx context.Context, msg dto.PlotContentSavedMessage)
}

type publisherService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	log       logger.ILogger
}

func NewPublisherService(
	pubSub *gochannel.GoChannel,
	topicName string,
	log logger.ILogger,
) IPublisherService {
	return &publisherService{
		pubSub:    pubSub,
		topicName: topicName,
		log:       log,
	}
}

// PublishPlotContentSaved emits an invalidation event. Failures are logged
// and swallowed: the save itself already succeeded and stale cached
// summaries are tolerable.
func (s *publisherService) PublishPlotContentSaved(ctx context.Context, payload dto.PlotContentSavedMessage) {
	body, err := json.Marshal(payload)
	if err != nil {
		s.log.Error("PublisherService", "marshal failed", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), body)
	msg.SetContext(ctx)
	if err := s.pubSub.Publish(s.topicName, msg); err != nil {
		s.log.Error("PublisherService", "publish failed", map[string]interface{}{
			"topic": s.topicName,
			"error": err.Error(),
		})
	}
}
