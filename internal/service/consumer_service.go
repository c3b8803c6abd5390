package service

import (
	"context"
	"encoding/json"

	"plot-editor-be/internal/dto"
	"plot-editor-be/internal/pkg/logger"
	"plot-editor-be/internal/repository/specification"
	"plot-editor-be/internal/repository/unitofwork"
	"plot-editor-be/internal/websocket"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService reacts to saved plot content by clearing the cached
// summaries that the new text made stale: the plot's own summary, its
// episode's chapter summary and the work's overall summary. The owner is
// told over the websocket hub so open editors can re-request summaries.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	hub        *websocket.Hub
	log        logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	hub *websocket.Hub,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		hub:        hub,
		log:        log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
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

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PlotContentSavedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("ConsumerService", "unmarshal failed", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // invalid payloads never become valid
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	plot, err := uow.PlotRepository().FindOne(ctx,
		specification.ByID{ID: payload.PlotId},
		specification.UserOwnedBy{UserID: payload.UserId},
	)
	if err != nil {
		cs.log.Error("ConsumerService", "plot fetch failed", map[string]interface{}{
			"plot_id": payload.PlotId,
			"error":   err.Error(),
		})
		msg.Nack()
		return
	}
	if plot == nil {
		// Deleted between save and consume.
		msg.Ack()
		return
	}

	episode, err := uow.EpisodeRepository().FindOne(ctx,
		specification.ByID{ID: plot.EpisodeId},
		specification.UserOwnedBy{UserID: payload.UserId},
	)
	if err != nil {
		msg.Nack()
		return
	}

	if err := uow.Begin(ctx); err != nil {
		msg.Nack()
		return
	}

	if plot.PlotSummary != "" {
		plot.PlotSummary = ""
		if err := uow.PlotRepository().Update(ctx, plot); err != nil {
			uow.Rollback()
			msg.Nack()
			return
		}
	}

	// Nil when the episode or work is gone; marshals as null in the event.
	var workId *uuid.UUID
	if episode != nil {
		if episode.ChapterSummary != "" {
			episode.ChapterSummary = ""
			if err := uow.EpisodeRepository().Update(ctx, episode); err != nil {
				uow.Rollback()
				msg.Nack()
				return
			}
		}

		work, err := uow.WorkRepository().FindOne(ctx,
			specification.ByID{ID: episode.WorkId},
			specification.UserOwnedBy{UserID: payload.UserId},
		)
		if err != nil {
			uow.Rollback()
			msg.Nack()
			return
		}
		if work != nil {
			workId = &work.Id
			if work.WorkSummary != "" {
				work.WorkSummary = ""
				if err := uow.WorkRepository().Update(ctx, work); err != nil {
					uow.Rollback()
					msg.Nack()
					return
				}
			}
		}
	}

	if err := uow.Commit(); err != nil {
		msg.Nack()
		return
	}

	if cs.hub != nil {
		cs.hub.Send(payload.UserId, websocket.Event{
			Type: "summaries_invalidated",
			Data: map[string]interface{}{
				"plot_id":    plot.Id,
				"episode_id": plot.EpisodeId,
				"work_id":    workId,
			},
		})
	}

	msg.Ack()
}
