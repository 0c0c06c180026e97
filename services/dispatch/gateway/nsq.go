package gateway

import (
	"context"
	"fmt"

	"github.com/mechafix/dispatch/internal/pkg/constants"
	"github.com/mechafix/dispatch/internal/pkg/logger"
	"github.com/mechafix/dispatch/internal/pkg/models"
	"github.com/mechafix/dispatch/internal/pkg/nsq"
	"github.com/mechafix/dispatch/internal/pkg/retry"
)

// DispatchGW implements the outbound event gateway over NSQ
type DispatchGW struct {
	cfg      *models.Config
	producer *nsq.Producer
	retrier  *retry.Retrier
}

// NewDispatchGW creates a new dispatch gateway
func NewDispatchGW(cfg *models.Config, producer *nsq.Producer) *DispatchGW {
	retryCfg := retry.DefaultConfig()
	retryCfg.RetryableFunc = retry.NetworkRetryableFunc()

	return &DispatchGW{
		cfg:      cfg,
		producer: producer,
		retrier:  retry.New(retryCfg, logger.GetGlobalLogger()),
	}
}

func (g *DispatchGW) publish(ctx context.Context, topic string, event interface{}) error {
	err := g.retrier.Execute(ctx, func(context.Context) error {
		return g.producer.Publish(topic, event)
	})
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}
	return nil
}

// PublishRequestBroadcast announces a new request to candidate mechanics
func (g *DispatchGW) PublishRequestBroadcast(ctx context.Context, event models.RequestBroadcastEvent) error {
	return g.publish(ctx, constants.TopicRequestBroadcast, event)
}

// PublishRequestAccepted announces that a mechanic claimed the request
func (g *DispatchGW) PublishRequestAccepted(ctx context.Context, event models.RequestStatusEvent) error {
	return g.publish(ctx, constants.TopicRequestAccepted, event)
}

// PublishRequestCompleted announces that the request was closed out
func (g *DispatchGW) PublishRequestCompleted(ctx context.Context, event models.RequestStatusEvent) error {
	return g.publish(ctx, constants.TopicRequestCompleted, event)
}

// PublishRequestCancelled announces that the requester withdrew
func (g *DispatchGW) PublishRequestCancelled(ctx context.Context, event models.RequestStatusEvent) error {
	return g.publish(ctx, constants.TopicRequestCancelled, event)
}

// NotifyEmergencyContacts hands the SOS event to the notification
// pipeline. Failures are logged and swallowed so the request flow never
// blocks on contact delivery.
func (g *DispatchGW) NotifyEmergencyContacts(event models.EmergencyEvent) {
	go func() {
		if err := g.producer.Publish(constants.TopicEmergencyNotify, event); err != nil {
			logger.Error("Failed to publish emergency notification",
				logger.String("request_id", event.RequestID),
				logger.Err(err))
		}
	}()
}
