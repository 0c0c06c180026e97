package nsq

import (
	"context"
	"time"

	"github.com/mechafix/dispatch/internal/pkg/constants"
	"github.com/mechafix/dispatch/internal/pkg/logger"
	"github.com/mechafix/dispatch/internal/pkg/models"
	nsqpkg "github.com/mechafix/dispatch/internal/pkg/nsq"
	"github.com/mechafix/dispatch/services/dispatch"
)

// handlerTimeout bounds how long one beacon may occupy the consumer
const handlerTimeout = 5 * time.Second

// DispatchHandler consumes mechanic pool beacons from NSQ
type DispatchHandler struct {
	dispatchUC dispatch.DispatchUC
	cfg        *models.Config
	consumers  []*nsqpkg.Consumer
}

// NewDispatchHandler creates a new NSQ dispatch handler
func NewDispatchHandler(dispatchUC dispatch.DispatchUC, cfg *models.Config) *DispatchHandler {
	return &DispatchHandler{
		dispatchUC: dispatchUC,
		cfg:        cfg,
	}
}

// InitConsumers starts the coordinator's NSQ consumers
func (h *DispatchHandler) InitConsumers() error {
	consumer, err := nsqpkg.NewConsumer(
		constants.TopicMechanicPool,
		constants.ChannelDispatch,
		h.cfg.NSQ.NSQDAddress,
		h.handleMechanicPoolEvent,
	)
	if err != nil {
		return err
	}
	if len(h.cfg.NSQ.LookupdAddresses) > 0 {
		if err := consumer.ConnectToLookupd(h.cfg.NSQ.LookupdAddresses); err != nil {
			return err
		}
	}

	h.consumers = append(h.consumers, consumer)
	logger.Info("NSQ consumers started", logger.String("topic", constants.TopicMechanicPool))
	return nil
}

// Stop shuts down all running consumers
func (h *DispatchHandler) Stop() {
	for _, consumer := range h.consumers {
		consumer.Stop()
	}
}

func (h *DispatchHandler) handleMechanicPoolEvent(message []byte) error {
	var event models.MechanicPoolEvent
	if err := nsqpkg.UnmarshalMessage(message, &event); err != nil {
		logger.Error("Dropping malformed mechanic pool event", logger.Err(err))
		// malformed payloads never become parseable, do not requeue
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	return h.dispatchUC.SyncMechanicPool(ctx, event)
}
