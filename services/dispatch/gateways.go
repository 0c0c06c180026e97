package dispatch

import (
	"context"

	"github.com/mechafix/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks -source=gateways.go

// DispatchGW defines the outbound event gateway interface
type DispatchGW interface {
	PublishRequestBroadcast(ctx context.Context, event models.RequestBroadcastEvent) error
	PublishRequestAccepted(ctx context.Context, event models.RequestStatusEvent) error
	PublishRequestCompleted(ctx context.Context, event models.RequestStatusEvent) error
	PublishRequestCancelled(ctx context.Context, event models.RequestStatusEvent) error

	// NotifyEmergencyContacts is fire-and-forget: delivery failure must
	// never block or fail the caller's flow
	NotifyEmergencyContacts(event models.EmergencyEvent)
}
