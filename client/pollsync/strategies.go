package pollsync

import (
	"context"

	"github.com/mechafix/dispatch/internal/pkg/models"
)

// Client is the surface the syncer polls against. Implementations wrap
// the dispatch HTTP API.
type Client interface {
	GetRequest(ctx context.Context, requestID string) (*models.ServiceRequest, error)
	ActiveRequestID(ctx context.Context, requesterID string) (string, error)
	ListPendingRequests(ctx context.Context, mechanicID string) ([]*models.ServiceRequest, error)
}

// LookupStrategy is one way of locating the actor's current request. A
// nil request with a nil error means the strategy found nothing and the
// next one should run.
type LookupStrategy interface {
	Name() string
	Lookup(ctx context.Context) (*models.ServiceRequest, error)
}

// cachedRequestStrategy re-fetches the request the syncer already knows
// about. Cheapest lookup, so it runs first.
type cachedRequestStrategy struct {
	syncer *Syncer
}

func (s *cachedRequestStrategy) Name() string { return "cached-request" }

func (s *cachedRequestStrategy) Lookup(ctx context.Context) (*models.ServiceRequest, error) {
	requestID := s.syncer.lastKnownRequestID()
	if requestID == "" {
		return nil, nil
	}
	return s.syncer.client.GetRequest(ctx, requestID)
}

// activePointerStrategy resolves the requester's active-request pointer
type activePointerStrategy struct {
	syncer *Syncer
}

func (s *activePointerStrategy) Name() string { return "active-pointer" }

func (s *activePointerStrategy) Lookup(ctx context.Context) (*models.ServiceRequest, error) {
	requestID, err := s.syncer.client.ActiveRequestID(ctx, s.syncer.actorID)
	if err != nil {
		return nil, err
	}
	if requestID == "" {
		return nil, nil
	}
	return s.syncer.client.GetRequest(ctx, requestID)
}

// pendingListStrategy scans the mechanic's open request list, used when
// the actor polls from the mechanic side and holds no pointer
type pendingListStrategy struct {
	syncer *Syncer
}

func (s *pendingListStrategy) Name() string { return "pending-list" }

func (s *pendingListStrategy) Lookup(ctx context.Context) (*models.ServiceRequest, error) {
	requests, err := s.syncer.client.ListPendingRequests(ctx, s.syncer.actorID)
	if err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return nil, nil
	}
	// newest first, per the API contract
	return requests[0], nil
}
