package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/mechafix/dispatch/internal/pkg/constants"
)

// activeRequestTTL bounds how long a stale pointer can outlive a request
// whose terminal transition failed to clear it
const activeRequestTTL = 24 * time.Hour

// SetActiveRequest stores the requester's in-flight request pointer
func (r *RequestRepository) SetActiveRequest(ctx context.Context, requesterID, requestID string) error {
	key := fmt.Sprintf(constants.KeyActiveRequestRequester, requesterID)
	if err := r.redisClient.Set(ctx, key, requestID, activeRequestTTL); err != nil {
		return fmt.Errorf("failed to set active request pointer: %w", err)
	}
	return nil
}

// GetActiveRequest returns the requester's in-flight request ID, or an
// empty string when none is stored
func (r *RequestRepository) GetActiveRequest(ctx context.Context, requesterID string) (string, error) {
	key := fmt.Sprintf(constants.KeyActiveRequestRequester, requesterID)
	requestID, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get active request pointer: %w", err)
	}
	return requestID, nil
}

// ClearActiveRequest removes the requester's in-flight request pointer
func (r *RequestRepository) ClearActiveRequest(ctx context.Context, requesterID string) error {
	key := fmt.Sprintf(constants.KeyActiveRequestRequester, requesterID)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to clear active request pointer: %w", err)
	}
	return nil
}

// The mechanic-side pointer marks which request a mechanic is engaged
// on. It gates double-booking in AcceptCandidate and is maintained
// best-effort around the SQL transitions.

func (r *RequestRepository) setMechanicActiveRequest(ctx context.Context, mechanicID, requestID string) error {
	key := fmt.Sprintf(constants.KeyActiveRequestMechanic, mechanicID)
	return r.redisClient.Set(ctx, key, requestID, activeRequestTTL)
}

func (r *RequestRepository) mechanicActiveRequest(ctx context.Context, mechanicID string) (string, error) {
	key := fmt.Sprintf(constants.KeyActiveRequestMechanic, mechanicID)
	requestID, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get mechanic engagement pointer: %w", err)
	}
	return requestID, nil
}

func (r *RequestRepository) clearMechanicActiveRequest(ctx context.Context, mechanicID string) error {
	key := fmt.Sprintf(constants.KeyActiveRequestMechanic, mechanicID)
	return r.redisClient.Delete(ctx, key)
}
