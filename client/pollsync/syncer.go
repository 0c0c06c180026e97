// Package pollsync keeps a client's view of its current service request
// converged with the coordinator through periodic polling. Lookups run
// through an ordered strategy chain and the first hit wins; transient
// failures keep the last known good snapshot.
package pollsync

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mechafix/dispatch/internal/pkg/apperrors"
	"github.com/mechafix/dispatch/internal/pkg/logger"
	"github.com/mechafix/dispatch/internal/pkg/models"
	"github.com/mechafix/dispatch/internal/pkg/retry"
)

// Polling cadence bounds. Faster than MinInterval hammers the
// coordinator for no freshness gain; slower than MaxInterval leaves the
// client stale past what the product tolerates.
const (
	DefaultInterval = 5 * time.Second
	MinInterval     = 5 * time.Second
	MaxInterval     = 10 * time.Second
)

// Snapshot is the syncer's converged view of the actor's request
type Snapshot struct {
	Request  *models.ServiceRequest
	SyncedAt time.Time
	Failures int // consecutive sync failures since the last success
}

// Syncer polls the coordinator and maintains a request snapshot
type Syncer struct {
	client     Client
	actorID    string
	interval   time.Duration
	strategies []LookupStrategy
	retrier    *retry.Retrier

	// OnUpdate fires after each applied snapshot change
	OnUpdate func(Snapshot)

	mu       sync.RWMutex
	snapshot Snapshot
	lastID   string
}

// Option configures a Syncer
type Option func(*Syncer)

// WithInterval overrides the polling cadence, clamped to the
// [MinInterval, MaxInterval] band
func WithInterval(interval time.Duration) Option {
	return func(s *Syncer) {
		if interval < MinInterval {
			interval = MinInterval
		}
		if interval > MaxInterval {
			interval = MaxInterval
		}
		s.interval = interval
	}
}

// WithMechanicLookup appends the mechanic-side pending-list strategy to
// the chain
func WithMechanicLookup() Option {
	return func(s *Syncer) {
		s.strategies = append(s.strategies, &pendingListStrategy{syncer: s})
	}
}

// NewSyncer creates a syncer for the given actor
func NewSyncer(client Client, actorID string, opts ...Option) *Syncer {
	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = 2
	retryCfg.RetryableFunc = func(err error) bool {
		return apperrors.IsRetryable(err) || retry.NetworkRetryableFunc()(err)
	}

	s := &Syncer{
		client:   client,
		actorID:  actorID,
		interval: DefaultInterval,
		retrier:  retry.New(retryCfg, logger.GetGlobalLogger()),
	}
	s.strategies = []LookupStrategy{
		&cachedRequestStrategy{syncer: s},
		&activePointerStrategy{syncer: s},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the current converged view
func (s *Syncer) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func (s *Syncer) lastKnownRequestID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastID
}

// Run polls until the context is cancelled or the tracked request
// reaches a terminal state
func (s *Syncer) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if done := s.SyncOnce(ctx); done {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// SyncOnce runs one poll cycle. It reports true when the tracked request
// reached a terminal state and polling should stop.
func (s *Syncer) SyncOnce(ctx context.Context) bool {
	req, err := s.lookup(ctx)
	if ctx.Err() != nil {
		// a result raced the cancellation, discard it
		return false
	}
	if err != nil {
		s.recordFailure(err)
		return false
	}

	return s.applySnapshot(req)
}

// lookup walks the strategy chain and returns the first hit
func (s *Syncer) lookup(ctx context.Context) (*models.ServiceRequest, error) {
	var lastErr error
	for _, strategy := range s.strategies {
		var req *models.ServiceRequest
		err := s.retrier.Execute(ctx, func(ctx context.Context) error {
			var lookupErr error
			req, lookupErr = strategy.Lookup(ctx)
			return lookupErr
		})
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				// stale reference, fall through to the next strategy
				continue
			}
			lastErr = err
			continue
		}
		if req != nil {
			return req, nil
		}
	}
	return nil, lastErr
}

// applySnapshot merges a lookup result into the local view. Applying the
// same state twice is a no-op; a terminal state clears the tracked
// request ID and reports done.
func (s *Syncer) applySnapshot(req *models.ServiceRequest) bool {
	s.mu.Lock()

	changed := false
	if req == nil {
		// nothing tracked server-side; keep whatever terminal snapshot
		// we already hold
		s.snapshot.Failures = 0
		s.mu.Unlock()
		return false
	}

	prev := s.snapshot.Request
	if prev == nil || prev.Status != req.Status || !prev.UpdatedAt.Equal(req.UpdatedAt) {
		changed = true
	}

	s.snapshot = Snapshot{
		Request:  req,
		SyncedAt: time.Now(),
		Failures: 0,
	}

	done := req.Status.IsTerminal()
	if done {
		s.lastID = ""
	} else {
		s.lastID = req.ID.String()
	}

	onUpdate := s.OnUpdate
	snap := s.snapshot
	s.mu.Unlock()

	if changed && onUpdate != nil {
		onUpdate(snap)
	}
	return done
}

func (s *Syncer) recordFailure(err error) {
	s.mu.Lock()
	s.snapshot.Failures++
	failures := s.snapshot.Failures
	s.mu.Unlock()

	logger.Warn("Poll sync failed, keeping last known state",
		logger.String("actor_id", s.actorID),
		logger.Int("consecutive_failures", failures),
		logger.Err(err))
}
