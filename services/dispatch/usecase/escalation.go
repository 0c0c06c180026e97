package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mechafix/dispatch/internal/pkg/apperrors"
	"github.com/mechafix/dispatch/internal/pkg/logger"
	"github.com/mechafix/dispatch/internal/pkg/metrics"
	"github.com/mechafix/dispatch/internal/pkg/models"
)

// EscalationTimer guards one request's scan window. It fires at most
// once; Cancel after firing is a no-op, and firing after Cancel is
// suppressed. All state changes go through the mutex so the timer
// goroutine and the accept/cancel paths never race.
type EscalationTimer struct {
	mu        sync.Mutex
	timer     *time.Timer
	fired     bool
	cancelled bool
}

// Cancel stops the timer if it has not fired yet. Returns true when the
// escalation was actually prevented.
func (t *EscalationTimer) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.fired || t.cancelled {
		return false
	}
	t.cancelled = true
	if t.timer != nil {
		t.timer.Stop()
	}
	return true
}

func (t *EscalationTimer) tryFire() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.fired || t.cancelled {
		return false
	}
	t.fired = true
	return true
}

// armEscalation schedules the fallback scan for a freshly broadcast
// request. Any previous timer for the same request is cancelled first.
func (uc *DispatchUC) armEscalation(requestID string) {
	window := time.Duration(uc.cfg.Dispatch.EscalationWindowMs) * time.Millisecond

	et := &EscalationTimer{}
	et.timer = time.AfterFunc(window, func() {
		if !et.tryFire() {
			return
		}
		uc.removeEscalation(requestID, et)
		uc.escalate(requestID)
	})

	uc.escMu.Lock()
	if prev, ok := uc.escalations[requestID]; ok {
		prev.Cancel()
	}
	uc.escalations[requestID] = et
	uc.escMu.Unlock()
}

// cancelEscalation stops the pending scan-window timer, if any
func (uc *DispatchUC) cancelEscalation(requestID string) {
	uc.escMu.Lock()
	et, ok := uc.escalations[requestID]
	if ok {
		delete(uc.escalations, requestID)
	}
	uc.escMu.Unlock()
	if ok {
		et.Cancel()
	}
}

func (uc *DispatchUC) removeEscalation(requestID string, et *EscalationTimer) {
	uc.escMu.Lock()
	if cur, ok := uc.escalations[requestID]; ok && cur == et {
		delete(uc.escalations, requestID)
	}
	uc.escMu.Unlock()
}

// escalate runs the widened fallback search once the scan window expires
// with nobody accepting. The request moves to TIMED_OUT regardless of
// whether the fallback search finds anyone; a later manual accept is
// still allowed from that state. Escalation never accepts on the
// requester's behalf.
func (uc *DispatchUC) escalate(requestID string) {
	ctx, cancel := context.WithTimeout(context.Background(), uc.operationTimeout())
	defer cancel()

	req, err := uc.requestRepo.GetRequest(ctx, requestID)
	if err != nil {
		logger.Error("Escalation aborted: failed to load request",
			logger.String("request_id", requestID),
			logger.Err(err))
		return
	}
	// The window may race a just-committed accept or cancel. A request
	// that timed out early via reject-all still gets the widened search.
	eligible := req.Status == models.RequestStatusBroadcasting ||
		(req.Status == models.RequestStatusTimedOut && req.AcceptedCandidate() == nil)
	if !eligible {
		logger.Info("Escalation skipped: request no longer open",
			logger.String("request_id", requestID),
			logger.String("status", string(req.Status)))
		return
	}

	metrics.EscalationsFired.Inc()
	logger.Info("Scan window expired, running fallback search",
		logger.String("request_id", requestID))

	fallback, err := uc.FallbackCandidates(ctx, &req.Origin, uc.candidateLimit())
	if err != nil && !errors.Is(err, apperrors.ErrInvalidLocation) {
		logger.Error("Fallback search failed",
			logger.String("request_id", requestID),
			logger.Err(err))
	}

	if len(fallback) > 0 {
		merged := mergeCandidates(req.Candidates, fallback)
		if err := uc.requestRepo.ReplaceCandidates(ctx, requestID, merged); err != nil {
			logger.Error("Failed to store fallback candidates",
				logger.String("request_id", requestID),
				logger.Err(err))
		}
	}

	if req.Status == models.RequestStatusBroadcasting {
		if err := uc.requestRepo.UpdateRequestStatus(ctx, requestID, models.RequestStatusTimedOut); err != nil {
			logger.Error("Failed to mark request timed out",
				logger.String("request_id", requestID),
				logger.Err(err))
			return
		}
		metrics.RequestsByStatus.WithLabelValues(string(models.RequestStatusTimedOut)).Inc()
	}
}

// mergeCandidates appends fallback hits to the existing list without
// duplicating mechanics or disturbing recorded responses
func mergeCandidates(existing []models.CandidateMatch, fallback []models.CandidateMatch) []models.CandidateMatch {
	seen := make(map[string]bool, len(existing))
	for _, c := range existing {
		seen[c.MechanicID.String()] = true
	}

	merged := make([]models.CandidateMatch, 0, len(existing)+len(fallback))
	merged = append(merged, existing...)
	for _, c := range fallback {
		if seen[c.MechanicID.String()] {
			continue
		}
		c.Rank = len(merged) + 1
		merged = append(merged, c)
	}
	return merged
}

func (uc *DispatchUC) operationTimeout() time.Duration {
	if uc.cfg.Dispatch.RequestTimeoutMs > 0 {
		return time.Duration(uc.cfg.Dispatch.RequestTimeoutMs) * time.Millisecond
	}
	return 5 * time.Second
}
