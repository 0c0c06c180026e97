package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mechafix/dispatch/internal/pkg/apperrors"
	"github.com/mechafix/dispatch/internal/pkg/geo"
	"github.com/mechafix/dispatch/internal/pkg/logger"
	"github.com/mechafix/dispatch/internal/pkg/metrics"
	"github.com/mechafix/dispatch/internal/pkg/models"
)

// CreateRequest validates a new breakdown request, runs the initial
// candidate search, persists it, broadcasts it to the matched mechanics
// and arms the scan-window timer. The returned request is BROADCASTING
// with its ranked candidate list attached.
func (uc *DispatchUC) CreateRequest(ctx context.Context, req *models.ServiceRequest) (*models.ServiceRequest, error) {
	if !geo.ValidCoordinate(geo.CoordinateFromLocation(req.Origin)) {
		return nil, fmt.Errorf("request origin rejected: %w", apperrors.ErrInvalidLocation)
	}
	if req.IssueType == "" {
		return nil, fmt.Errorf("issue type is required: %w", apperrors.ErrValidation)
	}

	if existing, err := uc.requestRepo.GetActiveRequest(ctx, req.RequesterID.String()); err == nil && existing != "" {
		return nil, fmt.Errorf("requester already has active request %s: %w", existing, apperrors.ErrConflict)
	}

	candidates, err := uc.FindCandidates(ctx, &req.Origin, req.IssueType, 0, uc.candidateLimit())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	req.ID = uuid.New()
	req.Status = models.RequestStatusCreated
	req.Candidates = candidates
	req.CreatedAt = now
	req.UpdatedAt = now
	for i := range req.Candidates {
		req.Candidates[i].RequestID = req.ID
	}

	created, err := uc.requestRepo.CreateRequest(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if err := uc.requestRepo.UpdateRequestStatus(ctx, created.ID.String(), models.RequestStatusBroadcasting); err != nil {
		return nil, fmt.Errorf("failed to broadcast request: %w", err)
	}
	created.Status = models.RequestStatusBroadcasting
	broadcastAt := time.Now()
	created.BroadcastAt = &broadcastAt

	if err := uc.requestRepo.SetActiveRequest(ctx, created.RequesterID.String(), created.ID.String()); err != nil {
		logger.Warn("Failed to set active request pointer",
			logger.String("request_id", created.ID.String()),
			logger.Err(err))
	}

	mechanicIDs := make([]string, 0, len(created.Candidates))
	for _, c := range created.Candidates {
		mechanicIDs = append(mechanicIDs, c.MechanicID.String())
	}
	event := models.RequestBroadcastEvent{
		RequestID:   created.ID.String(),
		RequesterID: created.RequesterID.String(),
		IssueType:   created.IssueType,
		Origin:      created.Origin,
		MechanicIDs: mechanicIDs,
		Timestamp:   broadcastAt,
	}
	if err := uc.dispatchGW.PublishRequestBroadcast(ctx, event); err != nil {
		logger.Error("Failed to publish broadcast event",
			logger.String("request_id", created.ID.String()),
			logger.Err(err))
	}

	uc.armEscalation(created.ID.String())

	if created.SOS {
		uc.dispatchGW.NotifyEmergencyContacts(models.EmergencyEvent{
			RequestID:      created.ID.String(),
			RequesterID:    created.RequesterID.String(),
			RequesterName:  created.RequesterName,
			RequesterPhone: created.RequesterPhone,
			Origin:         created.Origin,
			Timestamp:      broadcastAt,
		})
	}

	metrics.RequestsCreated.Inc()
	metrics.RequestsByStatus.WithLabelValues(string(models.RequestStatusBroadcasting)).Inc()
	logger.Info("Request created and broadcast",
		logger.String("request_id", created.ID.String()),
		logger.String("requester_id", created.RequesterID.String()),
		logger.String("issue_type", created.IssueType),
		logger.Int("candidates", len(created.Candidates)))

	return created, nil
}

// GetRequest returns the current persisted state of a request
func (uc *DispatchUC) GetRequest(ctx context.Context, requestID string) (*models.ServiceRequest, error) {
	return uc.requestRepo.GetRequest(ctx, requestID)
}

// ActiveRequestID returns the requester's in-flight request ID, or an
// empty string when none is active
func (uc *DispatchUC) ActiveRequestID(ctx context.Context, requesterID string) (string, error) {
	return uc.requestRepo.GetActiveRequest(ctx, requesterID)
}

// ListPendingRequests returns open requests in which the mechanic holds
// a still-pending candidate slot
func (uc *DispatchUC) ListPendingRequests(ctx context.Context, mechanicID string) ([]*models.ServiceRequest, error) {
	return uc.requestRepo.ListPendingByMechanic(ctx, mechanicID)
}

// AcceptRequest records a mechanic's accept. The repository performs the
// compare-and-set: the first accept wins, a repeat accept by the winner
// is idempotent, and a different mechanic gets ErrConflict.
func (uc *DispatchUC) AcceptRequest(ctx context.Context, requestID, mechanicID string) (*models.ServiceRequest, error) {
	req, err := uc.requestRepo.AcceptCandidate(ctx, requestID, mechanicID)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			metrics.AcceptConflicts.Inc()
		}
		return nil, err
	}

	uc.cancelEscalation(requestID)

	event := models.RequestStatusEvent{
		RequestID:  requestID,
		MechanicID: mechanicID,
		Status:     models.RequestStatusMechanicAccepted,
		Timestamp:  time.Now(),
	}
	if err := uc.dispatchGW.PublishRequestAccepted(ctx, event); err != nil {
		logger.Error("Failed to publish accept event",
			logger.String("request_id", requestID),
			logger.Err(err))
	}

	metrics.RequestsByStatus.WithLabelValues(string(models.RequestStatusMechanicAccepted)).Inc()
	logger.Info("Request accepted",
		logger.String("request_id", requestID),
		logger.String("mechanic_id", mechanicID))

	return req, nil
}

// RejectRequest records a mechanic's reject. When every candidate has
// rejected, the repository moves the request to TIMED_OUT. The scan
// timer stays armed so the widened fallback search still refreshes the
// candidate list at window expiry.
func (uc *DispatchUC) RejectRequest(ctx context.Context, requestID, mechanicID string) (*models.ServiceRequest, error) {
	req, err := uc.requestRepo.RejectCandidate(ctx, requestID, mechanicID)
	if err != nil {
		return nil, err
	}

	if req.Status == models.RequestStatusTimedOut {
		metrics.RequestsByStatus.WithLabelValues(string(models.RequestStatusTimedOut)).Inc()
		logger.Info("All candidates rejected, request timed out",
			logger.String("request_id", requestID))
	}

	return req, nil
}

// CompleteRequest closes out a worker-assigned request. Only the
// accepted mechanic may complete; the repository enforces that.
func (uc *DispatchUC) CompleteRequest(ctx context.Context, requestID, mechanicID string) (*models.ServiceRequest, error) {
	req, err := uc.requestRepo.CompleteRequest(ctx, requestID, mechanicID)
	if err != nil {
		return nil, err
	}

	if err := uc.requestRepo.ClearActiveRequest(ctx, req.RequesterID.String()); err != nil {
		logger.Warn("Failed to clear active request pointer",
			logger.String("request_id", requestID),
			logger.Err(err))
	}

	event := models.RequestStatusEvent{
		RequestID:  requestID,
		MechanicID: mechanicID,
		Status:     models.RequestStatusCompleted,
		Timestamp:  time.Now(),
	}
	if err := uc.dispatchGW.PublishRequestCompleted(ctx, event); err != nil {
		logger.Error("Failed to publish complete event",
			logger.String("request_id", requestID),
			logger.Err(err))
	}

	metrics.RequestsCompleted.Inc()
	metrics.RequestsByStatus.WithLabelValues(string(models.RequestStatusCompleted)).Inc()
	logger.Info("Request completed",
		logger.String("request_id", requestID),
		logger.String("mechanic_id", mechanicID))

	return req, nil
}

// CancelRequest cancels the request from any non-terminal state
func (uc *DispatchUC) CancelRequest(ctx context.Context, requestID string) (*models.ServiceRequest, error) {
	req, err := uc.requestRepo.CancelRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	uc.cancelEscalation(requestID)

	if err := uc.requestRepo.ClearActiveRequest(ctx, req.RequesterID.String()); err != nil {
		logger.Warn("Failed to clear active request pointer",
			logger.String("request_id", requestID),
			logger.Err(err))
	}

	event := models.RequestStatusEvent{
		RequestID: requestID,
		Status:    models.RequestStatusCancelled,
		Timestamp: time.Now(),
	}
	if err := uc.dispatchGW.PublishRequestCancelled(ctx, event); err != nil {
		logger.Error("Failed to publish cancel event",
			logger.String("request_id", requestID),
			logger.Err(err))
	}

	metrics.RequestsByStatus.WithLabelValues(string(models.RequestStatusCancelled)).Inc()
	logger.Info("Request cancelled", logger.String("request_id", requestID))

	return req, nil
}
