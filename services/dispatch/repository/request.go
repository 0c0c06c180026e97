package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mechafix/dispatch/internal/pkg/apperrors"
	"github.com/mechafix/dispatch/internal/pkg/logger"
	"github.com/mechafix/dispatch/internal/pkg/models"
)

const requestColumns = `
	id, requester_id, requester_name, requester_phone,
	origin_latitude, origin_longitude,
	issue_type, description, image_ref, sos, status,
	assigned_worker_id, otp_code, assigned_at,
	created_at, broadcast_at, accepted_at, completed_at, cancelled_at, updated_at
`

const candidateColumns = `
	request_id, mechanic_id, mechanic_name, distance_km, rating, status, rank, updated_at
`

// CreateRequest inserts a new request together with its candidate list
func (r *RequestRepository) CreateRequest(ctx context.Context, req *models.ServiceRequest) (*models.ServiceRequest, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO requests (` + requestColumns + `)
		VALUES (
			:id, :requester_id, :requester_name, :requester_phone,
			:origin_latitude, :origin_longitude,
			:issue_type, :description, :image_ref, :sos, :status,
			:assigned_worker_id, :otp_code, :assigned_at,
			:created_at, :broadcast_at, :accepted_at, :completed_at, :cancelled_at, :updated_at
		)
	`
	if _, err = tx.NamedExecContext(ctx, insertQuery, req.ToDTO()); err != nil {
		return nil, fmt.Errorf("failed to insert request: %w", err)
	}

	if err = insertCandidatesTx(ctx, tx, req.ID.String(), req.Candidates); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return req, nil
}

func insertCandidatesTx(ctx context.Context, tx *sqlx.Tx, requestID string, candidates []models.CandidateMatch) error {
	insertQuery := `
		INSERT INTO request_candidates (` + candidateColumns + `)
		VALUES (:request_id, :mechanic_id, :mechanic_name, :distance_km, :rating, :status, :rank, :updated_at)
	`
	now := time.Now()
	for i := range candidates {
		if candidates[i].UpdatedAt.IsZero() {
			candidates[i].UpdatedAt = now
		}
		if _, err := tx.NamedExecContext(ctx, insertQuery, candidates[i]); err != nil {
			return fmt.Errorf("failed to insert candidate for request %s: %w", requestID, err)
		}
	}
	return nil
}

// GetRequest retrieves a request with its candidate list
func (r *RequestRepository) GetRequest(ctx context.Context, requestID string) (*models.ServiceRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`

	var dto models.ServiceRequestDTO
	if err := r.db.GetContext(ctx, &dto, query, requestID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("request %s: %w", requestID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}

	candidates, err := r.loadCandidates(ctx, requestID)
	if err != nil {
		return nil, err
	}

	req := dto.ToRequest()
	req.Candidates = candidates
	return req, nil
}

func (r *RequestRepository) loadCandidates(ctx context.Context, requestID string) ([]models.CandidateMatch, error) {
	query := `SELECT ` + candidateColumns + ` FROM request_candidates WHERE request_id = $1 ORDER BY rank ASC`

	candidates := []models.CandidateMatch{}
	if err := r.db.SelectContext(ctx, &candidates, query, requestID); err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}
	return candidates, nil
}

// ListPendingByMechanic returns open requests where the mechanic still
// holds a pending candidate slot, newest first
func (r *RequestRepository) ListPendingByMechanic(ctx context.Context, mechanicID string) ([]*models.ServiceRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM requests
		WHERE status IN ($2, $3)
		  AND id IN (
			SELECT request_id FROM request_candidates
			WHERE mechanic_id = $1 AND status = $4
		  )
		ORDER BY created_at DESC
	`

	dtos := []models.ServiceRequestDTO{}
	err := r.db.SelectContext(ctx, &dtos, query, mechanicID,
		models.RequestStatusBroadcasting, models.RequestStatusTimedOut,
		models.CandidateStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}

	requests := make([]*models.ServiceRequest, 0, len(dtos))
	for i := range dtos {
		candidates, err := r.loadCandidates(ctx, dtos[i].ID.String())
		if err != nil {
			return nil, err
		}
		req := dtos[i].ToRequest()
		req.Candidates = candidates
		requests = append(requests, req)
	}
	return requests, nil
}

// UpdateRequestStatus applies a lifecycle transition after verifying it
// is legal from the current status
func (r *RequestRepository) UpdateRequestStatus(ctx context.Context, requestID string, status models.RequestStatus) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := lockRequestTx(ctx, tx, requestID)
	if err != nil {
		return err
	}
	if !current.Status.CanTransition(status) {
		return fmt.Errorf("cannot move request %s from %s to %s: %w",
			requestID, current.Status, status, apperrors.ErrConflict)
	}

	updateQuery := `
		UPDATE requests
		SET status = $2,
		    broadcast_at = CASE WHEN $2 = 'BROADCASTING' THEN NOW() ELSE broadcast_at END,
		    updated_at = NOW()
		WHERE id = $1
	`
	if _, err = tx.ExecContext(ctx, updateQuery, requestID, status); err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}

	return tx.Commit()
}

// ReplaceCandidates swaps the request's candidate list, used by the
// widened fallback search
func (r *RequestRepository) ReplaceCandidates(ctx context.Context, requestID string, candidates []models.CandidateMatch) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = lockRequestTx(ctx, tx, requestID); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM request_candidates WHERE request_id = $1`, requestID); err != nil {
		return fmt.Errorf("failed to clear candidates: %w", err)
	}

	// fallback hits carry no request ID yet
	reqID, err := uuid.Parse(requestID)
	if err != nil {
		return fmt.Errorf("invalid request ID %q: %w", requestID, apperrors.ErrNotFound)
	}
	for i := range candidates {
		candidates[i].RequestID = reqID
	}

	if err = insertCandidatesTx(ctx, tx, requestID, candidates); err != nil {
		return err
	}

	return tx.Commit()
}

// lockRequestTx loads a request row under FOR UPDATE
func lockRequestTx(ctx context.Context, tx *sqlx.Tx, requestID string) (*models.ServiceRequestDTO, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1 FOR UPDATE`

	var dto models.ServiceRequestDTO
	if err := tx.GetContext(ctx, &dto, query, requestID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("request %s: %w", requestID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock request: %w", err)
	}
	return &dto, nil
}

func loadCandidatesTx(ctx context.Context, tx *sqlx.Tx, requestID string) ([]models.CandidateMatch, error) {
	query := `SELECT ` + candidateColumns + ` FROM request_candidates WHERE request_id = $1 ORDER BY rank ASC FOR UPDATE`

	candidates := []models.CandidateMatch{}
	if err := tx.SelectContext(ctx, &candidates, query, requestID); err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}
	return candidates, nil
}

// AcceptCandidate records a mechanic's accept under row locks. The first
// accept wins: a repeat accept by the winner returns the stored state, a
// different mechanic gets a conflict.
func (r *RequestRepository) AcceptCandidate(ctx context.Context, requestID, mechanicID string) (*models.ServiceRequest, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	dto, err := lockRequestTx(ctx, tx, requestID)
	if err != nil {
		return nil, err
	}
	candidates, err := loadCandidatesTx(ctx, tx, requestID)
	if err != nil {
		return nil, err
	}

	req := dto.ToRequest()
	req.Candidates = candidates

	slot := findCandidate(candidates, mechanicID)
	if slot == nil {
		return nil, fmt.Errorf("mechanic %s is not a candidate for request %s: %w",
			mechanicID, requestID, apperrors.ErrNotFound)
	}

	if winner := req.AcceptedCandidate(); winner != nil {
		if winner.MechanicID.String() == mechanicID {
			// repeat accept by the winner is idempotent
			return req, tx.Commit()
		}
		return nil, fmt.Errorf("request %s already accepted by another mechanic: %w",
			requestID, apperrors.ErrConflict)
	}

	if req.Status != models.RequestStatusBroadcasting && req.Status != models.RequestStatusTimedOut {
		return nil, fmt.Errorf("request %s is %s and cannot be accepted: %w",
			requestID, req.Status, apperrors.ErrConflict)
	}

	if engaged, err := r.mechanicActiveRequest(ctx, mechanicID); err == nil && engaged != "" && engaged != requestID {
		return nil, fmt.Errorf("mechanic %s is already engaged on request %s: %w",
			mechanicID, engaged, apperrors.ErrConflict)
	}

	now := time.Now()
	_, err = tx.ExecContext(ctx,
		`UPDATE request_candidates SET status = $3, updated_at = $4 WHERE request_id = $1 AND mechanic_id = $2`,
		requestID, mechanicID, models.CandidateStatusAccepted, now)
	if err != nil {
		return nil, fmt.Errorf("failed to mark candidate accepted: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		`UPDATE requests SET status = $2, accepted_at = $3, updated_at = $3 WHERE id = $1`,
		requestID, models.RequestStatusMechanicAccepted, now)
	if err != nil {
		return nil, fmt.Errorf("failed to mark request accepted: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if err := r.setMechanicActiveRequest(ctx, mechanicID, requestID); err != nil {
		logger.Warn("Failed to set mechanic engagement pointer",
			logger.String("request_id", requestID),
			logger.String("mechanic_id", mechanicID),
			logger.Err(err))
	}

	slot.Status = models.CandidateStatusAccepted
	slot.UpdatedAt = now
	req.Status = models.RequestStatusMechanicAccepted
	req.AcceptedAt = &now
	req.UpdatedAt = now
	return req, nil
}

// RejectCandidate records a mechanic's reject. When the last pending
// candidate rejects while the request is still broadcasting, the request
// moves to TIMED_OUT.
func (r *RequestRepository) RejectCandidate(ctx context.Context, requestID, mechanicID string) (*models.ServiceRequest, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	dto, err := lockRequestTx(ctx, tx, requestID)
	if err != nil {
		return nil, err
	}
	candidates, err := loadCandidatesTx(ctx, tx, requestID)
	if err != nil {
		return nil, err
	}

	req := dto.ToRequest()
	req.Candidates = candidates

	slot := findCandidate(candidates, mechanicID)
	if slot == nil {
		return nil, fmt.Errorf("mechanic %s is not a candidate for request %s: %w",
			mechanicID, requestID, apperrors.ErrNotFound)
	}
	if slot.Status == models.CandidateStatusAccepted || slot.Status == models.CandidateStatusCompleted {
		return nil, fmt.Errorf("mechanic %s already accepted request %s: %w",
			mechanicID, requestID, apperrors.ErrConflict)
	}

	now := time.Now()
	if slot.Status != models.CandidateStatusRejected {
		_, err = tx.ExecContext(ctx,
			`UPDATE request_candidates SET status = $3, updated_at = $4 WHERE request_id = $1 AND mechanic_id = $2`,
			requestID, mechanicID, models.CandidateStatusRejected, now)
		if err != nil {
			return nil, fmt.Errorf("failed to mark candidate rejected: %w", err)
		}
		slot.Status = models.CandidateStatusRejected
		slot.UpdatedAt = now
	}

	if req.Status == models.RequestStatusBroadcasting && allRejected(candidates) {
		_, err = tx.ExecContext(ctx,
			`UPDATE requests SET status = $2, updated_at = $3 WHERE id = $1`,
			requestID, models.RequestStatusTimedOut, now)
		if err != nil {
			return nil, fmt.Errorf("failed to time out request: %w", err)
		}
		req.Status = models.RequestStatusTimedOut
		req.UpdatedAt = now
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return req, nil
}

// AssignWorker binds a worker to an accepted request. Assignment is
// exclusive and the OTP is written exactly once: a retry by the same
// mechanic with the same worker returns the stored assignment unchanged.
func (r *RequestRepository) AssignWorker(ctx context.Context, requestID, mechanicID string, assignment *models.Assignment) (*models.ServiceRequest, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	dto, err := lockRequestTx(ctx, tx, requestID)
	if err != nil {
		return nil, err
	}
	candidates, err := loadCandidatesTx(ctx, tx, requestID)
	if err != nil {
		return nil, err
	}

	req := dto.ToRequest()
	req.Candidates = candidates

	winner := req.AcceptedCandidate()
	if winner == nil || winner.MechanicID.String() != mechanicID {
		return nil, fmt.Errorf("mechanic %s does not hold the accepted slot for request %s: %w",
			mechanicID, requestID, apperrors.ErrForbidden)
	}

	if req.Assignment != nil {
		if req.Assignment.WorkerID == assignment.WorkerID {
			// retry with the same worker keeps the original OTP
			return req, tx.Commit()
		}
		return nil, fmt.Errorf("request %s already has worker %s assigned: %w",
			requestID, req.Assignment.WorkerID, apperrors.ErrConflict)
	}

	if req.Status != models.RequestStatusMechanicAccepted {
		return nil, fmt.Errorf("request %s is %s and cannot take a worker: %w",
			requestID, req.Status, apperrors.ErrConflict)
	}

	updateQuery := `
		UPDATE requests
		SET status = $2,
		    assigned_worker_id = $3,
		    otp_code = COALESCE(otp_code, $4),
		    assigned_at = $5,
		    updated_at = $5
		WHERE id = $1
	`
	_, err = tx.ExecContext(ctx, updateQuery, requestID,
		models.RequestStatusWorkerAssigned, assignment.WorkerID, assignment.OTPCode, assignment.AssignedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to assign worker: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	req.Status = models.RequestStatusWorkerAssigned
	req.Assignment = &models.Assignment{
		RequestID:  req.ID,
		WorkerID:   assignment.WorkerID,
		OTPCode:    assignment.OTPCode,
		AssignedAt: assignment.AssignedAt,
	}
	req.UpdatedAt = assignment.AssignedAt
	return req, nil
}

// CompleteRequest closes a worker-assigned request. Only the accepted
// mechanic may complete; a repeat complete returns the stored state.
func (r *RequestRepository) CompleteRequest(ctx context.Context, requestID, mechanicID string) (*models.ServiceRequest, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	dto, err := lockRequestTx(ctx, tx, requestID)
	if err != nil {
		return nil, err
	}
	candidates, err := loadCandidatesTx(ctx, tx, requestID)
	if err != nil {
		return nil, err
	}

	req := dto.ToRequest()
	req.Candidates = candidates

	winner := req.AcceptedCandidate()
	if winner == nil || winner.MechanicID.String() != mechanicID {
		return nil, fmt.Errorf("mechanic %s does not hold the accepted slot for request %s: %w",
			mechanicID, requestID, apperrors.ErrForbidden)
	}

	if req.Status == models.RequestStatusCompleted {
		return req, tx.Commit()
	}
	if req.Status != models.RequestStatusWorkerAssigned {
		return nil, fmt.Errorf("request %s is %s and cannot be completed: %w",
			requestID, req.Status, apperrors.ErrConflict)
	}

	now := time.Now()
	_, err = tx.ExecContext(ctx,
		`UPDATE requests SET status = $2, completed_at = $3, updated_at = $3 WHERE id = $1`,
		requestID, models.RequestStatusCompleted, now)
	if err != nil {
		return nil, fmt.Errorf("failed to complete request: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		`UPDATE request_candidates SET status = $3, updated_at = $4 WHERE request_id = $1 AND mechanic_id = $2`,
		requestID, mechanicID, models.CandidateStatusCompleted, now)
	if err != nil {
		return nil, fmt.Errorf("failed to mark candidate completed: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if err := r.clearMechanicActiveRequest(ctx, mechanicID); err != nil {
		logger.Warn("Failed to clear mechanic engagement pointer",
			logger.String("request_id", requestID),
			logger.String("mechanic_id", mechanicID),
			logger.Err(err))
	}

	winner.Status = models.CandidateStatusCompleted
	winner.UpdatedAt = now
	req.Status = models.RequestStatusCompleted
	req.CompletedAt = &now
	req.UpdatedAt = now
	return req, nil
}

// CancelRequest cancels a request from any non-terminal state. A repeat
// cancel returns the stored state.
func (r *RequestRepository) CancelRequest(ctx context.Context, requestID string) (*models.ServiceRequest, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	dto, err := lockRequestTx(ctx, tx, requestID)
	if err != nil {
		return nil, err
	}
	candidates, err := loadCandidatesTx(ctx, tx, requestID)
	if err != nil {
		return nil, err
	}

	req := dto.ToRequest()
	req.Candidates = candidates

	if req.Status == models.RequestStatusCancelled {
		return req, tx.Commit()
	}
	if req.Status == models.RequestStatusCompleted {
		return nil, fmt.Errorf("request %s is completed and cannot be cancelled: %w",
			requestID, apperrors.ErrConflict)
	}

	now := time.Now()
	_, err = tx.ExecContext(ctx,
		`UPDATE requests SET status = $2, cancelled_at = $3, updated_at = $3 WHERE id = $1`,
		requestID, models.RequestStatusCancelled, now)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel request: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if winner := req.AcceptedCandidate(); winner != nil {
		if err := r.clearMechanicActiveRequest(ctx, winner.MechanicID.String()); err != nil {
			logger.Warn("Failed to clear mechanic engagement pointer",
				logger.String("request_id", requestID),
				logger.String("mechanic_id", winner.MechanicID.String()),
				logger.Err(err))
		}
	}

	req.Status = models.RequestStatusCancelled
	req.CancelledAt = &now
	req.UpdatedAt = now
	return req, nil
}

func findCandidate(candidates []models.CandidateMatch, mechanicID string) *models.CandidateMatch {
	for i := range candidates {
		if candidates[i].MechanicID.String() == mechanicID {
			return &candidates[i]
		}
	}
	return nil
}

func allRejected(candidates []models.CandidateMatch) bool {
	if len(candidates) == 0 {
		return false
	}
	for i := range candidates {
		if candidates[i].Status != models.CandidateStatusRejected {
			return false
		}
	}
	return true
}
