package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mechafix/dispatch/internal/pkg/apperrors"
	"github.com/mechafix/dispatch/internal/pkg/logger"
	"github.com/mechafix/dispatch/internal/pkg/models"
	"github.com/mechafix/dispatch/internal/utils"
)

// ListWorkers returns the mechanic organization's field workers
func (uc *DispatchUC) ListWorkers(ctx context.Context, mechanicID string) ([]*models.Worker, error) {
	return uc.mechanicRepo.ListWorkers(ctx, mechanicID)
}

// RegisterWorker adds a field worker to a mechanic organization. Phone
// numbers are normalized to their trailing ten digits before storage.
func (uc *DispatchUC) RegisterWorker(ctx context.Context, mechanicID string, worker *models.Worker) (*models.Worker, error) {
	mechID, err := uuid.Parse(mechanicID)
	if err != nil {
		return nil, fmt.Errorf("invalid mechanic ID %q: %w", mechanicID, apperrors.ErrNotFound)
	}
	if worker.Name == "" {
		return nil, fmt.Errorf("worker name is required: %w", apperrors.ErrValidation)
	}
	phone := utils.NormalizePhone(worker.Phone)
	if !utils.ValidPhone(phone) {
		return nil, fmt.Errorf("invalid worker phone %q: %w", worker.Phone, apperrors.ErrValidation)
	}

	now := time.Now()
	worker.ID = uuid.New()
	worker.MechanicID = mechID
	worker.Phone = phone
	worker.Available = true
	worker.CreatedAt = now
	worker.UpdatedAt = now

	created, err := uc.mechanicRepo.CreateWorker(ctx, worker)
	if err != nil {
		return nil, fmt.Errorf("failed to register worker: %w", err)
	}

	logger.Info("Worker registered",
		logger.String("worker_id", created.ID.String()),
		logger.String("mechanic_id", mechanicID))

	return created, nil
}

// AssignWorker binds one of the accepted mechanic's workers to the
// request and generates the verification OTP. The worker must belong to
// the acting mechanic; the repository enforces single assignment and
// OTP stability under concurrent retries.
func (uc *DispatchUC) AssignWorker(ctx context.Context, requestID, mechanicID, workerID string) (*models.ServiceRequest, error) {
	wID, err := uuid.Parse(workerID)
	if err != nil {
		return nil, fmt.Errorf("invalid worker ID %q: %w", workerID, apperrors.ErrNotFound)
	}

	worker, err := uc.mechanicRepo.GetWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}
	if worker.MechanicID.String() != mechanicID {
		return nil, fmt.Errorf("worker %s does not belong to mechanic %s: %w",
			workerID, mechanicID, apperrors.ErrForbidden)
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		return nil, fmt.Errorf("failed to generate OTP: %w", err)
	}

	assignment := &models.Assignment{
		WorkerID:   wID,
		OTPCode:    otp,
		AssignedAt: time.Now(),
	}
	req, err := uc.requestRepo.AssignWorker(ctx, requestID, mechanicID, assignment)
	if err != nil {
		return nil, err
	}

	logger.Info("Worker assigned",
		logger.String("request_id", requestID),
		logger.String("mechanic_id", mechanicID),
		logger.String("worker_id", workerID))

	return req, nil
}
