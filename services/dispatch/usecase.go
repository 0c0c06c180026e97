package dispatch

import (
	"context"

	"github.com/mechafix/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks -source=usecase.go

// DispatchUC defines the interface for the breakdown-request dispatch
// and matching business logic
type DispatchUC interface {
	// Requester operations
	CreateRequest(ctx context.Context, req *models.ServiceRequest) (*models.ServiceRequest, error)
	GetRequest(ctx context.Context, requestID string) (*models.ServiceRequest, error)
	CancelRequest(ctx context.Context, requestID string) (*models.ServiceRequest, error)
	ActiveRequestID(ctx context.Context, requesterID string) (string, error)

	// Candidate search
	FindCandidates(ctx context.Context, origin *models.Location, issueType string, offset, limit int) ([]models.CandidateMatch, error)

	// Mechanic operations
	ListPendingRequests(ctx context.Context, mechanicID string) ([]*models.ServiceRequest, error)
	AcceptRequest(ctx context.Context, requestID, mechanicID string) (*models.ServiceRequest, error)
	RejectRequest(ctx context.Context, requestID, mechanicID string) (*models.ServiceRequest, error)
	AssignWorker(ctx context.Context, requestID, mechanicID, workerID string) (*models.ServiceRequest, error)
	CompleteRequest(ctx context.Context, requestID, mechanicID string) (*models.ServiceRequest, error)

	// Worker management
	ListWorkers(ctx context.Context, mechanicID string) ([]*models.Worker, error)
	RegisterWorker(ctx context.Context, mechanicID string, worker *models.Worker) (*models.Worker, error)

	// Pool maintenance, fed by mechanic availability beacons
	SyncMechanicPool(ctx context.Context, event models.MechanicPoolEvent) error
}
