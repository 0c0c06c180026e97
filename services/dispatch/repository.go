package dispatch

import (
	"context"

	"github.com/mechafix/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks -source=repository.go

// RequestRepo defines the interface for service-request persistence.
// AcceptCandidate and AssignWorker carry the single-assignment guarantees
// and must be implemented as conditional updates.
type RequestRepo interface {
	CreateRequest(ctx context.Context, req *models.ServiceRequest) (*models.ServiceRequest, error)
	GetRequest(ctx context.Context, requestID string) (*models.ServiceRequest, error)
	ListPendingByMechanic(ctx context.Context, mechanicID string) ([]*models.ServiceRequest, error)
	UpdateRequestStatus(ctx context.Context, requestID string, status models.RequestStatus) error
	ReplaceCandidates(ctx context.Context, requestID string, candidates []models.CandidateMatch) error

	AcceptCandidate(ctx context.Context, requestID, mechanicID string) (*models.ServiceRequest, error)
	RejectCandidate(ctx context.Context, requestID, mechanicID string) (*models.ServiceRequest, error)
	AssignWorker(ctx context.Context, requestID, mechanicID string, assignment *models.Assignment) (*models.ServiceRequest, error)
	CompleteRequest(ctx context.Context, requestID, mechanicID string) (*models.ServiceRequest, error)
	CancelRequest(ctx context.Context, requestID string) (*models.ServiceRequest, error)

	// Active request pointers (best-effort cache, never authoritative)
	SetActiveRequest(ctx context.Context, requesterID, requestID string) error
	GetActiveRequest(ctx context.Context, requesterID string) (string, error)
	ClearActiveRequest(ctx context.Context, requesterID string) error
}

// MechanicRepo defines the interface for the available-mechanic geo pool
// and worker records
type MechanicRepo interface {
	AddAvailableMechanic(ctx context.Context, mechanic *models.NearbyMechanic, issueTypes []string) error
	RemoveAvailableMechanic(ctx context.Context, mechanicID string) error
	FindNearbyMechanics(ctx context.Context, location *models.Location, issueType string, radiusKm float64) ([]*models.NearbyMechanic, error)

	GetWorker(ctx context.Context, workerID string) (*models.Worker, error)
	ListWorkers(ctx context.Context, mechanicID string) ([]*models.Worker, error)
	CreateWorker(ctx context.Context, worker *models.Worker) (*models.Worker, error)
}
