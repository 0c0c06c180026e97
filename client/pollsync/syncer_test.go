package pollsync

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mechafix/dispatch/internal/pkg/apperrors"
	"github.com/mechafix/dispatch/internal/pkg/models"
)

// fakeClient scripts the dispatch API surface for syncer tests
type fakeClient struct {
	mu sync.Mutex

	requests map[string]*models.ServiceRequest
	activeID string

	getErr    error
	activeErr error

	getCalls    int
	activeCalls int
	listCalls   int
}

func newFakeClient() *fakeClient {
	return &fakeClient{requests: make(map[string]*models.ServiceRequest)}
}

func (f *fakeClient) GetRequest(_ context.Context, requestID string) (*models.ServiceRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	req, ok := f.requests[requestID]
	if !ok {
		return nil, fmt.Errorf("request %s: %w", requestID, apperrors.ErrNotFound)
	}
	return req, nil
}

func (f *fakeClient) ActiveRequestID(_ context.Context, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.activeCalls++
	if f.activeErr != nil {
		return "", f.activeErr
	}
	return f.activeID, nil
}

func (f *fakeClient) ListPendingRequests(_ context.Context, _ string) ([]*models.ServiceRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	out := []*models.ServiceRequest{}
	for _, req := range f.requests {
		out = append(out, req)
	}
	return out, nil
}

func (f *fakeClient) setRequest(req *models.ServiceRequest) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests[req.ID.String()] = req
}

func scriptedRequest(status models.RequestStatus) *models.ServiceRequest {
	return &models.ServiceRequest{
		ID:          uuid.New(),
		RequesterID: uuid.New(),
		Status:      status,
		UpdatedAt:   time.Now(),
	}
}

func TestSyncOnce_ResolvesViaActivePointer(t *testing.T) {
	// Arrange
	client := newFakeClient()
	req := scriptedRequest(models.RequestStatusBroadcasting)
	client.setRequest(req)
	client.activeID = req.ID.String()

	syncer := NewSyncer(client, req.RequesterID.String())

	// Act
	done := syncer.SyncOnce(context.Background())

	// Assert
	assert.False(t, done)
	snap := syncer.Snapshot()
	require.NotNil(t, snap.Request)
	assert.Equal(t, req.ID, snap.Request.ID)
	assert.Equal(t, 0, snap.Failures)
}

func TestSyncOnce_CachedIDShortCircuitsPointerLookup(t *testing.T) {
	// Arrange
	client := newFakeClient()
	req := scriptedRequest(models.RequestStatusBroadcasting)
	client.setRequest(req)
	client.activeID = req.ID.String()

	syncer := NewSyncer(client, req.RequesterID.String())
	require.False(t, syncer.SyncOnce(context.Background()))
	pointerLookups := client.activeCalls

	// Act: second poll should hit the cached request directly
	syncer.SyncOnce(context.Background())

	// Assert
	assert.Equal(t, pointerLookups, client.activeCalls)
	assert.GreaterOrEqual(t, client.getCalls, 2)
}

func TestSyncOnce_IdempotentApply(t *testing.T) {
	// Arrange
	client := newFakeClient()
	req := scriptedRequest(models.RequestStatusBroadcasting)
	client.setRequest(req)
	client.activeID = req.ID.String()

	updates := 0
	syncer := NewSyncer(client, req.RequesterID.String())
	syncer.OnUpdate = func(Snapshot) { updates++ }

	// Act: same server state applied three times
	syncer.SyncOnce(context.Background())
	syncer.SyncOnce(context.Background())
	syncer.SyncOnce(context.Background())

	// Assert: only the first apply counts as a change
	assert.Equal(t, 1, updates)
}

func TestSyncOnce_FailureKeepsLastKnownGood(t *testing.T) {
	// Arrange
	client := newFakeClient()
	req := scriptedRequest(models.RequestStatusMechanicAccepted)
	client.setRequest(req)
	client.activeID = req.ID.String()

	syncer := NewSyncer(client, req.RequesterID.String())
	require.False(t, syncer.SyncOnce(context.Background()))

	client.mu.Lock()
	client.getErr = fmt.Errorf("lookup: %w", apperrors.ErrTransient)
	client.activeErr = fmt.Errorf("lookup: %w", apperrors.ErrTransient)
	client.mu.Unlock()

	// Act
	done := syncer.SyncOnce(context.Background())

	// Assert
	assert.False(t, done)
	snap := syncer.Snapshot()
	require.NotNil(t, snap.Request)
	assert.Equal(t, req.ID, snap.Request.ID)
	assert.Equal(t, 1, snap.Failures)
}

func TestSyncOnce_CompletedStopsPolling(t *testing.T) {
	// Arrange
	client := newFakeClient()
	req := scriptedRequest(models.RequestStatusBroadcasting)
	client.setRequest(req)
	client.activeID = req.ID.String()

	syncer := NewSyncer(client, req.RequesterID.String())
	require.False(t, syncer.SyncOnce(context.Background()))

	completed := *req
	completed.Status = models.RequestStatusCompleted
	completed.UpdatedAt = time.Now().Add(time.Second)
	client.setRequest(&completed)

	// Act
	done := syncer.SyncOnce(context.Background())

	// Assert
	assert.True(t, done)
	assert.Equal(t, "", syncer.lastKnownRequestID())
	assert.Equal(t, models.RequestStatusCompleted, syncer.Snapshot().Request.Status)
}

func TestSyncOnce_CancelledContextDiscardsResult(t *testing.T) {
	// Arrange
	client := newFakeClient()
	req := scriptedRequest(models.RequestStatusBroadcasting)
	client.setRequest(req)
	client.activeID = req.ID.String()

	syncer := NewSyncer(client, req.RequesterID.String())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Act
	done := syncer.SyncOnce(ctx)

	// Assert
	assert.False(t, done)
	assert.Nil(t, syncer.Snapshot().Request)
}

func TestRun_StopsOnTerminalState(t *testing.T) {
	// Arrange
	client := newFakeClient()
	req := scriptedRequest(models.RequestStatusCompleted)
	client.setRequest(req)
	client.activeID = req.ID.String()

	// the first cycle runs before any tick, so a terminal request stops
	// Run without waiting out the interval
	syncer := NewSyncer(client, req.RequesterID.String())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// Act
	err := syncer.Run(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusCompleted, syncer.Snapshot().Request.Status)
}

func TestWithInterval_ClampsToPollingBand(t *testing.T) {
	// Arrange
	client := newFakeClient()
	actorID := uuid.NewString()

	// Act / Assert
	assert.Equal(t, DefaultInterval, NewSyncer(client, actorID).interval)
	assert.Equal(t, MinInterval, NewSyncer(client, actorID, WithInterval(time.Second)).interval)
	assert.Equal(t, MaxInterval, NewSyncer(client, actorID, WithInterval(30*time.Second)).interval)
	assert.Equal(t, 7*time.Second, NewSyncer(client, actorID, WithInterval(7*time.Second)).interval)
}
