package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mechafix/dispatch/internal/pkg/apperrors"
	"github.com/mechafix/dispatch/internal/pkg/constants"
	"github.com/mechafix/dispatch/internal/pkg/database"
	"github.com/mechafix/dispatch/internal/pkg/models"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func setupMockRedis(t *testing.T) (*database.RedisClient, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to create miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return &database.RedisClient{Client: client}, mr
}

var requestRowColumns = []string{
	"id", "requester_id", "requester_name", "requester_phone",
	"origin_latitude", "origin_longitude",
	"issue_type", "description", "image_ref", "sos", "status",
	"assigned_worker_id", "otp_code", "assigned_at",
	"created_at", "broadcast_at", "accepted_at", "completed_at", "cancelled_at", "updated_at",
}

var candidateRowColumns = []string{
	"request_id", "mechanic_id", "mechanic_name", "distance_km", "rating", "status", "rank", "updated_at",
}

func requestRow(id, requesterID uuid.UUID, status models.RequestStatus, now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(requestRowColumns).AddRow(
		id, requesterID, "Rina", "9876543210",
		-6.175392, 106.827153,
		"battery", "dead battery", "", false, status,
		nil, nil, nil,
		now, nil, nil, nil, nil, now)
}

func TestCreateRequest_Success(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	redisClient, miniRedis := setupMockRedis(t)
	defer miniRedis.Close()

	repo := NewRequestRepository(&models.Config{}, db, redisClient)

	requestID := uuid.New()
	requesterID := uuid.New()
	mechanicID := uuid.New()
	now := time.Now()

	req := &models.ServiceRequest{
		ID:             requestID,
		RequesterID:    requesterID,
		RequesterName:  "Rina",
		RequesterPhone: "9876543210",
		Origin:         models.Location{Latitude: -6.175392, Longitude: 106.827153},
		IssueType:      "battery",
		Status:         models.RequestStatusCreated,
		Candidates: []models.CandidateMatch{
			{
				RequestID:  requestID,
				MechanicID: mechanicID,
				DistanceKm: 1.2,
				Rating:     4.5,
				Status:     models.CandidateStatusPending,
				Rank:       1,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO requests")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO request_candidates")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	// Act
	created, err := repo.CreateRequest(context.Background(), req)

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, requestID, created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRequest_Success(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	redisClient, miniRedis := setupMockRedis(t)
	defer miniRedis.Close()

	repo := NewRequestRepository(&models.Config{}, db, redisClient)

	requestID := uuid.New()
	requesterID := uuid.New()
	mechanicID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM requests WHERE id = $1")).
		WithArgs(requestID.String()).
		WillReturnRows(requestRow(requestID, requesterID, models.RequestStatusBroadcasting, now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM request_candidates WHERE request_id = $1 ORDER BY rank ASC")).
		WithArgs(requestID.String()).
		WillReturnRows(sqlmock.NewRows(candidateRowColumns).
			AddRow(requestID, mechanicID, "Garage A", 1.2, 4.5, models.CandidateStatusPending, 1, now))

	// Act
	req, err := repo.GetRequest(context.Background(), requestID.String())

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, requestID, req.ID)
	assert.Equal(t, models.RequestStatusBroadcasting, req.Status)
	assert.Len(t, req.Candidates, 1)
	assert.Equal(t, mechanicID, req.Candidates[0].MechanicID)
	assert.Equal(t, 1, req.Candidates[0].Rank)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRequest_NotFound(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	redisClient, miniRedis := setupMockRedis(t)
	defer miniRedis.Close()

	repo := NewRequestRepository(&models.Config{}, db, redisClient)

	requestID := uuid.New().String()
	mock.ExpectQuery(regexp.QuoteMeta("FROM requests WHERE id = $1")).
		WithArgs(requestID).
		WillReturnError(sql.ErrNoRows)

	// Act
	req, err := repo.GetRequest(context.Background(), requestID)

	// Assert
	assert.Nil(t, req)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRequestStatus_Success(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	redisClient, miniRedis := setupMockRedis(t)
	defer miniRedis.Close()

	repo := NewRequestRepository(&models.Config{}, db, redisClient)

	requestID := uuid.New()
	requesterID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(requestID.String()).
		WillReturnRows(requestRow(requestID, requesterID, models.RequestStatusCreated, now))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE requests")).
		WithArgs(requestID.String(), models.RequestStatusBroadcasting).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := repo.UpdateRequestStatus(context.Background(), requestID.String(), models.RequestStatusBroadcasting)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRequestStatus_IllegalTransition(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	redisClient, miniRedis := setupMockRedis(t)
	defer miniRedis.Close()

	repo := NewRequestRepository(&models.Config{}, db, redisClient)

	requestID := uuid.New()
	requesterID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(requestID.String()).
		WillReturnRows(requestRow(requestID, requesterID, models.RequestStatusCompleted, now))
	mock.ExpectRollback()

	// Act
	err := repo.UpdateRequestStatus(context.Background(), requestID.String(), models.RequestStatusBroadcasting)

	// Assert
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func assignedRequestRow(id, requesterID, workerID uuid.UUID, otp string, now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(requestRowColumns).AddRow(
		id, requesterID, "Rina", "9876543210",
		-6.175392, 106.827153,
		"battery", "dead battery", "", false, models.RequestStatusWorkerAssigned,
		workerID, otp, now,
		now, nil, now, nil, nil, now)
}

func TestAcceptCandidate_Success_SetsEngagementPointer(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	redisClient, miniRedis := setupMockRedis(t)
	defer miniRedis.Close()

	repo := NewRequestRepository(&models.Config{}, db, redisClient)

	requestID := uuid.New()
	requesterID := uuid.New()
	mechanicID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM requests WHERE id = $1 FOR UPDATE")).
		WithArgs(requestID.String()).
		WillReturnRows(requestRow(requestID, requesterID, models.RequestStatusBroadcasting, now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM request_candidates WHERE request_id = $1 ORDER BY rank ASC FOR UPDATE")).
		WithArgs(requestID.String()).
		WillReturnRows(sqlmock.NewRows(candidateRowColumns).
			AddRow(requestID, mechanicID, "Garage A", 1.2, 4.5, models.CandidateStatusPending, 1, now))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE request_candidates")).
		WithArgs(requestID.String(), mechanicID.String(), models.CandidateStatusAccepted, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE requests")).
		WithArgs(requestID.String(), models.RequestStatusMechanicAccepted, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	req, err := repo.AcceptCandidate(context.Background(), requestID.String(), mechanicID.String())

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusMechanicAccepted, req.Status)

	pointerKey := fmt.Sprintf(constants.KeyActiveRequestMechanic, mechanicID.String())
	engaged, err := miniRedis.Get(pointerKey)
	assert.NoError(t, err)
	assert.Equal(t, requestID.String(), engaged)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptCandidate_RepeatAcceptByWinnerIsIdempotent(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	redisClient, miniRedis := setupMockRedis(t)
	defer miniRedis.Close()

	repo := NewRequestRepository(&models.Config{}, db, redisClient)

	requestID := uuid.New()
	requesterID := uuid.New()
	winnerID := uuid.New()
	now := time.Now()

	// the winner retries its accept; no UPDATE may run again
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM requests WHERE id = $1 FOR UPDATE")).
		WithArgs(requestID.String()).
		WillReturnRows(requestRow(requestID, requesterID, models.RequestStatusMechanicAccepted, now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM request_candidates WHERE request_id = $1 ORDER BY rank ASC FOR UPDATE")).
		WithArgs(requestID.String()).
		WillReturnRows(sqlmock.NewRows(candidateRowColumns).
			AddRow(requestID, winnerID, "Garage A", 1.2, 4.5, models.CandidateStatusAccepted, 1, now))
	mock.ExpectCommit()

	// Act
	req, err := repo.AcceptCandidate(context.Background(), requestID.String(), winnerID.String())

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusMechanicAccepted, req.Status)
	require.NotNil(t, req.AcceptedCandidate())
	assert.Equal(t, winnerID, req.AcceptedCandidate().MechanicID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptCandidate_MechanicEngagedElsewhere(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	redisClient, miniRedis := setupMockRedis(t)
	defer miniRedis.Close()

	repo := NewRequestRepository(&models.Config{}, db, redisClient)

	requestID := uuid.New()
	requesterID := uuid.New()
	mechanicID := uuid.New()
	now := time.Now()

	// the mechanic already holds an accepted slot on another request
	pointerKey := fmt.Sprintf(constants.KeyActiveRequestMechanic, mechanicID.String())
	miniRedis.Set(pointerKey, uuid.NewString())

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM requests WHERE id = $1 FOR UPDATE")).
		WithArgs(requestID.String()).
		WillReturnRows(requestRow(requestID, requesterID, models.RequestStatusBroadcasting, now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM request_candidates WHERE request_id = $1 ORDER BY rank ASC FOR UPDATE")).
		WithArgs(requestID.String()).
		WillReturnRows(sqlmock.NewRows(candidateRowColumns).
			AddRow(requestID, mechanicID, "Garage A", 1.2, 4.5, models.CandidateStatusPending, 1, now))
	mock.ExpectRollback()

	// Act
	req, err := repo.AcceptCandidate(context.Background(), requestID.String(), mechanicID.String())

	// Assert
	assert.Nil(t, req)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptCandidate_AlreadyTakenByOther(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	redisClient, miniRedis := setupMockRedis(t)
	defer miniRedis.Close()

	repo := NewRequestRepository(&models.Config{}, db, redisClient)

	requestID := uuid.New()
	requesterID := uuid.New()
	winnerID := uuid.New()
	loserID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM requests WHERE id = $1 FOR UPDATE")).
		WithArgs(requestID.String()).
		WillReturnRows(requestRow(requestID, requesterID, models.RequestStatusMechanicAccepted, now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM request_candidates WHERE request_id = $1 ORDER BY rank ASC FOR UPDATE")).
		WithArgs(requestID.String()).
		WillReturnRows(sqlmock.NewRows(candidateRowColumns).
			AddRow(requestID, winnerID, "Garage A", 1.2, 4.5, models.CandidateStatusAccepted, 1, now).
			AddRow(requestID, loserID, "Garage B", 2.8, 4.0, models.CandidateStatusPending, 2, now))
	mock.ExpectRollback()

	// Act
	req, err := repo.AcceptCandidate(context.Background(), requestID.String(), loserID.String())

	// Assert
	assert.Nil(t, req)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRejectCandidate_LastRejectTimesOut(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	redisClient, miniRedis := setupMockRedis(t)
	defer miniRedis.Close()

	repo := NewRequestRepository(&models.Config{}, db, redisClient)

	requestID := uuid.New()
	requesterID := uuid.New()
	mechanicID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM requests WHERE id = $1 FOR UPDATE")).
		WithArgs(requestID.String()).
		WillReturnRows(requestRow(requestID, requesterID, models.RequestStatusBroadcasting, now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM request_candidates WHERE request_id = $1 ORDER BY rank ASC FOR UPDATE")).
		WithArgs(requestID.String()).
		WillReturnRows(sqlmock.NewRows(candidateRowColumns).
			AddRow(requestID, mechanicID, "Garage A", 1.2, 4.5, models.CandidateStatusPending, 1, now))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE request_candidates")).
		WithArgs(requestID.String(), mechanicID.String(), models.CandidateStatusRejected, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE requests")).
		WithArgs(requestID.String(), models.RequestStatusTimedOut, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	req, err := repo.RejectCandidate(context.Background(), requestID.String(), mechanicID.String())

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusTimedOut, req.Status)
	assert.Equal(t, models.CandidateStatusRejected, req.Candidates[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignWorker_OnlyWinnerMayAssign(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	redisClient, miniRedis := setupMockRedis(t)
	defer miniRedis.Close()

	repo := NewRequestRepository(&models.Config{}, db, redisClient)

	requestID := uuid.New()
	requesterID := uuid.New()
	winnerID := uuid.New()
	otherID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM requests WHERE id = $1 FOR UPDATE")).
		WithArgs(requestID.String()).
		WillReturnRows(requestRow(requestID, requesterID, models.RequestStatusMechanicAccepted, now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM request_candidates WHERE request_id = $1 ORDER BY rank ASC FOR UPDATE")).
		WithArgs(requestID.String()).
		WillReturnRows(sqlmock.NewRows(candidateRowColumns).
			AddRow(requestID, winnerID, "Garage A", 1.2, 4.5, models.CandidateStatusAccepted, 1, now))
	mock.ExpectRollback()

	assignment := &models.Assignment{WorkerID: uuid.New(), OTPCode: "4321", AssignedAt: now}

	// Act
	req, err := repo.AssignWorker(context.Background(), requestID.String(), otherID.String(), assignment)

	// Assert
	assert.Nil(t, req)
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignWorker_SameWorkerRetryKeepsOTP(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	redisClient, miniRedis := setupMockRedis(t)
	defer miniRedis.Close()

	repo := NewRequestRepository(&models.Config{}, db, redisClient)

	requestID := uuid.New()
	requesterID := uuid.New()
	winnerID := uuid.New()
	workerID := uuid.New()
	now := time.Now()

	// the worker is already assigned with an issued OTP; a retry with the
	// same worker must return it unchanged
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM requests WHERE id = $1 FOR UPDATE")).
		WithArgs(requestID.String()).
		WillReturnRows(assignedRequestRow(requestID, requesterID, workerID, "4321", now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM request_candidates WHERE request_id = $1 ORDER BY rank ASC FOR UPDATE")).
		WithArgs(requestID.String()).
		WillReturnRows(sqlmock.NewRows(candidateRowColumns).
			AddRow(requestID, winnerID, "Garage A", 1.2, 4.5, models.CandidateStatusAccepted, 1, now))
	mock.ExpectCommit()

	retry := &models.Assignment{WorkerID: workerID, OTPCode: "9999", AssignedAt: time.Now()}

	// Act
	req, err := repo.AssignWorker(context.Background(), requestID.String(), winnerID.String(), retry)

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, req.Assignment)
	assert.Equal(t, "4321", req.Assignment.OTPCode)
	assert.Equal(t, workerID, req.Assignment.WorkerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignWorker_DifferentWorkerConflicts(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	redisClient, miniRedis := setupMockRedis(t)
	defer miniRedis.Close()

	repo := NewRequestRepository(&models.Config{}, db, redisClient)

	requestID := uuid.New()
	requesterID := uuid.New()
	winnerID := uuid.New()
	workerID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM requests WHERE id = $1 FOR UPDATE")).
		WithArgs(requestID.String()).
		WillReturnRows(assignedRequestRow(requestID, requesterID, workerID, "4321", now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM request_candidates WHERE request_id = $1 ORDER BY rank ASC FOR UPDATE")).
		WithArgs(requestID.String()).
		WillReturnRows(sqlmock.NewRows(candidateRowColumns).
			AddRow(requestID, winnerID, "Garage A", 1.2, 4.5, models.CandidateStatusAccepted, 1, now))
	mock.ExpectRollback()

	other := &models.Assignment{WorkerID: uuid.New(), OTPCode: "8888", AssignedAt: time.Now()}

	// Act
	req, err := repo.AssignWorker(context.Background(), requestID.String(), winnerID.String(), other)

	// Assert
	assert.Nil(t, req)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteRequest_ClearsEngagementPointer(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	redisClient, miniRedis := setupMockRedis(t)
	defer miniRedis.Close()

	repo := NewRequestRepository(&models.Config{}, db, redisClient)

	requestID := uuid.New()
	requesterID := uuid.New()
	winnerID := uuid.New()
	workerID := uuid.New()
	now := time.Now()

	pointerKey := fmt.Sprintf(constants.KeyActiveRequestMechanic, winnerID.String())
	miniRedis.Set(pointerKey, requestID.String())

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM requests WHERE id = $1 FOR UPDATE")).
		WithArgs(requestID.String()).
		WillReturnRows(assignedRequestRow(requestID, requesterID, workerID, "4321", now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM request_candidates WHERE request_id = $1 ORDER BY rank ASC FOR UPDATE")).
		WithArgs(requestID.String()).
		WillReturnRows(sqlmock.NewRows(candidateRowColumns).
			AddRow(requestID, winnerID, "Garage A", 1.2, 4.5, models.CandidateStatusAccepted, 1, now))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE requests")).
		WithArgs(requestID.String(), models.RequestStatusCompleted, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE request_candidates")).
		WithArgs(requestID.String(), winnerID.String(), models.CandidateStatusCompleted, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	req, err := repo.CompleteRequest(context.Background(), requestID.String(), winnerID.String())

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusCompleted, req.Status)
	assert.False(t, miniRedis.Exists(pointerKey))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActiveRequestPointer_RoundTrip(t *testing.T) {
	// Arrange
	db, _ := setupMockDB(t)
	redisClient, miniRedis := setupMockRedis(t)
	defer miniRedis.Close()

	repo := NewRequestRepository(&models.Config{}, db, redisClient)

	ctx := context.Background()
	requesterID := uuid.New().String()
	requestID := uuid.New().String()

	// Act
	err := repo.SetActiveRequest(ctx, requesterID, requestID)
	assert.NoError(t, err)

	got, err := repo.GetActiveRequest(ctx, requesterID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, requestID, got)

	key := fmt.Sprintf(constants.KeyActiveRequestRequester, requesterID)
	assert.Equal(t, activeRequestTTL, miniRedis.TTL(key))

	err = repo.ClearActiveRequest(ctx, requesterID)
	assert.NoError(t, err)

	got, err = repo.GetActiveRequest(ctx, requesterID)
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetActiveRequest_MissingPointerIsNotAnError(t *testing.T) {
	// Arrange
	db, _ := setupMockDB(t)
	redisClient, miniRedis := setupMockRedis(t)
	defer miniRedis.Close()

	repo := NewRequestRepository(&models.Config{}, db, redisClient)

	// Act
	got, err := repo.GetActiveRequest(context.Background(), uuid.New().String())

	// Assert
	assert.NoError(t, err)
	assert.Empty(t, got)
}
