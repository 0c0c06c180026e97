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
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/mechafix/dispatch/internal/pkg/apperrors"
	"github.com/mechafix/dispatch/internal/pkg/constants"
	"github.com/mechafix/dispatch/internal/pkg/geo"
	"github.com/mechafix/dispatch/internal/pkg/models"
)

func availableMechanic(id string) *models.NearbyMechanic {
	return &models.NearbyMechanic{
		ID:     id,
		Name:   "Garage Merdeka",
		Rating: 4.5,
		Location: models.Location{
			Latitude:  -6.175392,
			Longitude: 106.827153,
			Timestamp: time.Now(),
		},
	}
}

func TestAddAvailableMechanic_FoundNearby(t *testing.T) {
	// Arrange
	db, _ := setupMockDB(t)
	redisClient, miniRedis := setupMockRedis(t)
	defer miniRedis.Close()

	repo := NewMechanicRepository(&models.Config{}, db, redisClient)

	ctx := context.Background()
	mechanicID := uuid.New().String()
	mechanic := availableMechanic(mechanicID)

	// Act
	err := repo.AddAvailableMechanic(ctx, mechanic, []string{"battery", "towing"})
	assert.NoError(t, err)

	origin := &models.Location{Latitude: -6.176, Longitude: 106.828}
	found, err := repo.FindNearbyMechanics(ctx, origin, "battery", 5.0)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Equal(t, mechanicID, found[0].ID)
	assert.Equal(t, "Garage Merdeka", found[0].Name)
	assert.Equal(t, 4.5, found[0].Rating)

	profileKey := fmt.Sprintf(constants.KeyMechanicProfile, mechanicID)
	storedHash := miniRedis.HGet(profileKey, constants.FieldGeohash)
	assert.Equal(t, geo.EncodeLocation(mechanic.Location, constants.GeohashPrecision), storedHash)
}

func TestFindNearbyMechanics_SkipsUnavailable(t *testing.T) {
	// Arrange
	db, _ := setupMockDB(t)
	redisClient, miniRedis := setupMockRedis(t)
	defer miniRedis.Close()

	repo := NewMechanicRepository(&models.Config{}, db, redisClient)

	ctx := context.Background()
	mechanicID := uuid.New().String()
	err := repo.AddAvailableMechanic(ctx, availableMechanic(mechanicID), []string{"battery"})
	assert.NoError(t, err)

	// Drop the mechanic from the available set but leave the geo entry
	miniRedis.SRem(constants.KeyAvailableMechanics, mechanicID)

	// Act
	origin := &models.Location{Latitude: -6.176, Longitude: 106.828}
	found, err := repo.FindNearbyMechanics(ctx, origin, "battery", 5.0)

	// Assert
	assert.NoError(t, err)
	assert.Empty(t, found)
}

func TestFindNearbyMechanics_EmptyIssueTypeScansCombinedSet(t *testing.T) {
	// Arrange
	db, _ := setupMockDB(t)
	redisClient, miniRedis := setupMockRedis(t)
	defer miniRedis.Close()

	repo := NewMechanicRepository(&models.Config{}, db, redisClient)

	ctx := context.Background()
	mechanicID := uuid.New().String()
	err := repo.AddAvailableMechanic(ctx, availableMechanic(mechanicID), []string{"towing"})
	assert.NoError(t, err)

	origin := &models.Location{Latitude: -6.176, Longitude: 106.828}

	// Act
	byIssue, err := repo.FindNearbyMechanics(ctx, origin, "battery", 5.0)
	assert.NoError(t, err)
	combined, err := repo.FindNearbyMechanics(ctx, origin, "", 5.0)

	// Assert
	assert.NoError(t, err)
	assert.Empty(t, byIssue)
	assert.Len(t, combined, 1)
	assert.Equal(t, mechanicID, combined[0].ID)
}

func TestRemoveAvailableMechanic(t *testing.T) {
	// Arrange
	db, _ := setupMockDB(t)
	redisClient, miniRedis := setupMockRedis(t)
	defer miniRedis.Close()

	repo := NewMechanicRepository(&models.Config{}, db, redisClient)

	ctx := context.Background()
	mechanicID := uuid.New().String()
	err := repo.AddAvailableMechanic(ctx, availableMechanic(mechanicID), []string{"battery", "towing"})
	assert.NoError(t, err)

	// Act
	err = repo.RemoveAvailableMechanic(ctx, mechanicID)
	assert.NoError(t, err)

	origin := &models.Location{Latitude: -6.176, Longitude: 106.828}
	found, err := repo.FindNearbyMechanics(ctx, origin, "", 5.0)

	// Assert
	assert.NoError(t, err)
	assert.Empty(t, found)

	profileKey := fmt.Sprintf(constants.KeyMechanicProfile, mechanicID)
	assert.False(t, miniRedis.Exists(profileKey))
}

func TestGetWorker_NotFound(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	redisClient, miniRedis := setupMockRedis(t)
	defer miniRedis.Close()

	repo := NewMechanicRepository(&models.Config{}, db, redisClient)

	workerID := uuid.New().String()
	mock.ExpectQuery(regexp.QuoteMeta("FROM workers")).
		WithArgs(workerID).
		WillReturnError(sql.ErrNoRows)

	// Act
	worker, err := repo.GetWorker(context.Background(), workerID)

	// Assert
	assert.Nil(t, worker)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListWorkers_Success(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	redisClient, miniRedis := setupMockRedis(t)
	defer miniRedis.Close()

	repo := NewMechanicRepository(&models.Config{}, db, redisClient)

	mechanicID := uuid.New()
	workerID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "mechanic_id", "name", "phone", "skills", "available", "created_at", "updated_at"}).
		AddRow(workerID, mechanicID, "Budi", "9876543210", "{towing,battery}", true, now, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM workers")).
		WithArgs(mechanicID.String()).
		WillReturnRows(rows)

	// Act
	workers, err := repo.ListWorkers(context.Background(), mechanicID.String())

	// Assert
	assert.NoError(t, err)
	assert.Len(t, workers, 1)
	assert.Equal(t, workerID, workers[0].ID)
	assert.Equal(t, pq.StringArray{"towing", "battery"}, workers[0].Skills)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWorker_Success(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	redisClient, miniRedis := setupMockRedis(t)
	defer miniRedis.Close()

	repo := NewMechanicRepository(&models.Config{}, db, redisClient)

	now := time.Now()
	worker := &models.Worker{
		ID:         uuid.New(),
		MechanicID: uuid.New(),
		Name:       "Budi",
		Phone:      "9876543210",
		Skills:     pq.StringArray{"towing"},
		Available:  true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO workers")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	// Act
	created, err := repo.CreateWorker(context.Background(), worker)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, worker.ID, created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
