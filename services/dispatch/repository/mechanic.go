package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/mechafix/dispatch/internal/pkg/apperrors"
	"github.com/mechafix/dispatch/internal/pkg/constants"
	"github.com/mechafix/dispatch/internal/pkg/geo"
	"github.com/mechafix/dispatch/internal/pkg/models"
)

// AddAvailableMechanic registers a mechanic organization in the geo pool.
// The mechanic lands in one geo set per declared issue type plus the
// combined set the fallback search scans.
func (r *MechanicRepository) AddAvailableMechanic(ctx context.Context, mechanic *models.NearbyMechanic, issueTypes []string) error {
	for _, issueType := range issueTypes {
		geoKey := fmt.Sprintf(constants.KeyMechanicGeo, issueType)
		if err := r.redisClient.GeoAdd(ctx, geoKey, mechanic.Location.Longitude, mechanic.Location.Latitude, mechanic.ID); err != nil {
			return fmt.Errorf("failed to add mechanic to geo index %s: %w", geoKey, err)
		}
	}
	if err := r.redisClient.GeoAdd(ctx, constants.KeyMechanicGeoAll, mechanic.Location.Longitude, mechanic.Location.Latitude, mechanic.ID); err != nil {
		return fmt.Errorf("failed to add mechanic to combined geo index: %w", err)
	}

	if err := r.redisClient.SAdd(ctx, constants.KeyAvailableMechanics, mechanic.ID); err != nil {
		return fmt.Errorf("failed to add mechanic to available set: %w", err)
	}

	profileKey := fmt.Sprintf(constants.KeyMechanicProfile, mechanic.ID)
	profile := map[string]interface{}{
		constants.FieldName:      mechanic.Name,
		constants.FieldRating:    mechanic.Rating,
		constants.FieldLatitude:  mechanic.Location.Latitude,
		constants.FieldLongitude: mechanic.Location.Longitude,
		constants.FieldGeohash:   geo.EncodeLocation(mechanic.Location, constants.GeohashPrecision),
		constants.FieldTimestamp: time.Now().Unix(),
	}
	if err := r.redisClient.HMSet(ctx, profileKey, profile); err != nil {
		return fmt.Errorf("failed to store mechanic profile: %w", err)
	}

	return nil
}

// RemoveAvailableMechanic removes a mechanic from every geo set and the
// available pool. Issue-type sets are cleaned via ZREM on the known keys;
// a member absent from a set is not an error.
func (r *MechanicRepository) RemoveAvailableMechanic(ctx context.Context, mechanicID string) error {
	if err := r.redisClient.ZRem(ctx, constants.KeyMechanicGeoAll, mechanicID); err != nil {
		return fmt.Errorf("failed to remove mechanic from combined geo index: %w", err)
	}
	for _, issueType := range constants.KnownIssueTypes {
		geoKey := fmt.Sprintf(constants.KeyMechanicGeo, issueType)
		if err := r.redisClient.ZRem(ctx, geoKey, mechanicID); err != nil {
			return fmt.Errorf("failed to remove mechanic from geo index %s: %w", geoKey, err)
		}
	}

	if err := r.redisClient.SRem(ctx, constants.KeyAvailableMechanics, mechanicID); err != nil {
		return fmt.Errorf("failed to remove mechanic from available set: %w", err)
	}

	profileKey := fmt.Sprintf(constants.KeyMechanicProfile, mechanicID)
	if err := r.redisClient.Delete(ctx, profileKey); err != nil {
		return fmt.Errorf("failed to remove mechanic profile: %w", err)
	}

	return nil
}

// FindNearbyMechanics queries the geo pool for available mechanics within
// the radius. An empty issue type scans the combined set, which is how
// the fallback search drops the filter. Results come back nearest first.
func (r *MechanicRepository) FindNearbyMechanics(ctx context.Context, location *models.Location, issueType string, radiusKm float64) ([]*models.NearbyMechanic, error) {
	geoKey := constants.KeyMechanicGeoAll
	if issueType != "" {
		geoKey = fmt.Sprintf(constants.KeyMechanicGeo, issueType)
	}

	results, err := r.redisClient.GeoRadius(ctx, geoKey, location.Longitude, location.Latitude, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to query geo index %s: %w", geoKey, err)
	}

	mechanics := make([]*models.NearbyMechanic, 0, len(results))
	for _, result := range results {
		available, err := r.redisClient.SIsMember(ctx, constants.KeyAvailableMechanics, result.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check mechanic availability: %w", err)
		}
		if !available {
			continue
		}

		mechanic := &models.NearbyMechanic{
			ID: result.Name,
			Location: models.Location{
				Latitude:  result.Latitude,
				Longitude: result.Longitude,
				Timestamp: time.Now(),
			},
		}

		profileKey := fmt.Sprintf(constants.KeyMechanicProfile, result.Name)
		profile, err := r.redisClient.HGetAll(ctx, profileKey)
		if err == nil {
			mechanic.Name = profile[constants.FieldName]
			if rating, parseErr := strconv.ParseFloat(profile[constants.FieldRating], 64); parseErr == nil {
				mechanic.Rating = rating
			}
		}

		mechanics = append(mechanics, mechanic)
	}

	return mechanics, nil
}

// GetWorker retrieves a field worker by ID
func (r *MechanicRepository) GetWorker(ctx context.Context, workerID string) (*models.Worker, error) {
	query := `
		SELECT id, mechanic_id, name, phone, skills, available, created_at, updated_at
		FROM workers
		WHERE id = $1
	`

	var worker models.Worker
	if err := r.db.GetContext(ctx, &worker, query, workerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("worker %s: %w", workerID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}
	return &worker, nil
}

// ListWorkers returns a mechanic organization's field workers
func (r *MechanicRepository) ListWorkers(ctx context.Context, mechanicID string) ([]*models.Worker, error) {
	query := `
		SELECT id, mechanic_id, name, phone, skills, available, created_at, updated_at
		FROM workers
		WHERE mechanic_id = $1
		ORDER BY created_at ASC
	`

	workers := []*models.Worker{}
	if err := r.db.SelectContext(ctx, &workers, query, mechanicID); err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	return workers, nil
}

// CreateWorker inserts a new field worker
func (r *MechanicRepository) CreateWorker(ctx context.Context, worker *models.Worker) (*models.Worker, error) {
	query := `
		INSERT INTO workers (id, mechanic_id, name, phone, skills, available, created_at, updated_at)
		VALUES (:id, :mechanic_id, :name, :phone, :skills, :available, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, worker); err != nil {
		return nil, fmt.Errorf("failed to insert worker: %w", err)
	}
	return worker, nil
}
