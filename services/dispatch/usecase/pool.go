package usecase

import (
	"context"
	"fmt"

	"github.com/mechafix/dispatch/internal/pkg/apperrors"
	"github.com/mechafix/dispatch/internal/pkg/geo"
	"github.com/mechafix/dispatch/internal/pkg/logger"
	"github.com/mechafix/dispatch/internal/pkg/models"
)

// SyncMechanicPool applies an availability beacon to the geo pool. A
// beacon with Available=false tears the mechanic down from every set.
func (uc *DispatchUC) SyncMechanicPool(ctx context.Context, event models.MechanicPoolEvent) error {
	if event.MechanicID == "" {
		return fmt.Errorf("mechanic ID is required: %w", apperrors.ErrValidation)
	}

	if !event.Available {
		if err := uc.mechanicRepo.RemoveAvailableMechanic(ctx, event.MechanicID); err != nil {
			return fmt.Errorf("failed to remove mechanic %s from pool: %w", event.MechanicID, err)
		}
		logger.Debug("Mechanic left the pool", logger.String("mechanic_id", event.MechanicID))
		return nil
	}

	if !geo.ValidCoordinate(geo.CoordinateFromLocation(event.Location)) {
		return fmt.Errorf("beacon for mechanic %s rejected: %w", event.MechanicID, apperrors.ErrInvalidLocation)
	}

	mechanic := &models.NearbyMechanic{
		ID:       event.MechanicID,
		Name:     event.Name,
		Rating:   event.Rating,
		Location: event.Location,
	}
	if err := uc.mechanicRepo.AddAvailableMechanic(ctx, mechanic, event.IssueTypes); err != nil {
		return fmt.Errorf("failed to add mechanic %s to pool: %w", event.MechanicID, err)
	}

	logger.Debug("Mechanic pool updated",
		logger.String("mechanic_id", event.MechanicID),
		logger.Strings("issue_types", event.IssueTypes))
	return nil
}
