package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/mechafix/dispatch/internal/pkg/apperrors"
	"github.com/mechafix/dispatch/internal/pkg/geo"
	"github.com/mechafix/dispatch/internal/pkg/logger"
	"github.com/mechafix/dispatch/internal/pkg/models"
)

// DefaultCandidateLimit is the page size used when the caller does not
// specify one
const DefaultCandidateLimit = 5

// FindCandidates returns a ranked page of nearby mechanic organizations.
// Ordering: distance ascending, ties broken by rating descending, then by
// mechanic ID ascending so pages are deterministic. An empty page is not
// an error.
func (uc *DispatchUC) FindCandidates(ctx context.Context, origin *models.Location, issueType string, offset, limit int) ([]models.CandidateMatch, error) {
	if origin == nil || !geo.ValidCoordinate(geo.CoordinateFromLocation(*origin)) {
		return nil, fmt.Errorf("origin rejected: %w", apperrors.ErrInvalidLocation)
	}
	if limit <= 0 {
		limit = uc.candidateLimit()
	}
	if offset < 0 {
		offset = 0
	}

	candidates, err := uc.rankCandidates(ctx, origin, issueType, uc.cfg.Dispatch.SearchRadiusKm)
	if err != nil {
		return nil, err
	}

	return pageCandidates(candidates, offset, limit), nil
}

// FallbackCandidates runs the widened escalation search: doubled radius
// and no issue-type filter. Used when the scan window expires with no
// accepted candidate.
func (uc *DispatchUC) FallbackCandidates(ctx context.Context, origin *models.Location, limit int) ([]models.CandidateMatch, error) {
	if origin == nil || !geo.ValidCoordinate(geo.CoordinateFromLocation(*origin)) {
		return nil, fmt.Errorf("origin rejected: %w", apperrors.ErrInvalidLocation)
	}
	if limit <= 0 {
		limit = uc.candidateLimit()
	}

	radius := uc.cfg.Dispatch.SearchRadiusKm * uc.cfg.Dispatch.FallbackMultiplier
	candidates, err := uc.rankCandidates(ctx, origin, "", radius)
	if err != nil {
		return nil, err
	}

	logger.Info("Fallback candidate search",
		logger.Float64("radius_km", radius),
		logger.Int("found", len(candidates)))

	return pageCandidates(candidates, 0, limit), nil
}

func (uc *DispatchUC) rankCandidates(ctx context.Context, origin *models.Location, issueType string, radiusKm float64) ([]models.CandidateMatch, error) {
	nearby, err := uc.mechanicRepo.FindNearbyMechanics(ctx, origin, issueType, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby mechanics: %w", err)
	}

	originCoord := geo.CoordinateFromLocation(*origin)
	candidates := make([]models.CandidateMatch, 0, len(nearby))
	for _, mech := range nearby {
		mechID, err := uuid.Parse(mech.ID)
		if err != nil {
			logger.Warn("Skipping mechanic with malformed ID", logger.String("mechanic_id", mech.ID))
			continue
		}
		candidates = append(candidates, models.CandidateMatch{
			MechanicID:   mechID,
			MechanicName: mech.Name,
			DistanceKm:   geo.Haversine(originCoord, geo.CoordinateFromLocation(mech.Location)),
			Rating:       mech.Rating,
			Status:       models.CandidateStatusPending,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].DistanceKm != candidates[j].DistanceKm {
			return candidates[i].DistanceKm < candidates[j].DistanceKm
		}
		if candidates[i].Rating != candidates[j].Rating {
			return candidates[i].Rating > candidates[j].Rating
		}
		return candidates[i].MechanicID.String() < candidates[j].MechanicID.String()
	})

	return candidates, nil
}

func pageCandidates(candidates []models.CandidateMatch, offset, limit int) []models.CandidateMatch {
	if offset >= len(candidates) {
		return []models.CandidateMatch{}
	}
	end := offset + limit
	if end > len(candidates) {
		end = len(candidates)
	}

	page := make([]models.CandidateMatch, end-offset)
	copy(page, candidates[offset:end])
	for i := range page {
		page[i].Rank = offset + i + 1
	}
	return page
}

func (uc *DispatchUC) candidateLimit() int {
	if uc.cfg.Dispatch.CandidateLimit > 0 {
		return uc.cfg.Dispatch.CandidateLimit
	}
	return DefaultCandidateLimit
}
