package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/kbartosik/exam-session-api/internal/models"
	appErrors "github.com/kbartosik/exam-session-api/pkg/errors"
)

type termOccupancyRepository interface {
	CountActiveBySlot(ctx context.Context, data, godzina, sala, excludeID string) (int, error)
	CountActiveByCohort(ctx context.Context, data string, cohort models.Cohort, excludeID string) (int, error)
}

// AvailabilityService answers the two read-only conflict predicates.
// Rejected terms never block; proposed terms do, since a tentative hold
// reserves the slot until someone rejects it.
type AvailabilityService struct {
	repo   termOccupancyRepository
	logger *zap.Logger
}

// NewAvailabilityService instantiates AvailabilityService.
func NewAvailabilityService(repo termOccupancyRepository, logger *zap.Logger) *AvailabilityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AvailabilityService{repo: repo, logger: logger}
}

// IsRoomFree reports whether no non-rejected term occupies the exact
// (data, godzina, sala) slot. Dates and times compare as plain strings.
func (s *AvailabilityService) IsRoomFree(ctx context.Context, data, godzina, sala, excludeTermID string) (bool, error) {
	count, err := s.repo.CountActiveBySlot(ctx, data, godzina, sala, excludeTermID)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check room availability")
	}
	return count == 0, nil
}

// IsCohortFree reports whether the cohort has no non-rejected exam term
// on the given day, regardless of time or room.
func (s *AvailabilityService) IsCohortFree(ctx context.Context, data string, cohort models.Cohort, excludeTermID string) (bool, error) {
	count, err := s.repo.CountActiveByCohort(ctx, data, cohort, excludeTermID)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check cohort availability")
	}
	return count == 0, nil
}
