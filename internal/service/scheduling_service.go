package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/kbartosik/exam-session-api/internal/models"
	appErrors "github.com/kbartosik/exam-session-api/pkg/errors"
)

// ProposeTermRequest describes payload for proposing an exam term.
type ProposeTermRequest struct {
	ExamID         string          `json:"exam_id" validate:"required"`
	Data           string          `json:"data" validate:"required,datetime=2006-01-02"`
	Godzina        string          `json:"godzina" validate:"required,datetime=15:04"`
	Sala           string          `json:"sala" validate:"required"`
	LiczbaOsob     int             `json:"liczba_osob" validate:"required,gt=0"`
	ProposedByRole models.UserRole `json:"proposed_by_role" validate:"required,oneof=student starosta prowadzacy admin"`
	ProposedByName string          `json:"proposed_by_name" validate:"required"`
}

// ProposalResult wraps an accepted proposal with a human-readable
// confirmation that carries the resolved room capacity.
type ProposalResult struct {
	Term    *models.ExamTerm `json:"term"`
	Message string           `json:"message"`
}

// SchedulingService composes the room directory, the availability
// predicates and the term lifecycle into the propose and decide
// workflows. The precondition order on propose is deliberate: room
// existence, then capacity, then slot occupancy, so the error always
// names the first check that failed.
type SchedulingService struct {
	rooms         *RoomService
	availability  *AvailabilityService
	terms         *TermService
	metrics       *MetricsService
	validator     *validator.Validate
	logger        *zap.Logger
	enforceCohort bool
}

// NewSchedulingService instantiates SchedulingService.
func NewSchedulingService(rooms *RoomService, availability *AvailabilityService, terms *TermService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, enforceCohort bool) *SchedulingService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SchedulingService{
		rooms:         rooms,
		availability:  availability,
		terms:         terms,
		metrics:       metrics,
		validator:     validate,
		logger:        logger,
		enforceCohort: enforceCohort,
	}
}

// ProposeTerm runs the full proposal workflow and records the term in
// proposed state when every precondition holds.
func (s *SchedulingService) ProposeTerm(ctx context.Context, req ProposeTermRequest) (*ProposalResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid term payload")
	}

	room, err := s.rooms.GetByName(ctx, req.Sala)
	if err != nil {
		var appErr *appErrors.Error
		if errors.As(err, &appErr) && appErr.Code == appErrors.ErrRoomNotFound.Code {
			s.metrics.RecordProposal("room_not_found")
			return nil, appErrors.Clone(appErrors.ErrRoomNotFound, fmt.Sprintf("Sala '%s' nie istnieje w systemie", req.Sala))
		}
		return nil, err
	}

	if room.Pojemnosc < req.LiczbaOsob {
		s.metrics.RecordProposal("room_too_small")
		return nil, appErrors.Clone(appErrors.ErrRoomTooSmall,
			fmt.Sprintf("Sala '%s' ma pojemność %d miejsc, a potrzeba %d miejsc", room.Nazwa, room.Pojemnosc, req.LiczbaOsob))
	}

	free, err := s.availability.IsRoomFree(ctx, req.Data, req.Godzina, req.Sala, "")
	if err != nil {
		return nil, err
	}
	if !free {
		s.metrics.RecordProposal("room_occupied")
		return nil, s.occupiedError(req)
	}

	term, err := s.terms.Propose(ctx, req.ExamID, req.Data, req.Godzina, req.Sala, req.ProposedByRole, req.ProposedByName, s.enforceCohort)
	if err != nil {
		// The transactional re-check can still lose the race that the
		// read-only predicate won.
		switch {
		case errors.Is(err, appErrors.ErrRoomOccupied):
			s.metrics.RecordProposal("room_occupied")
			return nil, s.occupiedError(req)
		case errors.Is(err, appErrors.ErrCohortBusy):
			s.metrics.RecordProposal("cohort_busy")
			return nil, appErrors.Clone(appErrors.ErrCohortBusy,
				fmt.Sprintf("Studenci tego kierunku mają już egzamin w dniu %s", req.Data))
		case errors.Is(err, appErrors.ErrRoomNotFound):
			s.metrics.RecordProposal("room_not_found")
			return nil, appErrors.Clone(appErrors.ErrRoomNotFound,
				fmt.Sprintf("Sala '%s' nie istnieje w systemie", req.Sala))
		}
		return nil, err
	}

	s.metrics.RecordProposal("accepted")
	return &ProposalResult{
		Term:    term,
		Message: fmt.Sprintf("Sala '%s' zarezerwowana (pojemność: %d miejsc)", room.Nazwa, room.Pojemnosc),
	}, nil
}

// DecideTerm records an approval or rejection. No conflict re-validation
// happens at decision time; the proposal already reserved the slot.
func (s *SchedulingService) DecideTerm(ctx context.Context, termID string, req DecideTermRequest) (*models.ExamTerm, error) {
	return s.terms.Decide(ctx, termID, req)
}

func (s *SchedulingService) occupiedError(req ProposeTermRequest) *appErrors.Error {
	return appErrors.Clone(appErrors.ErrRoomOccupied,
		fmt.Sprintf("Sala '%s' jest już zajęta w dniu %s o godzinie %s", req.Sala, req.Data, req.Godzina))
}
