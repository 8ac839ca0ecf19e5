package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/kbartosik/exam-session-api/internal/models"
	appErrors "github.com/kbartosik/exam-session-api/pkg/errors"
)

type examTermRepository interface {
	List(ctx context.Context, filter models.ExamTermFilter) ([]models.ExamTermDetail, error)
	FindByID(ctx context.Context, id string) (*models.ExamTerm, error)
	Propose(ctx context.Context, term *models.ExamTerm, cohort *models.Cohort) error
	UpdateDecision(ctx context.Context, term *models.ExamTerm) error
}

type examLookupRepository interface {
	FindByID(ctx context.Context, id string) (*models.ExamDetail, error)
}

// DecideTermRequest records an approval or rejection of a proposed term.
type DecideTermRequest struct {
	Status         models.TermStatus `json:"status" validate:"required,oneof=approved rejected"`
	ApprovedByRole models.UserRole   `json:"approved_by_role" validate:"required,oneof=student starosta prowadzacy admin"`
	ApprovedByName string            `json:"approved_by_name" validate:"required"`
}

// TermService owns the exam term lifecycle: proposed terms and their
// one-way transition to approved or rejected.
type TermService struct {
	repo      examTermRepository
	exams     examLookupRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTermService instantiates TermService.
func NewTermService(repo examTermRepository, exams examLookupRepository, validate *validator.Validate, logger *zap.Logger) *TermService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TermService{repo: repo, exams: exams, validator: validate, logger: logger}
}

// List returns terms matching the filter, ordered by date then time.
func (s *TermService) List(ctx context.Context, filter models.ExamTermFilter) ([]models.ExamTermDetail, error) {
	terms, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list exam terms")
	}
	return terms, nil
}

// Get loads a single term or fails with TERM_NOT_FOUND.
func (s *TermService) Get(ctx context.Context, id string) (*models.ExamTerm, error) {
	term, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrTermNotFound, "")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load exam term")
	}
	return term, nil
}

// Propose creates a new term in proposed state for an existing exam.
// When enforceCohort is set the one-exam-per-cohort-per-day rule is
// checked inside the same transaction as the slot check.
func (s *TermService) Propose(ctx context.Context, examID, data, godzina, sala string, role models.UserRole, name string, enforceCohort bool) (*models.ExamTerm, error) {
	exam, err := s.exams.FindByID(ctx, examID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrExamNotFound, "Egzamin nie znaleziony")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load exam")
	}

	var cohort *models.Cohort
	if enforceCohort {
		cohort = &models.Cohort{
			Kierunek:   exam.SubjectKierunek,
			TypStudiow: exam.SubjectTypStudiow,
			Rok:        exam.SubjectRok,
		}
	}

	term := models.ExamTerm{
		ExamID:         exam.ID,
		Data:           data,
		Godzina:        godzina,
		Sala:           sala,
		ProposedByRole: role,
		ProposedByName: name,
	}
	if err := s.repo.Propose(ctx, &term, cohort); err != nil {
		return nil, err
	}

	s.logger.Info("term proposed",
		zap.String("term_id", term.ID),
		zap.String("exam_id", term.ExamID),
		zap.String("data", term.Data),
		zap.String("godzina", term.Godzina),
		zap.String("sala", term.Sala))
	return &term, nil
}

// Decide transitions a proposed term to approved or rejected and records
// who decided. Terminal terms cannot be re-decided.
func (s *TermService) Decide(ctx context.Context, termID string, req DecideTermRequest) (*models.ExamTerm, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid decision payload")
	}

	term, err := s.Get(ctx, termID)
	if err != nil {
		return nil, err
	}

	if !term.Status.CanTransitionTo(req.Status) {
		return nil, appErrors.Clone(appErrors.ErrInvalidTransition,
			"termin został już rozstrzygnięty i nie może zmienić statusu")
	}

	term.Status = req.Status
	term.ApprovedByRole = &req.ApprovedByRole
	term.ApprovedByName = &req.ApprovedByName

	if err := s.repo.UpdateDecision(ctx, term); err != nil {
		if errors.Is(err, appErrors.ErrInvalidTransition) {
			return nil, appErrors.Clone(appErrors.ErrInvalidTransition,
				"termin został już rozstrzygnięty i nie może zmienić statusu")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update exam term")
	}

	s.logger.Info("term decided",
		zap.String("term_id", term.ID),
		zap.String("status", string(term.Status)),
		zap.String("approved_by", req.ApprovedByName))
	return term, nil
}
