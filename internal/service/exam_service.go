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

type examRepository interface {
	List(ctx context.Context, filter models.ExamFilter) ([]models.ExamDetail, error)
	FindByID(ctx context.Context, id string) (*models.ExamDetail, error)
	Create(ctx context.Context, exam *models.Exam) error
}

type subjectLookupRepository interface {
	FindByID(ctx context.Context, id string) (*models.Subject, error)
}

// CreateExamRequest describes payload for creating an exam.
type CreateExamRequest struct {
	SubjectID      string `json:"subject_id" validate:"required"`
	ProwadzacyName string `json:"prowadzacy_name" validate:"required"`
}

// ExamService manages exams and their subject ownership.
type ExamService struct {
	repo      examRepository
	subjects  subjectLookupRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewExamService instantiates ExamService.
func NewExamService(repo examRepository, subjects subjectLookupRepository, validate *validator.Validate, logger *zap.Logger) *ExamService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExamService{repo: repo, subjects: subjects, validator: validate, logger: logger}
}

// List returns exams matching the filter.
func (s *ExamService) List(ctx context.Context, filter models.ExamFilter) ([]models.ExamDetail, error) {
	exams, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list exams")
	}
	return exams, nil
}

// Get loads a single exam or fails with EXAM_NOT_FOUND.
func (s *ExamService) Get(ctx context.Context, id string) (*models.ExamDetail, error) {
	exam, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrExamNotFound, "Egzamin nie znaleziony")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load exam")
	}
	return exam, nil
}

// Create registers a new exam under an existing subject.
func (s *ExamService) Create(ctx context.Context, req CreateExamRequest) (*models.Exam, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid exam payload")
	}

	if _, err := s.subjects.FindByID(ctx, req.SubjectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Przedmiot nie znaleziony")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load subject")
	}

	exam := models.Exam{
		SubjectID:      req.SubjectID,
		ProwadzacyName: req.ProwadzacyName,
	}
	if err := s.repo.Create(ctx, &exam); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create exam")
	}
	return &exam, nil
}
