package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/kbartosik/exam-session-api/internal/models"
	appErrors "github.com/kbartosik/exam-session-api/pkg/errors"
)

type subjectRepository interface {
	List(ctx context.Context, filter models.SubjectFilter) ([]models.Subject, error)
	Create(ctx context.Context, subject *models.Subject) error
}

// CreateSubjectRequest describes payload for creating a subject.
type CreateSubjectRequest struct {
	Nazwa      string            `json:"nazwa" validate:"required"`
	Kierunek   string            `json:"kierunek" validate:"required"`
	TypStudiow models.TypStudiow `json:"typ_studiow" validate:"required,oneof=stacjonarne_I stacjonarne_II niestacjonarne_I niestacjonarne_II"`
	Rok        int               `json:"rok" validate:"required,gte=1,lte=5"`
}

// SubjectService manages study-programme subjects.
type SubjectService struct {
	repo      subjectRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSubjectService instantiates SubjectService.
func NewSubjectService(repo subjectRepository, validate *validator.Validate, logger *zap.Logger) *SubjectService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubjectService{repo: repo, validator: validate, logger: logger}
}

// List returns subjects with optional cohort filtering.
func (s *SubjectService) List(ctx context.Context, filter models.SubjectFilter) ([]models.Subject, error) {
	subjects, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list subjects")
	}
	return subjects, nil
}

// Create registers a new subject.
func (s *SubjectService) Create(ctx context.Context, req CreateSubjectRequest) (*models.Subject, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid subject payload")
	}

	subject := models.Subject{
		Nazwa:      req.Nazwa,
		Kierunek:   req.Kierunek,
		TypStudiow: req.TypStudiow,
		Rok:        req.Rok,
	}
	if err := s.repo.Create(ctx, &subject); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create subject")
	}
	return &subject, nil
}
