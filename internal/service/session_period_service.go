package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/kbartosik/exam-session-api/internal/models"
	appErrors "github.com/kbartosik/exam-session-api/pkg/errors"
)

type sessionPeriodRepository interface {
	List(ctx context.Context) ([]models.SessionPeriod, error)
	Create(ctx context.Context, period *models.SessionPeriod) error
}

// CreateSessionPeriodRequest describes payload for creating a session window.
type CreateSessionPeriodRequest struct {
	Semestr       string `json:"semestr" validate:"required,oneof=zimowy letni"`
	RokAkademicki string `json:"rok_akademicki" validate:"required"`
	DataStart     string `json:"data_start" validate:"required,datetime=2006-01-02"`
	DataEnd       string `json:"data_end" validate:"required,datetime=2006-01-02"`
}

// SessionPeriodService manages the exam-session reference windows.
type SessionPeriodService struct {
	repo      sessionPeriodRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSessionPeriodService instantiates SessionPeriodService.
func NewSessionPeriodService(repo sessionPeriodRepository, validate *validator.Validate, logger *zap.Logger) *SessionPeriodService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionPeriodService{repo: repo, validator: validate, logger: logger}
}

// List returns session periods, newest first.
func (s *SessionPeriodService) List(ctx context.Context) ([]models.SessionPeriod, error) {
	periods, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list session periods")
	}
	return periods, nil
}

// Create registers a new session period.
func (s *SessionPeriodService) Create(ctx context.Context, req CreateSessionPeriodRequest) (*models.SessionPeriod, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid session period payload")
	}

	period := models.SessionPeriod{
		Semestr:       req.Semestr,
		RokAkademicki: req.RokAkademicki,
		DataStart:     req.DataStart,
		DataEnd:       req.DataEnd,
	}
	if err := s.repo.Create(ctx, &period); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create session period")
	}
	return &period, nil
}
