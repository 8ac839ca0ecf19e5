package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/kbartosik/exam-session-api/internal/models"
	appErrors "github.com/kbartosik/exam-session-api/pkg/errors"
)

type demoUserRepository interface {
	List(ctx context.Context) ([]models.DemoUser, error)
}

// DemoUserService exposes the seeded demo users for the UI selector.
type DemoUserService struct {
	repo   demoUserRepository
	logger *zap.Logger
}

// NewDemoUserService instantiates DemoUserService.
func NewDemoUserService(repo demoUserRepository, logger *zap.Logger) *DemoUserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DemoUserService{repo: repo, logger: logger}
}

// List returns all demo users.
func (s *DemoUserService) List(ctx context.Context) ([]models.DemoUser, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list demo users")
	}
	return users, nil
}
