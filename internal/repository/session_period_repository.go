package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/kbartosik/exam-session-api/internal/models"
)

// SessionPeriodRepository provides persistence for exam-session windows.
type SessionPeriodRepository struct {
	db *sqlx.DB
}

// NewSessionPeriodRepository creates a new session period repository.
func NewSessionPeriodRepository(db *sqlx.DB) *SessionPeriodRepository {
	return &SessionPeriodRepository{db: db}
}

// List returns session periods, newest start date first.
func (r *SessionPeriodRepository) List(ctx context.Context) ([]models.SessionPeriod, error) {
	const query = `SELECT id, semestr, rok_akademicki, data_start, data_end FROM session_periods ORDER BY data_start DESC`
	var periods []models.SessionPeriod
	if err := r.db.SelectContext(ctx, &periods, query); err != nil {
		return nil, fmt.Errorf("list session periods: %w", err)
	}
	return periods, nil
}

// Create stores a new session period record.
func (r *SessionPeriodRepository) Create(ctx context.Context, period *models.SessionPeriod) error {
	if period.ID == "" {
		period.ID = uuid.NewString()
	}
	const query = `INSERT INTO session_periods (id, semestr, rok_akademicki, data_start, data_end) VALUES (:id, :semestr, :rok_akademicki, :data_start, :data_end)`
	if _, err := r.db.NamedExecContext(ctx, query, period); err != nil {
		return fmt.Errorf("create session period: %w", err)
	}
	return nil
}
