package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/kbartosik/exam-session-api/internal/models"
)

// SubjectRepository provides persistence for study-programme subjects.
type SubjectRepository struct {
	db *sqlx.DB
}

// NewSubjectRepository creates a new subject repository.
func NewSubjectRepository(db *sqlx.DB) *SubjectRepository {
	return &SubjectRepository{db: db}
}

// List returns subjects with optional cohort filtering.
func (r *SubjectRepository) List(ctx context.Context, filter models.SubjectFilter) ([]models.Subject, error) {
	base := "SELECT id, nazwa, kierunek, typ_studiow, rok FROM subjects WHERE 1=1"
	var conditions []string
	var args []interface{}

	if filter.Kierunek != "" {
		conditions = append(conditions, fmt.Sprintf("kierunek = $%d", len(args)+1))
		args = append(args, filter.Kierunek)
	}
	if filter.TypStudiow != "" {
		conditions = append(conditions, fmt.Sprintf("typ_studiow = $%d", len(args)+1))
		args = append(args, filter.TypStudiow)
	}
	if filter.Rok != 0 {
		conditions = append(conditions, fmt.Sprintf("rok = $%d", len(args)+1))
		args = append(args, filter.Rok)
	}

	query := base
	if len(conditions) > 0 {
		query += " AND " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY nazwa ASC"

	var subjects []models.Subject
	if err := r.db.SelectContext(ctx, &subjects, query, args...); err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return subjects, nil
}

// FindByID loads a subject by id. Returns sql.ErrNoRows when absent.
func (r *SubjectRepository) FindByID(ctx context.Context, id string) (*models.Subject, error) {
	const query = `SELECT id, nazwa, kierunek, typ_studiow, rok FROM subjects WHERE id = $1`
	var subject models.Subject
	if err := r.db.GetContext(ctx, &subject, query, id); err != nil {
		return nil, err
	}
	return &subject, nil
}

// Create stores a new subject record.
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	if subject.ID == "" {
		subject.ID = uuid.NewString()
	}
	const query = `INSERT INTO subjects (id, nazwa, kierunek, typ_studiow, rok) VALUES (:id, :nazwa, :kierunek, :typ_studiow, :rok)`
	if _, err := r.db.NamedExecContext(ctx, query, subject); err != nil {
		return fmt.Errorf("create subject: %w", err)
	}
	return nil
}
