package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/kbartosik/exam-session-api/internal/models"
)

const examDetailColumns = `e.id, e.subject_id, e.prowadzacy_name,
	s.nazwa AS subject_nazwa, s.kierunek AS subject_kierunek,
	s.typ_studiow AS subject_typ_studiow, s.rok AS subject_rok`

// ExamRepository provides persistence for exams.
type ExamRepository struct {
	db *sqlx.DB
}

// NewExamRepository creates a new exam repository.
func NewExamRepository(db *sqlx.DB) *ExamRepository {
	return &ExamRepository{db: db}
}

// List returns exams joined with their subject, filtered through the
// subject's cohort fields and the instructor name.
func (r *ExamRepository) List(ctx context.Context, filter models.ExamFilter) ([]models.ExamDetail, error) {
	base := fmt.Sprintf("SELECT %s FROM exams e JOIN subjects s ON s.id = e.subject_id WHERE 1=1", examDetailColumns)
	var conditions []string
	var args []interface{}

	if filter.Kierunek != "" {
		conditions = append(conditions, fmt.Sprintf("s.kierunek = $%d", len(args)+1))
		args = append(args, filter.Kierunek)
	}
	if filter.TypStudiow != "" {
		conditions = append(conditions, fmt.Sprintf("s.typ_studiow = $%d", len(args)+1))
		args = append(args, filter.TypStudiow)
	}
	if filter.Rok != 0 {
		conditions = append(conditions, fmt.Sprintf("s.rok = $%d", len(args)+1))
		args = append(args, filter.Rok)
	}
	if filter.ProwadzacyName != "" {
		conditions = append(conditions, fmt.Sprintf("e.prowadzacy_name = $%d", len(args)+1))
		args = append(args, filter.ProwadzacyName)
	}

	query := base
	if len(conditions) > 0 {
		query += " AND " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY s.nazwa ASC"

	var exams []models.ExamDetail
	if err := r.db.SelectContext(ctx, &exams, query, args...); err != nil {
		return nil, fmt.Errorf("list exams: %w", err)
	}
	return exams, nil
}

// FindByID loads an exam with its subject. Returns sql.ErrNoRows when
// absent.
func (r *ExamRepository) FindByID(ctx context.Context, id string) (*models.ExamDetail, error) {
	query := fmt.Sprintf("SELECT %s FROM exams e JOIN subjects s ON s.id = e.subject_id WHERE e.id = $1", examDetailColumns)
	var exam models.ExamDetail
	if err := r.db.GetContext(ctx, &exam, query, id); err != nil {
		return nil, err
	}
	return &exam, nil
}

// Create stores a new exam record.
func (r *ExamRepository) Create(ctx context.Context, exam *models.Exam) error {
	if exam.ID == "" {
		exam.ID = uuid.NewString()
	}
	const query = `INSERT INTO exams (id, subject_id, prowadzacy_name) VALUES (:id, :subject_id, :prowadzacy_name)`
	if _, err := r.db.NamedExecContext(ctx, query, exam); err != nil {
		return fmt.Errorf("create exam: %w", err)
	}
	return nil
}
