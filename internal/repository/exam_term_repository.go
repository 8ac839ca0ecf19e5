package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/kbartosik/exam-session-api/internal/models"
	appErrors "github.com/kbartosik/exam-session-api/pkg/errors"
)

const termColumns = `id, exam_id, data, godzina, sala, proposed_by_role, proposed_by_name,
	approved_by_role, approved_by_name, status, created_at`

const termDetailColumns = `t.id, t.exam_id, t.data, t.godzina, t.sala, t.proposed_by_role,
	t.proposed_by_name, t.approved_by_role, t.approved_by_name, t.status, t.created_at,
	e.prowadzacy_name, s.nazwa AS subject_nazwa, s.kierunek AS subject_kierunek,
	s.typ_studiow AS subject_typ_studiow, s.rok AS subject_rok`

// ExamTermRepository provides persistence for exam terms.
type ExamTermRepository struct {
	db *sqlx.DB
}

// NewExamTermRepository creates a new exam term repository.
func NewExamTermRepository(db *sqlx.DB) *ExamTermRepository {
	return &ExamTermRepository{db: db}
}

// List returns terms joined with exam and subject, ordered by date then
// time. Cohort filters apply through the subject join.
func (r *ExamTermRepository) List(ctx context.Context, filter models.ExamTermFilter) ([]models.ExamTermDetail, error) {
	base := fmt.Sprintf(`SELECT %s FROM exam_terms t
		JOIN exams e ON e.id = t.exam_id
		JOIN subjects s ON s.id = e.subject_id WHERE 1=1`, termDetailColumns)
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
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("t.status = $%d", len(args)+1))
		args = append(args, filter.Status)
	}

	query := base
	if len(conditions) > 0 {
		query += " AND " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY t.data ASC, t.godzina ASC"

	var terms []models.ExamTermDetail
	if err := r.db.SelectContext(ctx, &terms, query, args...); err != nil {
		return nil, fmt.Errorf("list exam terms: %w", err)
	}
	return terms, nil
}

// FindByID loads a term by id. Returns sql.ErrNoRows when absent.
func (r *ExamTermRepository) FindByID(ctx context.Context, id string) (*models.ExamTerm, error) {
	query := fmt.Sprintf("SELECT %s FROM exam_terms WHERE id = $1", termColumns)
	var term models.ExamTerm
	if err := r.db.GetContext(ctx, &term, query, id); err != nil {
		return nil, err
	}
	return &term, nil
}

// CountActiveBySlot counts non-rejected terms occupying the exact
// (data, godzina, sala) slot, optionally ignoring one term id.
func (r *ExamTermRepository) CountActiveBySlot(ctx context.Context, data, godzina, sala, excludeID string) (int, error) {
	query := `SELECT COUNT(*) FROM exam_terms WHERE data = $1 AND godzina = $2 AND sala = $3 AND status <> 'rejected'`
	args := []interface{}{data, godzina, sala}
	if excludeID != "" {
		query += " AND id <> $4"
		args = append(args, excludeID)
	}
	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count terms by slot: %w", err)
	}
	return count, nil
}

// CountActiveByCohort counts non-rejected terms on the given date whose
// exam belongs to the cohort, optionally ignoring one term id.
func (r *ExamTermRepository) CountActiveByCohort(ctx context.Context, data string, cohort models.Cohort, excludeID string) (int, error) {
	query := `SELECT COUNT(*) FROM exam_terms t
		JOIN exams e ON e.id = t.exam_id
		JOIN subjects s ON s.id = e.subject_id
		WHERE t.data = $1 AND s.kierunek = $2 AND s.typ_studiow = $3 AND s.rok = $4 AND t.status <> 'rejected'`
	args := []interface{}{data, cohort.Kierunek, cohort.TypStudiow, cohort.Rok}
	if excludeID != "" {
		query += " AND t.id <> $5"
		args = append(args, excludeID)
	}
	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count terms by cohort: %w", err)
	}
	return count, nil
}

// Propose inserts a new proposed term after re-checking the slot inside
// one transaction. The room row is locked FOR UPDATE before the slot
// check: it exists even when the slot has no terms yet, so concurrent
// proposals for the same sala serialize on it and the second one sees
// the first one's insert. When cohort is non-nil the
// one-exam-per-cohort-per-day rule is enforced under an advisory lock
// on the cohort-day key, since cohort conflicts span rooms.
func (r *ExamTermRepository) Propose(ctx context.Context, term *models.ExamTerm, cohort *models.Cohort) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin propose term: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var roomID string
	if err = tx.GetContext(ctx, &roomID,
		`SELECT id FROM rooms WHERE nazwa = $1 FOR UPDATE`, term.Sala); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = appErrors.ErrRoomNotFound
			return err
		}
		return fmt.Errorf("lock room row: %w", err)
	}

	var blocking []string
	if err = tx.SelectContext(ctx, &blocking,
		`SELECT id FROM exam_terms WHERE data = $1 AND godzina = $2 AND sala = $3 AND status <> 'rejected'`,
		term.Data, term.Godzina, term.Sala); err != nil {
		return fmt.Errorf("check slot rows: %w", err)
	}
	if len(blocking) > 0 {
		err = appErrors.ErrRoomOccupied
		return err
	}

	if cohort != nil {
		if _, err = tx.ExecContext(ctx,
			`SELECT pg_advisory_xact_lock(hashtext($1))`,
			fmt.Sprintf("cohort|%s|%s|%s|%d", term.Data, cohort.Kierunek, cohort.TypStudiow, cohort.Rok)); err != nil {
			return fmt.Errorf("lock cohort key: %w", err)
		}
		var busy []string
		if err = tx.SelectContext(ctx, &busy,
			`SELECT t.id FROM exam_terms t
			JOIN exams e ON e.id = t.exam_id
			JOIN subjects s ON s.id = e.subject_id
			WHERE t.data = $1 AND s.kierunek = $2 AND s.typ_studiow = $3 AND s.rok = $4 AND t.status <> 'rejected'`,
			term.Data, cohort.Kierunek, cohort.TypStudiow, cohort.Rok); err != nil {
			return fmt.Errorf("check cohort rows: %w", err)
		}
		if len(busy) > 0 {
			err = appErrors.ErrCohortBusy
			return err
		}
	}

	if term.ID == "" {
		term.ID = uuid.NewString()
	}
	if term.CreatedAt.IsZero() {
		term.CreatedAt = time.Now().UTC()
	}
	term.Status = models.TermStatusProposed

	if _, err = tx.NamedExecContext(ctx,
		`INSERT INTO exam_terms (id, exam_id, data, godzina, sala, proposed_by_role, proposed_by_name, status, created_at)
		VALUES (:id, :exam_id, :data, :godzina, :sala, :proposed_by_role, :proposed_by_name, :status, :created_at)`,
		term); err != nil {
		return fmt.Errorf("insert exam term: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit propose term: %w", err)
	}
	return nil
}

// UpdateDecision persists the status and approver fields of a decided
// term. The update only matches rows still in status proposed, so when
// two decisions race the loser affects zero rows and gets
// ErrInvalidTransition instead of overwriting a terminal status.
func (r *ExamTermRepository) UpdateDecision(ctx context.Context, term *models.ExamTerm) error {
	const query = `UPDATE exam_terms SET status = :status, approved_by_role = :approved_by_role, approved_by_name = :approved_by_name WHERE id = :id AND status = 'proposed'`
	res, err := r.db.NamedExecContext(ctx, query, term)
	if err != nil {
		return fmt.Errorf("update exam term decision: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update exam term decision: %w", err)
	}
	if affected == 0 {
		return appErrors.ErrInvalidTransition
	}
	return nil
}
