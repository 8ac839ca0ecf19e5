package service

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kbartosik/exam-session-api/internal/models"
	appErrors "github.com/kbartosik/exam-session-api/pkg/errors"
)

type memExamRepo struct {
	exams map[string]models.ExamDetail
}

func (m *memExamRepo) FindByID(ctx context.Context, id string) (*models.ExamDetail, error) {
	if exam, ok := m.exams[id]; ok {
		cp := exam
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

// memTermStore is an in-memory exam term store implementing both the
// lifecycle repository and the occupancy queries with the same
// non-rejected-blocks semantics as the SQL implementation.
type memTermStore struct {
	seq   int
	terms map[string]*models.ExamTerm
	exams *memExamRepo
}

func newMemTermStore(exams *memExamRepo) *memTermStore {
	return &memTermStore{terms: make(map[string]*models.ExamTerm), exams: exams}
}

func (m *memTermStore) FindByID(ctx context.Context, id string) (*models.ExamTerm, error) {
	if term, ok := m.terms[id]; ok {
		cp := *term
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *memTermStore) List(ctx context.Context, filter models.ExamTermFilter) ([]models.ExamTermDetail, error) {
	var out []models.ExamTermDetail
	for _, term := range m.terms {
		exam := m.exams.exams[term.ExamID]
		if filter.Kierunek != "" && exam.SubjectKierunek != filter.Kierunek {
			continue
		}
		if filter.TypStudiow != "" && exam.SubjectTypStudiow != filter.TypStudiow {
			continue
		}
		if filter.Rok != 0 && exam.SubjectRok != filter.Rok {
			continue
		}
		if filter.Status != "" && term.Status != filter.Status {
			continue
		}
		out = append(out, models.ExamTermDetail{
			ExamTerm:          *term,
			ProwadzacyName:    exam.ProwadzacyName,
			SubjectNazwa:      exam.SubjectNazwa,
			SubjectKierunek:   exam.SubjectKierunek,
			SubjectTypStudiow: exam.SubjectTypStudiow,
			SubjectRok:        exam.SubjectRok,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Data != out[j].Data {
			return out[i].Data < out[j].Data
		}
		return out[i].Godzina < out[j].Godzina
	})
	return out, nil
}

func (m *memTermStore) CountActiveBySlot(ctx context.Context, data, godzina, sala, excludeID string) (int, error) {
	count := 0
	for _, term := range m.terms {
		if term.ID == excludeID || term.Status == models.TermStatusRejected {
			continue
		}
		if term.Data == data && term.Godzina == godzina && term.Sala == sala {
			count++
		}
	}
	return count, nil
}

func (m *memTermStore) CountActiveByCohort(ctx context.Context, data string, cohort models.Cohort, excludeID string) (int, error) {
	count := 0
	for _, term := range m.terms {
		if term.ID == excludeID || term.Status == models.TermStatusRejected {
			continue
		}
		exam := m.exams.exams[term.ExamID]
		if term.Data == data && exam.SubjectKierunek == cohort.Kierunek &&
			exam.SubjectTypStudiow == cohort.TypStudiow && exam.SubjectRok == cohort.Rok {
			count++
		}
	}
	return count, nil
}

func (m *memTermStore) Propose(ctx context.Context, term *models.ExamTerm, cohort *models.Cohort) error {
	if count, _ := m.CountActiveBySlot(ctx, term.Data, term.Godzina, term.Sala, ""); count > 0 {
		return appErrors.ErrRoomOccupied
	}
	if cohort != nil {
		if count, _ := m.CountActiveByCohort(ctx, term.Data, *cohort, ""); count > 0 {
			return appErrors.ErrCohortBusy
		}
	}
	m.seq++
	term.ID = fmt.Sprintf("term-%d", m.seq)
	term.Status = models.TermStatusProposed
	term.CreatedAt = time.Now().UTC()
	cp := *term
	m.terms[term.ID] = &cp
	return nil
}

func (m *memTermStore) UpdateDecision(ctx context.Context, term *models.ExamTerm) error {
	stored, ok := m.terms[term.ID]
	if !ok {
		return sql.ErrNoRows
	}
	if stored.Status != models.TermStatusProposed {
		return appErrors.ErrInvalidTransition
	}
	stored.Status = term.Status
	stored.ApprovedByRole = term.ApprovedByRole
	stored.ApprovedByName = term.ApprovedByName
	return nil
}

// racingTermStore decides the term out from under the caller between the
// read that passed the transition check and the persisting update, the
// way a concurrent decision would at the database.
type racingTermStore struct {
	memTermStore
}

func (m *racingTermStore) UpdateDecision(ctx context.Context, term *models.ExamTerm) error {
	return appErrors.ErrInvalidTransition
}

func examFixtures() *memExamRepo {
	return &memExamRepo{exams: map[string]models.ExamDetail{
		"e1": {
			Exam:              models.Exam{ID: "e1", SubjectID: "s1", ProwadzacyName: "dr Kowalski"},
			SubjectNazwa:      "Algorytmy",
			SubjectKierunek:   "Informatyka",
			SubjectTypStudiow: models.StacjonarneI,
			SubjectRok:        2,
		},
		"e2": {
			Exam:              models.Exam{ID: "e2", SubjectID: "s2", ProwadzacyName: "dr Nowak"},
			SubjectNazwa:      "Bazy danych",
			SubjectKierunek:   "Informatyka",
			SubjectTypStudiow: models.StacjonarneI,
			SubjectRok:        2,
		},
	}}
}

func newTermService(store *memTermStore, exams *memExamRepo) *TermService {
	return NewTermService(store, exams, validator.New(), zap.NewNop())
}

func TestTermServiceProposeCreatesProposedTerm(t *testing.T) {
	exams := examFixtures()
	store := newMemTermStore(exams)
	svc := newTermService(store, exams)

	term, err := svc.Propose(context.Background(), "e1", "2025-06-10", "10:00", "101", models.RoleStarosta, "Jan", false)
	require.NoError(t, err)
	assert.Equal(t, models.TermStatusProposed, term.Status)
	assert.Nil(t, term.ApprovedByRole)
	assert.Nil(t, term.ApprovedByName)
	assert.False(t, term.CreatedAt.IsZero())

	stored, err := svc.Get(context.Background(), term.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TermStatusProposed, stored.Status)
	assert.Nil(t, stored.ApprovedByName)
}

func TestTermServiceProposeUnknownExam(t *testing.T) {
	exams := examFixtures()
	svc := newTermService(newMemTermStore(exams), exams)

	_, err := svc.Propose(context.Background(), "missing", "2025-06-10", "10:00", "101", models.RoleStarosta, "Jan", false)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrExamNotFound.Code, appErrors.FromError(err).Code)
}

func TestTermServiceDecideApproves(t *testing.T) {
	exams := examFixtures()
	store := newMemTermStore(exams)
	svc := newTermService(store, exams)

	term, err := svc.Propose(context.Background(), "e1", "2025-06-10", "10:00", "101", models.RoleStarosta, "Jan", false)
	require.NoError(t, err)

	decided, err := svc.Decide(context.Background(), term.ID, DecideTermRequest{
		Status:         models.TermStatusApproved,
		ApprovedByRole: models.RoleAdmin,
		ApprovedByName: "Dziekan",
	})
	require.NoError(t, err)
	assert.Equal(t, models.TermStatusApproved, decided.Status)
	require.NotNil(t, decided.ApprovedByRole)
	assert.Equal(t, models.RoleAdmin, *decided.ApprovedByRole)
	require.NotNil(t, decided.ApprovedByName)
	assert.Equal(t, "Dziekan", *decided.ApprovedByName)
}

func TestTermServiceDecideTerminalTermFails(t *testing.T) {
	exams := examFixtures()
	store := newMemTermStore(exams)
	svc := newTermService(store, exams)

	term, err := svc.Propose(context.Background(), "e1", "2025-06-10", "10:00", "101", models.RoleStarosta, "Jan", false)
	require.NoError(t, err)

	_, err = svc.Decide(context.Background(), term.ID, DecideTermRequest{
		Status:         models.TermStatusRejected,
		ApprovedByRole: models.RoleAdmin,
		ApprovedByName: "Dziekan",
	})
	require.NoError(t, err)

	_, err = svc.Decide(context.Background(), term.ID, DecideTermRequest{
		Status:         models.TermStatusApproved,
		ApprovedByRole: models.RoleAdmin,
		ApprovedByName: "Dziekan",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidTransition.Code, appErrors.FromError(err).Code)
}

// The service reads the term as proposed, but a concurrent decision lands
// before the update. The guarded update reports the lost race and Decide
// must surface it as an invalid transition, not an internal error.
func TestTermServiceDecideLostRaceReportsInvalidTransition(t *testing.T) {
	exams := examFixtures()
	store := &racingTermStore{memTermStore: *newMemTermStore(exams)}
	svc := NewTermService(store, exams, validator.New(), zap.NewNop())

	term, err := svc.Propose(context.Background(), "e1", "2025-06-10", "10:00", "101", models.RoleStarosta, "Jan", false)
	require.NoError(t, err)

	_, err = svc.Decide(context.Background(), term.ID, DecideTermRequest{
		Status:         models.TermStatusApproved,
		ApprovedByRole: models.RoleAdmin,
		ApprovedByName: "Dziekan",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidTransition.Code, appErrors.FromError(err).Code)
}

func TestTermServiceDecideUnknownTerm(t *testing.T) {
	exams := examFixtures()
	svc := newTermService(newMemTermStore(exams), exams)

	_, err := svc.Decide(context.Background(), "missing", DecideTermRequest{
		Status:         models.TermStatusApproved,
		ApprovedByRole: models.RoleAdmin,
		ApprovedByName: "Dziekan",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrTermNotFound.Code, appErrors.FromError(err).Code)
}

func TestTermServiceDecideRejectsBadStatus(t *testing.T) {
	exams := examFixtures()
	svc := newTermService(newMemTermStore(exams), exams)

	_, err := svc.Decide(context.Background(), "t1", DecideTermRequest{
		Status:         models.TermStatusProposed,
		ApprovedByRole: models.RoleAdmin,
		ApprovedByName: "Dziekan",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestTermServiceListOrdersByDateThenTime(t *testing.T) {
	exams := examFixtures()
	store := newMemTermStore(exams)
	svc := newTermService(store, exams)

	// Inserted out of order on purpose.
	_, err := svc.Propose(context.Background(), "e1", "2025-06-12", "09:00", "101", models.RoleStarosta, "Jan", false)
	require.NoError(t, err)
	_, err = svc.Propose(context.Background(), "e2", "2025-06-10", "12:00", "102", models.RoleStarosta, "Jan", false)
	require.NoError(t, err)
	_, err = svc.Propose(context.Background(), "e1", "2025-06-10", "08:00", "103", models.RoleStarosta, "Jan", false)
	require.NoError(t, err)

	terms, err := svc.List(context.Background(), models.ExamTermFilter{})
	require.NoError(t, err)
	require.Len(t, terms, 3)
	assert.Equal(t, "2025-06-10", terms[0].Data)
	assert.Equal(t, "08:00", terms[0].Godzina)
	assert.Equal(t, "2025-06-10", terms[1].Data)
	assert.Equal(t, "12:00", terms[1].Godzina)
	assert.Equal(t, "2025-06-12", terms[2].Data)
}
