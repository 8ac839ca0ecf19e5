package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kbartosik/exam-session-api/internal/models"
	appErrors "github.com/kbartosik/exam-session-api/pkg/errors"
)

func newSchedulingService(enforceCohort bool, rooms ...models.Room) (*SchedulingService, *memTermStore) {
	exams := examFixtures()
	store := newMemTermStore(exams)
	availability := NewAvailabilityService(store, zap.NewNop())
	roomSvc := NewRoomService(newMockRoomRepo(rooms...), availability, nil, validator.New(), zap.NewNop())
	termSvc := NewTermService(store, exams, validator.New(), zap.NewNop())
	svc := NewSchedulingService(roomSvc, availability, termSvc, nil, validator.New(), zap.NewNop(), enforceCohort)
	return svc, store
}

func proposeRequest(examID string) ProposeTermRequest {
	return ProposeTermRequest{
		ExamID:         examID,
		Data:           "2025-06-10",
		Godzina:        "10:00",
		Sala:           "101",
		LiczbaOsob:     25,
		ProposedByRole: models.RoleStarosta,
		ProposedByName: "Jan Kowalski",
	}
}

func TestSchedulingServiceProposeReservesSlot(t *testing.T) {
	svc, _ := newSchedulingService(false, models.Room{ID: "r1", Nazwa: "101", Budynek: "A", Pojemnosc: 30})

	result, err := svc.ProposeTerm(context.Background(), proposeRequest("e1"))
	require.NoError(t, err)
	assert.Equal(t, models.TermStatusProposed, result.Term.Status)
	assert.Contains(t, result.Message, "101")
	assert.Contains(t, result.Message, "30")
}

func TestSchedulingServiceProposeOccupiedSlot(t *testing.T) {
	svc, _ := newSchedulingService(false, models.Room{ID: "r1", Nazwa: "101", Budynek: "A", Pojemnosc: 30})

	_, err := svc.ProposeTerm(context.Background(), proposeRequest("e1"))
	require.NoError(t, err)

	_, err = svc.ProposeTerm(context.Background(), proposeRequest("e2"))
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrRoomOccupied.Code, appErr.Code)
	assert.Contains(t, appErr.Message, "101")
	assert.Contains(t, appErr.Message, "2025-06-10")
	assert.Contains(t, appErr.Message, "10:00")
}

func TestSchedulingServiceProposeUnknownRoom(t *testing.T) {
	svc, _ := newSchedulingService(false)

	req := proposeRequest("e1")
	req.Sala = "999"
	_, err := svc.ProposeTerm(context.Background(), req)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrRoomNotFound.Code, appErr.Code)
	assert.Contains(t, appErr.Message, "999")
}

func TestSchedulingServiceProposeRoomTooSmall(t *testing.T) {
	svc, _ := newSchedulingService(false, models.Room{ID: "r1", Nazwa: "Lab1", Budynek: "B", Pojemnosc: 20})

	req := proposeRequest("e1")
	req.Sala = "Lab1"
	req.LiczbaOsob = 25
	_, err := svc.ProposeTerm(context.Background(), req)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrRoomTooSmall.Code, appErr.Code)
	assert.Contains(t, appErr.Message, "20")
	assert.Contains(t, appErr.Message, "25")
}

func TestSchedulingServiceDecideApprovesTerm(t *testing.T) {
	svc, _ := newSchedulingService(false, models.Room{ID: "r1", Nazwa: "101", Budynek: "A", Pojemnosc: 30})

	result, err := svc.ProposeTerm(context.Background(), proposeRequest("e1"))
	require.NoError(t, err)

	decided, err := svc.DecideTerm(context.Background(), result.Term.ID, DecideTermRequest{
		Status:         models.TermStatusApproved,
		ApprovedByRole: models.RoleAdmin,
		ApprovedByName: "Dziekan",
	})
	require.NoError(t, err)
	assert.Equal(t, models.TermStatusApproved, decided.Status)
	require.NotNil(t, decided.ApprovedByName)
	assert.Equal(t, "Dziekan", *decided.ApprovedByName)
}

func TestSchedulingServiceRejectionFreesSlot(t *testing.T) {
	svc, _ := newSchedulingService(false, models.Room{ID: "r1", Nazwa: "101", Budynek: "A", Pojemnosc: 30})

	result, err := svc.ProposeTerm(context.Background(), proposeRequest("e1"))
	require.NoError(t, err)

	_, err = svc.DecideTerm(context.Background(), result.Term.ID, DecideTermRequest{
		Status:         models.TermStatusRejected,
		ApprovedByRole: models.RoleProwadzacy,
		ApprovedByName: "dr Kowalski",
	})
	require.NoError(t, err)

	// The same slot is free again once the holding term is rejected.
	result, err = svc.ProposeTerm(context.Background(), proposeRequest("e2"))
	require.NoError(t, err)
	assert.Equal(t, models.TermStatusProposed, result.Term.Status)
}

func TestSchedulingServiceCohortConflictEnforced(t *testing.T) {
	svc, _ := newSchedulingService(true,
		models.Room{ID: "r1", Nazwa: "101", Budynek: "A", Pojemnosc: 30},
		models.Room{ID: "r2", Nazwa: "102", Budynek: "A", Pojemnosc: 30})

	_, err := svc.ProposeTerm(context.Background(), proposeRequest("e1"))
	require.NoError(t, err)

	// Different room and hour, same day, same cohort.
	req := proposeRequest("e2")
	req.Sala = "102"
	req.Godzina = "14:00"
	_, err = svc.ProposeTerm(context.Background(), req)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrCohortBusy.Code, appErr.Code)
	assert.Contains(t, appErr.Message, "2025-06-10")
}

func TestSchedulingServiceCohortConflictDisabledByDefault(t *testing.T) {
	svc, _ := newSchedulingService(false,
		models.Room{ID: "r1", Nazwa: "101", Budynek: "A", Pojemnosc: 30},
		models.Room{ID: "r2", Nazwa: "102", Budynek: "A", Pojemnosc: 30})

	_, err := svc.ProposeTerm(context.Background(), proposeRequest("e1"))
	require.NoError(t, err)

	req := proposeRequest("e2")
	req.Sala = "102"
	req.Godzina = "14:00"
	_, err = svc.ProposeTerm(context.Background(), req)
	require.NoError(t, err)
}

func TestSchedulingServiceProposeValidation(t *testing.T) {
	svc, _ := newSchedulingService(false, models.Room{ID: "r1", Nazwa: "101", Budynek: "A", Pojemnosc: 30})

	req := proposeRequest("e1")
	req.Data = "10-06-2025"
	_, err := svc.ProposeTerm(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
