package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbartosik/exam-session-api/internal/models"
	"github.com/kbartosik/exam-session-api/internal/service"
	"github.com/kbartosik/exam-session-api/pkg/response"
)

type roomRepoMock struct {
	rooms map[string]models.Room
}

func (m *roomRepoMock) List(ctx context.Context) ([]models.Room, error) {
	out := make([]models.Room, 0, len(m.rooms))
	for _, room := range m.rooms {
		out = append(out, room)
	}
	return out, nil
}

func (m *roomRepoMock) FindByName(ctx context.Context, nazwa string) (*models.Room, error) {
	if room, ok := m.rooms[nazwa]; ok {
		return &room, nil
	}
	return nil, sql.ErrNoRows
}

func (m *roomRepoMock) ExistsByName(ctx context.Context, nazwa string) (bool, error) {
	_, ok := m.rooms[nazwa]
	return ok, nil
}

func (m *roomRepoMock) Create(ctx context.Context, room *models.Room) error {
	room.ID = "r-new"
	m.rooms[room.Nazwa] = *room
	return nil
}

type occupancyRepoMock struct {
	slotCount   int
	cohortCount int
}

func (m *occupancyRepoMock) CountActiveBySlot(ctx context.Context, data, godzina, sala, excludeID string) (int, error) {
	return m.slotCount, nil
}

func (m *occupancyRepoMock) CountActiveByCohort(ctx context.Context, data string, cohort models.Cohort, excludeID string) (int, error) {
	return m.cohortCount, nil
}

func newRoomHandler(rooms ...models.Room) *RoomHandler {
	repo := &roomRepoMock{rooms: make(map[string]models.Room)}
	for _, room := range rooms {
		repo.rooms[room.Nazwa] = room
	}
	availability := service.NewAvailabilityService(&occupancyRepoMock{}, nil)
	return NewRoomHandler(service.NewRoomService(repo, availability, nil, nil, nil))
}

func TestRoomHandlerGetNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newRoomHandler()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/rooms/999", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "nazwa", Value: "999"}}

	handler.Get(c)
	require.Equal(t, http.StatusNotFound, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "ROOM_NOT_FOUND", envelope.Error.Code)
}

func TestRoomHandlerCreateInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newRoomHandler()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/rooms", bytes.NewReader([]byte(`invalid`)))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoomHandlerCreateDuplicate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newRoomHandler(models.Room{ID: "r1", Nazwa: "101", Budynek: "A", Pojemnosc: 30})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(service.CreateRoomRequest{Nazwa: "101", Budynek: "B", Pojemnosc: 10})
	req, _ := http.NewRequest(http.MethodPost, "/rooms", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "DUPLICATE_ROOM", envelope.Error.Code)
}

func TestRoomHandlerCheckAvailability(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newRoomHandler(models.Room{ID: "r1", Nazwa: "Lab1", Budynek: "B", Pojemnosc: 20})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(CheckRoomAvailabilityRequest{Sala: "Lab1", Data: "2025-06-10", Godzina: "10:00", LiczbaOsob: 15})
	req, _ := http.NewRequest(http.MethodPost, "/rooms/check-availability", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.CheckAvailability(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data models.RoomAvailability `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Data.Available)
	require.NotNil(t, envelope.Data.Room)
	assert.Equal(t, "Lab1", envelope.Data.Room.Nazwa)
}
