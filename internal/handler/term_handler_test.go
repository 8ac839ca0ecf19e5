package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbartosik/exam-session-api/internal/service"
)

func newValidationHandler(occupancy *occupancyRepoMock) *TermHandler {
	availability := service.NewAvailabilityService(occupancy, nil)
	return NewTermHandler(nil, nil, availability, nil)
}

func availabilityResponse(t *testing.T, w *httptest.ResponseRecorder) bool {
	t.Helper()
	var envelope struct {
		Data struct {
			Available bool `json:"available"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data.Available
}

func TestTermHandlerCheckRoomMissingParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newValidationHandler(&occupancyRepoMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/exam-terms/validation/check-room?data=2025-06-10", nil)
	c.Request = req

	handler.CheckRoom(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTermHandlerCheckRoom(t *testing.T) {
	gin.SetMode(gin.TestMode)
	occupancy := &occupancyRepoMock{}
	handler := newValidationHandler(occupancy)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/exam-terms/validation/check-room?data=2025-06-10&godzina=10:00&sala=101", nil)
	c.Request = req

	handler.CheckRoom(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, availabilityResponse(t, w))

	occupancy.slotCount = 1
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = req

	handler.CheckRoom(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, availabilityResponse(t, w))
}

func TestTermHandlerCheckStudents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	occupancy := &occupancyRepoMock{cohortCount: 1}
	handler := newValidationHandler(occupancy)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/exam-terms/validation/check-students?kierunek=Informatyka&typ_studiow=stacjonarne_I&rok=2&data=2025-06-10", nil)
	c.Request = req

	handler.CheckStudents(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, availabilityResponse(t, w))
}

func TestTermHandlerCheckStudentsMissingParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newValidationHandler(&occupancyRepoMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/exam-terms/validation/check-students?kierunek=Informatyka", nil)
	c.Request = req

	handler.CheckStudents(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
