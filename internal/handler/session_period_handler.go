package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbartosik/exam-session-api/internal/service"
	appErrors "github.com/kbartosik/exam-session-api/pkg/errors"
	"github.com/kbartosik/exam-session-api/pkg/response"
)

// SessionPeriodHandler manages exam session period endpoints.
type SessionPeriodHandler struct {
	service *service.SessionPeriodService
}

// NewSessionPeriodHandler constructs handler.
func NewSessionPeriodHandler(svc *service.SessionPeriodService) *SessionPeriodHandler {
	return &SessionPeriodHandler{service: svc}
}

// List godoc
// @Summary List session periods, newest first
// @Tags SessionPeriods
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /session-periods [get]
func (h *SessionPeriodHandler) List(c *gin.Context) {
	periods, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, periods)
}

// Create godoc
// @Summary Create session period
// @Tags SessionPeriods
// @Accept json
// @Produce json
// @Param payload body service.CreateSessionPeriodRequest true "Session period payload"
// @Success 201 {object} response.Envelope
// @Router /session-periods [post]
func (h *SessionPeriodHandler) Create(c *gin.Context) {
	var req service.CreateSessionPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	period, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, period)
}
