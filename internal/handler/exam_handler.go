package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kbartosik/exam-session-api/internal/models"
	"github.com/kbartosik/exam-session-api/internal/service"
	appErrors "github.com/kbartosik/exam-session-api/pkg/errors"
	"github.com/kbartosik/exam-session-api/pkg/response"
)

// ExamHandler manages exam endpoints.
type ExamHandler struct {
	service *service.ExamService
}

// NewExamHandler constructs handler.
func NewExamHandler(svc *service.ExamService) *ExamHandler {
	return &ExamHandler{service: svc}
}

// List godoc
// @Summary List exams with subject details
// @Tags Exams
// @Produce json
// @Param kierunek query string false "Filter by field of study"
// @Param typ_studiow query string false "Filter by study mode"
// @Param rok query int false "Filter by study year"
// @Param prowadzacy_name query string false "Filter by instructor"
// @Success 200 {object} response.Envelope
// @Router /exams [get]
func (h *ExamHandler) List(c *gin.Context) {
	var filter models.ExamFilter
	filter.Kierunek = c.Query("kierunek")
	filter.TypStudiow = models.TypStudiow(c.Query("typ_studiow"))
	filter.ProwadzacyName = c.Query("prowadzacy_name")
	if rok, err := strconv.Atoi(c.Query("rok")); err == nil {
		filter.Rok = rok
	}

	exams, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, exams)
}

// Get godoc
// @Summary Get an exam by id
// @Tags Exams
// @Produce json
// @Param id path string true "Exam ID"
// @Success 200 {object} response.Envelope
// @Router /exams/{id} [get]
func (h *ExamHandler) Get(c *gin.Context) {
	exam, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, exam)
}

// Create godoc
// @Summary Create exam
// @Tags Exams
// @Accept json
// @Produce json
// @Param payload body service.CreateExamRequest true "Exam payload"
// @Success 201 {object} response.Envelope
// @Router /exams [post]
func (h *ExamHandler) Create(c *gin.Context) {
	var req service.CreateExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	exam, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, exam)
}
