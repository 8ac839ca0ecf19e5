package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kbartosik/exam-session-api/internal/models"
	"github.com/kbartosik/exam-session-api/internal/service"
	appErrors "github.com/kbartosik/exam-session-api/pkg/errors"
	"github.com/kbartosik/exam-session-api/pkg/response"
)

// TermHandler manages the exam term endpoints: proposing, listing,
// deciding, the standalone validation checks and the board export.
type TermHandler struct {
	scheduling   *service.SchedulingService
	terms        *service.TermService
	availability *service.AvailabilityService
	export       *service.ExportService
}

// NewTermHandler constructs handler.
func NewTermHandler(scheduling *service.SchedulingService, terms *service.TermService, availability *service.AvailabilityService, export *service.ExportService) *TermHandler {
	return &TermHandler{scheduling: scheduling, terms: terms, availability: availability, export: export}
}

// Propose godoc
// @Summary Propose an exam term
// @Tags ExamTerms
// @Accept json
// @Produce json
// @Param payload body service.ProposeTermRequest true "Term payload"
// @Success 201 {object} response.Envelope
// @Router /exam-terms [post]
func (h *TermHandler) Propose(c *gin.Context) {
	var req service.ProposeTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.scheduling.ProposeTerm(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, result)
}

// List godoc
// @Summary List exam terms
// @Tags ExamTerms
// @Produce json
// @Param kierunek query string false "Filter by field of study"
// @Param typ_studiow query string false "Filter by study mode"
// @Param rok query int false "Filter by study year"
// @Param status query string false "Filter by term status"
// @Success 200 {object} response.Envelope
// @Router /exam-terms [get]
func (h *TermHandler) List(c *gin.Context) {
	terms, err := h.terms.List(c.Request.Context(), termFilterFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, terms)
}

// Get godoc
// @Summary Get an exam term by id
// @Tags ExamTerms
// @Produce json
// @Param id path string true "Term ID"
// @Success 200 {object} response.Envelope
// @Router /exam-terms/{id} [get]
func (h *TermHandler) Get(c *gin.Context) {
	term, err := h.terms.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, term)
}

// Decide godoc
// @Summary Approve or reject a proposed term
// @Tags ExamTerms
// @Accept json
// @Produce json
// @Param id path string true "Term ID"
// @Param payload body service.DecideTermRequest true "Decision payload"
// @Success 200 {object} response.Envelope
// @Router /exam-terms/{id} [put]
func (h *TermHandler) Decide(c *gin.Context) {
	var req service.DecideTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	term, err := h.scheduling.DecideTerm(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, term)
}

// CheckRoom godoc
// @Summary Check whether a room slot is free
// @Tags ExamTerms
// @Produce json
// @Param data query string true "Date (YYYY-MM-DD)"
// @Param godzina query string true "Time (HH:MM)"
// @Param sala query string true "Room name"
// @Param exclude_term_id query string false "Term to exclude from the check"
// @Success 200 {object} response.Envelope
// @Router /exam-terms/validation/check-room [get]
func (h *TermHandler) CheckRoom(c *gin.Context) {
	data := c.Query("data")
	godzina := c.Query("godzina")
	sala := c.Query("sala")
	if data == "" || godzina == "" || sala == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "data, godzina and sala are required"))
		return
	}
	free, err := h.availability.IsRoomFree(c.Request.Context(), data, godzina, sala, c.Query("exclude_term_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"available": free})
}

// CheckStudents godoc
// @Summary Check whether a cohort is free on a day
// @Tags ExamTerms
// @Produce json
// @Param kierunek query string true "Field of study"
// @Param typ_studiow query string true "Study mode"
// @Param rok query int true "Study year"
// @Param data query string true "Date (YYYY-MM-DD)"
// @Param exclude_term_id query string false "Term to exclude from the check"
// @Success 200 {object} response.Envelope
// @Router /exam-terms/validation/check-students [get]
func (h *TermHandler) CheckStudents(c *gin.Context) {
	data := c.Query("data")
	kierunek := c.Query("kierunek")
	typStudiow := c.Query("typ_studiow")
	rok, err := strconv.Atoi(c.Query("rok"))
	if data == "" || kierunek == "" || typStudiow == "" || err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "kierunek, typ_studiow, rok and data are required"))
		return
	}
	cohort := models.Cohort{Kierunek: kierunek, TypStudiow: models.TypStudiow(typStudiow), Rok: rok}
	free, err := h.availability.IsCohortFree(c.Request.Context(), data, cohort, c.Query("exclude_term_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"available": free})
}

// Export godoc
// @Summary Export the term board
// @Tags ExamTerms
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "Export format (csv or pdf)" default(csv)
// @Param kierunek query string false "Filter by field of study"
// @Param typ_studiow query string false "Filter by study mode"
// @Param rok query int false "Filter by study year"
// @Param status query string false "Filter by term status"
// @Success 200 {file} file
// @Router /exam-terms/export [get]
func (h *TermHandler) Export(c *gin.Context) {
	format := service.ExportFormat(c.DefaultQuery("format", "csv"))
	result, err := h.export.ExportTerms(c.Request.Context(), termFilterFromQuery(c), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Content)
}

func termFilterFromQuery(c *gin.Context) models.ExamTermFilter {
	var filter models.ExamTermFilter
	filter.Kierunek = c.Query("kierunek")
	filter.TypStudiow = models.TypStudiow(c.Query("typ_studiow"))
	filter.Status = models.TermStatus(c.Query("status"))
	if rok, err := strconv.Atoi(c.Query("rok")); err == nil {
		filter.Rok = rok
	}
	return filter
}
