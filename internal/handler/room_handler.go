package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbartosik/exam-session-api/internal/service"
	appErrors "github.com/kbartosik/exam-session-api/pkg/errors"
	"github.com/kbartosik/exam-session-api/pkg/response"
)

// RoomHandler manages the room directory endpoints.
type RoomHandler struct {
	service *service.RoomService
}

// NewRoomHandler constructs handler.
func NewRoomHandler(svc *service.RoomService) *RoomHandler {
	return &RoomHandler{service: svc}
}

// CheckRoomAvailabilityRequest is the payload for the combined capacity
// and availability check.
type CheckRoomAvailabilityRequest struct {
	Sala       string `json:"sala" binding:"required"`
	Data       string `json:"data" binding:"required"`
	Godzina    string `json:"godzina" binding:"required"`
	LiczbaOsob int    `json:"liczba_osob" binding:"required,gt=0"`
}

// List godoc
// @Summary List rooms
// @Tags Rooms
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rooms)
}

// Get godoc
// @Summary Get a room by name
// @Tags Rooms
// @Produce json
// @Param nazwa path string true "Room name"
// @Success 200 {object} response.Envelope
// @Router /rooms/{nazwa} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	room, err := h.service.GetByName(c.Request.Context(), c.Param("nazwa"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, room)
}

// Create godoc
// @Summary Create room
// @Tags Rooms
// @Accept json
// @Produce json
// @Param payload body service.CreateRoomRequest true "Room payload"
// @Success 201 {object} response.Envelope
// @Router /rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req service.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	room, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, room)
}

// CheckAvailability godoc
// @Summary Check room capacity and availability for a slot
// @Tags Rooms
// @Accept json
// @Produce json
// @Param payload body CheckRoomAvailabilityRequest true "Slot payload"
// @Success 200 {object} response.Envelope
// @Router /rooms/check-availability [post]
func (h *RoomHandler) CheckAvailability(c *gin.Context) {
	var req CheckRoomAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.service.CheckCapacityAndAvailability(c.Request.Context(), req.Sala, req.Data, req.Godzina, req.LiczbaOsob)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
