package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbartosik/exam-session-api/internal/service"
	"github.com/kbartosik/exam-session-api/pkg/response"
)

// DemoUserHandler serves the read-only demo user list backing the UI's
// user selector.
type DemoUserHandler struct {
	service *service.DemoUserService
}

// NewDemoUserHandler constructs handler.
func NewDemoUserHandler(svc *service.DemoUserService) *DemoUserHandler {
	return &DemoUserHandler{service: svc}
}

// List godoc
// @Summary List demo users
// @Tags DemoUsers
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /demo-users [get]
func (h *DemoUserHandler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, users)
}
