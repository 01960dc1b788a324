package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okulpanel/rehber-api/internal/service"
	appErrors "github.com/okulpanel/rehber-api/pkg/errors"
	"github.com/okulpanel/rehber-api/pkg/response"
)

// TalentHandler exposes student talent endpoints.
type TalentHandler struct {
	talents *service.TalentService
}

// NewTalentHandler constructs TalentHandler.
func NewTalentHandler(talents *service.TalentService) *TalentHandler {
	return &TalentHandler{talents: talents}
}

// List godoc
// @Summary List a student's talents
// @Tags Talents
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/talents [get]
func (h *TalentHandler) List(c *gin.Context) {
	studentID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	talents, err := h.talents.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, talents)
}

// Create godoc
// @Summary Record a talent for a student
// @Tags Talents
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param payload body service.CreateTalentRequest true "Talent payload"
// @Success 201 {object} response.Envelope
// @Router /students/{id}/talents [post]
func (h *TalentHandler) Create(c *gin.Context) {
	studentID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.CreateTalentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	talent, err := h.talents.Create(c.Request.Context(), studentID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, talent)
}
