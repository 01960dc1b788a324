package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okulpanel/rehber-api/internal/models"
	"github.com/okulpanel/rehber-api/internal/service"
	appErrors "github.com/okulpanel/rehber-api/pkg/errors"
	"github.com/okulpanel/rehber-api/pkg/response"
)

// GuidancePlanHandler exposes counseling plan endpoints.
type GuidancePlanHandler struct {
	guidance *service.GuidanceService
}

// NewGuidancePlanHandler constructs GuidancePlanHandler.
func NewGuidancePlanHandler(guidance *service.GuidanceService) *GuidancePlanHandler {
	return &GuidancePlanHandler{guidance: guidance}
}

// List godoc
// @Summary List guidance plans for a class
// @Tags Guidance
// @Produce json
// @Param classId query int true "Class ID"
// @Param educationYearId query int false "Education year ID"
// @Success 200 {object} response.Envelope
// @Router /guidance-plans [get]
func (h *GuidancePlanHandler) List(c *gin.Context) {
	classID, err := queryID(c, "classId")
	if err != nil {
		response.Error(c, err)
		return
	}
	yearID, err := optionalQueryID(c, "educationYearId")
	if err != nil {
		response.Error(c, err)
		return
	}
	plans, err := h.guidance.ListPlans(c.Request.Context(), models.GuidancePlanFilter{
		ClassID:         classID,
		EducationYearID: yearID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, plans)
}

// Create godoc
// @Summary Create a guidance plan
// @Tags Guidance
// @Accept json
// @Produce json
// @Param payload body service.CreateGuidancePlanRequest true "Plan payload"
// @Success 201 {object} response.Envelope
// @Router /guidance-plans [post]
func (h *GuidancePlanHandler) Create(c *gin.Context) {
	var req service.CreateGuidancePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	plan, err := h.guidance.CreatePlan(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, plan)
}

// Update godoc
// @Summary Update a guidance plan
// @Tags Guidance
// @Accept json
// @Produce json
// @Param id path int true "Plan ID"
// @Param payload body service.UpdateGuidancePlanRequest true "Plan payload"
// @Success 200 {object} response.Envelope
// @Router /guidance-plans/{id} [put]
func (h *GuidancePlanHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.UpdateGuidancePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	plan, err := h.guidance.UpdatePlan(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, plan)
}

// Delete godoc
// @Summary Delete a guidance plan and its events
// @Tags Guidance
// @Produce json
// @Param id path int true "Plan ID"
// @Success 204
// @Router /guidance-plans/{id} [delete]
func (h *GuidancePlanHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.guidance.DeletePlan(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
