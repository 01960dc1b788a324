package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okulpanel/rehber-api/internal/service"
	appErrors "github.com/okulpanel/rehber-api/pkg/errors"
	"github.com/okulpanel/rehber-api/pkg/response"
)

// GuidanceEventHandler exposes counseling event endpoints. Create and Update
// accept multipart forms with an optional "file" attachment.
type GuidanceEventHandler struct {
	guidance *service.GuidanceService
}

// NewGuidanceEventHandler constructs GuidanceEventHandler.
func NewGuidanceEventHandler(guidance *service.GuidanceService) *GuidanceEventHandler {
	return &GuidanceEventHandler{guidance: guidance}
}

// List godoc
// @Summary List events under a guidance plan
// @Tags Guidance
// @Produce json
// @Param planId query int true "Plan ID"
// @Success 200 {object} response.Envelope
// @Router /guidance-events [get]
func (h *GuidanceEventHandler) List(c *gin.Context) {
	planID, err := queryID(c, "planId")
	if err != nil {
		response.Error(c, err)
		return
	}
	events, err := h.guidance.ListEvents(c.Request.Context(), planID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, events)
}

// Create godoc
// @Summary Create a guidance event
// @Tags Guidance
// @Accept multipart/form-data
// @Produce json
// @Param plan_id formData int true "Plan ID"
// @Param date formData string true "Event date"
// @Param event_name formData string true "Event name"
// @Param description formData string false "Description"
// @Param file formData file false "Attachment"
// @Success 201 {object} response.Envelope
// @Router /guidance-events [post]
func (h *GuidanceEventHandler) Create(c *gin.Context) {
	var req service.GuidanceEventRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	attachment, cleanup, err := formFile(c, "file")
	if err != nil {
		response.Error(c, err)
		return
	}
	defer cleanup()

	event, err := h.guidance.CreateEvent(c.Request.Context(), req, attachment)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, event)
}

// Update godoc
// @Summary Update a guidance event
// @Tags Guidance
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Event ID"
// @Param date formData string true "Event date"
// @Param event_name formData string true "Event name"
// @Param description formData string false "Description"
// @Param file formData file false "Replacement attachment"
// @Success 200 {object} response.Envelope
// @Router /guidance-events/{id} [put]
func (h *GuidanceEventHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.GuidanceEventRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	attachment, cleanup, err := formFile(c, "file")
	if err != nil {
		response.Error(c, err)
		return
	}
	defer cleanup()

	event, err := h.guidance.UpdateEvent(c.Request.Context(), id, req, attachment)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, event)
}

// Delete godoc
// @Summary Delete a guidance event and its attachment
// @Tags Guidance
// @Produce json
// @Param id path int true "Event ID"
// @Success 204
// @Router /guidance-events/{id} [delete]
func (h *GuidanceEventHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.guidance.DeleteEvent(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
