package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okulpanel/rehber-api/internal/service"
	appErrors "github.com/okulpanel/rehber-api/pkg/errors"
	"github.com/okulpanel/rehber-api/pkg/response"
)

// EducationYearHandler exposes education-year endpoints.
type EducationYearHandler struct {
	years *service.EducationYearService
}

// NewEducationYearHandler constructs EducationYearHandler.
func NewEducationYearHandler(years *service.EducationYearService) *EducationYearHandler {
	return &EducationYearHandler{years: years}
}

// List godoc
// @Summary List education years
// @Tags EducationYears
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /education-years [get]
func (h *EducationYearHandler) List(c *gin.Context) {
	years, err := h.years.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, years)
}

// Create godoc
// @Summary Create education year
// @Tags EducationYears
// @Accept json
// @Produce json
// @Param payload body service.CreateEducationYearRequest true "Education year payload"
// @Success 201 {object} response.Envelope
// @Router /education-years [post]
func (h *EducationYearHandler) Create(c *gin.Context) {
	var req service.CreateEducationYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	year, err := h.years.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, year)
}
