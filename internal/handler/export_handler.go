package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okulpanel/rehber-api/internal/service"
	"github.com/okulpanel/rehber-api/pkg/response"
)

// ExportHandler serves student dossier downloads.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler constructs ExportHandler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// StudentDossier godoc
// @Summary Export a student dossier as PDF
// @Tags Exports
// @Produce application/pdf
// @Param id path int true "Student ID"
// @Success 200 {file} binary
// @Router /students/{id}/export [get]
func (h *ExportHandler) StudentDossier(c *gin.Context) {
	studentID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	pdf, filename, err := h.exports.StudentDossier(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
