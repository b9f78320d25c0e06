package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindlogapp/mindlog_backend/internal/core/ports"
	"github.com/mindlogapp/mindlog_backend/internal/middleware"
)

// exportHandler serves the PDF export of a user's full journal.
type exportHandler struct {
	exportService ports.ExportSvc
}

func newExportHandler(es ports.ExportSvc) *exportHandler {
	return &exportHandler{exportService: es}
}

// registerExportRoutes registers the export routes.
func registerExportRoutes(rg *gin.RouterGroup, exportService ports.ExportSvc) {
	h := newExportHandler(exportService)
	rg.GET("/export/pdf", h.exportPDF)
}

// exportPDF godoc
// @Summary Export journal as PDF
// @Description Renders every entry of the authenticated user into a downloadable PDF.
// @Tags export
// @Produce application/pdf
// @Success 200 {file} binary
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /export/pdf [get]
func (h *exportHandler) exportPDF(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	pdfBytes, err := h.exportService.ExportEntriesPDF(c.Request.Context(), userID)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to export journal", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to export journal"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="journal_entries.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
