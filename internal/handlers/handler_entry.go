package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mindlogapp/mindlog_backend/internal/apperrors"
	"github.com/mindlogapp/mindlog_backend/internal/core/ports"
	"github.com/mindlogapp/mindlog_backend/internal/dto"
	"github.com/mindlogapp/mindlog_backend/internal/middleware"
)

// entryHandler handles HTTP requests related to journal entries.
type entryHandler struct {
	entryService ports.EntrySvc
	mediaService ports.MediaSvc
}

// newEntryHandler creates a new entryHandler.
func newEntryHandler(es ports.EntrySvc, ms ports.MediaSvc) *entryHandler {
	return &entryHandler{
		entryService: es,
		mediaService: ms,
	}
}

// registerEntryRoutes registers all entry-related routes.
func registerEntryRoutes(rg *gin.RouterGroup, entryService ports.EntrySvc, mediaService ports.MediaSvc) {
	h := newEntryHandler(entryService, mediaService)

	entries := rg.Group("/entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:entryID", h.getEntry)
		entries.PUT("/:entryID", h.updateEntry)
		entries.DELETE("/:entryID", h.deleteEntry)
		entries.POST("/:entryID/media", h.uploadMedia)
		entries.GET("/:entryID/media", h.listMedia)
	}
}

// respondEntryError maps service errors to HTTP statuses shared by every
// entry route.
func respondEntryError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Entry not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Entry access forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		logger.Error("Entry operation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// createEntry godoc
// @Summary Create a journal entry
// @Description Creates a new journal entry for the authenticated user.
// @Tags entries
// @Accept json
// @Produce json
// @Param entry body dto.CreateEntryRequest true "Entry details"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /entries [post]
func (h *entryHandler) createEntry(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), userID, req)
	if err != nil {
		respondEntryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Returns the authenticated user's most recent entries, newest first.
// @Tags entries
// @Produce json
// @Param limit query int false "Maximum number of entries" default(100)
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /entries [get]
func (h *entryHandler) listEntries(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	entries, err := h.entryService.ListEntries(c.Request.Context(), userID, limit)
	if err != nil {
		respondEntryError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListEntriesResponse(entries))
}

// getEntry godoc
// @Summary Get a journal entry
// @Description Returns one entry owned by the authenticated user.
// @Tags entries
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /entries/{entryID} [get]
func (h *entryHandler) getEntry(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entry, err := h.entryService.GetEntry(c.Request.Context(), userID, c.Param("entryID"))
	if err != nil {
		respondEntryError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// updateEntry godoc
// @Summary Edit a journal entry
// @Description Updates content, mood, emotion, energy and sleep of an entry. Other fields are not editable.
// @Tags entries
// @Accept json
// @Produce json
// @Param entryID path string true "Entry ID"
// @Param entry body dto.UpdateEntryRequest true "Editable fields"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /entries/{entryID} [put]
func (h *entryHandler) updateEntry(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	entry, err := h.entryService.UpdateEntry(c.Request.Context(), userID, c.Param("entryID"), req)
	if err != nil {
		respondEntryError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete a journal entry
// @Description Deletes an entry and its attachments.
// @Tags entries
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /entries/{entryID} [delete]
func (h *entryHandler) deleteEntry(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.entryService.DeleteEntry(c.Request.Context(), userID, c.Param("entryID")); err != nil {
		respondEntryError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// uploadMedia godoc
// @Summary Attach an image to an entry
// @Description Accepts a multipart image upload (png, jpg, jpeg, gif) for an entry.
// @Tags entries
// @Accept mpfd
// @Produce json
// @Param entryID path string true "Entry ID"
// @Param image formData file true "Image file"
// @Success 201 {object} dto.MediaResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /entries/{entryID}/media [post]
func (h *entryHandler) uploadMedia(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing image file"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Could not read image file"})
		return
	}
	defer file.Close()

	media, err := h.mediaService.AttachImage(c.Request.Context(), userID, c.Param("entryID"), fileHeader.Filename, file)
	if err != nil {
		respondEntryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToMediaResponse(media))
}

// listMedia godoc
// @Summary List entry attachments
// @Description Returns the attachments stored for an entry.
// @Tags entries
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {array} dto.MediaResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /entries/{entryID}/media [get]
func (h *entryHandler) listMedia(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	media, err := h.mediaService.ListEntryMedia(c.Request.Context(), userID, c.Param("entryID"))
	if err != nil {
		respondEntryError(c, err)
		return
	}

	responses := make([]dto.MediaResponse, len(media))
	for i := range media {
		responses[i] = dto.ToMediaResponse(&media[i])
	}
	c.JSON(http.StatusOK, responses)
}
