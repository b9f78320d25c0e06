package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindlogapp/mindlog_backend/internal/core/ports"
	"github.com/mindlogapp/mindlog_backend/internal/dto"
	"github.com/mindlogapp/mindlog_backend/internal/middleware"
)

// reflectionHandler handles the weekly reflection upsert.
type reflectionHandler struct {
	reflectionService ports.ReflectionSvc
}

func newReflectionHandler(rs ports.ReflectionSvc) *reflectionHandler {
	return &reflectionHandler{reflectionService: rs}
}

// registerReflectionRoutes registers the weekly reflection routes.
func registerReflectionRoutes(rg *gin.RouterGroup, reflectionService ports.ReflectionSvc) {
	h := newReflectionHandler(reflectionService)
	rg.PUT("/reflections/current", h.saveCurrentReflection)
}

// saveCurrentReflection godoc
// @Summary Save the weekly reflection
// @Description Creates or overwrites the reflection for the current calendar week (Monday-anchored).
// @Tags reflections
// @Accept json
// @Produce json
// @Param reflection body dto.SaveReflectionRequest true "Reflection fields"
// @Success 200 {object} dto.ReflectionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reflections/current [put]
func (h *reflectionHandler) saveCurrentReflection(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SaveReflectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	reflection, err := h.reflectionService.SaveWeeklyReflection(c.Request.Context(), userID, req)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to save weekly reflection", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save reflection"})
		return
	}
	c.JSON(http.StatusOK, dto.ToReflectionResponse(reflection))
}
