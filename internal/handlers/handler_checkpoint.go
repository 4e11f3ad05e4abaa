package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// checkpointHandler handles HTTP requests related to balance checkpoints.
type checkpointHandler struct {
	checkpointService portssvc.CheckpointSvcFacade
}

func newCheckpointHandler(cs portssvc.CheckpointSvcFacade) *checkpointHandler {
	return &checkpointHandler{checkpointService: cs}
}

func registerCheckpointRoutes(rg *gin.RouterGroup, checkpointService portssvc.CheckpointSvcFacade) {
	h := newCheckpointHandler(checkpointService)

	checkpoints := rg.Group("/checkpoints")
	{
		checkpoints.GET("", h.listCheckpoints)
		checkpoints.POST("", h.createCheckpoint)
		checkpoints.PUT("/:id", h.updateCheckpoint)
		checkpoints.DELETE("/:id", h.deleteCheckpoint)
	}
}

// listCheckpoints godoc
// @Summary List balance checkpoints
// @Tags checkpoints
// @Produce json
// @Success 200 {array} dto.CheckpointResponse
// @Failure 500 {object} map[string]string "Failed to list checkpoints"
// @Router /checkpoints [get]
func (h *checkpointHandler) listCheckpoints(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	checkpoints, err := h.checkpointService.ListCheckpoints(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list checkpoints")
		return
	}
	c.JSON(http.StatusOK, dto.ToCheckpointResponses(checkpoints))
}

// createCheckpoint godoc
// @Summary Record a starting balance
// @Description Records the balance of a scope at the start of a month (0-indexed). One checkpoint per scope and month.
// @Tags checkpoints
// @Accept json
// @Produce json
// @Param X-Actor header string false "Caller name recorded in audit fields"
// @Param checkpoint body dto.CreateCheckpointRequest true "Checkpoint details"
// @Success 201 {object} dto.CheckpointResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Checkpoint already exists for the scope and month"
// @Failure 500 {object} map[string]string "Failed to create checkpoint"
// @Router /checkpoints [post]
func (h *checkpointHandler) createCheckpoint(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCheckpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCheckpoint", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cp, err := h.checkpointService.CreateCheckpoint(c.Request.Context(), req, middleware.GetActorFromContext(c))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create checkpoint")
		return
	}

	logger.Info("Checkpoint created successfully", slog.String("checkpoint_id", cp.CheckpointID))
	c.JSON(http.StatusCreated, dto.ToCheckpointResponse(cp))
}

// updateCheckpoint godoc
// @Summary Update checkpoint amounts
// @Tags checkpoints
// @Accept json
// @Produce json
// @Param id path string true "Checkpoint ID"
// @Param X-Actor header string false "Caller name recorded in audit fields"
// @Param checkpoint body dto.UpdateCheckpointRequest true "New amounts"
// @Success 200 {object} dto.CheckpointResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Checkpoint not found"
// @Failure 500 {object} map[string]string "Failed to update checkpoint"
// @Router /checkpoints/{id} [put]
func (h *checkpointHandler) updateCheckpoint(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("checkpoint_id", c.Param("id")))
	var req dto.UpdateCheckpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCheckpoint", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cp, err := h.checkpointService.UpdateCheckpoint(c.Request.Context(), c.Param("id"), req, middleware.GetActorFromContext(c))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update checkpoint")
		return
	}
	c.JSON(http.StatusOK, dto.ToCheckpointResponse(cp))
}

// deleteCheckpoint godoc
// @Summary Delete a checkpoint
// @Tags checkpoints
// @Param id path string true "Checkpoint ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Checkpoint not found"
// @Failure 500 {object} map[string]string "Failed to delete checkpoint"
// @Router /checkpoints/{id} [delete]
func (h *checkpointHandler) deleteCheckpoint(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("checkpoint_id", c.Param("id")))

	if err := h.checkpointService.DeleteCheckpoint(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete checkpoint")
		return
	}
	c.Status(http.StatusNoContent)
}
