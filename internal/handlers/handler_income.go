package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// incomeHandler handles income rules and automation runs.
type incomeHandler struct {
	incomeService portssvc.IncomeSvcFacade
}

func newIncomeHandler(is portssvc.IncomeSvcFacade) *incomeHandler {
	return &incomeHandler{incomeService: is}
}

func registerIncomeRoutes(rg *gin.RouterGroup, incomeService portssvc.IncomeSvcFacade) {
	h := newIncomeHandler(incomeService)

	configs := rg.Group("/income-configs")
	{
		configs.GET("", h.listIncomeConfigs)
		configs.POST("", h.createIncomeConfig)
		configs.PUT("/:id", h.updateIncomeConfig)
	}
	rg.POST("/income-automation/run", h.runIncomeAutomation)
}

// listIncomeConfigs godoc
// @Summary List income rules
// @Tags income
// @Produce json
// @Success 200 {array} dto.IncomeConfigResponse
// @Failure 500 {object} map[string]string "Failed to list income configs"
// @Router /income-configs [get]
func (h *incomeHandler) listIncomeConfigs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	configs, err := h.incomeService.ListIncomeConfigs(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list income configs")
		return
	}
	c.JSON(http.StatusOK, dto.ToIncomeConfigResponses(configs))
}

// createIncomeConfig godoc
// @Summary Create an income rule
// @Tags income
// @Accept json
// @Produce json
// @Param X-Actor header string false "Caller name recorded in audit fields"
// @Param config body dto.CreateIncomeConfigRequest true "Rule details"
// @Success 201 {object} dto.IncomeConfigResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create income config"
// @Router /income-configs [post]
func (h *incomeHandler) createIncomeConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateIncomeConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateIncomeConfig", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cfg, err := h.incomeService.CreateIncomeConfig(c.Request.Context(), req, middleware.GetActorFromContext(c))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create income config")
		return
	}
	c.JSON(http.StatusCreated, dto.ToIncomeConfigResponse(cfg))
}

// updateIncomeConfig godoc
// @Summary Update an income rule
// @Tags income
// @Accept json
// @Produce json
// @Param id path string true "Income config ID"
// @Param X-Actor header string false "Caller name recorded in audit fields"
// @Param config body dto.UpdateIncomeConfigRequest true "Fields to change"
// @Success 200 {object} dto.IncomeConfigResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Income config not found"
// @Failure 500 {object} map[string]string "Failed to update income config"
// @Router /income-configs/{id} [put]
func (h *incomeHandler) updateIncomeConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("config_id", c.Param("id")))
	var req dto.UpdateIncomeConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateIncomeConfig", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cfg, err := h.incomeService.UpdateIncomeConfig(c.Request.Context(), c.Param("id"), req, middleware.GetActorFromContext(c))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update income config")
		return
	}
	c.JSON(http.StatusOK, dto.ToIncomeConfigResponse(cfg))
}

// runIncomeAutomation godoc
// @Summary Generate recurring income
// @Description Creates the income entries of every active rule for the month of date (monthly) or every month of its year (yearly). Entries that already exist are skipped, so reruns are safe.
// @Tags income
// @Accept json
// @Produce json
// @Param run body dto.RunIncomeAutomationRequest true "Mode and optional date (defaults to today)"
// @Success 200 {object} dto.AutomationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Income automation failed"
// @Router /income-automation/run [post]
func (h *incomeHandler) runIncomeAutomation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RunIncomeAutomationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RunIncomeAutomation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse(domain.DateLayout, req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	result, err := h.incomeService.RunIncomeAutomation(c.Request.Context(), domain.AutomationMode(req.Mode), date)
	if err != nil {
		respondServiceError(c, logger, err, "Income automation failed")
		return
	}
	c.JSON(http.StatusOK, dto.AutomationResponse{Created: result.Created, Skipped: result.Skipped})
}
