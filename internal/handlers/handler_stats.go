package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statsHandler serves the monthly statement.
type statsHandler struct {
	statsService portssvc.StatsService
}

func newStatsHandler(ss portssvc.StatsService) *statsHandler {
	return &statsHandler{statsService: ss}
}

func registerStatsRoutes(rg *gin.RouterGroup, statsService portssvc.StatsService) {
	h := newStatsHandler(statsService)
	rg.GET("/stats", h.getStats)
}

// getStats godoc
// @Summary Monthly statement
// @Description Computes the statement of one month: starting balance, totals, category breakdown and the running-balance ledger. Month is 0-indexed. A storage failure yields an all-zero statement.
// @Tags stats
// @Produce json
// @Param month query int true "Month (0 = January)" minimum(0) maximum(11)
// @Param year query int true "Year"
// @Param status query string false "Status filter" Enums(all, active, inactive) default(active)
// @Param scope query string false "Balance scope" Enums(all, bank, cash, specific_bank) default(all)
// @Param bankID query string false "Bank ID, required for specific_bank"
// @Param method query []string false "Payment methods" collectionFormat(multi)
// @Param currency query string false "Statement currency" Enums(USD, KHR) default(USD)
// @Success 200 {object} dto.StatsResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Router /stats [get]
func (h *statsHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.StatsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for GetStats", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	filter := query.ToStatsFilter()
	logger.Debug("Received request for stats",
		slog.Int("year", query.Year),
		slog.Int("month", *query.Month),
		slog.String("scope", filter.Scope.Key()))

	result := h.statsService.GetStats(c.Request.Context(), *query.Month, query.Year, filter)

	currency := filter.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	c.JSON(http.StatusOK, dto.ToStatsResponse(result, currency))
}
