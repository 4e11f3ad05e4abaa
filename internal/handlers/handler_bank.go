package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

type bankHandler struct {
	bankService portssvc.BankSvcFacade
}

func newBankHandler(bs portssvc.BankSvcFacade) *bankHandler {
	return &bankHandler{bankService: bs}
}

func registerBankRoutes(rg *gin.RouterGroup, bankService portssvc.BankSvcFacade) {
	h := newBankHandler(bankService)

	banks := rg.Group("/banks")
	{
		banks.GET("", h.listBanks)
		banks.POST("", h.createBank)
		banks.GET("/:id", h.getBank)
	}
}

// listBanks godoc
// @Summary List registered banks
// @Tags banks
// @Produce json
// @Success 200 {array} dto.BankResponse
// @Failure 500 {object} map[string]string "Failed to list banks"
// @Router /banks [get]
func (h *bankHandler) listBanks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	banks, err := h.bankService.ListBanks(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list banks")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankResponses(banks))
}

// createBank godoc
// @Summary Register a bank
// @Description The name should match the payment method stored on the bank's transactions.
// @Tags banks
// @Accept json
// @Produce json
// @Param X-Actor header string false "Caller name recorded in audit fields"
// @Param bank body dto.CreateBankRequest true "Bank details"
// @Success 201 {object} dto.BankResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Bank already exists"
// @Failure 500 {object} map[string]string "Failed to create bank"
// @Router /banks [post]
func (h *bankHandler) createBank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBank", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	bank, err := h.bankService.CreateBank(c.Request.Context(), req, middleware.GetActorFromContext(c))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create bank")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBankResponse(bank))
}

// getBank godoc
// @Summary Get a bank by ID
// @Tags banks
// @Produce json
// @Param id path string true "Bank ID"
// @Success 200 {object} dto.BankResponse
// @Failure 404 {object} map[string]string "Bank not found"
// @Router /banks/{id} [get]
func (h *bankHandler) getBank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	bank, err := h.bankService.GetBank(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve bank")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankResponse(bank))
}
