package handlers

import (
	"txn-dashboard/internal/dto"
	"txn-dashboard/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	txService *service.TransactionService
	logger    *zap.Logger
}

func NewTransactionHandler(txService *service.TransactionService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		txService: txService,
		logger:    logger,
	}
}

// InitializeDatabase godoc
// @Summary Seed the transaction store
// @Description Loads the product feed when the store is empty; a populated store is left as is
// @Tags transactions
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /initialize-database [get]
func (h *TransactionHandler) InitializeDatabase(c *fiber.Ctx) error {
	result, err := h.txService.Seed(c.Context())
	if err != nil {
		return h.fail(c, "Failed to initialize database", err)
	}

	return c.JSON(dto.MessageResponse{Message: result.Message()})
}

// ListTransactions godoc
// @Summary List transactions of a month
// @Description Case-insensitive search over title and description; a numeric search also matches the exact price
// @Tags transactions
// @Produce json
// @Param month query string true "Month name, e.g. March"
// @Param search query string false "Search term"
// @Param page query int false "Page" default(1)
// @Param perPage query int false "Records per page" default(10)
// @Success 200 {object} dto.TransactionListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c *fiber.Ctx) error {
	params := service.ListParams{
		Month:   c.Query("month"),
		Search:  c.Query("search"),
		Page:    c.QueryInt("page", service.DefaultPage),
		PerPage: c.QueryInt("perPage", service.DefaultPerPage),
	}

	result, err := h.txService.ListTransactions(c.Context(), params)
	if err != nil {
		return h.fail(c, "Failed to fetch transactions", err)
	}

	return c.JSON(result)
}

// Statistics godoc
// @Summary Sales statistics of a month
// @Tags charts
// @Produce json
// @Param month query string true "Month name"
// @Success 200 {object} dto.StatisticsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /statistics [get]
func (h *TransactionHandler) Statistics(c *fiber.Ctx) error {
	result, err := h.txService.Statistics(c.Context(), c.Query("month"))
	if err != nil {
		return h.fail(c, "Failed to fetch statistics", err)
	}

	return c.JSON(result)
}

// BarChart godoc
// @Summary Price range histogram of a month
// @Tags charts
// @Produce json
// @Param month query string true "Month name"
// @Success 200 {array} dto.PriceRangeCount
// @Failure 500 {object} dto.ErrorResponse
// @Router /bar-chart [get]
func (h *TransactionHandler) BarChart(c *fiber.Ctx) error {
	result, err := h.txService.BarChart(c.Context(), c.Query("month"))
	if err != nil {
		return h.fail(c, "Failed to fetch bar chart data", err)
	}

	return c.JSON(result)
}

// PieChart godoc
// @Summary Category breakdown of a month
// @Tags charts
// @Produce json
// @Param month query string true "Month name"
// @Success 200 {array} dto.CategoryCount
// @Failure 500 {object} dto.ErrorResponse
// @Router /pie-chart [get]
func (h *TransactionHandler) PieChart(c *fiber.Ctx) error {
	result, err := h.txService.PieChart(c.Context(), c.Query("month"))
	if err != nil {
		return h.fail(c, "Failed to fetch pie chart data", err)
	}

	return c.JSON(result)
}

// CombinedData godoc
// @Summary Transactions, statistics and both charts of a month
// @Tags charts
// @Produce json
// @Param month query string true "Month name"
// @Success 200 {object} dto.CombinedResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /combined-data [get]
func (h *TransactionHandler) CombinedData(c *fiber.Ctx) error {
	result, err := h.txService.CombinedData(c.Context(), c.Query("month"))
	if err != nil {
		return h.fail(c, "Failed to fetch combined data", err)
	}

	return c.JSON(result)
}

func (h *TransactionHandler) fail(c *fiber.Ctx, message string, err error) error {
	h.logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Path()),
		zap.String("query", string(c.Request().URI().QueryString())),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: message,
	})
}
