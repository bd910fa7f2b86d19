package handler

import (
	"errors"
	"strconv"

	"github.com/TradingIntent/Intentnew/internal/middleware"
	"github.com/TradingIntent/Intentnew/internal/repository"
	"github.com/TradingIntent/Intentnew/internal/service"
	"github.com/TradingIntent/Intentnew/pkg/response"
	"github.com/gin-gonic/gin"
)

// TradeHandler handles trade journaling API requests
type TradeHandler struct {
	tradeService    *service.TradeService
	analysisService *service.AnalysisService
}

// NewTradeHandler creates a new TradeHandler
func NewTradeHandler(tradeService *service.TradeService, analysisService *service.AnalysisService) *TradeHandler {
	return &TradeHandler{
		tradeService:    tradeService,
		analysisService: analysisService,
	}
}

// LogTrade creates a new trade
// POST /api/v1/trades
func (h *TradeHandler) LogTrade(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req service.TradeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	trade, err := h.tradeService.LogTrade(userID, &req)
	if err != nil {
		if service.IsValidationError(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, "failed to save trade")
		return
	}

	h.analysisService.InvalidateCache(c.Request.Context(), userID)

	response.Created(c, trade)
}

// ListTrades returns the user's trades, most recent first
// GET /api/v1/trades?page=1&page_size=20
func (h *TradeHandler) ListTrades(c *gin.Context) {
	userID := middleware.GetUserID(c)

	pageStr := c.Query("page")
	if pageStr == "" {
		trades, err := h.tradeService.ListTrades(userID)
		if err != nil {
			response.InternalError(c, "failed to load trades")
			return
		}
		response.Success(c, trades)
		return
	}

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	trades, total, err := h.tradeService.ListTradesPaginated(userID, page, pageSize)
	if err != nil {
		response.InternalError(c, "failed to load trades")
		return
	}

	response.SuccessPaginated(c, trades, total, page, pageSize)
}

// UpdateTrade replaces an existing trade's editable fields
// PUT /api/v1/trades/:trade_id
func (h *TradeHandler) UpdateTrade(c *gin.Context) {
	userID := middleware.GetUserID(c)
	tradeID := c.Param("trade_id")

	var req service.TradeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	trade, err := h.tradeService.UpdateTrade(userID, tradeID, &req)
	if err != nil {
		if service.IsValidationError(err) {
			response.BadRequest(c, err.Error())
			return
		}
		if errors.Is(err, repository.ErrTradeNotFound) {
			response.NotFound(c, "trade not found")
			return
		}
		response.InternalError(c, "failed to update trade")
		return
	}

	h.analysisService.InvalidateCache(c.Request.Context(), userID)

	response.Success(c, trade)
}

// DeleteTrade removes a trade
// DELETE /api/v1/trades/:trade_id
func (h *TradeHandler) DeleteTrade(c *gin.Context) {
	userID := middleware.GetUserID(c)
	tradeID := c.Param("trade_id")

	if err := h.tradeService.DeleteTrade(userID, tradeID); err != nil {
		response.InternalError(c, "failed to delete trade")
		return
	}

	h.analysisService.InvalidateCache(c.Request.Context(), userID)

	response.Success(c, gin.H{"deleted": tradeID})
}

// GetStats returns the aggregate statistics over the user's trades
// GET /api/v1/trades/stats
func (h *TradeHandler) GetStats(c *gin.Context) {
	userID := middleware.GetUserID(c)

	summary, err := h.tradeService.GetStats(userID)
	if err != nil {
		response.InternalError(c, "failed to compute statistics")
		return
	}

	response.Success(c, summary)
}

// RegisterRoutes registers trade routes
func (h *TradeHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	trades := rg.Group("/trades", authMiddleware)
	mutationLogger := middleware.MutationLoggerMiddleware()
	{
		trades.POST("", mutationLogger, h.LogTrade)
		trades.GET("", h.ListTrades)
		trades.GET("/stats", h.GetStats)
		trades.PUT("/:trade_id", mutationLogger, h.UpdateTrade)
		trades.DELETE("/:trade_id", mutationLogger, h.DeleteTrade)
	}
}
