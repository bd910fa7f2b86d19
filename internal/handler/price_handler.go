package handler

import (
	"github.com/TradingIntent/Intentnew/internal/service"
	"github.com/TradingIntent/Intentnew/pkg/response"
	"github.com/gin-gonic/gin"
)

// PriceHandler serves reference price lookups
type PriceHandler struct {
	priceService *service.PriceService
}

// NewPriceHandler creates a new PriceHandler
func NewPriceHandler(priceService *service.PriceService) *PriceHandler {
	return &PriceHandler{
		priceService: priceService,
	}
}

// GetSolanaPrice returns the current SOL/USD price
// GET /api/v1/price/solana
func (h *PriceHandler) GetSolanaPrice(c *gin.Context) {
	price, err := h.priceService.GetSolanaPrice(c.Request.Context())
	if err != nil {
		response.BadGateway(c, "sol price unavailable")
		return
	}

	response.Success(c, gin.H{"usd": price})
}

// RegisterRoutes registers price routes
func (h *PriceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/price/solana", h.GetSolanaPrice)
}
