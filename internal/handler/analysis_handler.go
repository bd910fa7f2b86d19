package handler

import (
	"errors"

	"github.com/TradingIntent/Intentnew/internal/middleware"
	"github.com/TradingIntent/Intentnew/internal/service"
	"github.com/TradingIntent/Intentnew/pkg/response"
	"github.com/gin-gonic/gin"
)

// AnalysisHandler handles AI behavioral analysis requests
type AnalysisHandler struct {
	analysisService *service.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler
func NewAnalysisHandler(analysisService *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
	}
}

// Analyze generates the AI trading thesis for the user's trade history
// POST /api/v1/analysis
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	userID := middleware.GetUserID(c)

	narrative, err := h.analysisService.Analyze(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotEnoughData) {
			response.UnprocessableEntity(c, err.Error())
			return
		}
		response.BadGateway(c, "failed to get AI analysis")
		return
	}

	response.Success(c, gin.H{"analysis": narrative})
}

// RegisterRoutes registers analysis routes
func (h *AnalysisHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	rg.POST("/analysis", authMiddleware, h.Analyze)
}
