package handler

import (
	"errors"

	"github.com/TradingIntent/Intentnew/internal/middleware"
	"github.com/TradingIntent/Intentnew/internal/service"
	"github.com/TradingIntent/Intentnew/pkg/response"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication API requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles user registration
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			response.BadRequest(c, "an account with this email already exists")
			return
		}
		response.InternalError(c, "failed to register user")
		return
	}

	response.Created(c, gin.H{
		"id":    user.ID,
		"email": user.Email,
	})
}

// Login handles user login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	token, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, "invalid email or password")
			return
		}
		response.InternalError(c, "failed to login")
		return
	}

	response.Success(c, token)
}

// RefreshToken handles token refresh
// POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	token, err := h.authService.RefreshToken(req.Token)
	if err != nil {
		response.Unauthorized(c, "invalid or expired token")
		return
	}

	response.Success(c, token)
}

// Me returns the authenticated user
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := middleware.GetUserID(c)

	user, err := h.authService.GetUserByID(userID)
	if err != nil {
		response.NotFound(c, "user not found")
		return
	}

	response.Success(c, user)
}

// UpdateWallet assigns a Solana wallet address to the user
// PUT /api/v1/auth/wallet
func (h *AuthHandler) UpdateWallet(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req struct {
		WalletAddress string `json:"wallet_address" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.authService.UpdateWallet(userID, req.WalletAddress)
	if err != nil {
		if errors.Is(err, service.ErrInvalidWalletAddress) {
			response.BadRequest(c, "please enter a valid Solana wallet address")
			return
		}
		if errors.Is(err, service.ErrWalletTaken) {
			response.BadRequest(c, "this wallet is already assigned to a different user")
			return
		}
		response.InternalError(c, "failed to update wallet address")
		return
	}

	response.Success(c, user)
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.RefreshToken)
		auth.GET("/me", authMiddleware, h.Me)
		auth.PUT("/wallet", authMiddleware, h.UpdateWallet)
	}
}
