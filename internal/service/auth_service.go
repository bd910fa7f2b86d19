package service

import (
	"errors"
	"regexp"
	"time"

	"github.com/TradingIntent/Intentnew/internal/config"
	"github.com/TradingIntent/Intentnew/internal/models"
	"github.com/TradingIntent/Intentnew/internal/repository"
	"github.com/TradingIntent/Intentnew/pkg/crypto"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrEmailTaken           = errors.New("an account with this email already exists")
	ErrInvalidToken         = errors.New("invalid token")
	ErrInvalidWalletAddress = errors.New("invalid wallet address")
	ErrWalletTaken          = errors.New("wallet already assigned to a different user")
)

// Base58, 32-44 characters
var solanaAddressRe = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{32,44}$`)

// UserStore is the persistence surface the auth service depends on
type UserStore interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	ExistsByEmail(email string) (bool, error)
	ExistsByWallet(address string) (bool, error)
	UpdateWallet(id uint, address string) error
}

// AuthService handles authentication operations
type AuthService struct {
	users     UserStore
	jwtConfig config.JWTConfig
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserStore, jwtConfig config.JWTConfig) *AuthService {
	return &AuthService{
		users:     users,
		jwtConfig: jwtConfig,
	}
}

// RegisterRequest represents the registration request
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=100"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents the JWT token response
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// JWTClaims represents the JWT claims
type JWTClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Register registers a new user
func (s *AuthService) Register(req *RegisterRequest) (*models.User, error) {
	exists, err := s.users.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	passwordHash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: passwordHash,
	}

	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and returns a JWT token
func (s *AuthService) Login(req *LoginRequest) (*TokenResponse, error) {
	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.generateToken(user)
}

// RefreshToken refreshes a JWT token
func (s *AuthService) RefreshToken(tokenString string) (*TokenResponse, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.users.GetByID(claims.UserID)
	if err != nil {
		return nil, err
	}

	return s.generateToken(user)
}

// ValidateToken validates a JWT token and returns the claims
func (s *AuthService) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.jwtConfig.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// GetUserByID retrieves a user by ID
func (s *AuthService) GetUserByID(id uint) (*models.User, error) {
	return s.users.GetByID(id)
}

// UpdateWallet validates and assigns a Solana wallet address to a user
func (s *AuthService) UpdateWallet(userID uint, address string) (*models.User, error) {
	if !solanaAddressRe.MatchString(address) {
		return nil, ErrInvalidWalletAddress
	}

	taken, err := s.users.ExistsByWallet(address)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrWalletTaken
	}

	if err := s.users.UpdateWallet(userID, address); err != nil {
		return nil, err
	}

	return s.users.GetByID(userID)
}

// generateToken generates a JWT token for a user
func (s *AuthService) generateToken(user *models.User) (*TokenResponse, error) {
	expiresIn := time.Duration(s.jwtConfig.ExpireHours) * time.Hour

	claims := &JWTClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "intent-journal",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtConfig.Secret))
	if err != nil {
		return nil, err
	}

	return &TokenResponse{
		AccessToken: tokenString,
		TokenType:   "Bearer",
		ExpiresIn:   s.jwtConfig.ExpireHours * 3600,
	}, nil
}
