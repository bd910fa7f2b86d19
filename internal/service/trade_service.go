package service

import (
	"errors"
	"strings"
	"time"

	"github.com/TradingIntent/Intentnew/internal/models"
	"github.com/TradingIntent/Intentnew/internal/repository"
	"github.com/TradingIntent/Intentnew/internal/stats"
	"github.com/google/uuid"
)

var (
	ErrEmptySymbol         = errors.New("token symbol is required")
	ErrInvalidMarketCap    = errors.New("entry and exit market cap must be positive")
	ErrInvalidPositionSize = errors.New("position size must be positive")
	ErrInvalidConfidence   = errors.New("confidence level must be between 1 and 5")
	ErrInvalidOutcome      = errors.New("outcome is not a recognized value")
	ErrEmptyReflection     = errors.New("trade reflection is required")
)

// IsValidationError reports whether err is one of the trade input
// validation errors.
func IsValidationError(err error) bool {
	for _, v := range []error{
		ErrEmptySymbol,
		ErrInvalidMarketCap,
		ErrInvalidPositionSize,
		ErrInvalidConfidence,
		ErrInvalidOutcome,
		ErrEmptyReflection,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}

// TradeStore is the persistence surface the trade service depends on
type TradeStore interface {
	Save(trade *models.Trade) error
	GetByUserID(userID uint) ([]models.Trade, error)
	GetByUserIDPaginated(userID uint, page, pageSize int) ([]models.Trade, int64, error)
	GetByIDAndUserID(id string, userID uint) (*models.Trade, error)
	Delete(id string) error
	CountByUserID(userID uint) (int64, error)
}

// TradeInput carries the user-editable fields of a trade
type TradeInput struct {
	TokenSymbol     string              `json:"token_symbol" binding:"required"`
	EntryMarketCap  float64             `json:"entry_market_cap" binding:"required,gt=0"`
	ExitMarketCap   float64             `json:"exit_market_cap" binding:"required,gt=0"`
	PositionSize    float64             `json:"position_size" binding:"required,gt=0"`
	ConfidenceLevel int                 `json:"confidence_level" binding:"required,min=1,max=5"`
	Outcome         models.TradeOutcome `json:"outcome" binding:"required"`
	TradeReflection string              `json:"trade_reflection" binding:"required"`
}

// TradeService owns the journaling operations over a user's trades
type TradeService struct {
	trades TradeStore
}

// NewTradeService creates a new TradeService
func NewTradeService(trades TradeStore) *TradeService {
	return &TradeService{trades: trades}
}

func validateInput(in *TradeInput) error {
	if strings.TrimSpace(in.TokenSymbol) == "" {
		return ErrEmptySymbol
	}
	if in.EntryMarketCap <= 0 || in.ExitMarketCap <= 0 {
		return ErrInvalidMarketCap
	}
	if in.PositionSize <= 0 {
		return ErrInvalidPositionSize
	}
	if in.ConfidenceLevel < 1 || in.ConfidenceLevel > 5 {
		return ErrInvalidConfidence
	}
	if !in.Outcome.Valid() {
		return ErrInvalidOutcome
	}
	if strings.TrimSpace(in.TradeReflection) == "" {
		return ErrEmptyReflection
	}
	return nil
}

// LogTrade creates a new trade for the user. The id and creation time
// are assigned here and never change afterwards.
func (s *TradeService) LogTrade(userID uint, in *TradeInput) (*models.Trade, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	trade := &models.Trade{
		ID:              uuid.New().String(),
		UserID:          userID,
		TokenSymbol:     strings.ToUpper(strings.TrimSpace(in.TokenSymbol)),
		EntryMarketCap:  in.EntryMarketCap,
		ExitMarketCap:   in.ExitMarketCap,
		PositionSize:    in.PositionSize,
		ConfidenceLevel: in.ConfidenceLevel,
		Outcome:         in.Outcome,
		TradeReflection: in.TradeReflection,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.trades.Save(trade); err != nil {
		return nil, err
	}

	return trade, nil
}

// UpdateTrade replaces the editable fields of an existing trade,
// preserving id, owner and creation time.
func (s *TradeService) UpdateTrade(userID uint, tradeID string, in *TradeInput) (*models.Trade, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	existing, err := s.trades.GetByIDAndUserID(tradeID, userID)
	if err != nil {
		return nil, err
	}

	trade := &models.Trade{
		ID:              existing.ID,
		UserID:          existing.UserID,
		TokenSymbol:     strings.ToUpper(strings.TrimSpace(in.TokenSymbol)),
		EntryMarketCap:  in.EntryMarketCap,
		ExitMarketCap:   in.ExitMarketCap,
		PositionSize:    in.PositionSize,
		ConfidenceLevel: in.ConfidenceLevel,
		Outcome:         in.Outcome,
		TradeReflection: in.TradeReflection,
		CreatedAt:       existing.CreatedAt,
	}

	if err := s.trades.Save(trade); err != nil {
		return nil, err
	}

	return trade, nil
}

// DeleteTrade removes a trade owned by the user. Deleting an id that
// is absent (or not the user's) is a no-op.
func (s *TradeService) DeleteTrade(userID uint, tradeID string) error {
	if _, err := s.trades.GetByIDAndUserID(tradeID, userID); err != nil {
		if errors.Is(err, repository.ErrTradeNotFound) {
			return nil
		}
		return err
	}
	return s.trades.Delete(tradeID)
}

// ListTrades returns the user's trades, most recent first
func (s *TradeService) ListTrades(userID uint) ([]models.Trade, error) {
	return s.trades.GetByUserID(userID)
}

// ListTradesPaginated returns a page of the user's trades
func (s *TradeService) ListTradesPaginated(userID uint, page, pageSize int) ([]models.Trade, int64, error) {
	return s.trades.GetByUserIDPaginated(userID, page, pageSize)
}

// GetStats recomputes the summary metrics from the user's full trade set
func (s *TradeService) GetStats(userID uint) (stats.Summary, error) {
	trades, err := s.trades.GetByUserID(userID)
	if err != nil {
		return stats.Summary{}, err
	}
	return stats.Compute(trades), nil
}
