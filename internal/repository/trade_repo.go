package repository

import (
	"errors"

	"github.com/TradingIntent/Intentnew/internal/models"
	"gorm.io/gorm"
)

var (
	ErrTradeNotFound = errors.New("trade not found")
)

// TradeRepository handles trade data access
type TradeRepository struct {
	db *gorm.DB
}

// NewTradeRepository creates a new TradeRepository
func NewTradeRepository(db *gorm.DB) *TradeRepository {
	return &TradeRepository{db: db}
}

// Save inserts the trade, or replaces the whole record when the id
// already exists. No partial update semantics.
func (r *TradeRepository) Save(trade *models.Trade) error {
	return r.db.Save(trade).Error
}

// GetByUserID retrieves all trades for a user, most recent first
func (r *TradeRepository) GetByUserID(userID uint) ([]models.Trade, error) {
	var trades []models.Trade
	result := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&trades)
	return trades, result.Error
}

// GetByUserIDPaginated retrieves trades for a user with pagination
func (r *TradeRepository) GetByUserIDPaginated(userID uint, page, pageSize int) ([]models.Trade, int64, error) {
	var trades []models.Trade
	var total int64

	if err := r.db.Model(&models.Trade{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	result := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&trades)

	return trades, total, result.Error
}

// GetByIDAndUserID retrieves a trade by id scoped to its owner
func (r *TradeRepository) GetByIDAndUserID(id string, userID uint) (*models.Trade, error) {
	var trade models.Trade
	result := r.db.Where("id = ? AND user_id = ?", id, userID).First(&trade)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTradeNotFound
		}
		return nil, result.Error
	}
	return &trade, nil
}

// Delete removes the trade with the given id. Deleting an absent id
// is a no-op, not an error.
func (r *TradeRepository) Delete(id string) error {
	return r.db.Delete(&models.Trade{}, "id = ?", id).Error
}

// DeleteByUserID removes all trades for a user
func (r *TradeRepository) DeleteByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Trade{}).Error
}

// CountByUserID counts trades for a user
func (r *TradeRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Trade{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
