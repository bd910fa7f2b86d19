package models

import (
	"time"
)

// TradeOutcome is the closed set of ways a logged trade can conclude
type TradeOutcome string

const (
	OutcomeHitTP        TradeOutcome = "Hit TP"
	OutcomeSL           TradeOutcome = "SL"
	OutcomePaperHands   TradeOutcome = "Paper Hands"
	OutcomeStillHolding TradeOutcome = "Still Holding"
)

// Valid reports whether the outcome is one of the enumeration values
func (o TradeOutcome) Valid() bool {
	switch o {
	case OutcomeHitTP, OutcomeSL, OutcomePaperHands, OutcomeStillHolding:
		return true
	}
	return false
}

// Trade represents a single journaled trade
type Trade struct {
	ID              string       `gorm:"primaryKey;size:36" json:"id"`
	UserID          uint         `gorm:"index;not null" json:"user_id"`
	TokenSymbol     string       `gorm:"size:20;not null" json:"token_symbol"`
	EntryMarketCap  float64      `gorm:"type:decimal(20,2);not null" json:"entry_market_cap"`
	ExitMarketCap   float64      `gorm:"type:decimal(20,2);not null" json:"exit_market_cap"`
	PositionSize    float64      `gorm:"type:decimal(20,8);not null" json:"position_size"`
	ConfidenceLevel int          `gorm:"not null" json:"confidence_level"`
	Outcome         TradeOutcome `gorm:"size:20;not null" json:"outcome"`
	TradeReflection string       `gorm:"type:text;not null" json:"trade_reflection"`
	CreatedAt       time.Time    `gorm:"index" json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName specifies the table name for Trade model
func (Trade) TableName() string {
	return "trades"
}
