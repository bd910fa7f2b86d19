package service

import (
	"testing"
	"time"

	"github.com/TradingIntent/Intentnew/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *TradeInput {
	return &TradeInput{
		TokenSymbol:     "bonk",
		EntryMarketCap:  1_000_000,
		ExitMarketCap:   2_000_000,
		PositionSize:    10,
		ConfidenceLevel: 4,
		Outcome:         models.OutcomeHitTP,
		TradeReflection: "entered on the dip, took profit at 2x",
	}
}

func TestLogTradeAssignsIdentityAndUppercasesSymbol(t *testing.T) {
	store := newFakeTradeStore()
	svc := NewTradeService(store)

	trade, err := svc.LogTrade(1, validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, trade.ID)
	assert.Equal(t, uint(1), trade.UserID)
	assert.Equal(t, "BONK", trade.TokenSymbol)
	assert.False(t, trade.CreatedAt.IsZero())

	count, _ := store.CountByUserID(1)
	assert.Equal(t, int64(1), count)
}

func TestLogTradeValidation(t *testing.T) {
	svc := NewTradeService(newFakeTradeStore())

	tests := []struct {
		name    string
		mutate  func(*TradeInput)
		wantErr error
	}{
		{"empty symbol", func(in *TradeInput) { in.TokenSymbol = "  " }, ErrEmptySymbol},
		{"zero entry market cap", func(in *TradeInput) { in.EntryMarketCap = 0 }, ErrInvalidMarketCap},
		{"negative exit market cap", func(in *TradeInput) { in.ExitMarketCap = -5 }, ErrInvalidMarketCap},
		{"zero position size", func(in *TradeInput) { in.PositionSize = 0 }, ErrInvalidPositionSize},
		{"confidence too low", func(in *TradeInput) { in.ConfidenceLevel = 0 }, ErrInvalidConfidence},
		{"confidence too high", func(in *TradeInput) { in.ConfidenceLevel = 6 }, ErrInvalidConfidence},
		{"unknown outcome", func(in *TradeInput) { in.Outcome = "Mooned" }, ErrInvalidOutcome},
		{"empty reflection", func(in *TradeInput) { in.TradeReflection = " " }, ErrEmptyReflection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)

			_, err := svc.LogTrade(1, in)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestUpdateTradePreservesIdentity(t *testing.T) {
	store := newFakeTradeStore()
	svc := NewTradeService(store)

	created, err := svc.LogTrade(1, validInput())
	require.NoError(t, err)

	in := validInput()
	in.TokenSymbol = "WIF"
	in.Outcome = models.OutcomeSL
	in.ExitMarketCap = 500_000

	updated, err := svc.UpdateTrade(1, created.ID, in)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.UserID, updated.UserID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "WIF", updated.TokenSymbol)
	assert.Equal(t, models.OutcomeSL, updated.Outcome)

	// Replacement, not insertion
	count, _ := store.CountByUserID(1)
	assert.Equal(t, int64(1), count)
}

func TestUpdateTradeRejectsForeignTrade(t *testing.T) {
	svc := NewTradeService(newFakeTradeStore())

	created, err := svc.LogTrade(1, validInput())
	require.NoError(t, err)

	_, err = svc.UpdateTrade(2, created.ID, validInput())
	assert.Error(t, err)
}

func TestDeleteTrade(t *testing.T) {
	store := newFakeTradeStore()
	svc := NewTradeService(store)

	created, err := svc.LogTrade(1, validInput())
	require.NoError(t, err)

	// Absent id is a no-op
	require.NoError(t, svc.DeleteTrade(1, "does-not-exist"))
	count, _ := store.CountByUserID(1)
	assert.Equal(t, int64(1), count)

	// Another user's id is also a no-op
	require.NoError(t, svc.DeleteTrade(2, created.ID))
	count, _ = store.CountByUserID(1)
	assert.Equal(t, int64(1), count)

	require.NoError(t, svc.DeleteTrade(1, created.ID))
	count, _ = store.CountByUserID(1)
	assert.Zero(t, count)

	trades, err := svc.ListTrades(1)
	require.NoError(t, err)
	assert.Empty(t, trades)
}

func TestListTradesScopedAndOrdered(t *testing.T) {
	store := newFakeTradeStore()
	svc := NewTradeService(store)

	now := time.Now().UTC()
	for i, userID := range []uint{1, 2, 1, 1} {
		store.Save(&models.Trade{
			ID:        string(rune('a' + i)),
			UserID:    userID,
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
		})
	}

	trades, err := svc.ListTrades(1)
	require.NoError(t, err)
	require.Len(t, trades, 3)

	for _, tr := range trades {
		assert.Equal(t, uint(1), tr.UserID)
	}
	for i := 1; i < len(trades); i++ {
		assert.False(t, trades[i].CreatedAt.After(trades[i-1].CreatedAt))
	}
}

func TestGetStats(t *testing.T) {
	store := newFakeTradeStore()
	svc := NewTradeService(store)

	summary, err := svc.GetStats(1)
	require.NoError(t, err)
	assert.Zero(t, summary.TotalTrades)

	_, err = svc.LogTrade(1, validInput())
	require.NoError(t, err)

	summary, err = svc.GetStats(1)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalTrades)
	assert.InDelta(t, 100.0, summary.WinRate, 1e-9)
	assert.InDelta(t, 10.0, summary.TotalPnL, 1e-9)
	assert.InDelta(t, 4.0, summary.AvgConfidence, 1e-9)
}
