package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/TradingIntent/Intentnew/internal/models"
	"github.com/TradingIntent/Intentnew/internal/stats"
	"github.com/redis/go-redis/v9"
)

// MinTradesForAnalysis is the hard minimum of logged trades before the
// analysis will run.
const MinTradesForAnalysis = 3

var ErrNotEnoughData = errors.New("not enough data logged: there must be a minimum of 3 trades logged for the analysis to work")

const analysisCacheTTL = time.Hour

const analysisPrompt = `You are a highly skilled trading behavior analyst with expertise in quantitative analysis and market dynamics. Based on the user's detailed logged trades, provide a comprehensive trading thesis. Your analysis should include:

1. Statistical Overview: Calculate and present key metrics such as overall win rate (based on "Hit TP" vs. "SL" outcomes), average profit per winning trade, average loss per losing trade, average position size, and average confidence level.

2. Ticker-Specific Analysis: Identify the most frequently traded tickers, analyze performance (win rate, average P&L) per ticker, and point out any patterns or correlations with specific assets.

3. Trade Pattern Identification: Describe common entry and exit strategies based on entry/exit market caps, analyze the relationship between confidence levels and trade outcomes/P&L, and identify consistent behaviors across trades.

4. Strengths and Weaknesses: Clearly outline the user's top strengths as a trader, supported by data, and identify areas for improvement based on statistical anomalies or consistent patterns.

5. Personalized Suggestions for Improvement: Offer actionable, data-driven advice to refine their trading strategy.

Here are the user's detailed trade logs. Each line represents one trade:
%s

Provide your detailed, analytical thesis and summary, ensuring all insights are backed by the provided data. Present the information clearly and concisely, focusing on statistical correlations and actionable conclusions.`

// TextGenerator produces a free-text narrative from a prompt. One
// attempt per call; failures surface to the caller unretried.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// AnalysisService builds the trade summary and requests the AI
// behavioral narrative.
type AnalysisService struct {
	trades    TradeStore
	generator TextGenerator
	cache     *redis.Client
}

// NewAnalysisService creates a new AnalysisService. The cache client
// may be nil; narratives are then regenerated on every request.
func NewAnalysisService(trades TradeStore, generator TextGenerator, cache *redis.Client) *AnalysisService {
	return &AnalysisService{
		trades:    trades,
		generator: generator,
		cache:     cache,
	}
}

// Analyze returns the cleaned AI narrative for the user's trade
// history. Users with fewer than MinTradesForAnalysis trades get
// ErrNotEnoughData and the generator is never called.
func (s *AnalysisService) Analyze(ctx context.Context, userID uint) (string, error) {
	trades, err := s.trades.GetByUserID(userID)
	if err != nil {
		return "", err
	}

	if len(trades) < MinTradesForAnalysis {
		return "", ErrNotEnoughData
	}

	cacheKey := fmt.Sprintf("analysis:user:%d", userID)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			return CleanNarrative(cached), nil
		}
	}

	summary := BuildSummary(trades)
	narrative, err := s.generator.Generate(ctx, fmt.Sprintf(analysisPrompt, summary))
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		// Cache failures only cost a regeneration next time
		s.cache.Set(ctx, cacheKey, narrative, analysisCacheTTL)
	}

	return CleanNarrative(narrative), nil
}

// InvalidateCache drops the cached narrative for a user. Called after
// trade mutations so a fresh analysis reflects the current set.
func (s *AnalysisService) InvalidateCache(ctx context.Context, userID uint) {
	if s.cache != nil {
		s.cache.Del(ctx, fmt.Sprintf("analysis:user:%d", userID))
	}
}

// BuildSummary renders one deterministic plain-text line per trade,
// newline separated, for inclusion in the analysis prompt.
func BuildSummary(trades []models.Trade) string {
	lines := make([]string, 0, len(trades))
	for _, t := range trades {
		reflection := t.TradeReflection
		if strings.TrimSpace(reflection) == "" {
			reflection = "N/A"
		}

		pnl := stats.PnL(t)
		lines = append(lines, fmt.Sprintf(
			"Trade Date: %s, Ticker: %s, Position Size: %s, Entry MC: $%s, Exit MC: $%s, P&L: $%.2f, Confidence: %d/5, Outcome: %s, Reflection: %s",
			t.CreatedAt.Format("2006-01-02"),
			t.TokenSymbol,
			formatNumber(t.PositionSize),
			formatNumber(t.EntryMarketCap),
			formatNumber(t.ExitMarketCap),
			pnl.Amount,
			t.ConfidenceLevel,
			t.Outcome,
			reflection,
		))
	}
	return strings.Join(lines, "\n")
}

// formatNumber renders a float without exponent notation or trailing zeros
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var (
	headingMarkerRe = regexp.MustCompile(`### ?`)
	boldMarkerRe    = regexp.MustCompile(`\*\* ?`)
	leadingDashRe   = regexp.MustCompile(`^- `)
	listDashRe      = regexp.MustCompile(`\n- `)
)

// CleanNarrative strips markdown heading and bold markers from the
// generated narrative and converts list dashes into line breaks.
// Cosmetic cleanup only; empty input yields an empty string.
func CleanNarrative(text string) string {
	if text == "" {
		return ""
	}
	text = headingMarkerRe.ReplaceAllString(text, "")
	text = boldMarkerRe.ReplaceAllString(text, "")
	text = leadingDashRe.ReplaceAllString(text, "\n")
	text = listDashRe.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}
