package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/TradingIntent/Intentnew/internal/config"
	"github.com/redis/go-redis/v9"
)

var ErrPriceUnavailable = errors.New("sol price unavailable")

const (
	solPriceCacheKey = "price:solana:usd"
	solPriceCacheTTL = time.Minute
	priceRefreshTick = 45 * time.Second
)

// PriceService serves the SOL/USD reference price from CoinGecko with
// a short Redis cache in front.
type PriceService struct {
	cfg        config.CoinGeckoConfig
	cache      *redis.Client
	httpClient *http.Client

	ctx    context.Context
	cancel context.CancelFunc
}

// NewPriceService creates a new PriceService
func NewPriceService(cfg config.CoinGeckoConfig, cache *redis.Client) *PriceService {
	return &PriceService{
		cfg:        cfg,
		cache:      cache,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Start launches the background refresh loop keeping the cached price warm
func (s *PriceService) Start(ctx context.Context) {
	s.ctx, s.cancel = context.WithCancel(ctx)

	go func() {
		ticker := time.NewTicker(priceRefreshTick)
		defer ticker.Stop()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				if _, err := s.refresh(s.ctx); err != nil {
					log.Printf("[PriceService] refresh failed: %v", err)
				}
			}
		}
	}()
}

// Stop stops the background refresh loop
func (s *PriceService) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
}

// GetSolanaPrice returns the current SOL/USD price, reading through the
// cache and falling back to a live CoinGecko call on a miss.
func (s *PriceService) GetSolanaPrice(ctx context.Context) (float64, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, solPriceCacheKey).Result(); err == nil {
			if price, err := strconv.ParseFloat(raw, 64); err == nil {
				return price, nil
			}
		}
	}
	return s.refresh(ctx)
}

func (s *PriceService) refresh(ctx context.Context) (float64, error) {
	url := s.cfg.BaseURL + "/simple/price?ids=solana&vs_currencies=usd"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("coingecko http %d", resp.StatusCode)
	}

	var body struct {
		Solana struct {
			USD float64 `json:"usd"`
		} `json:"solana"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}
	if body.Solana.USD <= 0 {
		return 0, ErrPriceUnavailable
	}

	if s.cache != nil {
		s.cache.Set(ctx, solPriceCacheKey, strconv.FormatFloat(body.Solana.USD, 'f', -1, 64), solPriceCacheTTL)
	}

	return body.Solana.USD, nil
}
