package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"autotrader/internal/domain"
)

// MarketPriceService fetches real-time prices from Binance. It is the
// live alternative to the simulated random walk for ledger
// revaluation; the ledger pairs are bare coin symbols, so the quote
// asset is appended to form the exchange symbol.
type MarketPriceService struct {
	httpClient *http.Client
	baseURL    string
	quoteAsset string
}

// NewMarketPriceService creates a new MarketPriceService
func NewMarketPriceService(quoteAsset string) *MarketPriceService {
	if quoteAsset == "" {
		quoteAsset = "USDT"
	}
	return &MarketPriceService{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:    "https://api.binance.com",
		quoteAsset: quoteAsset,
	}
}

// NextPrice returns the live ticker price for the position's pair
func (s *MarketPriceService) NextPrice(ctx context.Context, position *domain.Position) (float64, error) {
	return s.FetchSinglePrice(ctx, domain.NormalizePair(position.Pair)+s.quoteAsset)
}

// FetchSinglePrice fetches the current price for one exchange symbol
func (s *MarketPriceService) FetchSinglePrice(ctx context.Context, symbol string) (float64, error) {
	url := fmt.Sprintf("%s/api/v3/ticker/price?symbol=%s", s.baseURL, symbol)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch price from Binance: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("Binance API error: status=%d, body=%s", resp.StatusCode, string(body))
	}

	var ticker struct {
		Symbol string `json:"symbol"`
		Price  string `json:"price"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&ticker); err != nil {
		return 0, fmt.Errorf("failed to decode ticker response: %w", err)
	}

	price, err := strconv.ParseFloat(ticker.Price, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable ticker price %q: %w", ticker.Price, err)
	}

	return price, nil
}
