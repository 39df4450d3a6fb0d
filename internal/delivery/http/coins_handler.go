package http

import (
	"github.com/labstack/echo/v4"

	"autotrader/internal/delivery/http/dto"
	"autotrader/internal/service"
)

// CoinsHandler handles watchlist requests
type CoinsHandler struct {
	watchlist *service.WatchlistService
}

// NewCoinsHandler creates a new CoinsHandler
func NewCoinsHandler(watchlist *service.WatchlistService) *CoinsHandler {
	return &CoinsHandler{watchlist: watchlist}
}

// GetCoins returns the current allowlist
// GET /api/coins
func (h *CoinsHandler) GetCoins(c echo.Context) error {
	return SuccessResponse(c, dto.CoinsOutput{Coins: h.watchlist.Coins()})
}

// ReplaceCoins swaps the whole allowlist. The new list takes effect on
// the next feed refresh.
// PUT /api/coins
func (h *CoinsHandler) ReplaceCoins(c echo.Context) error {
	var req dto.CoinsRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	h.watchlist.Replace(req.Coins)
	return SuccessResponse(c, dto.CoinsOutput{Coins: h.watchlist.Coins()})
}
