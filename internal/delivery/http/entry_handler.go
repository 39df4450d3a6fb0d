package http

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"autotrader/internal/delivery/http/dto"
	"autotrader/internal/service"
)

// EntryHandler serves the signal feed snapshot
type EntryHandler struct {
	feed *service.FeedService
}

// NewEntryHandler creates a new EntryHandler
func NewEntryHandler(feed *service.FeedService) *EntryHandler {
	return &EntryHandler{feed: feed}
}

// GetEntry returns both signal sets and the feed status
// GET /api/entry
func (h *EntryHandler) GetEntry(c echo.Context) error {
	return SuccessResponse(c, dto.NewEntryOutput(h.feed.Snapshot()))
}

// TriggerRefresh kicks off a feed refresh without waiting for the next
// scheduled tick. The refresh itself still serializes: if one is in
// flight this request is absorbed by the skip.
// POST /api/entry/refresh
func (h *EntryHandler) TriggerRefresh(c echo.Context) error {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		h.feed.Refresh(ctx)
	}()
	return AcceptedResponse(c, "Refresh triggered")
}
