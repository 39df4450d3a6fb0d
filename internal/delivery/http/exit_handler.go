package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"autotrader/internal/delivery/http/dto"
	"autotrader/internal/domain"
	"autotrader/internal/service"
)

// ExitHandler handles exit ledger requests
type ExitHandler struct {
	ledger *service.LedgerService
}

// NewExitHandler creates a new ExitHandler
func NewExitHandler(ledger *service.LedgerService) *ExitHandler {
	return &ExitHandler{ledger: ledger}
}

// ListPositions returns the ledger, newest first
// GET /api/exit
func (h *ExitHandler) ListPositions(c echo.Context) error {
	return SuccessResponse(c, dto.NewPositionOutputs(h.ledger.List()))
}

// AddPosition validates the form payload and appends an OPEN position
// POST /api/exit
func (h *ExitHandler) AddPosition(c echo.Context) error {
	var req dto.AddPositionRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	position, err := h.ledger.Add(c.Request().Context(), service.AddPositionInput{
		Pair:        req.Pair,
		Side:        req.Side,
		Mode:        req.Mode,
		EntryPrice:  req.EntryPrice,
		TargetPrice: req.TargetPrice,
		GainPct:     req.GainPct,
		Leverage:    req.Leverage,
	})
	if err != nil {
		if domain.IsValidationError(err) {
			return BadRequestResponse(c, err.Error())
		}
		return InternalServerErrorResponse(c, "Failed to add position", err)
	}

	return CreatedResponse(c, dto.NewPositionOutput(position))
}

// ClosePosition marks a position CLOSED
// POST /api/exit/:id/close
func (h *ExitHandler) ClosePosition(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return BadRequestResponse(c, "Invalid position ID")
	}

	h.ledger.Close(c.Request().Context(), id)
	return SuccessMessageResponse(c, "Position closed", nil)
}

// RemovePosition deletes a position. Removing an unknown ID still
// succeeds; deletion is idempotent.
// DELETE /api/exit/:id
func (h *ExitHandler) RemovePosition(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return BadRequestResponse(c, "Invalid position ID")
	}

	h.ledger.Remove(c.Request().Context(), id)
	return SuccessMessageResponse(c, "Position removed", nil)
}
