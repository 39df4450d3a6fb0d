package http

import (
	"strings"

	"github.com/labstack/echo/v4"

	"autotrader/internal/delivery/http/dto"
	"autotrader/internal/domain"
)

// SettingsHandler handles alert mail settings requests
type SettingsHandler struct {
	settingsRepo domain.SettingsRepository
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsRepo domain.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{settingsRepo: settingsRepo}
}

// GetEmailSettings returns the stored settings. The app password never
// leaves the store; the response only reports whether one is set.
// GET /api/settings/email
func (h *SettingsHandler) GetEmailSettings(c echo.Context) error {
	settings, err := h.settingsRepo.LoadEmailSettings(c.Request().Context())
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to load email settings", err)
	}

	return SuccessResponse(c, dto.EmailSettingsOutput{
		FromEmail:   settings.FromEmail,
		ToEmail:     settings.ToEmail,
		HasPassword: settings.AppPassword != "",
	})
}

// UpdateEmailSettings stores new alert mail credentials
// PUT /api/settings/email
func (h *SettingsHandler) UpdateEmailSettings(c echo.Context) error {
	var req dto.EmailSettingsRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	settings := domain.EmailSettings{
		FromEmail:   strings.TrimSpace(req.FromEmail),
		AppPassword: req.AppPassword,
		ToEmail:     strings.TrimSpace(req.ToEmail),
	}
	if settings.FromEmail == "" || settings.ToEmail == "" {
		return BadRequestResponse(c, "fromEmail and toEmail are required")
	}

	if err := h.settingsRepo.SaveEmailSettings(c.Request().Context(), settings); err != nil {
		return InternalServerErrorResponse(c, "Failed to save email settings", err)
	}

	return SuccessMessageResponse(c, "Email settings updated", dto.EmailSettingsOutput{
		FromEmail:   settings.FromEmail,
		ToEmail:     settings.ToEmail,
		HasPassword: settings.AppPassword != "",
	})
}
