package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RouterConfig holds all dependencies for routing
type RouterConfig struct {
	EntryHandler    *EntryHandler
	ExitHandler     *ExitHandler
	CoinsHandler    *CoinsHandler
	SettingsHandler *SettingsHandler
}

// SetupRoutes configures all HTTP routes
func SetupRoutes(e *echo.Echo, config *RouterConfig) {
	// Middleware
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			// Skip logging for the endpoints the dashboard polls
			path := c.Request().URL.Path
			return path == "/health" || path == "/api/exit" || path == "/api/entry"
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())

	e.GET("/", func(c echo.Context) error {
		return SuccessResponse(c, map[string]interface{}{
			"service": "autotrader-api",
			"endpoints": []string{
				"GET /health",
				"GET /api/entry",
				"POST /api/entry/refresh",
				"GET /api/exit",
				"POST /api/exit",
				"POST /api/exit/:id/close",
				"DELETE /api/exit/:id",
				"GET /api/coins",
				"PUT /api/coins",
				"GET /api/settings/email",
				"PUT /api/settings/email",
			},
		})
	})

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return SuccessResponse(c, map[string]interface{}{
			"status":  "healthy",
			"service": "autotrader-api",
		})
	})

	// API group
	api := e.Group("/api")

	entry := api.Group("/entry")
	{
		entry.GET("", config.EntryHandler.GetEntry)
		entry.POST("/refresh", config.EntryHandler.TriggerRefresh)
	}

	exit := api.Group("/exit")
	{
		exit.GET("", config.ExitHandler.ListPositions)
		exit.POST("", config.ExitHandler.AddPosition)
		exit.POST("/:id/close", config.ExitHandler.ClosePosition)
		exit.DELETE("/:id", config.ExitHandler.RemovePosition)
	}

	api.GET("/coins", config.CoinsHandler.GetCoins)
	api.PUT("/coins", config.CoinsHandler.ReplaceCoins)

	settings := api.Group("/settings")
	{
		settings.GET("/email", config.SettingsHandler.GetEmailSettings)
		settings.PUT("/email", config.SettingsHandler.UpdateEmailSettings)
	}
}
