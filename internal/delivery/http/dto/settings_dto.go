package dto

// CoinsRequest replaces the whole watchlist
type CoinsRequest struct {
	Coins []string `json:"coins"`
}

// CoinsOutput is the current watchlist
type CoinsOutput struct {
	Coins []string `json:"coins"`
}

// EmailSettingsRequest updates the alert mail credentials
type EmailSettingsRequest struct {
	FromEmail   string `json:"fromEmail"`
	AppPassword string `json:"appPassword"`
	ToEmail     string `json:"toEmail"`
}

// EmailSettingsOutput is the stored settings with the app password
// redacted; only its presence is reported.
type EmailSettingsOutput struct {
	FromEmail   string `json:"fromEmail"`
	ToEmail     string `json:"toEmail"`
	HasPassword bool   `json:"hasPassword"`
}
