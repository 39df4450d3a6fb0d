package domain

// EmailSettings holds the Gmail app-password credentials used for
// target-hit alert delivery. Field names match the stored blob.
type EmailSettings struct {
	FromEmail   string `json:"fromEmail"`
	AppPassword string `json:"appPassword"`
	ToEmail     string `json:"toEmail"`
}

// Configured reports whether the settings are complete enough to send mail
func (s EmailSettings) Configured() bool {
	return s.FromEmail != "" && s.AppPassword != "" && s.ToEmail != ""
}
