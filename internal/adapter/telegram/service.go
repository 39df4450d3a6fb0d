package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"autotrader/internal/domain"
)

// NotificationService delivers target-hit alerts through the Telegram
// Bot API. Left unconfigured it silently skips delivery.
type NotificationService struct {
	botToken   string
	chatID     string
	enabled    bool
	location   *time.Location
	httpClient *http.Client
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(botToken, chatID, timezone string) *NotificationService {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		location = time.UTC
	}

	return &NotificationService{
		botToken: botToken,
		chatID:   chatID,
		enabled:  botToken != "" && chatID != "",
		location: location,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NotifyTargetHit sends the one-time alert for a position that crossed
// its target
func (s *NotificationService) NotifyTargetHit(_ context.Context, position domain.Position, at time.Time) error {
	if !s.enabled {
		return nil
	}

	sideEmoji := "🟢"
	if position.Side == domain.SideShort {
		sideEmoji = "🔴"
	}

	message := fmt.Sprintf(
		"🎯 *TARGET HIT*\n\n"+
			"%s *%s %s* (%s)\n"+
			"━━━━━━━━━━━━━━━━━\n"+
			"📊 Current: `%.4f`\n"+
			"🎯 Target: `%.4f`\n"+
			"💰 PnL: `%.2f%%`\n"+
			"🕒 Time: `%s`",
		sideEmoji,
		position.Side,
		position.Pair,
		position.Mode,
		position.CurrentPrice,
		position.TargetPrice,
		position.PnLPercent,
		at.In(s.location).Format("2006-01-02 15:04:05"),
	)

	return s.sendMessage(message)
}

// sendMessage sends a message to Telegram using the Bot API
func (s *NotificationService) sendMessage(text string) error {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", s.botToken)

	payload := telegramMessage{
		ChatID:    s.chatID,
		Text:      text,
		ParseMode: "Markdown",
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal telegram message: %w", err)
	}

	resp, err := s.httpClient.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram API error (status %d): %s", resp.StatusCode, string(body))
	}

	return nil
}
