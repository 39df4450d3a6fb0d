package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"autotrader/internal/domain"
)

// EntryClient implements the EntryFetcher interface against the
// automation relay's /api/entrada endpoint
type EntryClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewEntryClient creates a new relay client
func NewEntryClient(baseURL string) domain.EntryFetcher {
	return &EntryClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// entrySignal is the loose wire shape of one feed row. Older relay
// builds emit "ganho" where newer ones emit "ganho_pct"; both are
// accepted here and the shape never leaves this package.
type entrySignal struct {
	Par       string   `json:"par"`
	Sinal     string   `json:"sinal"`
	Preco     float64  `json:"preco"`
	Alvo      float64  `json:"alvo"`
	GanhoPct  *float64 `json:"ganho_pct"`
	Ganho     *float64 `json:"ganho"`
	AssertPct float64  `json:"assert_pct"`
	Data      string   `json:"data"`
	Hora      string   `json:"hora"`
}

type entryResponse struct {
	Swing      []entrySignal `json:"swing"`
	Posicional []entrySignal `json:"posicional"`
}

func (e entrySignal) toDomain() domain.Signal {
	gain := 0.0
	switch {
	case e.GanhoPct != nil:
		gain = *e.GanhoPct
	case e.Ganho != nil:
		gain = *e.Ganho
	}

	return domain.Signal{
		Pair:          domain.NormalizePair(e.Par),
		Direction:     domain.NormalizeDirection(e.Sinal),
		Price:         e.Preco,
		Target:        e.Alvo,
		GainPct:       gain,
		ConfidencePct: e.AssertPct,
		Date:          e.Data,
		Time:          e.Hora,
	}
}

// FetchEntry fetches and normalizes both signal sets. Non-200
// statuses, undecodable bodies and empty combined results are all
// errors so the feed service can fall back to the sample dataset.
func (c *EntryClient) FetchEntry(ctx context.Context) ([]domain.Signal, []domain.Signal, error) {
	url := c.baseURL + "/api/entrada"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to reach relay: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	var body entryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, nil, fmt.Errorf("failed to decode relay response: %w", err)
	}

	if len(body.Swing) == 0 && len(body.Posicional) == 0 {
		return nil, nil, fmt.Errorf("relay response is empty")
	}

	swing := make([]domain.Signal, 0, len(body.Swing))
	for _, row := range body.Swing {
		swing = append(swing, row.toDomain())
	}
	positional := make([]domain.Signal, 0, len(body.Posicional))
	for _, row := range body.Posicional {
		positional = append(positional, row.toDomain())
	}

	return swing, positional, nil
}
