package relay

import (
	"context"
	"math"
	"strconv"
	"strings"
)

// Row is one entry row as served on the wire. Field names match the
// spreadsheet columns the panel has always consumed.
type Row struct {
	Par       string  `json:"par"`
	Sinal     string  `json:"sinal"`
	Preco     float64 `json:"preco"`
	Alvo      float64 `json:"alvo"`
	GanhoPct  float64 `json:"ganho_pct"`
	AssertPct float64 `json:"assert_pct"`
	Data      string  `json:"data"`
	Hora      string  `json:"hora"`
}

// Source yields the current entry rows for both horizons
type Source interface {
	Fetch(ctx context.Context) (swing, posicional []Row, err error)
}

// mapRow builds a Row from raw spreadsheet cells, column order
// PAR, SINAL, PREÇO, ALVO, GANHO%, ASSERT%, DATA, HORA. Short rows are
// padded with zero values.
func mapRow(cells []string) Row {
	get := func(i int) string {
		if i < len(cells) {
			return cells[i]
		}
		return ""
	}

	return Row{
		Par:       strings.TrimSpace(get(0)),
		Sinal:     strings.ToUpper(strings.TrimSpace(get(1))),
		Preco:     parseNumber(get(2)),
		Alvo:      parseNumber(get(3)),
		GanhoPct:  parseNumber(get(4)),
		AssertPct: parseNumber(get(5)),
		Data:      get(6),
		Hora:      get(7),
	}
}

// parseNumber parses a sheet cell that may use the locale decimal
// comma. Empty and unparseable cells become 0.
func parseNumber(raw string) float64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if cleaned == "" {
		return 0
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}
