package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// FileSource reads entry rows from a JSON file written by the external
// automation worker. The worker's numeric fields arrive either as JSON
// numbers or as locale-formatted strings ("1,22"); both are accepted.
type FileSource struct {
	path string
}

// NewFileSource creates a new FileSource
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// flexNumber decodes a JSON number or a decimal-comma string
type flexNumber float64

func (n *flexNumber) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*n = 0
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = flexNumber(parseNumber(s))
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		*n = 0
		return nil
	}
	*n = flexNumber(f)
	return nil
}

type fileRow struct {
	Par       string     `json:"par"`
	Sinal     string     `json:"sinal"`
	Preco     flexNumber `json:"preco"`
	Alvo      flexNumber `json:"alvo"`
	GanhoPct  flexNumber `json:"ganho_pct"`
	Ganho     flexNumber `json:"ganho"`
	AssertPct flexNumber `json:"assert_pct"`
	Data      string     `json:"data"`
	Hora      string     `json:"hora"`
}

type fileDocument struct {
	Swing      []fileRow `json:"swing"`
	Posicional []fileRow `json:"posicional"`
}

func (r fileRow) toRow() Row {
	gain := float64(r.GanhoPct)
	if gain == 0 {
		gain = float64(r.Ganho)
	}

	return Row{
		Par:       strings.TrimSpace(r.Par),
		Sinal:     strings.ToUpper(strings.TrimSpace(r.Sinal)),
		Preco:     float64(r.Preco),
		Alvo:      float64(r.Alvo),
		GanhoPct:  gain,
		AssertPct: float64(r.AssertPct),
		Data:      r.Data,
		Hora:      r.Hora,
	}
}

// Fetch reads and maps the file contents
func (s *FileSource) Fetch(_ context.Context) ([]Row, []Row, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var doc fileDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("failed to decode %s: %w", s.path, err)
	}

	swing := make([]Row, 0, len(doc.Swing))
	for _, r := range doc.Swing {
		swing = append(swing, r.toRow())
	}
	posicional := make([]Row, 0, len(doc.Posicional))
	for _, r := range doc.Posicional {
		posicional = append(posicional, r.toRow())
	}
	return swing, posicional, nil
}
