package relay

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetSource reads entry rows straight from the automation
// spreadsheet, one range per horizon. Credentials come from the
// standard Google application-default chain.
type SheetSource struct {
	svc             *sheets.Service
	spreadsheetID   string
	swingRange      string
	posicionalRange string
}

// NewSheetSource creates a new SheetSource
func NewSheetSource(ctx context.Context, spreadsheetID, swingRange, posicionalRange string) (*SheetSource, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("SHEETS_SPREADSHEET_ID is required")
	}

	svc, err := sheets.NewService(ctx, option.WithScopes(sheets.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	return &SheetSource{
		svc:             svc,
		spreadsheetID:   spreadsheetID,
		swingRange:      swingRange,
		posicionalRange: posicionalRange,
	}, nil
}

// Fetch reads both ranges and maps their rows
func (s *SheetSource) Fetch(ctx context.Context) ([]Row, []Row, error) {
	swing, err := s.readRange(ctx, s.swingRange)
	if err != nil {
		return nil, nil, err
	}
	posicional, err := s.readRange(ctx, s.posicionalRange)
	if err != nil {
		return nil, nil, err
	}
	return swing, posicional, nil
}

func (s *SheetSource) readRange(ctx context.Context, readRange string) ([]Row, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %q: %w", readRange, err)
	}

	rows := make([]Row, 0, len(resp.Values))
	for _, raw := range resp.Values {
		cells := make([]string, len(raw))
		for i, cell := range raw {
			cells[i] = fmt.Sprint(cell)
		}
		rows = append(rows, mapRow(cells))
	}
	return rows, nil
}
