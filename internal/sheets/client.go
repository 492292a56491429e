// Package sheets wraps the Google Sheets v4 API behind the narrow read/write
// surface the readers and writers need. All raw [][]interface{} cell handling
// stays in here.
package sheets

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

type Client struct {
	svc           *gsheets.Service
	spreadsheetID string
	timeout       time.Duration
	log           *zap.Logger

	mu       sync.Mutex
	sheetIDs map[string]int64
}

func NewClient(ctx context.Context, spreadsheetID, credentialsFile string, timeout time.Duration, log *zap.Logger) (*Client, error) {
	svc, err := gsheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gsheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	log.Info("connected to spreadsheet", zap.String("spreadsheet_id", spreadsheetID))
	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		timeout:       timeout,
		log:           log,
		sheetIDs:      make(map[string]int64),
	}, nil
}

// GetRange fetches an A1 range and flattens every cell to a string. Short
// rows keep their short length; parsers index defensively.
func (c *Client) GetRange(ctx context.Context, a1Range string) ([][]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, a1Range).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get range %s: %w", a1Range, err)
	}

	rows := make([][]string, len(resp.Values))
	for i, raw := range resp.Values {
		row := make([]string, len(raw))
		for j, cell := range raw {
			row[j] = fmt.Sprint(cell)
		}
		rows[i] = row
	}
	return rows, nil
}

func (c *Client) AppendRow(ctx context.Context, a1Range string, row []any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	vr := &gsheets.ValueRange{Values: [][]any{row}}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, a1Range, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append to %s: %w", a1Range, err)
	}
	return nil
}

func (c *Client) UpdateRow(ctx context.Context, a1Range string, row []any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	vr := &gsheets.ValueRange{Values: [][]any{row}}
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, a1Range, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", a1Range, err)
	}
	return nil
}

// DeleteRow removes one row (1-based, as shown in the sheet UI) from a tab.
// The batch-update API addresses rows by numeric sheet id, so the tab title
// is resolved once and memoized.
func (c *Client) DeleteRow(ctx context.Context, tab string, rowIndex int) error {
	if rowIndex < 1 {
		return fmt.Errorf("invalid row index %d", rowIndex)
	}
	sheetID, err := c.sheetID(ctx, tab)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{{
			DeleteDimension: &gsheets.DeleteDimensionRequest{
				Range: &gsheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(rowIndex - 1),
					EndIndex:   int64(rowIndex),
				},
			},
		}},
	}
	_, err = c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to delete row %d from %s: %w", rowIndex, tab, err)
	}
	return nil
}

func (c *Client) sheetID(ctx context.Context, tab string) (int64, error) {
	c.mu.Lock()
	id, ok := c.sheetIDs[tab]
	c.mu.Unlock()
	if ok {
		return id, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	meta, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("failed to load spreadsheet metadata: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, sh := range meta.Sheets {
		if sh.Properties != nil {
			c.sheetIDs[sh.Properties.Title] = sh.Properties.SheetId
		}
	}
	id, ok = c.sheetIDs[tab]
	if !ok {
		return 0, fmt.Errorf("tab %q not found in spreadsheet", tab)
	}
	return id, nil
}

// Cell returns the string at a column position, or "" when the row is short.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
