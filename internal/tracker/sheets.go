package tracker

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/sheets/v4"

	"github.com/jonathan/jobsearch-agent/internal/types"
)

// SheetsClient appends tracker rows to the Applications sheet. The caller
// supplies an authenticated sheets service; authentication is out of scope
// here.
type SheetsClient struct {
	svc           *sheets.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewSheetsClient wraps an authenticated sheets service.
func NewSheetsClient(svc *sheets.Service, spreadsheetID string, logger *zap.Logger) *SheetsClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SheetsClient{svc: svc, spreadsheetID: spreadsheetID, logger: logger}
}

// Append adds one tracker row for a posting.
func (c *SheetsClient) Append(ctx context.Context, job *types.JobPosting, match types.MatchResult, links types.DocumentLinks) error {
	row := Row(job, match, links)
	values := make([]interface{}, len(row))
	for i, cell := range row {
		values[i] = cell
	}

	_, err := c.svc.Spreadsheets.Values.
		Append(c.spreadsheetID, trackerRange, &sheets.ValueRange{
			Values: [][]interface{}{values},
		}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append tracker row for %s: %w", job.Company, err)
	}

	c.logger.Info("tracker row added",
		zap.String("company", job.Company), zap.String("role", job.Title))
	return nil
}

// ReadRows returns all tracker rows (without the header), used by metrics.
func (c *SheetsClient) ReadRows(ctx context.Context) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.
		Get(c.spreadsheetID, trackerRange).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read tracker rows: %w", err)
	}

	var rows [][]string
	for i, raw := range resp.Values {
		if i == 0 {
			continue // header
		}
		row := make([]string, RowWidth)
		for j := 0; j < RowWidth && j < len(raw); j++ {
			if s, ok := raw[j].(string); ok {
				row[j] = s
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
