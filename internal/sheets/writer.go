package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"budgeteer/internal/common"
	"budgeteer/internal/service"
)

// Writer pushes a budget report into a Google Sheets spreadsheet.
type Writer struct {
	service *sheets.Service
	logger  *slog.Logger
	config  Config
}

// NewWriter creates a new Google Sheets report writer.
func NewWriter(ctx context.Context, config Config, logger *slog.Logger) (*Writer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	svc, err := createSheetsService(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Writer{
		config:  config,
		service: svc,
		logger:  logger,
	}, nil
}

// WriteReport replaces the spreadsheet's contents with a header row, the
// data rows, and the trailing summary lines.
func (w *Writer) WriteReport(ctx context.Context, header []string, rows [][]string, summaryLines []string) error {
	w.logger.Info("starting report upload", "rows", len(rows))

	spreadsheetID, err := w.getOrCreateSpreadsheet(ctx)
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	values := make([][]any, 0, len(rows)+len(summaryLines)+2)
	values = append(values, toAnyRow(header))
	for _, row := range rows {
		values = append(values, toAnyRow(row))
	}
	if len(summaryLines) > 0 {
		values = append(values, []any{})
		for _, line := range summaryLines {
			values = append(values, []any{line})
		}
	}

	retryOpts := service.RetryOptions{
		MaxAttempts:  w.config.RetryAttempts,
		InitialDelay: w.config.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}

	err = common.WithRetry(ctx, func() error {
		return w.writeData(ctx, spreadsheetID, values)
	}, retryOpts)
	if err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}

	w.logger.Info("report upload completed",
		"spreadsheet_id", spreadsheetID,
		"rows_written", len(values))
	return nil
}

// createSheetsService creates a Google Sheets API service.
func createSheetsService(ctx context.Context, config Config) (*sheets.Service, error) {
	var tokenSource oauth2.TokenSource

	if config.ServiceAccountPath != "" {
		jsonKey, err := os.ReadFile(config.ServiceAccountPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read service account key file: %w", err)
		}

		jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("unable to parse service account key: %w", err)
		}

		tokenSource = jwtConfig.TokenSource(ctx)
	} else {
		oauthConfig := &oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{sheets.SpreadsheetsScope},
		}

		token := &oauth2.Token{
			RefreshToken: config.RefreshToken,
			TokenType:    "Bearer",
		}

		tokenSource = oauthConfig.TokenSource(ctx, token)
	}

	httpClient := oauth2.NewClient(ctx, tokenSource)
	srv, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}

	return srv, nil
}

// getOrCreateSpreadsheet gets the configured spreadsheet or creates a new
// one.
func (w *Writer) getOrCreateSpreadsheet(ctx context.Context) (string, error) {
	if w.config.SpreadsheetID != "" {
		_, err := w.service.Spreadsheets.Get(w.config.SpreadsheetID).Context(ctx).Do()
		if err != nil {
			return "", fmt.Errorf("unable to access spreadsheet %s: %w", w.config.SpreadsheetID, err)
		}
		return w.config.SpreadsheetID, nil
	}

	spreadsheet := &sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{
			Title: w.config.SpreadsheetName,
		},
	}

	created, err := w.service.Spreadsheets.Create(spreadsheet).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("unable to create spreadsheet: %w", err)
	}

	w.logger.Info("created spreadsheet",
		"id", created.SpreadsheetId,
		"title", w.config.SpreadsheetName)
	return created.SpreadsheetId, nil
}

// writeData clears the first sheet and writes the values.
func (w *Writer) writeData(ctx context.Context, spreadsheetID string, values [][]any) error {
	_, err := w.service.Spreadsheets.Values.Clear(spreadsheetID, "A1:Z", &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to clear sheet: %w", err)
	}

	valueRange := &sheets.ValueRange{Values: values}
	_, err = w.service.Spreadsheets.Values.Update(spreadsheetID, "A1", valueRange).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to update values: %w", err)
	}

	return nil
}

func toAnyRow(row []string) []any {
	out := make([]any, len(row))
	for i, cell := range row {
		out[i] = cell
	}
	return out
}
