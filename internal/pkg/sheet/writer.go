package sheet

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ijalalfrz/trip-flight-planner/internal/app/dto"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const valueInputUserEntered = "USER_ENTERED"

// Writer replaces the content of one sheet tab with a trip result.
type Writer struct {
	values        *sheets.SpreadsheetsValuesService
	spreadsheetID string
	sheetName     string
}

func NewWriter(ctx context.Context, spreadsheetID, sheetName string, opts ...option.ClientOption) (*Writer, error) {
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Writer{
		values:        svc.Spreadsheets.Values,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// Present clears the tab and writes the rows of result from A1.
func (w *Writer) Present(ctx context.Context, result dto.TripResult) error {
	tab := quoteSheetName(w.sheetName)

	if _, err := w.values.Clear(w.spreadsheetID, tab, &sheets.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("clear sheet %s: %w", w.sheetName, err)
	}

	rows := BuildRows(result)

	resp, err := w.values.Update(w.spreadsheetID, tab+"!A1", &sheets.ValueRange{Values: rows}).
		ValueInputOption(valueInputUserEntered).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("update sheet %s: %w", w.sheetName, err)
	}

	slog.InfoContext(ctx, "trip result written to sheet",
		slog.String("spreadsheet_id", w.spreadsheetID),
		slog.String("sheet", w.sheetName),
		slog.Int64("updated_rows", resp.UpdatedRows))

	return nil
}

func quoteSheetName(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
