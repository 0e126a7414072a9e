package export

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/hisakawa/shisan/internal/domain"
)

const (
	holdingsSheet  = "HOLDINGS"
	dividendsSheet = "DIVIDENDS"
)

// ExcelWriter writes valuation reports to a local xlsx file.
type ExcelWriter struct {
	path string
}

// NewExcelWriter creates a writer targeting the given file path. The file is
// overwritten on every export.
func NewExcelWriter(path string) *ExcelWriter {
	return &ExcelWriter{path: path}
}

// Export writes the holdings and dividend sheets.
func (w *ExcelWriter) Export(_ context.Context, p domain.Portfolio, months []domain.DividendMonth) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("closing xlsx file", "error", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", holdingsSheet); err != nil {
		return fmt.Errorf("renaming holdings sheet: %w", err)
	}
	if _, err := f.NewSheet(dividendsSheet); err != nil {
		return fmt.Errorf("creating dividends sheet: %w", err)
	}

	if err := writeRows(f, holdingsSheet, buildHoldingRows(p)); err != nil {
		return err
	}
	if err := writeRows(f, dividendsSheet, buildDividendRows(months)); err != nil {
		return err
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("saving report to %s: %w", w.path, err)
	}
	slog.Info("xlsx report written", "path", w.path, "holdings", len(p.Holdings))
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("computing cell for row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
