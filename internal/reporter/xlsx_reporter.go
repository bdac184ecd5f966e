package reporter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aleister1102/sitemapdiff/internal/config"
	"github.com/aleister1102/sitemapdiff/internal/differ"
	"github.com/aleister1102/sitemapdiff/internal/errorwrapper"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// XlsxReporter writes a comparison result into a five-sheet xlsx workbook:
// Overview, Matches, Only_in_A, Only_in_B and All.
type XlsxReporter struct {
	cfg    *config.ReporterConfig
	labelA string
	labelB string
	logger zerolog.Logger
}

// NewXlsxReporter creates a new XlsxReporter
func NewXlsxReporter(cfg *config.ReporterConfig, labelA, labelB string, appLogger zerolog.Logger) *XlsxReporter {
	return &XlsxReporter{
		cfg:    cfg,
		labelA: labelA,
		labelB: labelB,
		logger: appLogger.With().Str("module", "XlsxReporter").Logger(),
	}
}

// GenerateReport writes the workbook to the configured output file and
// returns its path.
func (r *XlsxReporter) GenerateReport(result *differ.ComparisonResult) (string, error) {
	outputPath := r.cfg.OutputFile
	if outputPath == "" {
		outputPath = config.DefaultReporterOutputFile
	}

	if dir := filepath.Dir(outputPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", errorwrapper.WrapError(err, "failed to create report output directory")
		}
	}

	workbook := excelize.NewFile()
	defer func() {
		_ = workbook.Close()
	}()

	if err := r.writeOverviewSheet(workbook, result); err != nil {
		return "", err
	}
	if err := r.writePathSheet(workbook, SheetMatches, result.Matches); err != nil {
		return "", err
	}
	if err := r.writePathSheet(workbook, SheetOnlyA, result.OnlyA); err != nil {
		return "", err
	}
	if err := r.writePathSheet(workbook, SheetOnlyB, result.OnlyB); err != nil {
		return "", err
	}
	if err := r.writeAllSheet(workbook, result.All); err != nil {
		return "", err
	}

	if err := workbook.SaveAs(outputPath); err != nil {
		return "", errorwrapper.WrapError(err, "failed to save xlsx report")
	}

	r.logger.Info().
		Str("path", outputPath).
		Int("matches", len(result.Matches)).
		Int("only_a", len(result.OnlyA)).
		Int("only_b", len(result.OnlyB)).
		Msg("Xlsx report generated")

	return outputPath, nil
}

// writeOverviewSheet writes the count metrics. The workbook's default sheet
// is renamed so Overview comes first.
func (r *XlsxReporter) writeOverviewSheet(workbook *excelize.File, result *differ.ComparisonResult) error {
	if err := workbook.SetSheetName(workbook.GetSheetName(0), SheetOverview); err != nil {
		return errorwrapper.WrapError(err, "failed to rename overview sheet")
	}

	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Total (A)", result.TotalA()},
		{"Total (B)", result.TotalB()},
		{"Matches", len(result.Matches)},
		{fmt.Sprintf("Only in A (%s)", r.labelA), len(result.OnlyA)},
		{fmt.Sprintf("Only in B (%s)", r.labelB), len(result.OnlyB)},
	}

	for i, row := range rows {
		if err := r.writeRow(workbook, SheetOverview, i+1, row); err != nil {
			return err
		}
	}

	return r.applyColumnWidths(workbook, SheetOverview)
}

// writePathSheet writes a single-column pathname sheet.
func (r *XlsxReporter) writePathSheet(workbook *excelize.File, sheet string, paths []string) error {
	if _, err := workbook.NewSheet(sheet); err != nil {
		return errorwrapper.WrapError(err, "failed to create sheet "+sheet)
	}

	if err := r.writeRow(workbook, sheet, 1, []interface{}{"pathname"}); err != nil {
		return err
	}
	for i, path := range paths {
		if err := r.writeRow(workbook, sheet, i+2, []interface{}{path}); err != nil {
			return err
		}
	}

	return r.applyColumnWidths(workbook, sheet)
}

// writeAllSheet writes the combined status/pathname/source sheet.
func (r *XlsxReporter) writeAllSheet(workbook *excelize.File, rows []differ.Row) error {
	if _, err := workbook.NewSheet(SheetAll); err != nil {
		return errorwrapper.WrapError(err, "failed to create sheet "+SheetAll)
	}

	if err := r.writeRow(workbook, SheetAll, 1, []interface{}{"status", "pathname", "source"}); err != nil {
		return err
	}
	for i, row := range rows {
		values := []interface{}{string(row.Status), row.Pathname, row.Source}
		if err := r.writeRow(workbook, SheetAll, i+2, values); err != nil {
			return err
		}
	}

	return r.applyColumnWidths(workbook, SheetAll)
}

// writeRow writes one row of values starting at column A.
func (r *XlsxReporter) writeRow(workbook *excelize.File, sheet string, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return errorwrapper.WrapError(err, "failed to build cell coordinate")
	}
	if err := workbook.SetSheetRow(sheet, cell, &values); err != nil {
		return errorwrapper.WrapError(err, "failed to write row to sheet "+sheet)
	}
	return nil
}

// applyColumnWidths widens the first three columns for readability.
func (r *XlsxReporter) applyColumnWidths(workbook *excelize.File, sheet string) error {
	widths := map[string]float64{
		"A": statusColumnWidth,
		"B": pathnameColumnWidth,
		"C": sourceColumnWidth,
	}
	for col, width := range widths {
		if err := workbook.SetColWidth(sheet, col, col, width); err != nil {
			return errorwrapper.WrapError(err, "failed to set column width on sheet "+sheet)
		}
	}
	return nil
}
