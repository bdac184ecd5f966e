package reporter

import (
	"path/filepath"
	"testing"

	"github.com/aleister1102/sitemapdiff/internal/config"
	"github.com/aleister1102/sitemapdiff/internal/differ"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleResult() *differ.ComparisonResult {
	return &differ.ComparisonResult{
		Matches: []string{"/", "/about"},
		OnlyA:   []string{"/legacy"},
		OnlyB:   []string{"/pricing", "/blog/intro"},
		All: []differ.Row{
			{Status: differ.StatusMatch, Pathname: "/", Source: "both"},
			{Status: differ.StatusMatch, Pathname: "/about", Source: "both"},
			{Status: differ.StatusOnlyA, Pathname: "/legacy", Source: "OLD"},
			{Status: differ.StatusOnlyB, Pathname: "/pricing", Source: "NEW"},
			{Status: differ.StatusOnlyB, Pathname: "/blog/intro", Source: "NEW"},
		},
	}
}

func TestXlsxReporter_GenerateReport(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "reports", "comparison.xlsx")
	cfg := &config.ReporterConfig{OutputFile: outputPath}

	r := NewXlsxReporter(cfg, "OLD", "NEW", zerolog.Nop())
	writtenPath, err := r.GenerateReport(sampleResult())

	require.NoError(t, err)
	assert.Equal(t, outputPath, writtenPath)

	workbook, err := excelize.OpenFile(writtenPath)
	require.NoError(t, err)
	defer func() {
		_ = workbook.Close()
	}()

	assert.Equal(t, []string{SheetOverview, SheetMatches, SheetOnlyA, SheetOnlyB, SheetAll}, workbook.GetSheetList())
}

func TestXlsxReporter_OverviewCounts(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "comparison.xlsx")
	r := NewXlsxReporter(&config.ReporterConfig{OutputFile: outputPath}, "OLD", "NEW", zerolog.Nop())

	_, err := r.GenerateReport(sampleResult())
	require.NoError(t, err)

	workbook, err := excelize.OpenFile(outputPath)
	require.NoError(t, err)
	defer func() {
		_ = workbook.Close()
	}()

	rows, err := workbook.GetRows(SheetOverview)
	require.NoError(t, err)
	require.Len(t, rows, 6)

	assert.Equal(t, []string{"Metric", "Value"}, rows[0])
	assert.Equal(t, []string{"Total (A)", "3"}, rows[1])
	assert.Equal(t, []string{"Total (B)", "4"}, rows[2])
	assert.Equal(t, []string{"Matches", "2"}, rows[3])
	assert.Equal(t, []string{"Only in A (OLD)", "1"}, rows[4])
	assert.Equal(t, []string{"Only in B (NEW)", "2"}, rows[5])
}

func TestXlsxReporter_PathAndAllSheets(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "comparison.xlsx")
	r := NewXlsxReporter(&config.ReporterConfig{OutputFile: outputPath}, "OLD", "NEW", zerolog.Nop())

	_, err := r.GenerateReport(sampleResult())
	require.NoError(t, err)

	workbook, err := excelize.OpenFile(outputPath)
	require.NoError(t, err)
	defer func() {
		_ = workbook.Close()
	}()

	matchRows, err := workbook.GetRows(SheetMatches)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"pathname"}, {"/"}, {"/about"}}, matchRows)

	onlyARows, err := workbook.GetRows(SheetOnlyA)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"pathname"}, {"/legacy"}}, onlyARows)

	allRows, err := workbook.GetRows(SheetAll)
	require.NoError(t, err)
	require.Len(t, allRows, 6)
	assert.Equal(t, []string{"status", "pathname", "source"}, allRows[0])
	assert.Equal(t, []string{"MATCH", "/", "both"}, allRows[1])
	assert.Equal(t, []string{"ONLY_IN_A", "/legacy", "OLD"}, allRows[3])
	assert.Equal(t, []string{"ONLY_IN_B", "/pricing", "NEW"}, allRows[4])
}

func TestXlsxReporter_EmptyResult(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "comparison.xlsx")
	r := NewXlsxReporter(&config.ReporterConfig{OutputFile: outputPath}, "OLD", "NEW", zerolog.Nop())

	_, err := r.GenerateReport(&differ.ComparisonResult{})
	require.NoError(t, err)

	workbook, err := excelize.OpenFile(outputPath)
	require.NoError(t, err)
	defer func() {
		_ = workbook.Close()
	}()

	rows, err := workbook.GetRows(SheetMatches)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"pathname"}}, rows)
}
