package dataset

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"comm-metrics-go/internal/types"
)

// WriteSummaryWorkbook saves the run's MetricRows as an xlsx workbook, the
// format the research team passes around alongside the raw CSVs.
func WriteSummaryWorkbook(path string, rows []types.MetricRow) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := []interface{}{"Recording", "Duration (s)", "Segments", "Word Count", "Mean Compound", "Sentiment", "Negative", "Neutral", "Positive"}
	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	for r, row := range rows {
		values := []interface{}{
			row.Recording,
			row.DurationSec,
			row.Segments,
			row.WordCount,
			row.MeanCompound,
			row.Sentiment,
			row.NegativeCount,
			row.NeutralCount,
			row.PositiveCount,
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
