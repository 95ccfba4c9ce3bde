package export

import (
	"fmt"
	"time"

	"github.com/tealeg/xlsx"

	"audio-review/internal/app/model"
)

const sheetName = "Transcriptions"

var header = []string{"ID", "File Name", "Author", "Rating", "Timestamp", "Transcription"}

// ToExcel writes every record to a single sheet at outputFilePath, in the
// order given.
func ToExcel(transcriptions []model.Transcription, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, h := range header {
		headerRow.AddCell().Value = h
	}

	for _, t := range transcriptions {
		row := sheet.AddRow()
		row.AddCell().SetInt(t.ID)
		row.AddCell().Value = t.Filename
		row.AddCell().Value = t.Author
		row.AddCell().SetInt(t.Rating)
		row.AddCell().Value = formatTimestamp(t.Timestamp)
		row.AddCell().Value = t.Transcription
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("failed to save %s: %w", outputFilePath, err)
	}
	return nil
}

func formatTimestamp(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(time.RFC3339)
}
