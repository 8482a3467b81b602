package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"hirelens/resume-screener/internal/models"
)

const (
	// ExportSheetName is the single sheet holding the screening rows.
	ExportSheetName = "Screening Results"
	// ExportFilename is the fixed download name of the export artifact.
	ExportFilename = "resume_screening_results.xlsx"
	// ExportMIMEType is the standard spreadsheet content type.
	ExportMIMEType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var exportColumns = []string{"Name", "Email", "Phone", "Score", "Location", "Filename"}

// ExporterService serializes a display view (already filtered and sorted) to
// an Excel workbook, one row per result in display order.
type ExporterService interface {
	Export(results []models.ScreeningResult) ([]byte, error)
}

type exporterService struct{}

func NewExporterService() ExporterService {
	return &exporterService{}
}

func (e *exporterService) Export(results []models.ScreeningResult) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", ExportSheetName)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, column := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to place header %s: %w", column, err)
		}
		f.SetCellValue(ExportSheetName, cell, column)
		f.SetCellStyle(ExportSheetName, cell, cell, headerStyle)
	}

	for i, result := range results {
		row := i + 2
		analysis := result.Analysis

		f.SetCellValue(ExportSheetName, fmt.Sprintf("A%d", row), orNA(analysis.Name))
		f.SetCellValue(ExportSheetName, fmt.Sprintf("B%d", row), orNA(analysis.Email))
		f.SetCellValue(ExportSheetName, fmt.Sprintf("C%d", row), orNA(analysis.Phone))
		f.SetCellValue(ExportSheetName, fmt.Sprintf("D%d", row), analysis.Score)
		f.SetCellValue(ExportSheetName, fmt.Sprintf("E%d", row), orNA(analysis.Location))
		f.SetCellValue(ExportSheetName, fmt.Sprintf("F%d", row), result.Filename)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
