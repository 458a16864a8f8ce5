package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"bloodgas/domain/abg"
)

// BatchWriter exports generated cohorts to Excel or CSV for use in
// teaching materials and downstream analysis.
type BatchWriter struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewBatchWriter creates a writer whose format follows the file extension
func NewBatchWriter(filePath string) *BatchWriter {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &BatchWriter{filePath: filePath, fileType: fileType}
}

var columns = []string{
	"case_id", "batch_id", "created_at",
	"ph", "pco2", "po2", "hco3", "base_excess", "sao2",
	"fio2", "pf_ratio", "aa_gradient", "expected_aa_gradient",
	"sodium", "potassium", "chloride", "glucose",
	"anion_gap", "corrected_anion_gap", "delta_gap",
	"lactate", "hemoglobin", "albumin",
	"primary_disorder", "compensation_status", "severity",
}

// Write exports the results, one row per case, display precision applied.
func (w *BatchWriter) Write(results []abg.BloodGasResult) error {
	switch w.fileType {
	case "csv":
		return w.writeCSV(results)
	default:
		return w.writeExcel(results)
	}
}

func (w *BatchWriter) writeExcel(results []abg.BloodGasResult) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	for col, name := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, result := range results {
		for col, value := range rowValues(result) {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to build cell for row %d: %w", i+2, err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write row %d: %w", i+2, err)
			}
		}
	}

	if err := f.SaveAs(w.filePath); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}
	return nil
}

func (w *BatchWriter) writeCSV(results []abg.BloodGasResult) error {
	file, err := os.Create(w.filePath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, result := range results {
		record := make([]string, 0, len(columns))
		for _, value := range rowValues(result) {
			record = append(record, formatValue(value))
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func rowValues(result abg.BloodGasResult) []interface{} {
	r := result.Rounded()
	return []interface{}{
		r.ID.String(), r.BatchID.String(), r.CreatedAt.String(),
		r.PH, r.PCO2, r.PO2, r.HCO3, r.BaseExcess, r.SaO2,
		r.FiO2, r.PFRatio, r.AAGradient, r.ExpectedAAGradient,
		r.Sodium, r.Potassium, r.Chloride, r.Glucose,
		r.AnionGap, r.CorrectedAnionGap, r.DeltaGap,
		r.Lactate, r.Hemoglobin, r.Albumin,
		r.Interpretation.PrimaryDisorder,
		r.Interpretation.CompensationStatus,
		string(r.Interpretation.Severity),
	}
}

func formatValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
