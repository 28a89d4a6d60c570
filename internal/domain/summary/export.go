package summary

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

// csvHeader is the column order of the attendance report.
var csvHeader = []string{"Roll No", "Name", "Vertical", "Department", "Year", "Attended", "Total Meetings", "Percentage"}

// WriteCSV renders rows as the attendance report. Percentages are rounded to
// one decimal place at this boundary; the sentinel renders as "N/A".
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.RollNo,
			row.Name,
			row.Vertical,
			row.Department,
			fmt.Sprintf("%d", row.Year),
			fmt.Sprintf("%d", row.Attended),
			fmt.Sprintf("%d", row.Total),
			row.Percentage.String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReportFilename is the deterministic download name for a report generated
// on the given day, e.g. attendance-report-2026-08-28.csv.
func ReportFilename(now time.Time) string {
	return "attendance-report-" + now.Format("2006-01-02") + ".csv"
}

const templateSheet = "Members Template"

// TemplateHeader is the fixed header row of the members upload template. The
// upload parser expects these columns in this order.
var TemplateHeader = []string{"Name", "Roll No", "Year", "Department", "Role"}

const templateColWidth = 24

// MembersTemplate builds the empty members upload workbook: one header row,
// a column width hint, and no data rows. Purely local, no network involved.
func MembersTemplate() (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), templateSheet); err != nil {
		return nil, fmt.Errorf("rename template sheet: %w", err)
	}

	header := make([]interface{}, len(TemplateHeader))
	for i, title := range TemplateHeader {
		header[i] = title
	}
	if err := f.SetSheetRow(templateSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write template header: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(TemplateHeader))
	if err != nil {
		return nil, fmt.Errorf("resolve template columns: %w", err)
	}
	if err := f.SetColWidth(templateSheet, "A", lastCol, templateColWidth); err != nil {
		return nil, fmt.Errorf("set template column width: %w", err)
	}

	return f, nil
}
