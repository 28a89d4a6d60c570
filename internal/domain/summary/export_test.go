package summary

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	rows := []Row{
		row("r1", "Tech", 2, 2, 3),
		row("r2", "", 3, 0, 0),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Roll No", "Name", "Vertical", "Department", "Year", "Attended", "Total Meetings", "Percentage"}, records[0])
	assert.Equal(t, []string{"r1", "Member r1", "Tech", "CSE", "2", "2", "3", "66.7"}, records[1])
	assert.Equal(t, []string{"r2", "Member r2", "", "CSE", "3", "0", "0", "N/A"}, records[2])
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	// Header only.
	require.Len(t, records, 1)
}

func TestReportFilename(t *testing.T) {
	now := time.Date(2026, 3, 7, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "attendance-report-2026-03-07.csv", ReportFilename(now))
}

func TestMembersTemplate(t *testing.T) {
	f, err := MembersTemplate()
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Equal(t, []string{"Members Template"}, sheets)

	rows, err := f.GetRows("Members Template")
	require.NoError(t, err)
	// One header row, no data rows.
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Name", "Roll No", "Year", "Department", "Role"}, rows[0])

	width, err := f.GetColWidth("Members Template", "A")
	require.NoError(t, err)
	assert.InDelta(t, 24, width, 0.01)

	width, err = f.GetColWidth("Members Template", "E")
	require.NoError(t, err)
	assert.InDelta(t, 24, width, 0.01)
}
