package payroll

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func sampleRows() []LevelReportRow {
	return []LevelReportRow{
		{EmployeeID: 10, FirstName: "Worku", LastName: "Kebede", TotalHours: 27, TotalPay: 1350, Tax: 337.5},
		{EmployeeID: 11, FirstName: "Genet", LastName: "Fantu", TotalHours: 0, TotalPay: 0, Tax: 0},
	}
}

func TestWriteLevelReportCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLevelReportCSV(&buf, sampleRows()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, []string{"employee_id", "first_name", "last_name", "total_hours", "total_pay", "tax"}, records[0])
	require.Equal(t, []string{"10", "Worku", "Kebede", "27.00", "1350.00", "337.50"}, records[1])
	require.Equal(t, []string{"11", "Genet", "Fantu", "0.00", "0.00", "0.00"}, records[2])
}

func TestWriteLevelReportPDF(t *testing.T) {
	start := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, WriteLevelReportPDF(&buf, "Payroll Report", start, end, sampleRows()))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "output should be a PDF document")
}
