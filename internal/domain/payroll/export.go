package payroll

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// WriteLevelReportCSV writes the level report as CSV with a header row.
func WriteLevelReportCSV(w io.Writer, rows []LevelReportRow) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"employee_id", "first_name", "last_name", "total_hours", "total_pay", "tax"}); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			fmt.Sprintf("%d", row.EmployeeID),
			row.FirstName,
			row.LastName,
			fmt.Sprintf("%.2f", row.TotalHours),
			fmt.Sprintf("%.2f", row.TotalPay),
			fmt.Sprintf("%.2f", row.Tax),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteLevelReportPDF renders the level report as a one-page-per-overflow PDF
// table with a period header.
func WriteLevelReportPDF(w io.Writer, title string, start, end time.Time, rows []LevelReportRow) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s", start.Format("2006-01-02"), end.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	widths := []float64{20, 55, 35, 40, 30}
	headers := []string{"ID", "Name", "Hours", "Pay", "Tax"}
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.CellFormat(widths[0], 8, fmt.Sprintf("%d", row.EmployeeID), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 8, row.FirstName+" "+row.LastName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 8, fmt.Sprintf("%.2f", row.TotalHours), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 8, fmt.Sprintf("%.2f", row.TotalPay), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 8, fmt.Sprintf("%.2f", row.Tax), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
