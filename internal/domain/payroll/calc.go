package payroll

import "github.com/shopspring/decimal"

// Compute aggregates one employee's shift records into a Summary.
//
// Hours from every record are summed. The wage is taken from the last record
// seen; pay levels are assumed constant within a reporting window, so if the
// store ever returns mixed wages the final one prices every hour. An empty
// record set is a valid input and yields an all-zero summary.
//
// The three outputs are rounded half-up to two decimals at return.
func Compute(employeeID int, records []ShiftRecord, taxRate float64) Summary {
	if len(records) == 0 {
		return Summary{EmployeeID: employeeID}
	}

	totalMinutes := 0
	wage := decimal.Zero
	for _, record := range records {
		totalMinutes += DurationMinutes(record.Start, record.Finish)
		wage = decimal.NewFromFloat(record.WagePerHour)
	}

	hours := decimal.NewFromInt(int64(totalMinutes)).Div(decimal.NewFromInt(60))
	pay := hours.Mul(wage)
	tax := pay.Mul(decimal.NewFromFloat(taxRate))

	return Summary{
		EmployeeID: employeeID,
		TotalHours: hours.Round(2).InexactFloat64(),
		TotalPay:   pay.Round(2).InexactFloat64(),
		Tax:        tax.Round(2).InexactFloat64(),
	}
}
