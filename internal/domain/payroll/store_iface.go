package payroll

import (
	"context"
	"time"
)

// RecordSource is what the payroll engine needs from the employee and
// time-tracking store. The date range is inclusive on both ends. ShiftRecords
// ordering is whatever the store returns; hours are summed, not sequenced.
type RecordSource interface {
	ShiftRecords(ctx context.Context, employeeID int, start, end time.Time) ([]ShiftRecord, error)
	// Employees returns the directory, restricted to one pay level when level
	// is non-empty.
	Employees(ctx context.Context, level string) ([]Employee, error)
}
