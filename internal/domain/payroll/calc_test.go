package payroll

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func shift(t *testing.T, start, finish string, wage float64) ShiftRecord {
	t.Helper()
	return ShiftRecord{Start: mustClock(t, start), Finish: mustClock(t, finish), WagePerHour: wage}
}

func TestComputeEmptyRecords(t *testing.T) {
	got := Compute(42, nil, 0.25)
	require.Equal(t, Summary{EmployeeID: 42}, got)

	got = Compute(7, []ShiftRecord{}, 0.99)
	require.Equal(t, Summary{EmployeeID: 7}, got)
}

func TestComputeSingleShift(t *testing.T) {
	got := Compute(1, []ShiftRecord{shift(t, "08:00", "17:00", 50)}, 0.25)
	require.Equal(t, 9.0, got.TotalHours)
	require.Equal(t, 450.0, got.TotalPay)
	require.Equal(t, 112.5, got.Tax)
}

func TestComputeMultipleShifts(t *testing.T) {
	records := []ShiftRecord{
		shift(t, "08:00", "17:00", 150),
		shift(t, "08:30", "17:30", 150),
	}
	got := Compute(2, records, 0.25)
	require.Equal(t, 18.0, got.TotalHours)
	require.Equal(t, 2700.0, got.TotalPay)
	require.Equal(t, 675.0, got.Tax)
}

func TestComputeOvernightShift(t *testing.T) {
	got := Compute(3, []ShiftRecord{shift(t, "23:00", "01:00", 100)}, 0.25)
	require.Equal(t, 2.0, got.TotalHours)
	require.Equal(t, 200.0, got.TotalPay)
	require.Equal(t, 50.0, got.Tax)
}

func TestComputeLastWageWins(t *testing.T) {
	// Wages are assumed constant within a period; when they are not, the
	// last record's wage prices all accumulated hours.
	records := []ShiftRecord{
		shift(t, "08:00", "16:00", 200),
		shift(t, "08:00", "16:00", 50),
	}
	got := Compute(4, records, 0.25)
	require.Equal(t, 16.0, got.TotalHours)
	require.Equal(t, 800.0, got.TotalPay)
	require.Equal(t, 200.0, got.Tax)
}

func TestComputeRoundsHalfUpToTwoDecimals(t *testing.T) {
	// 20 minutes at 10/hour: hours 0.333... -> 0.33, pay 3.333... -> 3.33.
	got := Compute(5, []ShiftRecord{shift(t, "08:00", "08:20", 10)}, 0.25)
	require.Equal(t, 0.33, got.TotalHours)
	require.Equal(t, 3.33, got.TotalPay)
	require.Equal(t, 0.83, got.Tax)

	// 40 minutes at 10.05/hour: pay 6.70, tax 3.35 at rate 0.5.
	got = Compute(6, []ShiftRecord{shift(t, "08:00", "08:40", 10.05)}, 0.5)
	require.Equal(t, 0.67, got.TotalHours)
	require.Equal(t, 6.7, got.TotalPay)
	require.Equal(t, 3.35, got.Tax)

	// Exact midpoint rounds up: half an hour at 6.25/hour is 3.125.
	got = Compute(7, []ShiftRecord{shift(t, "08:00", "08:30", 6.25)}, 1)
	require.Equal(t, 3.13, got.TotalPay)
	require.Equal(t, 3.13, got.Tax)
}

func TestComputeTaxLinearInRate(t *testing.T) {
	records := []ShiftRecord{shift(t, "08:00", "12:00", 25)}
	for _, rate := range []float64{0, 0.1, 0.25, 0.5, 1} {
		got := Compute(8, records, rate)
		require.Equal(t, 100.0, got.TotalPay)
		require.InDelta(t, 100*rate, got.Tax, 1e-9, "rate %v", rate)
	}
}
