package payroll

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"sitepay/internal/platform/db"
)

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, db.Migrate(ctx, pool, "../../../migrations"))
	require.NoError(t, db.Seed(ctx, pool))
	return pool
}

func TestStoreAgainstSeededDatabase(t *testing.T) {
	pool := testPool(t)
	store := NewStore(pool)
	ctx := context.Background()

	laborers, err := store.Employees(ctx, "L18")
	require.NoError(t, err)
	require.Len(t, laborers, 6)
	for _, emp := range laborers {
		require.Equal(t, "L18", emp.Level)
	}

	all, err := store.Employees(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 15)

	start := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC)

	// Every seeded laborer worked three nine-hour days at 50/hour.
	records, err := store.ShiftRecords(ctx, laborers[0].ID, start, end)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for _, record := range records {
		require.Equal(t, 50.0, record.WagePerHour)
		require.Equal(t, 9.0, DurationHours(record.Start, record.Finish))
	}

	summary := Compute(laborers[0].ID, records, 0.25)
	require.Equal(t, 27.0, summary.TotalHours)
	require.Equal(t, 1350.0, summary.TotalPay)
	require.Equal(t, 337.5, summary.Tax)

	// The range is inclusive on both ends.
	oneDay, err := store.ShiftRecords(ctx, laborers[0].ID, start, start)
	require.NoError(t, err)
	require.Len(t, oneDay, 1)

	// Out-of-window queries return nothing, which computes to all zeros.
	empty, err := store.ShiftRecords(ctx, laborers[0].ID,
		time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.May, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Empty(t, empty)
	require.Equal(t, Summary{EmployeeID: laborers[0].ID}, Compute(laborers[0].ID, empty, 0.25))
}

func TestSeededSubCityReport(t *testing.T) {
	pool := testPool(t)
	service := NewService(NewStore(pool), 0.25)
	ctx := context.Background()

	start := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC)

	report, err := service.SubCityReport(ctx, start, end)
	require.NoError(t, err)
	require.Contains(t, report.SubCities(), "Bole")

	bole, ok := report.Region("Bole")
	require.True(t, ok)
	// John Doe (PM), Mohammed Ali (ironworker), Daniel Tesfaye (joiner) and
	// Tola Gudeta (laborer) all live in Bole.
	require.Len(t, bole.Employees, 4)

	var sum float64
	for _, emp := range bole.Employees {
		sum += emp.TotalPay
	}
	require.InDelta(t, bole.TotalPay, sum, 0.01)
}
