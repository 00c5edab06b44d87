package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the Postgres-backed RecordSource.
type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ShiftRecords(ctx context.Context, employeeID int, start, end time.Time) ([]ShiftRecord, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT to_char(hw.start_time, 'HH24:MI'),
           to_char(hw.finish_time, 'HH24:MI'),
           pr.wage_per_hour
    FROM hours_worked hw
    JOIN employees e ON hw.employee_id = e.employee_id
    JOIN pay_rates pr ON e.level = pr.level
    WHERE e.employee_id = $1 AND hw.work_date BETWEEN $2::date AND $3::date
  `, employeeID, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []ShiftRecord
	for rows.Next() {
		var startStr, finishStr string
		var record ShiftRecord
		if err := rows.Scan(&startStr, &finishStr, &record.WagePerHour); err != nil {
			return nil, err
		}
		if record.Start, err = ParseClock(startStr); err != nil {
			return nil, fmt.Errorf("employee %d: %w", employeeID, err)
		}
		if record.Finish, err = ParseClock(finishStr); err != nil {
			return nil, fmt.Errorf("employee %d: %w", employeeID, err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *Store) Employees(ctx context.Context, level string) ([]Employee, error) {
	query := `
    SELECT employee_id, first_name, last_name, level, COALESCE(sub_city, '')
    FROM employees
  `
	args := []any{}
	if level != "" {
		query += " WHERE level = $1"
		args = append(args, level)
	}
	query += " ORDER BY employee_id"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		var emp Employee
		if err := rows.Scan(&emp.ID, &emp.FirstName, &emp.LastName, &emp.Level, &emp.SubCity); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}
