package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type seedRate struct {
	Level    string
	JobTitle string
	Wage     float64
}

type seedEmployee struct {
	Level     string
	FirstName string
	LastName  string
	Phone     string
	SubCity   string
}

type seedShift struct {
	FirstName string
	LastName  string
	WorkDate  string
	Start     string
	Finish    string
}

var seedRates = []seedRate{
	{"L13", "Project manager", 200},
	{"L14", "Construction foreman", 150},
	{"L15", "Electrician", 120},
	{"L16", "Ironworker", 100},
	{"L17", "Joiner", 90},
	{"L18", "General laborer", 50},
}

var seedEmployees = []seedEmployee{
	{"L13", "John", "Doe", "0911234567", "Bole"},
	{"L14", "Jane", "Smith", "0912345678", "Arada"},
	{"L15", "Peter", "Jones", "0913456789", "Kirkos"},
	{"L16", "Aisha", "Ahmed", "0914567890", "Nifas Silk"},
	{"L16", "Mohammed", "Ali", "0915678901", "Bole"},
	{"L16", "Fatima", "Omar", "0916789012", "Arada"},
	{"L17", "Bereket", "Lemma", "0917890123", "Kirkos"},
	{"L17", "Chaltu", "Abebe", "0918901234", "Nifas Silk"},
	{"L17", "Daniel", "Tesfaye", "0919012345", "Bole"},
	{"L18", "Worku", "Kebede", "0920123456", "Akaki Kality"},
	{"L18", "Genet", "Fantu", "0921234567", "Kolfe Keranio"},
	{"L18", "Solomon", "Lemma", "0922345678", "Gullele"},
	{"L18", "Kedir", "Ali", "0923456789", "Yeka"},
	{"L18", "Fetle", "Desta", "0924567890", "Lideta"},
	{"L18", "Tola", "Gudeta", "0925678901", "Bole"},
}

func seedShifts() []seedShift {
	shifts := []seedShift{
		{"John", "Doe", "2025-04-01", "08:00", "17:00"},
		{"John", "Doe", "2025-04-02", "08:30", "17:30"},
		{"Jane", "Smith", "2025-04-01", "07:00", "16:00"},
		{"Jane", "Smith", "2025-04-03", "07:30", "16:30"},
		{"Peter", "Jones", "2025-04-01", "08:00", "17:00"},
		{"Aisha", "Ahmed", "2025-04-01", "08:00", "17:00"},
		{"Mohammed", "Ali", "2025-04-02", "08:00", "17:00"},
		{"Fatima", "Omar", "2025-04-03", "08:00", "17:00"},
		{"Bereket", "Lemma", "2025-04-04", "08:00", "17:00"},
		{"Chaltu", "Abebe", "2025-04-05", "08:00", "17:00"},
		{"Daniel", "Tesfaye", "2025-04-06", "08:00", "17:00"},
	}

	// Every general laborer worked the first three days of the period.
	laborers := [][2]string{
		{"Worku", "Kebede"}, {"Genet", "Fantu"}, {"Solomon", "Lemma"},
		{"Kedir", "Ali"}, {"Fetle", "Desta"}, {"Tola", "Gudeta"},
	}
	for _, name := range laborers {
		for _, date := range []string{"2025-04-01", "2025-04-02", "2025-04-03"} {
			shifts = append(shifts, seedShift{name[0], name[1], date, "08:00", "17:00"})
		}
	}
	return shifts
}

// Seed loads the demo workforce: pay levels, fifteen employees across the
// Addis Ababa sub-cities, and their April 2025 clocked hours. Safe to run on
// every startup.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	if err := ensurePayRates(ctx, pool); err != nil {
		return err
	}

	ids, err := ensureEmployees(ctx, pool)
	if err != nil {
		return err
	}

	return ensureHoursWorked(ctx, pool, ids)
}

func ensurePayRates(ctx context.Context, pool *pgxpool.Pool) error {
	for _, rate := range seedRates {
		_, err := pool.Exec(ctx, `
      INSERT INTO pay_rates (level, job_title, wage_per_hour)
      VALUES ($1, $2, $3)
      ON CONFLICT (level) DO NOTHING
    `, rate.Level, rate.JobTitle, rate.Wage)
		if err != nil {
			return err
		}
	}
	return nil
}

func ensureEmployees(ctx context.Context, pool *pgxpool.Pool) (map[string]int, error) {
	ids := make(map[string]int, len(seedEmployees))
	for _, emp := range seedEmployees {
		key := emp.FirstName + " " + emp.LastName

		var id int
		err := pool.QueryRow(ctx, `
      SELECT employee_id FROM employees WHERE first_name = $1 AND last_name = $2
    `, emp.FirstName, emp.LastName).Scan(&id)
		if err == nil {
			ids[key] = id
			continue
		}

		err = pool.QueryRow(ctx, `
      INSERT INTO employees (level, first_name, last_name, phone_number, sub_city)
      VALUES ($1, $2, $3, $4, $5)
      RETURNING employee_id
    `, emp.Level, emp.FirstName, emp.LastName, emp.Phone, emp.SubCity).Scan(&id)
		if err != nil {
			return nil, err
		}
		ids[key] = id
	}
	return ids, nil
}

func ensureHoursWorked(ctx context.Context, pool *pgxpool.Pool, ids map[string]int) error {
	for _, shift := range seedShifts() {
		id, ok := ids[shift.FirstName+" "+shift.LastName]
		if !ok {
			continue
		}

		var exists int
		err := pool.QueryRow(ctx, `
      SELECT 1 FROM hours_worked
      WHERE employee_id = $1 AND work_date = $2 AND start_time = $3 AND finish_time = $4
    `, id, shift.WorkDate, shift.Start, shift.Finish).Scan(&exists)
		if err == nil {
			continue
		}

		_, err = pool.Exec(ctx, `
      INSERT INTO hours_worked (employee_id, work_date, start_time, finish_time)
      VALUES ($1, $2, $3, $4)
    `, id, shift.WorkDate, shift.Start, shift.Finish)
		if err != nil {
			return err
		}
	}
	return nil
}
