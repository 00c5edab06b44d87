package payroll

// ShiftRecord is one clocked start/finish pair joined with the hourly wage
// for the employee's pay level. Immutable once fetched.
type ShiftRecord struct {
	Start       Clock
	Finish      Clock
	WagePerHour float64
}

// Employee is the directory entry for one worker. Read-only here; the
// directory owns it.
type Employee struct {
	ID        int
	FirstName string
	LastName  string
	Level     string
	SubCity   string
}

// Summary is the derived payroll for one employee over the reporting window.
// Recomputed on every request, never persisted.
type Summary struct {
	EmployeeID int     `json:"employee_id"`
	TotalHours float64 `json:"total_hours"`
	TotalPay   float64 `json:"total_pay"`
	Tax        float64 `json:"tax"`
}

// LevelReportRow is one line of the per-level payroll listing. Field names
// match the report consumers' existing contract.
type LevelReportRow struct {
	EmployeeID int     `json:"EmployeeID"`
	FirstName  string  `json:"FirstName"`
	LastName   string  `json:"LastName"`
	TotalHours float64 `json:"TotalHours"`
	TotalPay   float64 `json:"TotalPay"`
	Tax        float64 `json:"Tax"`
}

// RegionEmployee is one employee's contribution inside a region aggregate.
type RegionEmployee struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Level    string  `json:"level"`
	TotalPay float64 `json:"total_pay"`
	Tax      float64 `json:"tax"`
}

// RegionAggregate is the rollup for one sub-city. Totals are sums of the
// already-rounded per-employee values, so they can carry compounded rounding.
type RegionAggregate struct {
	TotalPay  float64          `json:"total_pay"`
	TotalTax  float64          `json:"total_tax"`
	Employees []RegionEmployee `json:"employees"`
}
