package payroll

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// Service builds payroll reports over a RecordSource. It holds no per-request
// state; every report is recomputed in full from the store.
type Service struct {
	source      RecordSource
	taxRate     float64
	concurrency int
}

type Option func(*Service)

// WithFetchConcurrency bounds how many per-employee shift fetches run at
// once. Values below one fall back to sequential fetching.
func WithFetchConcurrency(n int) Option {
	return func(s *Service) {
		if n >= 1 {
			s.concurrency = n
		}
	}
}

func NewService(source RecordSource, taxRate float64, opts ...Option) *Service {
	s := &Service{source: source, taxRate: taxRate, concurrency: 4}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) TaxRate() float64 {
	return s.taxRate
}

// LevelReport lists hours, pay and tax for every employee at the given pay
// level over the window. Employees appear in directory order; an employee
// with no shifts in range still appears, with zeros.
func (s *Service) LevelReport(ctx context.Context, level string, start, end time.Time) ([]LevelReportRow, error) {
	employees, err := s.source.Employees(ctx, level)
	if err != nil {
		return nil, fmt.Errorf("fetch employees: %w", err)
	}

	summaries, err := s.summaries(ctx, employees, start, end)
	if err != nil {
		return nil, err
	}

	rows := make([]LevelReportRow, len(employees))
	for i, emp := range employees {
		rows[i] = LevelReportRow{
			EmployeeID: emp.ID,
			FirstName:  emp.FirstName,
			LastName:   emp.LastName,
			TotalHours: summaries[i].TotalHours,
			TotalPay:   summaries[i].TotalPay,
			Tax:        summaries[i].Tax,
		}
	}
	return rows, nil
}

// SubCityReport aggregates the whole workforce by sub-city. Regions and the
// employees within them follow directory order.
func (s *Service) SubCityReport(ctx context.Context, start, end time.Time) (*RegionReport, error) {
	employees, err := s.source.Employees(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("fetch employees: %w", err)
	}

	summaries, err := s.summaries(ctx, employees, start, end)
	if err != nil {
		return nil, err
	}

	report := NewRegionReport()
	for i, emp := range employees {
		report.Add(emp.SubCity, RegionEmployee{
			ID:       emp.ID,
			Name:     emp.FirstName + " " + emp.LastName,
			Level:    emp.Level,
			TotalPay: summaries[i].TotalPay,
			Tax:      summaries[i].Tax,
		})
	}
	return report, nil
}

// summaries fetches shift records and computes the summary for each employee.
// Fetches are independent and read-only, so they fan out with bounded
// concurrency; results land by index, keeping output in directory order. One
// failed fetch cancels the rest and fails the whole report.
func (s *Service) summaries(ctx context.Context, employees []Employee, start, end time.Time) ([]Summary, error) {
	out := make([]Summary, len(employees))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(s.concurrency)
	for i, emp := range employees {
		i, emp := i, emp
		group.Go(func() error {
			records, err := s.source.ShiftRecords(ctx, emp.ID, start, end)
			if err != nil {
				return fmt.Errorf("fetch shift records for employee %d: %w", emp.ID, err)
			}
			out[i] = Compute(emp.ID, records, s.taxRate)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
