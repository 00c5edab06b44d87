package payroll

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// RegionReport groups per-employee payroll by sub-city. Regions are created
// lazily on first encounter and iteration follows encounter order, so the
// serialized report is deterministic for a given directory order.
type RegionReport struct {
	order   []string
	regions map[string]*RegionAggregate
}

func NewRegionReport() *RegionReport {
	return &RegionReport{regions: make(map[string]*RegionAggregate)}
}

// Add folds one employee's summary into the aggregate for subCity. An empty
// subCity is a valid grouping key.
func (r *RegionReport) Add(subCity string, employee RegionEmployee) {
	agg, ok := r.regions[subCity]
	if !ok {
		agg = &RegionAggregate{}
		r.regions[subCity] = agg
		r.order = append(r.order, subCity)
	}

	// Region totals accumulate the already-rounded employee values.
	agg.TotalPay = decimal.NewFromFloat(agg.TotalPay).Add(decimal.NewFromFloat(employee.TotalPay)).InexactFloat64()
	agg.TotalTax = decimal.NewFromFloat(agg.TotalTax).Add(decimal.NewFromFloat(employee.Tax)).InexactFloat64()
	agg.Employees = append(agg.Employees, employee)
}

// SubCities returns the grouping keys in first-encounter order.
func (r *RegionReport) SubCities() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Region returns the aggregate for subCity, if present.
func (r *RegionReport) Region(subCity string) (*RegionAggregate, bool) {
	agg, ok := r.regions[subCity]
	return agg, ok
}

func (r *RegionReport) Len() int {
	return len(r.order)
}

// MarshalJSON renders the report as a JSON object whose keys appear in
// first-encounter order rather than Go map order.
func (r *RegionReport) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, subCity := range r.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(subCity)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(r.regions[subCity])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
