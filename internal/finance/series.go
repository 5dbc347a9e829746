package finance

import (
	"time"

	"github.com/mamadbah2/agrobooks/internal/domain/models"
)

// DefaultWindowDays is the historical window the dashboard graphs cover when
// the caller does not ask for a specific span.
const DefaultWindowDays = 180

// SeriesInput bundles everything one aggregation run needs. ReferenceDate is
// explicit so the series is deterministic under test; callers normally pass
// time.Now().
type SeriesInput struct {
	ReferenceDate    time.Time
	WindowDays       int
	Occupations      []string
	TargetOccupation string
	Sales            []models.SaleRecord
	Expenses         []models.ExpenseRecord
	Categories       *CategoryConfig
}

// ComputeDailySeries runs the full pipeline: build the occupation set,
// aggregate sales and expenses, and generate the gap-filled series.
func ComputeDailySeries(in SeriesInput) []models.DailyFinancialEntry {
	set := NewOccupationSet(in.Occupations...)
	if in.TargetOccupation != "" {
		set.Add(in.TargetOccupation)
	}

	salesByDay := AggregateSales(in.Sales, set)
	expensesByDay := AggregateExpenses(in.Expenses, set, in.Categories)

	return GenerateSeries(in.ReferenceDate, in.WindowDays, set, salesByDay, expensesByDay)
}

// GenerateSeries walks the window one calendar day at a time, oldest first,
// ending on the reference day. Days absent from the aggregated maps come out
// zero-filled, with a breakdown entry for every occupation in the set, so
// consumers never see a sparse day or a missing occupation key. Gross profit
// and net profit are derived per total and per occupation:
//
//	grossProfit = revenue - cogs
//	netProfit   = grossProfit - operating expenses
func GenerateSeries(ref time.Time, windowDays int, occupations *OccupationSet, salesByDay map[string]*DayTotals, expensesByDay map[string]*DayExpenses) []models.DailyFinancialEntry {
	if windowDays < 0 {
		windowDays = 0
	}

	names := occupations.Names()

	ref = ref.Local()
	start := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location()).
		AddDate(0, 0, -(windowDays - 1))

	series := make([]models.DailyFinancialEntry, 0, windowDays)
	for i := 0; i < windowDays; i++ {
		day := start.AddDate(0, 0, i)
		key := DayKey(day)

		revenue := toBreakdown(salesByDay[key], names)

		var cogs, operating models.MetricBreakdown
		if exp := expensesByDay[key]; exp != nil {
			cogs = toBreakdown(exp.COGS, names)
			operating = toBreakdown(exp.Operating, names)
		} else {
			cogs = toBreakdown(nil, names)
			operating = toBreakdown(nil, names)
		}

		gross := subtract(revenue, cogs)
		net := subtract(gross, operating)

		series = append(series, models.DailyFinancialEntry{
			Date:        day,
			Revenue:     revenue,
			COGS:        cogs,
			GrossProfit: gross,
			Expenses:    operating,
			NetProfit:   net,
		})
	}

	return series
}

// toBreakdown converts a map-based accumulator into the ordered output shape.
// The total carries over as accumulated, not re-derived from the breakdown.
func toBreakdown(totals *DayTotals, names []string) models.MetricBreakdown {
	breakdown := make([]models.SubTypeValue, 0, len(names))
	var total float64
	for _, name := range names {
		var value float64
		if totals != nil {
			value = totals.ByOccupation[name]
		}
		breakdown = append(breakdown, models.SubTypeValue{Name: name, Value: value})
	}
	if totals != nil {
		total = totals.Total
	}
	return models.MetricBreakdown{Total: total, Breakdown: breakdown}
}

// subtract derives a metric as a - b, entry by entry. Both sides come from
// toBreakdown with the same name ordering, so positions line up.
func subtract(a, b models.MetricBreakdown) models.MetricBreakdown {
	breakdown := make([]models.SubTypeValue, 0, len(a.Breakdown))
	for i, entry := range a.Breakdown {
		breakdown = append(breakdown, models.SubTypeValue{
			Name:  entry.Name,
			Value: entry.Value - b.Breakdown[i].Value,
		})
	}
	return models.MetricBreakdown{Total: a.Total - b.Total, Breakdown: breakdown}
}
