package finance

import (
	"time"

	"github.com/mamadbah2/agrobooks/internal/domain/models"
)

const dayKeyLayout = "2006-01-02"

// DayKey formats a timestamp as the calendar-day bucket key. Every date
// operation in this engine (bucketing, window generation, lookup) goes through
// the local-time interpretation so day boundaries agree across the pipeline.
func DayKey(t time.Time) string {
	return t.Local().Format(dayKeyLayout)
}

// DayTotals accumulates one metric for one day: the running total plus its
// per-occupation split. Accumulation is map-based; conversion to the ordered
// breakdown shape happens only at the series boundary.
type DayTotals struct {
	Total        float64
	ByOccupation map[string]float64
}

// NewDayTotals returns an empty accumulator.
func NewDayTotals() *DayTotals {
	return &DayTotals{ByOccupation: make(map[string]float64)}
}

// Add accumulates an amount against an occupation.
func (d *DayTotals) Add(occupation string, amount float64) {
	d.Total += amount
	d.ByOccupation[occupation] += amount
}

// AggregateSales buckets sale revenue by calendar day and occupation. Sales
// with malformed line-item arrays degrade to a zero line total but are still
// counted; occupations not yet in the set are added so their revenue is not
// lost.
func AggregateSales(sales []models.SaleRecord, occupations *OccupationSet) map[string]*DayTotals {
	byDay := make(map[string]*DayTotals)

	for _, sale := range sales {
		occupation := sale.OccupationOrDefault()
		occupations.Add(occupation)

		key := DayKey(sale.SaleDate)
		day, ok := byDay[key]
		if !ok {
			day = NewDayTotals()
			byDay[key] = day
		}
		day.Add(occupation, sale.TotalAmount())
	}

	return byDay
}
