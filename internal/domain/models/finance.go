package models

import "time"

// SubTypeValue is one occupation's share of a daily metric.
type SubTypeValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// MetricBreakdown is a daily metric total with its per-occupation decomposition.
// Every occupation known to the run appears in Breakdown, zero-valued when no
// record touched it that day.
type MetricBreakdown struct {
	Total     float64        `json:"total"`
	Breakdown []SubTypeValue `json:"breakdown"`
}

// ValueFor returns the breakdown value recorded for the given occupation.
func (m MetricBreakdown) ValueFor(occupation string) (float64, bool) {
	for _, entry := range m.Breakdown {
		if entry.Name == occupation {
			return entry.Value, true
		}
	}
	return 0, false
}

// DailyFinancialEntry is one calendar day's full metric set as consumed by
// dashboard cards and trend graphs.
type DailyFinancialEntry struct {
	Date        time.Time       `json:"date"`
	Revenue     MetricBreakdown `json:"revenue"`
	COGS        MetricBreakdown `json:"cogs"`
	GrossProfit MetricBreakdown `json:"grossProfit"`
	Expenses    MetricBreakdown `json:"expenses"`
	NetProfit   MetricBreakdown `json:"netProfit"`
}
