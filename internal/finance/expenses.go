package finance

import (
	"github.com/mamadbah2/agrobooks/internal/domain/models"
)

// DayExpenses holds one day's classified expense totals: cost of goods sold on
// one side, operating expenses on the other.
type DayExpenses struct {
	COGS      *DayTotals
	Operating *DayTotals
}

// NewDayExpenses returns an empty pair of accumulators.
func NewDayExpenses() *DayExpenses {
	return &DayExpenses{COGS: NewDayTotals(), Operating: NewDayTotals()}
}

// AggregateExpenses buckets expenses by calendar day and occupation, splitting
// each into COGS or operating per the config. Expenses whose category the
// config does not recognize are skipped entirely and contribute to neither
// bucket.
func AggregateExpenses(expenses []models.ExpenseRecord, occupations *OccupationSet, cfg *CategoryConfig) map[string]*DayExpenses {
	byDay := make(map[string]*DayExpenses)

	for _, expense := range expenses {
		group, ok := cfg.Classify(expense.Category)
		if !ok {
			continue
		}

		occupation := expense.OccupationOrDefault()
		occupations.Add(occupation)

		key := DayKey(expense.DateCreated)
		day, found := byDay[key]
		if !found {
			day = NewDayExpenses()
			byDay[key] = day
		}

		switch group {
		case GroupCOGS:
			day.COGS.Add(occupation, expense.Amount)
		case GroupOperating:
			day.Operating.Add(occupation, expense.Amount)
		}
	}

	return byDay
}
