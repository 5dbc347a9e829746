package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/agrobooks/internal/domain/models"
)

func localDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 10, 30, 0, 0, time.Local)
}

func TestAggregateSales(t *testing.T) {
	day1 := localDate(2026, time.August, 28)
	day2 := localDate(2026, time.August, 29)

	t.Run("buckets revenue by day and occupation", func(t *testing.T) {
		set := NewOccupationSet("Poultry")
		sales := []models.SaleRecord{
			{
				Occupation:     "Poultry",
				SaleDate:       day1,
				ItemsSold:      []string{"Eggs"},
				QuantitiesSold: []float64{10},
				PricesPerUnit:  []float64{5},
			},
			{
				Occupation:     "Poultry",
				SaleDate:       day1,
				ItemsSold:      []string{"Broilers", "Eggs"},
				QuantitiesSold: []float64{2, 5},
				PricesPerUnit:  []float64{100, 5},
			},
			{
				Occupation:     "Apiculture",
				SaleDate:       day2,
				ItemsSold:      []string{"Honey"},
				QuantitiesSold: []float64{3},
				PricesPerUnit:  []float64{40},
			},
		}

		byDay := AggregateSales(sales, set)
		require.Len(t, byDay, 2)

		first := byDay[DayKey(day1)]
		require.NotNil(t, first)
		assert.InDelta(t, 275, first.Total, 1e-9)
		assert.InDelta(t, 275, first.ByOccupation["Poultry"], 1e-9)

		second := byDay[DayKey(day2)]
		require.NotNil(t, second)
		assert.InDelta(t, 120, second.ByOccupation["Apiculture"], 1e-9)
	})

	t.Run("grows the occupation set with record occupations", func(t *testing.T) {
		set := NewOccupationSet("Poultry")
		AggregateSales([]models.SaleRecord{
			{Occupation: "Fishery", SaleDate: day1},
		}, set)

		assert.True(t, set.Contains("Fishery"))
	})

	t.Run("missing occupation falls back to the sentinel", func(t *testing.T) {
		set := NewOccupationSet("Poultry")
		byDay := AggregateSales([]models.SaleRecord{
			{
				SaleDate:       day1,
				ItemsSold:      []string{"Eggs"},
				QuantitiesSold: []float64{4},
				PricesPerUnit:  []float64{5},
			},
		}, set)

		day := byDay[DayKey(day1)]
		require.NotNil(t, day)
		assert.InDelta(t, 20, day.ByOccupation[models.OccupationUncategorized], 1e-9)
	})

	t.Run("malformed line arrays count the sale at zero revenue", func(t *testing.T) {
		set := NewOccupationSet("Poultry")
		byDay := AggregateSales([]models.SaleRecord{
			{
				Occupation:     "Poultry",
				SaleDate:       day1,
				ItemsSold:      []string{"Eggs", "Broilers"},
				QuantitiesSold: []float64{10, 2},
				PricesPerUnit:  nil,
			},
		}, set)

		day := byDay[DayKey(day1)]
		require.NotNil(t, day, "sale without prices is still counted")
		assert.Zero(t, day.Total)
	})

	t.Run("shorter price array drops only the unmatched tail", func(t *testing.T) {
		sale := models.SaleRecord{
			QuantitiesSold: []float64{10, 2},
			PricesPerUnit:  []float64{5},
		}
		assert.InDelta(t, 50, sale.TotalAmount(), 1e-9)
	})

	t.Run("empty input produces an empty map", func(t *testing.T) {
		set := NewOccupationSet("Poultry")
		assert.Empty(t, AggregateSales(nil, set))
	})
}
