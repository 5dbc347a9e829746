package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaleRecordTotalAmount(t *testing.T) {
	t.Run("sums quantity times unit price per line", func(t *testing.T) {
		sale := SaleRecord{
			ItemsSold:      []string{"Eggs", "Broilers"},
			QuantitiesSold: []float64{10, 2},
			PricesPerUnit:  []float64{5, 100},
		}
		assert.InDelta(t, 250, sale.TotalAmount(), 1e-9)
	})

	t.Run("missing price array degrades to zero", func(t *testing.T) {
		sale := SaleRecord{
			ItemsSold:      []string{"Eggs"},
			QuantitiesSold: []float64{10},
		}
		assert.Zero(t, sale.TotalAmount())
	})

	t.Run("misaligned arrays drop the unmatched tail", func(t *testing.T) {
		sale := SaleRecord{
			QuantitiesSold: []float64{10, 2, 7},
			PricesPerUnit:  []float64{5, 100},
		}
		assert.InDelta(t, 250, sale.TotalAmount(), 1e-9)
	})

	t.Run("empty record is zero", func(t *testing.T) {
		assert.Zero(t, SaleRecord{}.TotalAmount())
	})
}

func TestOccupationOrDefault(t *testing.T) {
	assert.Equal(t, "Poultry", SaleRecord{Occupation: "Poultry"}.OccupationOrDefault())
	assert.Equal(t, OccupationUncategorized, SaleRecord{}.OccupationOrDefault())
	assert.Equal(t, "Apiculture", ExpenseRecord{Occupation: "Apiculture"}.OccupationOrDefault())
	assert.Equal(t, OccupationUncategorized, ExpenseRecord{}.OccupationOrDefault())
}
