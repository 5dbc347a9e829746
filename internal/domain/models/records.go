package models

import "time"

// OccupationUncategorized is the sentinel occupation assigned to records that
// carry no occupation of their own.
const OccupationUncategorized = "Uncategorized"

// UserProfile carries the slice of the platform user document this service
// needs: which sub-businesses the user operates.
type UserProfile struct {
	ID          string   `json:"id" bson:"_id"`
	Name        string   `json:"name" bson:"name"`
	Occupations []string `json:"occupations" bson:"occupations"`
}

// SaleRecord captures one sales transaction as served by the platform API.
// ItemsSold, QuantitiesSold and PricesPerUnit are parallel arrays; the platform
// occasionally serves them misaligned or with the price array missing.
type SaleRecord struct {
	ID             string    `json:"id" bson:"_id"`
	Occupation     string    `json:"occupation" bson:"occupation"`
	SaleDate       time.Time `json:"saleDate" bson:"sale_date"`
	ItemsSold      []string  `json:"itemsSold" bson:"items_sold"`
	QuantitiesSold []float64 `json:"quantitiesSold" bson:"quantities_sold"`
	PricesPerUnit  []float64 `json:"pricesPerUnit" bson:"prices_per_unit"`
}

// TotalAmount sums quantity times unit price over the line items. An index
// missing from either array contributes zero; the sale is still counted.
func (s SaleRecord) TotalAmount() float64 {
	var total float64
	for i, qty := range s.QuantitiesSold {
		if i >= len(s.PricesPerUnit) {
			break
		}
		total += qty * s.PricesPerUnit[i]
	}
	return total
}

// OccupationOrDefault resolves the record's occupation, falling back to the
// uncategorized sentinel when none is set.
func (s SaleRecord) OccupationOrDefault() string {
	if s.Occupation == "" {
		return OccupationUncategorized
	}
	return s.Occupation
}

// ExpenseRecord captures one expense transaction.
type ExpenseRecord struct {
	ID          string    `json:"id" bson:"_id"`
	Occupation  string    `json:"occupation" bson:"occupation"`
	Category    string    `json:"category" bson:"category"`
	Amount      float64   `json:"amount" bson:"amount"`
	DateCreated time.Time `json:"dateCreated" bson:"date_created"`
}

// OccupationOrDefault resolves the record's occupation, falling back to the
// uncategorized sentinel when none is set.
func (e ExpenseRecord) OccupationOrDefault() string {
	if e.Occupation == "" {
		return OccupationUncategorized
	}
	return e.Occupation
}
