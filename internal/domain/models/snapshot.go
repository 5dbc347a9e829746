package models

import "time"

// DailySnapshot is the persisted form of one computed financial entry, written
// nightly by the scheduler as an audit trail. The aggregation engine itself
// never persists anything; snapshots are a caller-side convenience.
type DailySnapshot struct {
	UserID      string    `bson:"user_id" json:"user_id"`
	Date        time.Time `bson:"date" json:"date"`
	Revenue     float64   `bson:"revenue" json:"revenue"`
	COGS        float64   `bson:"cogs" json:"cogs"`
	GrossProfit float64   `bson:"gross_profit" json:"gross_profit"`
	Expenses    float64   `bson:"expenses" json:"expenses"`
	NetProfit   float64   `bson:"net_profit" json:"net_profit"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
