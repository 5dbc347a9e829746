package sheets

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/agrobooks/internal/domain/models"
)

const (
	dateLayout        = "2006-01-02"
	salesDataRange    = "Sales!A:E"
	expensesDataRange = "Expenses!A:D"
)

// RecordSource adapts the workbook into the dashboard record source. Each
// sales row holds one line item (date, occupation, item, quantity, unit
// price); each expenses row holds date, occupation, category, amount. Rows
// that fail to parse are skipped with a debug log, never fatal, so a header
// row or a half-typed entry does not break the dashboard.
type RecordSource struct {
	repo        Repository
	occupations []string
	logger      *zap.Logger
}

// NewRecordSource wires a workbook-backed record source. The declared
// occupations come from configuration since the workbook has no user document.
func NewRecordSource(repo Repository, occupations []string, logger *zap.Logger) *RecordSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordSource{repo: repo, occupations: occupations, logger: logger}
}

// FetchProfile returns a synthetic profile carrying the configured occupations.
func (s *RecordSource) FetchProfile(_ context.Context, userID string) (models.UserProfile, error) {
	return models.UserProfile{ID: userID, Occupations: s.occupations}, nil
}

// FetchSales reads and parses the sales worksheet.
func (s *RecordSource) FetchSales(ctx context.Context, _ string) ([]models.SaleRecord, error) {
	rows, err := s.repo.ReadRange(ctx, salesDataRange)
	if err != nil {
		return nil, fmt.Errorf("load sales range: %w", err)
	}

	sales := make([]models.SaleRecord, 0, len(rows))
	for i, row := range rows {
		if len(row) < 4 {
			continue
		}

		date, err := parseDate(row[0])
		if err != nil {
			s.logger.Debug("skip sales row with invalid date", zap.Int("row", i), zap.Any("value", row[0]), zap.Error(err))
			continue
		}

		quantity, err := parseFloat(row[3])
		if err != nil {
			s.logger.Debug("skip sales row with invalid quantity", zap.Int("row", i), zap.Any("value", row[3]), zap.Error(err))
			continue
		}

		// A missing price column degrades to a zero-revenue sale, it is not dropped.
		var prices []float64
		if len(row) > 4 {
			if price, err := parseFloat(row[4]); err == nil {
				prices = []float64{price}
			}
		}

		sales = append(sales, models.SaleRecord{
			Occupation:     fmt.Sprint(row[1]),
			SaleDate:       date,
			ItemsSold:      []string{fmt.Sprint(row[2])},
			QuantitiesSold: []float64{quantity},
			PricesPerUnit:  prices,
		})
	}

	return sales, nil
}

// FetchExpenses reads and parses the expenses worksheet.
func (s *RecordSource) FetchExpenses(ctx context.Context, _ string) ([]models.ExpenseRecord, error) {
	rows, err := s.repo.ReadRange(ctx, expensesDataRange)
	if err != nil {
		return nil, fmt.Errorf("load expenses range: %w", err)
	}

	expenses := make([]models.ExpenseRecord, 0, len(rows))
	for i, row := range rows {
		if len(row) < 4 {
			continue
		}

		date, err := parseDate(row[0])
		if err != nil {
			s.logger.Debug("skip expenses row with invalid date", zap.Int("row", i), zap.Any("value", row[0]), zap.Error(err))
			continue
		}

		amount, err := parseFloat(row[3])
		if err != nil {
			s.logger.Debug("skip expenses row with invalid amount", zap.Int("row", i), zap.Any("value", row[3]), zap.Error(err))
			continue
		}

		expenses = append(expenses, models.ExpenseRecord{
			Occupation:  fmt.Sprint(row[1]),
			Category:    fmt.Sprint(row[2]),
			Amount:      amount,
			DateCreated: date,
		})
	}

	return expenses, nil
}

func parseDate(value interface{}) (time.Time, error) {
	str := fmt.Sprint(value)
	if str == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if len(str) > 10 {
		str = str[:10]
	}
	return time.ParseInLocation(dateLayout, str, time.Local)
}

func parseFloat(value interface{}) (float64, error) {
	str := fmt.Sprint(value)
	if str == "" {
		return 0, fmt.Errorf("empty numeric value")
	}
	return strconv.ParseFloat(str, 64)
}
