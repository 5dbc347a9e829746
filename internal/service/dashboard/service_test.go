package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/agrobooks/internal/domain/models"
	"github.com/mamadbah2/agrobooks/internal/finance"
)

type stubSource struct {
	profile     models.UserProfile
	sales       []models.SaleRecord
	expenses    []models.ExpenseRecord
	profileErr  error
	salesErr    error
	expensesErr error
}

func (s *stubSource) FetchProfile(_ context.Context, _ string) (models.UserProfile, error) {
	return s.profile, s.profileErr
}

func (s *stubSource) FetchSales(_ context.Context, _ string) ([]models.SaleRecord, error) {
	return s.sales, s.salesErr
}

func (s *stubSource) FetchExpenses(_ context.Context, _ string) ([]models.ExpenseRecord, error) {
	return s.expenses, s.expensesErr
}

func fixedClock() time.Time {
	return time.Date(2026, time.August, 30, 9, 0, 0, 0, time.Local)
}

func TestSeries(t *testing.T) {
	today := fixedClock()

	t.Run("produces the configured window from fetched records", func(t *testing.T) {
		source := &stubSource{
			profile: models.UserProfile{ID: "u-1", Occupations: []string{"Poultry"}},
			sales: []models.SaleRecord{
				{
					Occupation:     "Poultry",
					SaleDate:       today,
					ItemsSold:      []string{"Eggs"},
					QuantitiesSold: []float64{10},
					PricesPerUnit:  []float64{5},
				},
			},
			expenses: []models.ExpenseRecord{
				{Occupation: "Poultry", Category: "Electricity", Amount: 20, DateCreated: today},
			},
		}

		svc := NewService(source, nil)
		svc.now = fixedClock

		series, err := svc.Series(context.Background(), SeriesRequest{
			UserID:     "u-1",
			WindowDays: 7,
			Categories: finance.PoultryCategories(),
		})
		require.NoError(t, err)
		require.Len(t, series, 7)

		last := series[len(series)-1]
		assert.InDelta(t, 50, last.Revenue.Total, 1e-9)
		assert.InDelta(t, 20, last.Expenses.Total, 1e-9)
		assert.InDelta(t, 30, last.NetProfit.Total, 1e-9)
	})

	t.Run("defaults the window and taxonomy", func(t *testing.T) {
		svc := NewService(&stubSource{}, nil)
		svc.now = fixedClock

		series, err := svc.Series(context.Background(), SeriesRequest{UserID: "u-1"})
		require.NoError(t, err)
		assert.Len(t, series, finance.DefaultWindowDays)
	})

	t.Run("seeds the target occupation", func(t *testing.T) {
		svc := NewService(&stubSource{}, nil)
		svc.now = fixedClock

		series, err := svc.Series(context.Background(), SeriesRequest{
			UserID:           "u-1",
			WindowDays:       2,
			TargetOccupation: "Apiculture",
			Categories:       finance.ApicultureCategories(),
		})
		require.NoError(t, err)

		_, ok := series[0].Revenue.ValueFor("Apiculture")
		assert.True(t, ok)
	})

	t.Run("propagates fetch failures", func(t *testing.T) {
		wantErr := errors.New("upstream down")

		for name, source := range map[string]*stubSource{
			"profile":  {profileErr: wantErr},
			"sales":    {salesErr: wantErr},
			"expenses": {expensesErr: wantErr},
		} {
			t.Run(name, func(t *testing.T) {
				svc := NewService(source, nil)
				svc.now = fixedClock

				_, err := svc.Series(context.Background(), SeriesRequest{UserID: "u-1", WindowDays: 3})
				assert.ErrorIs(t, err, wantErr)
			})
		}
	})
}

func TestLatestEntry(t *testing.T) {
	today := fixedClock()
	source := &stubSource{
		profile: models.UserProfile{ID: "u-1", Occupations: []string{"Poultry"}},
		sales: []models.SaleRecord{
			{
				Occupation:     "Poultry",
				SaleDate:       today,
				ItemsSold:      []string{"Eggs"},
				QuantitiesSold: []float64{4},
				PricesPerUnit:  []float64{5},
			},
		},
	}

	svc := NewService(source, nil)
	svc.now = fixedClock

	entry, err := svc.LatestEntry(context.Background(), SeriesRequest{UserID: "u-1"})
	require.NoError(t, err)

	assert.True(t, entry.Date.Equal(time.Date(2026, time.August, 30, 0, 0, 0, 0, time.Local)))
	assert.InDelta(t, 20, entry.Revenue.Total, 1e-9)
}
