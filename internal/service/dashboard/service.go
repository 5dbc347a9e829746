// Package dashboard orchestrates the financial dashboard: it fetches raw
// records from the configured source and runs the aggregation engine over
// them. All I/O lives here; the engine itself stays pure.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/agrobooks/internal/domain/models"
	"github.com/mamadbah2/agrobooks/internal/finance"
)

// RecordSource supplies the raw inputs of one aggregation run. Implemented by
// the platform API client and by the Google Sheets repository.
type RecordSource interface {
	FetchProfile(ctx context.Context, userID string) (models.UserProfile, error)
	FetchSales(ctx context.Context, userID string) ([]models.SaleRecord, error)
	FetchExpenses(ctx context.Context, userID string) ([]models.ExpenseRecord, error)
}

// SeriesRequest scopes one dashboard computation. A zero WindowDays falls back
// to the engine default; a nil Categories falls back to the generic taxonomy.
// TargetOccupation pins a single-domain screen (poultry, apiculture) so its
// occupation is seeded even before any record mentions it.
type SeriesRequest struct {
	UserID           string
	WindowDays       int
	TargetOccupation string
	Categories       *finance.CategoryConfig
}

// Service computes dashboard series on demand.
type Service struct {
	source RecordSource
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a new dashboard service instance.
func NewService(source RecordSource, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		source: source,
		logger: logger,
		now:    time.Now,
	}
}

// Series fetches the user's records and produces the gap-filled daily series
// consumed by dashboard cards and trend graphs.
func (s *Service) Series(ctx context.Context, req SeriesRequest) ([]models.DailyFinancialEntry, error) {
	if req.WindowDays <= 0 {
		req.WindowDays = finance.DefaultWindowDays
	}
	if req.Categories == nil {
		req.Categories = finance.GenericCategories()
	}

	profile, err := s.source.FetchProfile(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}

	sales, err := s.source.FetchSales(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("fetch sales: %w", err)
	}

	expenses, err := s.source.FetchExpenses(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("fetch expenses: %w", err)
	}

	s.logger.Debug("computing dashboard series",
		zap.String("user_id", req.UserID),
		zap.Int("window_days", req.WindowDays),
		zap.String("target_occupation", req.TargetOccupation),
		zap.Int("sales", len(sales)),
		zap.Int("expenses", len(expenses)))

	series := finance.ComputeDailySeries(finance.SeriesInput{
		ReferenceDate:    s.now(),
		WindowDays:       req.WindowDays,
		Occupations:      profile.Occupations,
		TargetOccupation: req.TargetOccupation,
		Sales:            sales,
		Expenses:         expenses,
		Categories:       req.Categories,
	})

	return series, nil
}

// LatestEntry computes the current day's entry, used by the snapshot job.
func (s *Service) LatestEntry(ctx context.Context, req SeriesRequest) (models.DailyFinancialEntry, error) {
	req.WindowDays = 1

	series, err := s.Series(ctx, req)
	if err != nil {
		return models.DailyFinancialEntry{}, err
	}
	return series[len(series)-1], nil
}
