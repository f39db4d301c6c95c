package services

import (
	"context"
	"fmt"
	"time"

	"github.com/luckypick/powerball-backend/internal/models"
	"github.com/luckypick/powerball-backend/internal/repositories"
	"github.com/luckypick/powerball-backend/pkg/powerball"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure ResultsServiceImpl implements ResultsService
var _ ResultsService = (*ResultsServiceImpl)(nil)

// ResultsServiceImpl populates and reads the draw results store. The store
// is warmed once at startup from the results feed; warm-up failure is fatal
// to process startup, never to an individual request.
type ResultsServiceImpl struct {
	drawResultRepo repositories.DrawResultRepository
	feedClient     *powerball.Client
}

// NewResultsService creates a new ResultsServiceImpl
func NewResultsService(drawResultRepo repositories.DrawResultRepository, feedClient *powerball.Client) *ResultsServiceImpl {
	return &ResultsServiceImpl{
		drawResultRepo: drawResultRepo,
		feedClient:     feedClient,
	}
}

// InitializeCache fetches the full historical result set from the feed and
// loads the store, returning the number of draws loaded
func (s *ResultsServiceImpl) InitializeCache(ctx context.Context) (int, error) {
	results, err := s.fetchResults(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch initial draw results: %w", err)
	}
	if err := s.drawResultRepo.ReplaceAll(ctx, results); err != nil {
		return 0, fmt.Errorf("failed to store initial draw results: %w", err)
	}

	slog.Info("Draw results cache initialized", "draws", len(results))
	return len(results), nil
}

// RefreshCache re-fetches the result set. A refresh failure leaves the
// previously loaded results serving.
func (s *ResultsServiceImpl) RefreshCache(ctx context.Context) error {
	results, err := s.fetchResults(ctx)
	if err != nil {
		slog.Error("Draw results refresh failed, keeping current results", "error", err)
		return err
	}
	if err := s.drawResultRepo.ReplaceAll(ctx, results); err != nil {
		slog.Error("Failed to store refreshed draw results", "error", err)
		return err
	}

	slog.Info("Draw results cache refreshed", "draws", len(results))
	return nil
}

func (s *ResultsServiceImpl) fetchResults(ctx context.Context) ([]*models.DrawResult, error) {
	draws, err := s.feedClient.GetDrawResults(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*models.DrawResult, 0, len(draws))
	for _, draw := range draws {
		results = append(results, &models.DrawResult{
			DrawDate:   models.DrawDay(draw.DrawDate),
			WhiteBalls: draw.WhiteBalls,
			PowerBall:  draw.PowerBall,
			Multiplier: draw.Multiplier,
		})
	}
	return results, nil
}

// GetDrawByDate returns the draw results for a calendar day
func (s *ResultsServiceImpl) GetDrawByDate(ctx context.Context, date time.Time) (*models.DrawResult, error) {
	return s.drawResultRepo.FindByDate(ctx, date)
}

// GetDrawsByDateRange returns the draw results within a date range
func (s *ResultsServiceImpl) GetDrawsByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*models.DrawResult, error) {
	return s.drawResultRepo.FindByDateRange(ctx, startDate, endDate)
}

// GetDrawCount returns the number of draws on record
func (s *ResultsServiceImpl) GetDrawCount(ctx context.Context) (int64, error) {
	return s.drawResultRepo.Count(ctx)
}
