// Package memory provides an in-memory DrawResultRepository. It serves as
// the process-wide results cache: written once at warm-up (and on scheduled
// refresh), read concurrently by request handling.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/luckypick/powerball-backend/internal/models"
	"github.com/luckypick/powerball-backend/internal/repositories"
)

// Compile-time check to ensure DrawResultRepository implements the interface
var _ repositories.DrawResultRepository = (*DrawResultRepository)(nil)

// DrawResultRepository implements repositories.DrawResultRepository backed by
// a mutex-guarded map keyed by draw day
type DrawResultRepository struct {
	mu     sync.RWMutex
	byDate map[time.Time]*models.DrawResult
}

// NewDrawResultRepository creates an empty in-memory repository
func NewDrawResultRepository() *DrawResultRepository {
	return &DrawResultRepository{
		byDate: make(map[time.Time]*models.DrawResult),
	}
}

// Create stores a single draw result, replacing any result for the same day
func (r *DrawResultRepository) Create(ctx context.Context, result *models.DrawResult) error {
	now := time.Now()
	result.CreatedAt = now
	result.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()
	r.byDate[models.DrawDay(result.DrawDate)] = result
	return nil
}

// CreateMany stores a batch of draw results
func (r *DrawResultRepository) CreateMany(ctx context.Context, results []*models.DrawResult) error {
	now := time.Now()
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, result := range results {
		result.CreatedAt = now
		result.UpdatedAt = now
		r.byDate[models.DrawDay(result.DrawDate)] = result
	}
	return nil
}

// ReplaceAll atomically swaps the cached result set
func (r *DrawResultRepository) ReplaceAll(ctx context.Context, results []*models.DrawResult) error {
	now := time.Now()
	byDate := make(map[time.Time]*models.DrawResult, len(results))
	for _, result := range results {
		result.CreatedAt = now
		result.UpdatedAt = now
		byDate[models.DrawDay(result.DrawDate)] = result
	}

	r.mu.Lock()
	r.byDate = byDate
	r.mu.Unlock()
	return nil
}

// FindByDate finds the draw result for the calendar day of the given date
func (r *DrawResultRepository) FindByDate(ctx context.Context, date time.Time) (*models.DrawResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, ok := r.byDate[models.DrawDay(date)]
	if !ok {
		return nil, repositories.ErrDrawNotFound
	}
	return result, nil
}

// FindByDateRange finds draw results within [startDate, endDate), newest first.
// Zero bounds are open.
func (r *DrawResultRepository) FindByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*models.DrawResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var results []*models.DrawResult
	for day, result := range r.byDate {
		if !startDate.IsZero() && day.Before(models.DrawDay(startDate)) {
			continue
		}
		if !endDate.IsZero() && !day.Before(models.DrawDay(endDate)) {
			continue
		}
		results = append(results, result)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].DrawDate.After(results[j].DrawDate)
	})
	return results, nil
}

// Count returns the number of cached draw results
func (r *DrawResultRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.byDate)), nil
}
