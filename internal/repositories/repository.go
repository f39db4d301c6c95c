package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/luckypick/powerball-backend/internal/models"
)

// ErrDrawNotFound is returned when no draw results exist for a requested
// date. Callers must treat it as a normal condition, distinct from a store
// failure.
var ErrDrawNotFound = errors.New("no draw results for date")

// DrawResultRepository defines the interface for draw result storage. Both
// the in-memory cache and the MongoDB store implement it; lookups key draws
// by calendar day.
type DrawResultRepository interface {
	Create(ctx context.Context, result *models.DrawResult) error
	CreateMany(ctx context.Context, results []*models.DrawResult) error
	// ReplaceAll swaps the full result set in one step, used by cache warm-up
	// and refresh
	ReplaceAll(ctx context.Context, results []*models.DrawResult) error
	FindByDate(ctx context.Context, date time.Time) (*models.DrawResult, error)
	FindByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*models.DrawResult, error)
	Count(ctx context.Context) (int64, error)
}
