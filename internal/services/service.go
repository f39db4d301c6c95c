package services

import (
	"context"
	"errors"
	"time"

	"github.com/luckypick/powerball-backend/internal/models"
)

// ErrResultsUnavailable indicates the draw results source itself failed, as
// opposed to legitimately having no results for a date. Handlers surface it
// as a server-side failure.
var ErrResultsUnavailable = errors.New("draw results source unavailable")

// TicketService defines the interface for ticket checking
type TicketService interface {
	// CheckTicket runs the full pipeline on a decoded request body:
	// validation, prize resolution, merge and summary
	CheckTicket(ctx context.Context, raw map[string]interface{}) (*models.CheckedTicket, error)
}

// PrizeService defines the interface for prize determination. It returns one
// outcome per pick, in pick order, or repositories.ErrDrawNotFound when no
// draw exists for the ticket's draw date.
type PrizeService interface {
	CalculatePickPrizes(ctx context.Context, ticket *models.Ticket) ([]models.PrizeOutcome, error)
}

// ResultsService defines the interface for the draw results store: startup
// warm-up, scheduled refresh, and read access for the draw endpoints
type ResultsService interface {
	InitializeCache(ctx context.Context) (int, error)
	RefreshCache(ctx context.Context) error
	GetDrawByDate(ctx context.Context, date time.Time) (*models.DrawResult, error)
	GetDrawsByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*models.DrawResult, error)
	GetDrawCount(ctx context.Context) (int64, error)
}
