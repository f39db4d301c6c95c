package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/luckypick/powerball-backend/internal/models"
	"github.com/luckypick/powerball-backend/internal/repositories"
	"github.com/luckypick/powerball-backend/internal/validation"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure TicketServiceImpl implements TicketService
var _ TicketService = (*TicketServiceImpl)(nil)

// TicketServiceImpl runs the ticket checking pipeline: validate the raw
// submission, resolve prizes for the draw date, merge the outcomes back onto
// the picks, and aggregate the ticket summary
type TicketServiceImpl struct {
	prizeService PrizeService
}

// NewTicketService creates a new TicketServiceImpl
func NewTicketService(prizeService PrizeService) *TicketServiceImpl {
	return &TicketServiceImpl{
		prizeService: prizeService,
	}
}

// CheckTicket checks a raw ticket submission against the official draw
// results. A schema violation comes back as a *validation.Error before any
// resolver call; an unknown draw date is a normal outcome recorded in the
// summary, not an error.
func (s *TicketServiceImpl) CheckTicket(ctx context.Context, raw map[string]interface{}) (*models.CheckedTicket, error) {
	ticket, err := validation.ValidateTicket(raw)
	if err != nil {
		return nil, err
	}

	outcomes, err := s.prizeService.CalculatePickPrizes(ctx, ticket)
	drawNotFound := false
	if err != nil {
		if !errors.Is(err, repositories.ErrDrawNotFound) {
			return nil, err
		}
		drawNotFound = true
		slog.Warn("No draw results on record for ticket", "drawDate", ticket.DrawDate)
	}

	checked, err := mergeOutcomes(ticket, outcomes, drawNotFound)
	if err != nil {
		return nil, err
	}
	checked.Summary = summarize(checked.Picks, drawNotFound)
	return checked, nil
}

// mergeOutcomes attaches each outcome to its pick by index, preserving the
// submitted order. In the not-found case picks stay un-annotated. A length
// mismatch is a resolver contract violation and fails loudly rather than
// truncating or padding.
func mergeOutcomes(ticket *models.Ticket, outcomes []models.PrizeOutcome, drawNotFound bool) (*models.CheckedTicket, error) {
	checked := &models.CheckedTicket{
		Picks:    make([]models.Pick, len(ticket.Picks)),
		DrawDate: ticket.DrawDate,
	}
	copy(checked.Picks, ticket.Picks)

	if drawNotFound {
		return checked, nil
	}
	if len(outcomes) != len(ticket.Picks) {
		return nil, fmt.Errorf("prize outcome count %d does not match pick count %d", len(outcomes), len(ticket.Picks))
	}
	for i := range checked.Picks {
		outcome := outcomes[i]
		checked.Picks[i].Prize = &outcome
	}
	return checked, nil
}

// summarize folds the annotated picks into the ticket summary. Grand prizes
// are counted; every other winning amount is summed.
func summarize(picks []models.Pick, drawNotFound bool) models.TicketSummary {
	summary := models.NewTicketSummary()

	if drawNotFound {
		summary.Errors = append(summary.Errors, models.SummaryError{DrawDate: models.ErrDrawDateNotFound})
		return summary
	}

	for _, pick := range picks {
		if pick.Prize == nil || !pick.Prize.Won || pick.Prize.Amount == nil {
			continue
		}
		if pick.Prize.Amount.IsGrandPrize {
			summary.WonGrandPrizeCount++
		} else {
			summary.SummablePrizeTotal += pick.Prize.Amount.Value
		}
	}
	return summary
}
