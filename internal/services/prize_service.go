package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/luckypick/powerball-backend/internal/models"
	"github.com/luckypick/powerball-backend/internal/repositories"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure PrizeServiceImpl implements PrizeService
var _ PrizeService = (*PrizeServiceImpl)(nil)

// PrizeServiceImpl determines prizes by comparing picks against the official
// draw results for the ticket's draw date
type PrizeServiceImpl struct {
	drawResultRepo repositories.DrawResultRepository
}

// NewPrizeService creates a new PrizeServiceImpl
func NewPrizeService(drawResultRepo repositories.DrawResultRepository) *PrizeServiceImpl {
	return &PrizeServiceImpl{
		drawResultRepo: drawResultRepo,
	}
}

// CalculatePickPrizes computes a prize outcome for every pick on the ticket,
// in pick order. Returns repositories.ErrDrawNotFound when no draw results
// exist for the draw date.
func (s *PrizeServiceImpl) CalculatePickPrizes(ctx context.Context, ticket *models.Ticket) ([]models.PrizeOutcome, error) {
	draw, err := s.drawResultRepo.FindByDate(ctx, ticket.DrawDate)
	if err != nil {
		if errors.Is(err, repositories.ErrDrawNotFound) {
			return nil, err
		}
		slog.Error("Failed to look up draw results", "error", err, "drawDate", ticket.DrawDate)
		return nil, fmt.Errorf("%w: %v", ErrResultsUnavailable, err)
	}

	outcomes := make([]models.PrizeOutcome, 0, len(ticket.Picks))
	for _, pick := range ticket.Picks {
		outcomes = append(outcomes, scorePick(pick, draw))
	}
	return outcomes, nil
}

// scorePick compares one pick against the drawn numbers and maps the match
// pattern to a prize tier
func scorePick(pick models.Pick, draw *models.DrawResult) models.PrizeOutcome {
	drawn := make(map[int]bool, len(draw.WhiteBalls))
	for _, ball := range draw.WhiteBalls {
		drawn[ball] = true
	}

	var matched []int
	for _, ball := range pick.WhiteBalls {
		if drawn[ball] {
			matched = append(matched, ball)
		}
	}
	powerBallMatched := pick.PowerBall == draw.PowerBall

	outcome := models.PrizeOutcome{
		WhiteBalls: matched,
	}
	if powerBallMatched {
		powerBall := draw.PowerBall
		outcome.PowerBall = &powerBall
	}
	if amount := prizeForMatch(len(matched), powerBallMatched); amount != nil {
		outcome.Won = true
		outcome.Amount = amount
	}
	return outcome
}

// prizeForMatch maps a match pattern to the official Powerball prize
// schedule. Five whiteballs plus the powerball is the grand prize (jackpot),
// which has no fixed amount.
func prizeForMatch(whiteMatches int, powerBallMatched bool) *models.PrizeAmount {
	switch {
	case whiteMatches == 5 && powerBallMatched:
		return models.GrandPrize()
	case whiteMatches == 5:
		return models.Money(1000000)
	case whiteMatches == 4 && powerBallMatched:
		return models.Money(50000)
	case whiteMatches == 4, whiteMatches == 3 && powerBallMatched:
		return models.Money(100)
	case whiteMatches == 3, whiteMatches == 2 && powerBallMatched:
		return models.Money(7)
	case powerBallMatched:
		return models.Money(4)
	default:
		return nil
	}
}
