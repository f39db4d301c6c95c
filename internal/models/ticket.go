package models

import "time"

// Pick represents one player-chosen combination of whiteballs and a powerball.
// WhiteBalls keeps submission order; uniqueness is enforced by validation.
// Prize is populated after the pick has been checked against a draw; it stays
// nil when the draw date had no results on record.
type Pick struct {
	WhiteBalls []int         `bson:"whiteBalls" json:"whiteBalls"`
	PowerBall  int           `bson:"powerBall" json:"powerBall"`
	Prize      *PrizeOutcome `bson:"prize,omitempty" json:"prize,omitempty"`
}

// Ticket represents a validated ticket submission
type Ticket struct {
	Picks    []Pick    `bson:"picks" json:"picks"`
	DrawDate time.Time `bson:"drawDate" json:"drawDate"`
}

// CheckedTicket is the response artifact: the submitted ticket with each pick
// annotated and a ticket-level summary attached
type CheckedTicket struct {
	Picks    []Pick        `json:"picks"`
	DrawDate time.Time     `json:"drawDate"`
	Summary  TicketSummary `json:"summary"`
}

// TicketSummary aggregates the per-pick prize outcomes of a checked ticket.
// Grand prizes are counted, not summed; SummablePrizeTotal covers only the
// monetary tiers.
type TicketSummary struct {
	SummablePrizeTotal float64        `json:"summablePrizeTotal"`
	WonGrandPrizeCount int            `json:"wonGrandPrizeCount"`
	Errors             []SummaryError `json:"errors"`
}

// SummaryError is a structured ticket-level error entry, e.g. {"drawDate": "NOT_FOUND"}
type SummaryError struct {
	DrawDate string `json:"drawDate,omitempty"`
}

// ErrDrawDateNotFound is the summary error value recorded when no draw
// results exist for the ticket's draw date
const ErrDrawDateNotFound = "NOT_FOUND"

// NewTicketSummary creates an empty summary with Errors initialized so it
// serializes as [] rather than null
func NewTicketSummary() TicketSummary {
	return TicketSummary{Errors: []SummaryError{}}
}
