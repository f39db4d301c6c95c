package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Whiteball and powerball domains for a Powerball draw
const (
	WhiteBallMin   = 1
	WhiteBallMax   = 69
	PowerBallMin   = 1
	PowerBallMax   = 26
	WhiteBallCount = 5
)

// DrawResult represents the official winning numbers published for one draw date
type DrawResult struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	DrawDate   time.Time          `bson:"drawDate" json:"drawDate"`
	WhiteBalls []int              `bson:"whiteBalls" json:"whiteBalls"`
	PowerBall  int                `bson:"powerBall" json:"powerBall"`
	Multiplier int                `bson:"multiplier,omitempty" json:"multiplier,omitempty"` // Power Play multiplier, 0 when not published
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DrawDay normalizes a draw date to UTC midnight of its calendar day. All
// lookups key draws by day, never by time of day.
func DrawDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
