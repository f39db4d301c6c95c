package models

import (
	"encoding/json"
	"fmt"
)

// GrandPrizeSentinel is the wire encoding of a grand-prize amount. The grand
// prize has no fixed monetary value (it is the jackpot), so it is tracked by
// count rather than summed with the fixed tiers.
const GrandPrizeSentinel = "GRAND_PRIZE"

// PrizeAmount is either a fixed monetary amount or the grand prize. It
// serializes as a JSON number, or as the string "GRAND_PRIZE" for the top
// tier, matching the published results format.
type PrizeAmount struct {
	IsGrandPrize bool    `bson:"isGrandPrize"`
	Value        float64 `bson:"value"`
}

// GrandPrize returns the grand-prize amount sentinel
func GrandPrize() *PrizeAmount {
	return &PrizeAmount{IsGrandPrize: true}
}

// Money returns a fixed monetary prize amount
func Money(value float64) *PrizeAmount {
	return &PrizeAmount{Value: value}
}

// MarshalJSON implements json.Marshaler
func (a PrizeAmount) MarshalJSON() ([]byte, error) {
	if a.IsGrandPrize {
		return json.Marshal(GrandPrizeSentinel)
	}
	return json.Marshal(a.Value)
}

// UnmarshalJSON implements json.Unmarshaler
func (a *PrizeAmount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != GrandPrizeSentinel {
			return fmt.Errorf("invalid prize amount %q", s)
		}
		a.IsGrandPrize = true
		a.Value = 0
		return nil
	}
	a.IsGrandPrize = false
	return json.Unmarshal(data, &a.Value)
}

// PrizeOutcome records the result of checking one pick against a draw.
// Amount, WhiteBalls and PowerBall are null on the wire when the pick won
// nothing or matched nothing.
type PrizeOutcome struct {
	Won        bool         `bson:"won" json:"won"`
	Amount     *PrizeAmount `bson:"amount,omitempty" json:"amount"`
	WhiteBalls []int        `bson:"whiteBalls,omitempty" json:"whiteBalls"`
	PowerBall  *int         `bson:"powerBall,omitempty" json:"powerBall"`
}
