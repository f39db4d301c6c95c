// Package validation applies the ticket schema to untrusted request bodies.
// It reports the first violated constraint with a field-path-qualified
// message, and on success returns a normalized ticket.
package validation

import (
	"fmt"
	"math"
	"time"

	"github.com/luckypick/powerball-backend/internal/models"
)

// Failure message vocabulary. Kept stable: clients match on these.
const (
	msgRequired      = "is required"
	msgMustBeObject  = "must be an object"
	msgMustBeArray   = "must be an array"
	msgMustBeString  = "must be a string"
	msgMustBeNumber  = "must be a number"
	msgMustBeInteger = "must be an integer"
	msgInvalidDate   = "must be a valid ISO 8601 date"
	msgFutureDate    = "must be less than or equal to now"
)

// Draw dates are accepted in ISO 8601 form only: a plain calendar date or a
// full RFC 3339 timestamp.
var drawDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

// ValidateTicket validates a decoded request body against the ticket schema
// and returns the normalized ticket. The returned error is always a *Error
// describing the first failing constraint; no partial ticket is produced on
// failure.
func ValidateTicket(raw map[string]interface{}) (*models.Ticket, error) {
	return validateTicket(raw, time.Now())
}

func validateTicket(raw map[string]interface{}, now time.Time) (*models.Ticket, error) {
	if raw == nil {
		return nil, newError("ticket", msgMustBeObject)
	}

	rawPicks, present := raw["picks"]
	if !present || rawPicks == nil {
		return nil, newError("picks", msgRequired)
	}
	list, ok := rawPicks.([]interface{})
	if !ok {
		return nil, newError("picks", msgMustBeArray)
	}
	if len(list) < 1 {
		return nil, newError("picks", "must contain at least 1 items")
	}

	picks := make([]models.Pick, 0, len(list))
	for i, rawPick := range list {
		pick, err := validatePick(fmt.Sprintf("picks[%d]", i), rawPick)
		if err != nil {
			return nil, err
		}
		picks = append(picks, pick)
	}

	drawDate, err := validateDrawDate(raw, now)
	if err != nil {
		return nil, err
	}

	return &models.Ticket{Picks: picks, DrawDate: drawDate}, nil
}

func validatePick(path string, raw interface{}) (models.Pick, error) {
	obj, ok := raw.(map[string]interface{})
	if !ok || obj == nil {
		return models.Pick{}, newError(path, msgMustBeObject)
	}

	whiteBalls, err := validateWhiteBalls(path+".whiteBalls", obj)
	if err != nil {
		return models.Pick{}, err
	}

	powerBall, err := validatePowerBall(path+".powerBall", obj)
	if err != nil {
		return models.Pick{}, err
	}

	return models.Pick{WhiteBalls: whiteBalls, PowerBall: powerBall}, nil
}

func validateWhiteBalls(path string, pick map[string]interface{}) ([]int, error) {
	raw, present := pick["whiteBalls"]
	if !present || raw == nil {
		return nil, newError(path, msgRequired)
	}
	list, ok := raw.([]interface{})
	if !ok {
		return nil, newError(path, msgMustBeArray)
	}
	if len(list) != models.WhiteBallCount {
		return nil, newErrorf(path, "must contain %d items", models.WhiteBallCount)
	}

	balls := make([]int, 0, len(list))
	for i, item := range list {
		ball, err := intInRange(fmt.Sprintf("%s[%d]", path, i), item, models.WhiteBallMin, models.WhiteBallMax)
		if err != nil {
			return nil, err
		}
		balls = append(balls, ball)
	}

	// A draw never repeats a whiteball, so a pick must not either. The
	// powerball is drawn from a separate set and is deliberately exempt.
	seen := make(map[int]bool, len(balls))
	for i, ball := range balls {
		if seen[ball] {
			return nil, newErrorf(path, "position %d contains a duplicate value", i)
		}
		seen[ball] = true
	}

	return balls, nil
}

func validatePowerBall(path string, pick map[string]interface{}) (int, error) {
	raw, present := pick["powerBall"]
	if !present || raw == nil {
		return 0, newError(path, msgRequired)
	}
	return intInRange(path, raw, models.PowerBallMin, models.PowerBallMax)
}

// intInRange coerces a decoded JSON value to an integer in [min, max].
// encoding/json decodes every number as float64.
func intInRange(path string, raw interface{}, min, max int) (int, error) {
	var value float64
	switch v := raw.(type) {
	case float64:
		value = v
	case int:
		value = float64(v)
	default:
		return 0, newError(path, msgMustBeNumber)
	}

	if value != math.Trunc(value) {
		return 0, newError(path, msgMustBeInteger)
	}
	n := int(value)
	if n < min {
		return 0, newErrorf(path, "must be larger than or equal to %d", min)
	}
	if n > max {
		return 0, newErrorf(path, "must be less than or equal to %d", max)
	}
	return n, nil
}

func validateDrawDate(raw map[string]interface{}, now time.Time) (time.Time, error) {
	value, present := raw["drawDate"]
	if !present || value == nil {
		return time.Time{}, newError("drawDate", msgRequired)
	}
	s, ok := value.(string)
	if !ok {
		return time.Time{}, newError("drawDate", msgMustBeString)
	}

	var drawDate time.Time
	parsed := false
	for _, layout := range drawDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			drawDate = t.UTC()
			parsed = true
			break
		}
	}
	if !parsed {
		return time.Time{}, newError("drawDate", msgInvalidDate)
	}

	if drawDate.After(now) {
		return time.Time{}, newError("drawDate", msgFutureDate)
	}
	return drawDate, nil
}
