// Package powerball fetches official Powerball draw results from the public
// results feed (the New York open-data dataset).
package powerball

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// feedDateLayout is the timestamp format used by the results feed
const feedDateLayout = "2006-01-02T15:04:05.000"

// Client represents a Powerball results feed client
type Client struct {
	BaseURL  string
	MockFeed bool
	client   *http.Client
}

// DrawResponse represents one draw as returned by the feed
type DrawResponse struct {
	DrawDate   time.Time
	WhiteBalls []int
	PowerBall  int
	Multiplier int
}

// drawRecord is the raw feed document: the winning numbers come as a single
// space-separated string, five whiteballs followed by the powerball.
type drawRecord struct {
	DrawDate       string `json:"draw_date"`
	WinningNumbers string `json:"winning_numbers"`
	Multiplier     string `json:"multiplier"`
}

// NewClient creates a new results feed client
func NewClient(baseURL string, mockFeed bool) *Client {
	return &Client{
		BaseURL:  baseURL,
		MockFeed: mockFeed,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// GetDrawResults retrieves the historical draw results from the feed
func (c *Client) GetDrawResults(ctx context.Context) ([]DrawResponse, error) {
	if c.MockFeed {
		return c.mockGetDrawResults()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("results feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("results feed returned status %d", resp.StatusCode)
	}

	var records []drawRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode results feed: %w", err)
	}

	draws := make([]DrawResponse, 0, len(records))
	for _, record := range records {
		draw, err := parseRecord(record)
		if err != nil {
			// Malformed rows appear in the historical data; skip them
			continue
		}
		draws = append(draws, draw)
	}
	if len(draws) == 0 {
		return nil, fmt.Errorf("results feed returned no usable draws")
	}
	return draws, nil
}

func parseRecord(record drawRecord) (DrawResponse, error) {
	drawDate, err := time.Parse(feedDateLayout, record.DrawDate)
	if err != nil {
		// Some exports use a plain calendar date
		drawDate, err = time.Parse("2006-01-02", record.DrawDate)
		if err != nil {
			return DrawResponse{}, fmt.Errorf("invalid draw_date %q", record.DrawDate)
		}
	}

	whiteBalls, powerBall, err := parseWinningNumbers(record.WinningNumbers)
	if err != nil {
		return DrawResponse{}, err
	}

	multiplier := 0
	if record.Multiplier != "" {
		multiplier, err = strconv.Atoi(strings.TrimSpace(record.Multiplier))
		if err != nil {
			return DrawResponse{}, fmt.Errorf("invalid multiplier %q", record.Multiplier)
		}
	}

	return DrawResponse{
		DrawDate:   drawDate.UTC(),
		WhiteBalls: whiteBalls,
		PowerBall:  powerBall,
		Multiplier: multiplier,
	}, nil
}

func parseWinningNumbers(s string) ([]int, int, error) {
	fields := strings.Fields(s)
	if len(fields) != 6 {
		return nil, 0, fmt.Errorf("expected 6 winning numbers, got %d", len(fields))
	}

	numbers := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid winning number %q", field)
		}
		numbers = append(numbers, n)
	}
	return numbers[:5], numbers[5], nil
}

// mockGetDrawResults mocks the feed for local development: one draw per
// Monday, Wednesday and Saturday over the past year, with random numbers
func (c *Client) mockGetDrawResults() ([]DrawResponse, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var draws []DrawResponse
	day := time.Now().UTC().AddDate(-1, 0, 0)
	end := time.Now().UTC()
	for ; day.Before(end); day = day.AddDate(0, 0, 1) {
		switch day.Weekday() {
		case time.Monday, time.Wednesday, time.Saturday:
		default:
			continue
		}

		whiteBalls := make([]int, 0, 5)
		seen := make(map[int]bool)
		for len(whiteBalls) < 5 {
			n := rng.Intn(69) + 1
			if seen[n] {
				continue
			}
			seen[n] = true
			whiteBalls = append(whiteBalls, n)
		}

		draws = append(draws, DrawResponse{
			DrawDate:   time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
			WhiteBalls: whiteBalls,
			PowerBall:  rng.Intn(26) + 1,
			Multiplier: []int{2, 3, 4, 5, 10}[rng.Intn(5)],
		})
	}
	return draws, nil
}
