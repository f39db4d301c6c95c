package powerball

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWinningNumbers(t *testing.T) {
	whiteBalls, powerBall, err := parseWinningNumbers("06 12 21 26 61 23")
	require.NoError(t, err)
	assert.Equal(t, []int{6, 12, 21, 26, 61}, whiteBalls)
	assert.Equal(t, 23, powerBall)

	_, _, err = parseWinningNumbers("06 12 21")
	assert.Error(t, err)

	_, _, err = parseWinningNumbers("06 12 21 26 61 XX")
	assert.Error(t, err)
}

func TestGetDrawResultsParsesFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"draw_date": "2017-11-09T00:00:00.000", "winning_numbers": "06 12 21 26 61 23", "multiplier": "3"},
			{"draw_date": "2017-11-08", "winning_numbers": "01 02 03 04 05 06"},
			{"draw_date": "garbage", "winning_numbers": "01 02 03 04 05 06"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, false)
	draws, err := client.GetDrawResults(context.Background())
	require.NoError(t, err)

	// The malformed row is skipped, not fatal
	require.Len(t, draws, 2)
	assert.Equal(t, time.Date(2017, 11, 9, 0, 0, 0, 0, time.UTC), draws[0].DrawDate)
	assert.Equal(t, []int{6, 12, 21, 26, 61}, draws[0].WhiteBalls)
	assert.Equal(t, 23, draws[0].PowerBall)
	assert.Equal(t, 3, draws[0].Multiplier)

	assert.Equal(t, time.Date(2017, 11, 8, 0, 0, 0, 0, time.UTC), draws[1].DrawDate)
	assert.Equal(t, 0, draws[1].Multiplier)
}

func TestGetDrawResultsFeedErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, false)
	_, err := client.GetDrawResults(context.Background())
	assert.Error(t, err)
}

func TestMockFeedProducesValidDraws(t *testing.T) {
	client := NewClient("", true)
	draws, err := client.GetDrawResults(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, draws)

	now := time.Now()
	for _, draw := range draws {
		assert.False(t, draw.DrawDate.After(now))

		require.Len(t, draw.WhiteBalls, 5)
		seen := make(map[int]bool)
		for _, ball := range draw.WhiteBalls {
			assert.GreaterOrEqual(t, ball, 1)
			assert.LessOrEqual(t, ball, 69)
			assert.False(t, seen[ball], "duplicate whiteball in mock draw")
			seen[ball] = true
		}
		assert.GreaterOrEqual(t, draw.PowerBall, 1)
		assert.LessOrEqual(t, draw.PowerBall, 26)
	}
}
