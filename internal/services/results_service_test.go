package services

import (
	"context"
	"testing"
	"time"

	"github.com/luckypick/powerball-backend/internal/models"
	"github.com/luckypick/powerball-backend/internal/repositories/memory"
	"github.com/luckypick/powerball-backend/pkg/powerball"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeCacheLoadsFeedIntoStore(t *testing.T) {
	repo := memory.NewDrawResultRepository()
	service := NewResultsService(repo, powerball.NewClient("", true))

	count, err := service.InitializeCache(context.Background())
	require.NoError(t, err)
	require.Greater(t, count, 0)

	stored, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, count, stored)
}

func TestInitializeCacheFailsWhenFeedUnreachable(t *testing.T) {
	repo := memory.NewDrawResultRepository()
	// Real feed mode against an unroutable URL
	service := NewResultsService(repo, powerball.NewClient("http://127.0.0.1:1", false))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := service.InitializeCache(ctx)
	assert.Error(t, err)
}

func TestResultsServiceReadsThroughRepository(t *testing.T) {
	repo := memory.NewDrawResultRepository()
	service := NewResultsService(repo, powerball.NewClient("", true))

	day := time.Date(2017, 11, 9, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(context.Background(), &models.DrawResult{
		DrawDate:   day,
		WhiteBalls: []int{6, 12, 21, 26, 61},
		PowerBall:  23,
	}))

	draw, err := service.GetDrawByDate(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, []int{6, 12, 21, 26, 61}, draw.WhiteBalls)

	count, err := service.GetDrawCount(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	draws, err := service.GetDrawsByDateRange(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Len(t, draws, 1)
}
