package services

import (
	"testing"

	"risiko-ladder-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPlayerStatsEmptyHistory(t *testing.T) {
	stats := BuildPlayerStats(1200, nil)

	assert.Zero(t, stats.TotalGames)
	assert.Zero(t, stats.Wins)
	assert.Zero(t, stats.WinRate)
	assert.Empty(t, stats.StreakType)
	assert.Zero(t, stats.StreakCount)
	assert.Equal(t, 1200.0, stats.MaxRating)
	assert.Equal(t, 1200.0, stats.MinRating)
}

func TestBuildPlayerStatsStreaks(t *testing.T) {
	win := func(after float64) models.HistoryEntry {
		return models.HistoryEntry{IsWinner: true, RatingAfter: after, RatingDelta: 10}
	}
	loss := func(after float64) models.HistoryEntry {
		return models.HistoryEntry{IsWinner: false, RatingAfter: after, RatingDelta: -10}
	}

	tests := []struct {
		name          string
		history       []models.HistoryEntry // newest first
		expectedType  string
		expectedCount int
	}{{
		"single win",
		[]models.HistoryEntry{win(1210)},
		"win",
		1,
	}, {
		"win after losses only counts the win",
		[]models.HistoryEntry{win(1210), loss(1200), loss(1210), loss(1220), win(1230)},
		"win",
		1,
	}, {
		"losing run",
		[]models.HistoryEntry{loss(1180), loss(1190), win(1200)},
		"loss",
		2,
	}, {
		"unbroken winning run",
		[]models.HistoryEntry{win(1240), win(1230), win(1220)},
		"win",
		3,
	}}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			stats := BuildPlayerStats(test.history[0].RatingAfter, test.history)
			assert.Equal(t, test.expectedType, stats.StreakType)
			assert.Equal(t, test.expectedCount, stats.StreakCount)
		})
	}
}

func TestBuildPlayerStatsWinRate(t *testing.T) {
	history := []models.HistoryEntry{
		{IsWinner: true, RatingAfter: 1210, RatingDelta: 10},
		{IsWinner: false, RatingAfter: 1200, RatingDelta: -10},
		{IsWinner: false, RatingAfter: 1210, RatingDelta: -10},
		{IsWinner: true, RatingAfter: 1220, RatingDelta: 20},
	}

	stats := BuildPlayerStats(1210, history)

	assert.Equal(t, 4, stats.TotalGames)
	assert.Equal(t, 2, stats.Wins)
	assert.InDelta(t, 50.0, stats.WinRate, 1e-9)
	assert.GreaterOrEqual(t, stats.WinRate, 0.0)
	assert.LessOrEqual(t, stats.WinRate, 100.0)
}

func TestBuildPlayerStatsRatingExtremes(t *testing.T) {
	// Newest first: the oldest entry implies the synthetic initial rating
	// 1216 - 16 = 1200, which is the run's minimum here.
	history := []models.HistoryEntry{
		{IsWinner: false, RatingAfter: 1210, RatingDelta: -6},
		{IsWinner: true, RatingAfter: 1216, RatingDelta: 16},
	}

	stats := BuildPlayerStats(1210, history)

	assert.InDelta(t, 1216.0, stats.MaxRating, 1e-9)
	assert.InDelta(t, 1200.0, stats.MinRating, 1e-9)
}

func TestBuildPlayerStatsInitialRatingCanBeMaximum(t *testing.T) {
	// A player who only ever lost peaked before their first match.
	history := []models.HistoryEntry{
		{IsWinner: false, RatingAfter: 1170, RatingDelta: -14},
		{IsWinner: false, RatingAfter: 1184, RatingDelta: -16},
	}

	stats := BuildPlayerStats(1170, history)

	assert.InDelta(t, 1200.0, stats.MaxRating, 1e-9)
	assert.InDelta(t, 1170.0, stats.MinRating, 1e-9)
}

func TestGetStatsCounts(t *testing.T) {
	db := setupTestDB(t)
	playerService := NewPlayerService(db)
	matchService := NewMatchService(db)
	statsService := NewStatsService(db)

	anna := createTestPlayer(t, playerService, "Anna")
	bruno := createTestPlayer(t, playerService, "Bruno")

	_, err := matchService.RecordMatch("2024-05-01", anna.ID, []uint{bruno.ID})
	require.NoError(t, err)

	stats, err := statsService.GetStats()
	require.NoError(t, err)

	assert.EqualValues(t, 2, stats.TotalPlayers)
	assert.EqualValues(t, 1, stats.TotalMatches)
	// The match was just recorded, so it lands in the current window.
	assert.EqualValues(t, 1, stats.MatchesLast7Days)
	assert.EqualValues(t, 0, stats.MatchesPrevious7Days)
}
