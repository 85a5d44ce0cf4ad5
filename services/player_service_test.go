package services

import (
	"testing"

	"risiko-ladder-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePlayerDefaults(t *testing.T) {
	db := setupTestDB(t)
	playerService := NewPlayerService(db)

	player, err := playerService.CreatePlayer("Anna")
	require.NoError(t, err)

	assert.Equal(t, "Anna", player.Name)
	assert.Equal(t, models.DefaultRating, player.Rating)
	assert.Zero(t, player.GamesPlayed)
	assert.NotZero(t, player.ID)
}

func TestCreatePlayerDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	playerService := NewPlayerService(db)

	_, err := playerService.CreatePlayer("Anna")
	require.NoError(t, err)

	_, err = playerService.CreatePlayer("Anna")
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestGetPlayerByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	playerService := NewPlayerService(db)

	_, err := playerService.GetPlayerByID(123)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestRankingThreshold(t *testing.T) {
	tests := []struct {
		name     string
		maxGames int
		expected int
	}{{
		"empty ladder",
		0,
		5,
	}, {
		"low activity stays at the floor",
		20,
		5,
	}, {
		"just above the floor",
		30,
		6,
	}, {
		"mid activity scales with the leader",
		50,
		10,
	}, {
		"cap reached exactly",
		75,
		15,
	}, {
		"very active ladder never exceeds the cap",
		500,
		15,
	}}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, RankingThreshold(test.maxGames))
		})
	}
}

func TestBuildLeaderboardPartition(t *testing.T) {
	players := []models.Player{
		{ID: 1, Name: "Anna", Rating: 1250, GamesPlayed: 12},
		{ID: 2, Name: "Bruno", Rating: 1400, GamesPlayed: 2},
		{ID: 3, Name: "Carla", Rating: 1300, GamesPlayed: 8},
		{ID: 4, Name: "Dario", Rating: 1100, GamesPlayed: 20},
	}

	leaderboard := BuildLeaderboard(players)
	require.Len(t, leaderboard, 4)

	// maxGames=20 keeps the threshold at the floor of 5, so only Bruno is
	// provisional; he sorts after every ranked player despite his rating.
	for _, entry := range leaderboard {
		assert.Equal(t, 5, entry.Threshold)
	}

	assert.Equal(t, "Carla", leaderboard[0].Name)
	assert.Equal(t, "Anna", leaderboard[1].Name)
	assert.Equal(t, "Dario", leaderboard[2].Name)
	assert.Equal(t, "Bruno", leaderboard[3].Name)

	assert.True(t, leaderboard[0].IsRanked)
	assert.True(t, leaderboard[1].IsRanked)
	assert.True(t, leaderboard[2].IsRanked)
	assert.False(t, leaderboard[3].IsRanked)

	for i, entry := range leaderboard {
		assert.Equal(t, i+1, entry.Rank)
	}
}

func TestBuildLeaderboardAllProvisionalWhenNoGames(t *testing.T) {
	players := []models.Player{
		{ID: 1, Name: "Anna", Rating: 1200},
		{ID: 2, Name: "Bruno", Rating: 1200},
	}

	leaderboard := BuildLeaderboard(players)
	require.Len(t, leaderboard, 2)

	for _, entry := range leaderboard {
		assert.False(t, entry.IsRanked)
		assert.Equal(t, 5, entry.Threshold)
	}

	// Equal ratings fall back to the id tiebreak, so the ordering stays
	// deterministic.
	assert.Equal(t, "Anna", leaderboard[0].Name)
	assert.Equal(t, "Bruno", leaderboard[1].Name)
}

func TestBuildLeaderboardEmpty(t *testing.T) {
	assert.Empty(t, BuildLeaderboard(nil))
}

func TestGetLeaderboardFromDatabase(t *testing.T) {
	db := setupTestDB(t)
	playerService := NewPlayerService(db)

	anna := createTestPlayer(t, playerService, "Anna")
	bruno := createTestPlayer(t, playerService, "Bruno")

	require.NoError(t, db.Model(&models.Player{}).Where("id = ?", anna.ID).
		Updates(map[string]interface{}{"rating": 1350.0, "games_played": 9}).Error)
	require.NoError(t, db.Model(&models.Player{}).Where("id = ?", bruno.ID).
		Updates(map[string]interface{}{"rating": 1500.0, "games_played": 3}).Error)

	leaderboard, err := playerService.GetLeaderboard()
	require.NoError(t, err)
	require.Len(t, leaderboard, 2)

	assert.Equal(t, "Anna", leaderboard[0].Name)
	assert.True(t, leaderboard[0].IsRanked)
	assert.Equal(t, "Bruno", leaderboard[1].Name)
	assert.False(t, leaderboard[1].IsRanked)
}

func TestDeletePlayerCascade(t *testing.T) {
	db := setupTestDB(t)
	playerService := NewPlayerService(db)
	matchService := NewMatchService(db)

	anna := createTestPlayer(t, playerService, "Anna")
	bruno := createTestPlayer(t, playerService, "Bruno")
	carla := createTestPlayer(t, playerService, "Carla")

	// Anna beats Bruno, then Bruno beats Carla.
	matchAnna, err := matchService.RecordMatch("2024-01-01", anna.ID, []uint{bruno.ID})
	require.NoError(t, err)
	matchBruno, err := matchService.RecordMatch("2024-01-02", bruno.ID, []uint{carla.ID})
	require.NoError(t, err)

	var carlaBefore models.Player
	require.NoError(t, db.First(&carlaBefore, carla.ID).Error)

	require.NoError(t, playerService.DeletePlayer(bruno.ID))

	_, err = playerService.GetPlayerByID(bruno.ID)
	assert.ErrorIs(t, err, ErrPlayerNotFound)

	// The match Bruno won is gone entirely, Carla's participation included.
	var brunoMatchCount int64
	require.NoError(t, db.Model(&models.Match{}).Where("id = ?", matchBruno.ID).Count(&brunoMatchCount).Error)
	assert.Zero(t, brunoMatchCount)

	var orphanCount int64
	require.NoError(t, db.Model(&models.Participation{}).Where("match_id = ?", matchBruno.ID).Count(&orphanCount).Error)
	assert.Zero(t, orphanCount)

	// Anna's match survives, but only her own participation row remains.
	var annaMatchCount int64
	require.NoError(t, db.Model(&models.Match{}).Where("id = ?", matchAnna.ID).Count(&annaMatchCount).Error)
	assert.EqualValues(t, 1, annaMatchCount)

	var remaining []models.Participation
	require.NoError(t, db.Where("match_id = ?", matchAnna.ID).Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, anna.ID, remaining[0].PlayerID)

	// Carla keeps the rating the erased match gave her: the cascade never
	// re-adjusts other participants.
	var carlaAfter models.Player
	require.NoError(t, db.First(&carlaAfter, carla.ID).Error)
	assert.Equal(t, carlaBefore.Rating, carlaAfter.Rating)
	assert.Equal(t, carlaBefore.GamesPlayed, carlaAfter.GamesPlayed)
}

func TestDeletePlayerNotFound(t *testing.T) {
	db := setupTestDB(t)
	playerService := NewPlayerService(db)

	err := playerService.DeletePlayer(55)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}
