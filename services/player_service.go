package services

import (
	"errors"
	"sort"
	"time"

	"risiko-ladder-api/models"

	"gorm.io/gorm"
)

type PlayerService struct {
	db *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{
		db: db,
	}
}

func (s *PlayerService) GetPlayerByID(id uint) (*models.Player, error) {
	var player models.Player

	result := s.db.First(&player, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, result.Error
	}

	return &player, nil
}

func (s *PlayerService) CreatePlayer(name string) (*models.Player, error) {
	var existing int64
	if err := s.db.Model(&models.Player{}).Where("name = ?", name).Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, ErrDuplicateName
	}

	player := &models.Player{
		Name:        name,
		Rating:      models.DefaultRating,
		GamesPlayed: 0,
		CreatedAt:   time.Now(),
	}

	if err := s.db.Create(player).Error; err != nil {
		return nil, err
	}

	return player, nil
}

// DeletePlayer removes a player and every trace of the matches they won: the
// match rows and all their participations, for every participant. Loser
// participations of this player in other people's matches go too, then the
// player row itself.
//
// The other participants' ratings are deliberately left as last written even
// though the match that produced their delta no longer exists. This is the
// documented asymmetry versus match reversal.
func (s *PlayerService) DeletePlayer(playerID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var player models.Player
		if err := tx.First(&player, playerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPlayerNotFound
			}
			return err
		}

		var wonMatchIDs []uint
		if err := tx.Model(&models.Match{}).Where("winner_id = ?", playerID).
			Pluck("id", &wonMatchIDs).Error; err != nil {
			return err
		}

		if len(wonMatchIDs) > 0 {
			if err := tx.Where("match_id IN ?", wonMatchIDs).
				Delete(&models.Participation{}).Error; err != nil {
				return err
			}
			if err := tx.Where("winner_id = ?", playerID).
				Delete(&models.Match{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("player_id = ?", playerID).
			Delete(&models.Participation{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Player{}, playerID).Error
	})
}

// RankingThreshold returns the games-played bar for a ranked leaderboard
// spot: at least 5 games, scaling with 20% of the most active player's
// count, capped at 15.
func RankingThreshold(maxGames int) int {
	threshold := int(float64(maxGames) * 0.20)
	if threshold < 5 {
		threshold = 5
	}
	if threshold > 15 {
		threshold = 15
	}
	return threshold
}

// GetLeaderboard derives the current standings: players at or above the
// activity threshold first, provisional players after them, both sorted by
// rating. Nothing is cached; every call recomputes from the player table.
func (s *PlayerService) GetLeaderboard() ([]models.LeaderboardEntry, error) {
	var players []models.Player
	if err := s.db.Find(&players).Error; err != nil {
		return nil, err
	}

	return BuildLeaderboard(players), nil
}

// BuildLeaderboard is the pure derivation behind GetLeaderboard. The id
// tiebreak keeps the ordering deterministic for equal ratings.
func BuildLeaderboard(players []models.Player) []models.LeaderboardEntry {
	maxGames := 0
	for _, player := range players {
		if player.GamesPlayed > maxGames {
			maxGames = player.GamesPlayed
		}
	}
	threshold := RankingThreshold(maxGames)

	ranked := make([]models.LeaderboardEntry, 0, len(players))
	provisional := make([]models.LeaderboardEntry, 0)

	for _, player := range players {
		entry := models.LeaderboardEntry{
			Player:    player,
			IsRanked:  player.GamesPlayed >= threshold,
			Threshold: threshold,
		}
		if entry.IsRanked {
			ranked = append(ranked, entry)
		} else {
			provisional = append(provisional, entry)
		}
	}

	byRatingDesc := func(entries []models.LeaderboardEntry) func(i, j int) bool {
		return func(i, j int) bool {
			if entries[i].Rating != entries[j].Rating {
				return entries[i].Rating > entries[j].Rating
			}
			return entries[i].ID < entries[j].ID
		}
	}
	sort.Slice(ranked, byRatingDesc(ranked))
	sort.Slice(provisional, byRatingDesc(provisional))

	leaderboard := append(ranked, provisional...)
	for i := range leaderboard {
		leaderboard[i].Rank = i + 1
	}

	return leaderboard
}
