package services

import (
	"time"

	"risiko-ladder-api/models"

	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{
		db: db,
	}
}

// GetStats returns ladder-wide activity counters.
func (s *StatsService) GetStats() (*models.Stats, error) {
	var totalPlayers int64
	var totalMatches int64
	var matchesLast7Days int64
	var matchesPrevious7Days int64

	if err := s.db.Model(&models.Player{}).Count(&totalPlayers).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Match{}).Count(&totalMatches).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	last7DaysStart := now.AddDate(0, 0, -7)
	previous7DaysStart := now.AddDate(0, 0, -14)

	if err := s.db.Model(&models.Match{}).
		Where("created_at >= ?", last7DaysStart).
		Count(&matchesLast7Days).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Match{}).
		Where("created_at >= ? AND created_at < ?", previous7DaysStart, last7DaysStart).
		Count(&matchesPrevious7Days).Error; err != nil {
		return nil, err
	}

	return &models.Stats{
		TotalPlayers:         totalPlayers,
		TotalMatches:         totalMatches,
		MatchesLast7Days:     matchesLast7Days,
		MatchesPrevious7Days: matchesPrevious7Days,
	}, nil
}

// BuildPlayerStats derives per-player statistics from their history, which
// must be ordered newest first. Rank is not known at this level; the caller
// fills it in from the leaderboard.
func BuildPlayerStats(currentRating float64, history []models.HistoryEntry) models.PlayerStats {
	stats := models.PlayerStats{
		TotalGames: len(history),
		MaxRating:  currentRating,
		MinRating:  currentRating,
	}

	for _, entry := range history {
		if entry.IsWinner {
			stats.Wins++
		}
	}
	if stats.TotalGames > 0 {
		stats.WinRate = float64(stats.Wins) / float64(stats.TotalGames) * 100
	}

	if len(history) == 0 {
		return stats
	}

	// The most recent outcome fixes the streak type; walk backward while
	// outcomes keep matching it.
	if history[0].IsWinner {
		stats.StreakType = "win"
	} else {
		stats.StreakType = "loss"
	}
	for _, entry := range history {
		if entry.IsWinner != history[0].IsWinner {
			break
		}
		stats.StreakCount++
	}

	// Rating extremes over every post-match rating plus the synthetic
	// initial point from before the very first recorded match.
	oldest := history[len(history)-1]
	initialRating := oldest.RatingAfter - oldest.RatingDelta
	stats.MaxRating = initialRating
	stats.MinRating = initialRating
	for _, entry := range history {
		if entry.RatingAfter > stats.MaxRating {
			stats.MaxRating = entry.RatingAfter
		}
		if entry.RatingAfter < stats.MinRating {
			stats.MinRating = entry.RatingAfter
		}
	}

	return stats
}
