package services

import (
	"errors"
	"strings"
	"time"

	"risiko-ladder-api/models"
	"risiko-ladder-api/utils"

	"gorm.io/gorm"
)

type MatchService struct {
	db *gorm.DB
}

func NewMatchService(db *gorm.DB) *MatchService {
	return &MatchService{
		db: db,
	}
}

// RecordMatch records a winner-takes-all match and applies the resulting
// rating deltas to every participant as one transaction.
//
// Current ratings and the K-factor are read inside that same transaction and
// fed through the rating engine there, so a concurrent writer cannot cause a
// lost update between the read and the apply. Any failure rolls the whole
// match back.
func (s *MatchService) RecordMatch(date string, winnerID uint, loserIDs []uint) (*models.Match, error) {
	if len(loserIDs) == 0 {
		return nil, ErrNoLosers
	}

	seen := make(map[uint]bool, len(loserIDs))
	for _, loserID := range loserIDs {
		if loserID == winnerID {
			return nil, ErrWinnerAmongLosers
		}
		if seen[loserID] {
			return nil, ErrDuplicateLoser
		}
		seen[loserID] = true
	}

	var match models.Match

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var winner models.Player
		if err := tx.First(&winner, winnerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPlayerNotFound
			}
			return err
		}

		losers := make([]models.Player, 0, len(loserIDs))
		for _, loserID := range loserIDs {
			var loser models.Player
			if err := tx.First(&loser, loserID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrPlayerNotFound
				}
				return err
			}
			losers = append(losers, loser)
		}

		kFactor, err := readKFactor(tx)
		if err != nil {
			return err
		}

		loserRatings := make([]float64, len(losers))
		for i := range losers {
			loserRatings[i] = losers[i].Rating
		}
		winnerDelta, loserDeltas := utils.ComputeDeltas(winner.Rating, loserRatings, kFactor)

		match = models.Match{
			Date:        date,
			KFactorUsed: kFactor,
			WinnerID:    winnerID,
			CreatedAt:   time.Now(),
		}
		if err := tx.Create(&match).Error; err != nil {
			return err
		}

		if err := applyDelta(tx, &winner, winnerDelta, match.ID, true); err != nil {
			return err
		}
		for i := range losers {
			if err := applyDelta(tx, &losers[i], loserDeltas[i], match.ID, false); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.Preload("Winner").Preload("Participations").First(&match, match.ID).Error; err != nil {
		return nil, err
	}

	return &match, nil
}

// applyDelta moves one participant's stored rating, bumps their play count
// and writes the participation row that makes the change reversible.
func applyDelta(tx *gorm.DB, player *models.Player, delta float64, matchID uint, isWinner bool) error {
	newRating := player.Rating + delta

	if err := tx.Model(&models.Player{}).Where("id = ?", player.ID).
		Updates(map[string]interface{}{
			"rating":       newRating,
			"games_played": gorm.Expr("games_played + 1"),
		}).Error; err != nil {
		return err
	}

	participation := models.Participation{
		MatchID:      matchID,
		PlayerID:     player.ID,
		IsWinner:     isWinner,
		RatingBefore: player.Rating,
		RatingAfter:  newRating,
		RatingDelta:  delta,
	}

	return tx.Create(&participation).Error
}

// DeleteMatch reverses a recorded match: every participant gets their stored
// rating delta subtracted back out and their play count decremented, then the
// participations and the match row are deleted. One transaction, all or
// nothing.
//
// Reversal is delta-based rather than a restore of rating_before, so undoing
// matches out of order is accepted as an approximation.
func (s *MatchService) DeleteMatch(matchID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var participations []models.Participation
		if err := tx.Where("match_id = ?", matchID).Find(&participations).Error; err != nil {
			return err
		}
		if len(participations) == 0 {
			return ErrMatchNotFound
		}

		for _, participation := range participations {
			if err := tx.Model(&models.Player{}).Where("id = ?", participation.PlayerID).
				Updates(map[string]interface{}{
					"rating":       gorm.Expr("rating - ?", participation.RatingDelta),
					"games_played": gorm.Expr("games_played - 1"),
				}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("match_id = ?", matchID).Delete(&models.Participation{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Match{}, matchID).Error
	})
}

// GetPlayerHistory returns a player's participations joined with the match
// date label, newest first.
func (s *MatchService) GetPlayerHistory(playerID uint) ([]models.HistoryEntry, error) {
	var player models.Player
	if err := s.db.First(&player, playerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	var history []models.HistoryEntry
	err := s.db.Table("participations").
		Select("participations.match_id, matches.date, participations.is_winner, participations.rating_delta, participations.rating_after").
		Joins("JOIN matches ON matches.id = participations.match_id").
		Where("participations.player_id = ?", playerID).
		Order("matches.date DESC, matches.created_at DESC").
		Scan(&history).Error
	if err != nil {
		return nil, err
	}

	return history, nil
}

// GetMatchesHistory returns all matches newest first, each with the winner's
// name and the losers' names joined into one string. The loser names are
// assembled here rather than with a database string aggregate so postgres and
// sqlite behave identically.
func (s *MatchService) GetMatchesHistory() ([]models.MatchSummary, error) {
	var matches []models.Match

	err := s.db.Order("date DESC, created_at DESC").
		Preload("Winner").
		Preload("Participations", func(db *gorm.DB) *gorm.DB {
			return db.Order("participations.id ASC")
		}).
		Preload("Participations.Player").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]models.MatchSummary, 0, len(matches))
	for _, match := range matches {
		loserNames := make([]string, 0, len(match.Participations))
		for _, participation := range match.Participations {
			if !participation.IsWinner {
				loserNames = append(loserNames, participation.Player.Name)
			}
		}

		summaries = append(summaries, models.MatchSummary{
			ID:         match.ID,
			Date:       match.Date,
			WinnerName: match.Winner.Name,
			LoserNames: strings.Join(loserNames, ", "),
		})
	}

	return summaries, nil
}
