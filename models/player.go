package models

import (
	"time"
)

// DefaultRating is the rating every player starts with.
const DefaultRating = 1200.0

type Player struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Rating      float64   `gorm:"default:1200" json:"rating"`
	GamesPlayed int       `gorm:"default:0" json:"games_played"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	WonMatches     []Match         `gorm:"foreignKey:WinnerID" json:"won_matches,omitempty"`
	Participations []Participation `gorm:"foreignKey:PlayerID" json:"participations,omitempty"`
}

func (Player) TableName() string {
	return "players"
}

// LeaderboardEntry is a player together with its computed position on the
// leaderboard. Threshold carries the games-played bar used for this snapshot
// so clients can explain why a player is still provisional.
type LeaderboardEntry struct {
	Player
	Rank      int  `json:"rank"`
	IsRanked  bool `json:"is_ranked"`
	Threshold int  `json:"threshold"`
}

type CreatePlayerRequest struct {
	Name string `json:"name" binding:"required"`
}
