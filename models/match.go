package models

import (
	"time"
)

type Match struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`
	// Date is the caller-supplied label for when the match was played, not
	// necessarily when it was recorded.
	Date string `gorm:"size:64;not null" json:"date"`
	// KFactorUsed is frozen at record time; later changes to the global
	// K-factor never touch recorded matches.
	KFactorUsed float64   `gorm:"not null" json:"k_factor_used"`
	WinnerID    uint      `gorm:"not null" json:"winner_id"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	Winner         Player          `gorm:"foreignKey:WinnerID;references:ID" json:"winner,omitempty"`
	Participations []Participation `gorm:"foreignKey:MatchID" json:"participations,omitempty"`
}

func (Match) TableName() string {
	return "matches"
}

type RecordMatchRequest struct {
	Date     string `json:"date" binding:"required"`
	WinnerID uint   `json:"winner_id" binding:"required"`
	LoserIDs []uint `json:"loser_ids" binding:"required"`
}

// MatchSummary is one row of the public match history.
type MatchSummary struct {
	ID         uint   `json:"id"`
	Date       string `json:"date"`
	WinnerName string `json:"winner_name"`
	LoserNames string `json:"loser_names"`
}
