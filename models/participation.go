package models

// Participation is the per-player audit record of a match. RatingDelta is
// stored redundantly (rating_after - rating_before) so a match can be
// reverted losslessly even if the rating formula changes later.
type Participation struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	MatchID      uint    `gorm:"not null;index" json:"match_id"`
	PlayerID     uint    `gorm:"not null;index" json:"player_id"`
	IsWinner     bool    `gorm:"not null" json:"is_winner"`
	RatingBefore float64 `gorm:"not null" json:"rating_before"`
	RatingAfter  float64 `gorm:"not null" json:"rating_after"`
	RatingDelta  float64 `gorm:"not null" json:"rating_delta"`

	// Relationships
	Match  Match  `gorm:"foreignKey:MatchID;references:ID" json:"match,omitempty"`
	Player Player `gorm:"foreignKey:PlayerID;references:ID" json:"player,omitempty"`
}

func (Participation) TableName() string {
	return "participations"
}

// HistoryEntry is one row of a player's match history, joined with the match
// date label.
type HistoryEntry struct {
	MatchID     uint    `json:"match_id"`
	Date        string  `json:"date"`
	IsWinner    bool    `json:"is_winner"`
	RatingDelta float64 `json:"rating_delta"`
	RatingAfter float64 `json:"rating_after"`
}
