package models

type Stats struct {
	TotalPlayers         int64 `json:"total_players"`
	TotalMatches         int64 `json:"total_matches"`
	MatchesLast7Days     int64 `json:"matches_last_7_days"`
	MatchesPrevious7Days int64 `json:"matches_previous_7_days"`
}

// PlayerStats is derived from a player's full history on every read.
// StreakType is "win" or "loss", or empty when the player has no history.
type PlayerStats struct {
	Rank        int     `json:"rank"`
	TotalGames  int     `json:"total_games"`
	Wins        int     `json:"wins"`
	WinRate     float64 `json:"win_rate"`
	StreakType  string  `json:"streak_type"`
	StreakCount int     `json:"streak_count"`
	MaxRating   float64 `json:"max_rating"`
	MinRating   float64 `json:"min_rating"`
}

type PlayerDetailResponse struct {
	Player  Player         `json:"player"`
	History []HistoryEntry `json:"history"`
	Stats   PlayerStats    `json:"stats"`
}
