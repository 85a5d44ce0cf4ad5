package fixtures

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"risiko-ladder-api/models"
	"risiko-ladder-api/services"

	"gorm.io/gorm"
)

type Fixtures struct {
	db            *gorm.DB
	playerService *services.PlayerService
	matchService  *services.MatchService
}

func NewFixtures(db *gorm.DB) *Fixtures {
	return &Fixtures{
		db:            db,
		playerService: services.NewPlayerService(db),
		matchService:  services.NewMatchService(db),
	}
}

var playerNames = []string{
	"Alessandro", "Bianca", "Carlo", "Daniela", "Enrico",
	"Francesca", "Giulio", "Helena", "Ivan", "Lucia",
}

// GenerateTestData creates 10 players and 40 matches. Matches go through the
// real MatchService so the generated data honours every ledger invariant
// (participation rows, frozen K-factor, play counts).
func (f *Fixtures) GenerateTestData() error {
	log.Println("Starting fixtures generation...")

	players, err := f.generatePlayers()
	if err != nil {
		return fmt.Errorf("failed to generate players: %w", err)
	}

	if err := f.generateMatches(players); err != nil {
		return fmt.Errorf("failed to generate matches: %w", err)
	}

	log.Println("Fixtures generation completed")
	return nil
}

func (f *Fixtures) generatePlayers() ([]*models.Player, error) {
	players := make([]*models.Player, 0, len(playerNames))

	for _, name := range playerNames {
		player, err := f.playerService.CreatePlayer(name)
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}

	log.Printf("Created %d players", len(players))
	return players, nil
}

func (f *Fixtures) generateMatches(players []*models.Player) error {
	const matchCount = 40

	for i := 0; i < matchCount; i++ {
		rand.Shuffle(len(players), func(a, b int) {
			players[a], players[b] = players[b], players[a]
		})

		// 3 to 5 participants, first one wins.
		participants := 3 + rand.Intn(3)
		winnerID := players[0].ID
		loserIDs := make([]uint, 0, participants-1)
		for _, loser := range players[1:participants] {
			loserIDs = append(loserIDs, loser.ID)
		}

		date := time.Now().AddDate(0, 0, -rand.Intn(60)).Format("2006-01-02")

		if _, err := f.matchService.RecordMatch(date, winnerID, loserIDs); err != nil {
			return err
		}
	}

	log.Printf("Recorded %d matches", matchCount)
	return nil
}

// ClearAllData removes all ladder data. Settings are kept so a configured
// K-factor survives a regenerate.
func (f *Fixtures) ClearAllData() error {
	log.Println("Clearing all fixture data...")

	if err := f.db.Where("1 = 1").Delete(&models.Participation{}).Error; err != nil {
		return fmt.Errorf("failed to clear participations: %w", err)
	}
	if err := f.db.Where("1 = 1").Delete(&models.Match{}).Error; err != nil {
		return fmt.Errorf("failed to clear matches: %w", err)
	}
	if err := f.db.Where("1 = 1").Delete(&models.Player{}).Error; err != nil {
		return fmt.Errorf("failed to clear players: %w", err)
	}

	log.Println("All fixture data cleared")
	return nil
}
