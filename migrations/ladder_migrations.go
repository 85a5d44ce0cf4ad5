package migrations

import "gorm.io/gorm"

func GetLadderMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2024_06_01_000000_create_ladder_tables",
			Up: func(db *gorm.DB) error {
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS players (
						id BIGSERIAL PRIMARY KEY,
						name VARCHAR(255) NOT NULL UNIQUE,
						rating FLOAT DEFAULT 1200,
						games_played INT DEFAULT 0,
						created_at TIMESTAMP DEFAULT NOW()
					);
					CREATE INDEX IF NOT EXISTS idx_players_rating ON players(rating);
				`).Error; err != nil {
					return err
				}

				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS matches (
						id BIGSERIAL PRIMARY KEY,
						date VARCHAR(64) NOT NULL,
						k_factor_used FLOAT NOT NULL,
						winner_id BIGINT NOT NULL,
						created_at TIMESTAMP DEFAULT NOW(),
						FOREIGN KEY (winner_id) REFERENCES players(id)
					);
					CREATE INDEX IF NOT EXISTS idx_matches_date ON matches(date);
					CREATE INDEX IF NOT EXISTS idx_matches_winner_id ON matches(winner_id);
				`).Error; err != nil {
					return err
				}

				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS participations (
						id BIGSERIAL PRIMARY KEY,
						match_id BIGINT NOT NULL,
						player_id BIGINT NOT NULL,
						is_winner BOOLEAN NOT NULL,
						rating_before FLOAT NOT NULL,
						rating_after FLOAT NOT NULL,
						rating_delta FLOAT NOT NULL,
						FOREIGN KEY (match_id) REFERENCES matches(id),
						FOREIGN KEY (player_id) REFERENCES players(id)
					);
					CREATE INDEX IF NOT EXISTS idx_participations_match_id ON participations(match_id);
					CREATE INDEX IF NOT EXISTS idx_participations_player_id ON participations(player_id);
				`).Error; err != nil {
					return err
				}

				return db.Exec(`
					CREATE TABLE IF NOT EXISTS settings (
						key VARCHAR(64) PRIMARY KEY,
						value TEXT NOT NULL
					);
					INSERT INTO settings (key, value) VALUES ('k_factor', '32')
					ON CONFLICT (key) DO NOTHING;
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec(`
					DROP TABLE IF EXISTS settings;
					DROP TABLE IF EXISTS participations;
					DROP TABLE IF EXISTS matches;
					DROP TABLE IF EXISTS players;
				`).Error
			},
		},
	}
}
