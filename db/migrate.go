package db

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS teams (
		id SERIAL PRIMARY KEY,
		team_name VARCHAR(255) UNIQUE NOT NULL,
		player1 VARCHAR(255) DEFAULT '',
		player2 VARCHAR(255) DEFAULT '',
		pool VARCHAR(1) NOT NULL DEFAULT 'A',
		logo_key VARCHAR(512)
	)`,
	`CREATE TABLE IF NOT EXISTS games (
		id SERIAL PRIMARY KEY,
		game_key VARCHAR(512) UNIQUE NOT NULL,
		team1_name VARCHAR(255) NOT NULL,
		team2_name VARCHAR(255) NOT NULL,
		completed BOOLEAN DEFAULT FALSE,
		winner VARCHAR(255),
		start_time TIMESTAMP,
		end_time TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS game_sets (
		id SERIAL PRIMARY KEY,
		game_id INTEGER REFERENCES games(id) ON DELETE CASCADE,
		set_number INTEGER NOT NULL,
		team1_score INTEGER DEFAULT 0,
		team2_score INTEGER DEFAULT 0,
		UNIQUE(game_id, set_number)
	)`,
}

// Migrate creates the tournament tables if they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
