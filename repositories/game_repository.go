package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kijvolley/tournament-tracker/models"
	"github.com/lib/pq"
)

var (
	ErrGameNotFound    = errors.New("game not found")
	ErrGameKeyConflict = errors.New("game key already exists")
)

type GameRepository interface {
	// Save upserts the game row and its per-set scores in one transaction.
	Save(ctx context.Context, game *models.Game) error
	GetByKey(ctx context.Context, key string) (*models.Game, error)
	List(ctx context.Context) ([]*models.Game, error)
	// FindActiveByPair looks up a non-completed game between the two teams,
	// in either order. Returns ErrGameNotFound when the pair has no active game.
	FindActiveByPair(ctx context.Context, teamA, teamB string) (*models.Game, error)
	CountActiveByTeam(ctx context.Context, teamName string) (int, error)
	DeleteAll(ctx context.Context, exec SQLExecutor) error
}

type postgresGameRepository struct {
	db *sql.DB
}

func NewPostgresGameRepository(db *sql.DB) GameRepository {
	return &postgresGameRepository{db: db}
}

func (r *postgresGameRepository) Save(ctx context.Context, game *models.Game) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin game save transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO games (game_key, team1_name, team2_name, completed, winner, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (game_key)
		DO UPDATE SET
			completed = EXCLUDED.completed,
			winner    = EXCLUDED.winner,
			end_time  = EXCLUDED.end_time
		RETURNING id`

	var gameID int
	err = tx.QueryRowContext(ctx, query,
		game.Key,
		game.Team1,
		game.Team2,
		game.Completed,
		game.Winner,
		game.StartTime,
		game.EndTime,
	).Scan(&gameID)
	if err != nil {
		return r.handleGameError(err)
	}

	for setNumber, setKey := range models.SetKeys() {
		set, ok := game.Sets[setKey]
		if !ok {
			continue
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO game_sets (game_id, set_number, team1_score, team2_score)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (game_id, set_number)
			DO UPDATE SET
				team1_score = EXCLUDED.team1_score,
				team2_score = EXCLUDED.team2_score`,
			gameID, setNumber+1, set.Team1Score, set.Team2Score,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert %s for game %q: %w", setKey, game.Key, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit game save transaction: %w", err)
	}
	return nil
}

const gameSelect = `
	SELECT g.game_key, g.team1_name, g.team2_name, g.completed, g.winner,
	       g.start_time, g.end_time,
	       gs.set_number, gs.team1_score, gs.team2_score
	FROM games g
	LEFT JOIN game_sets gs ON g.id = gs.game_id`

func (r *postgresGameRepository) GetByKey(ctx context.Context, key string) (*models.Game, error) {
	rows, err := r.db.QueryContext(ctx, gameSelect+` WHERE g.game_key = $1 ORDER BY gs.set_number`, key)
	if err != nil {
		return nil, fmt.Errorf("failed to query game %q: %w", key, err)
	}
	defer rows.Close()

	games, err := scanGames(rows)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, ErrGameNotFound
	}
	return games[0], nil
}

func (r *postgresGameRepository) List(ctx context.Context) ([]*models.Game, error) {
	rows, err := r.db.QueryContext(ctx, gameSelect+` ORDER BY g.id, gs.set_number`)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer rows.Close()

	return scanGames(rows)
}

func (r *postgresGameRepository) FindActiveByPair(ctx context.Context, teamA, teamB string) (*models.Game, error) {
	rows, err := r.db.QueryContext(ctx, gameSelect+`
		WHERE g.completed = FALSE
		  AND ((g.team1_name = $1 AND g.team2_name = $2) OR (g.team1_name = $2 AND g.team2_name = $1))
		ORDER BY g.id, gs.set_number`, teamA, teamB)
	if err != nil {
		return nil, fmt.Errorf("failed to query active game for pair %q/%q: %w", teamA, teamB, err)
	}
	defer rows.Close()

	games, err := scanGames(rows)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, ErrGameNotFound
	}
	return games[0], nil
}

func (r *postgresGameRepository) CountActiveByTeam(ctx context.Context, teamName string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM games
		WHERE completed = FALSE AND (team1_name = $1 OR team2_name = $1)`, teamName).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active games for team %q: %w", teamName, err)
	}
	return count, nil
}

func (r *postgresGameRepository) DeleteAll(ctx context.Context, exec SQLExecutor) error {
	// game_sets rows go with their games via ON DELETE CASCADE.
	if _, err := exec.ExecContext(ctx, `DELETE FROM games`); err != nil {
		return fmt.Errorf("failed to delete all games: %w", err)
	}
	return nil
}

// scanGames folds joined game/set rows back into Game values, one per game_key.
func scanGames(rows *sql.Rows) ([]*models.Game, error) {
	games := make([]*models.Game, 0)
	byKey := make(map[string]*models.Game)

	for rows.Next() {
		var (
			key, team1, team2      string
			completed              bool
			winner                 *string
			startTime              sql.NullTime
			endTime                sql.NullTime
			setNumber              sql.NullInt64
			team1Score, team2Score sql.NullInt64
		)
		if err := rows.Scan(&key, &team1, &team2, &completed, &winner,
			&startTime, &endTime, &setNumber, &team1Score, &team2Score); err != nil {
			return nil, fmt.Errorf("failed to scan game row: %w", err)
		}

		game, ok := byKey[key]
		if !ok {
			game = models.NewGame(key, team1, team2, startTime.Time)
			game.Completed = completed
			game.Winner = winner
			if endTime.Valid {
				t := endTime.Time
				game.EndTime = &t
			}
			byKey[key] = game
			games = append(games, game)
		}

		if setNumber.Valid && setNumber.Int64 >= 1 && setNumber.Int64 <= models.SetsPerGame {
			setKey := models.SetKeys()[setNumber.Int64-1]
			game.Sets[setKey] = models.SetScore{
				Team1Score: int(team1Score.Int64),
				Team2Score: int(team2Score.Int64),
			}
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during game rows iteration: %w", err)
	}
	return games, nil
}

func (r *postgresGameRepository) handleGameError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		// "23505": unique_violation
		if pqErr.Constraint == "games_game_key_key" {
			return ErrGameKeyConflict
		}
	}
	return err
}
