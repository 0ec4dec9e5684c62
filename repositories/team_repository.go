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
	ErrTeamNotFound     = errors.New("team not found")
	ErrTeamNameConflict = errors.New("team name is already in use")
)

type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	GetByName(ctx context.Context, name string) (*models.Team, error)
	List(ctx context.Context) ([]*models.Team, error)
	Count(ctx context.Context) (int, error)
	UpdateLogoKey(ctx context.Context, name string, logoKey *string) error
	Delete(ctx context.Context, name string) error
	DeleteAll(ctx context.Context, exec SQLExecutor) error
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

func (r *postgresTeamRepository) Create(ctx context.Context, team *models.Team) error {
	query := `
		INSERT INTO teams (team_name, player1, player2, pool)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.ExecContext(ctx, query, team.Name, team.Player1, team.Player2, team.Pool)
	return r.handleTeamError(err)
}

func (r *postgresTeamRepository) GetByName(ctx context.Context, name string) (*models.Team, error) {
	query := `
		SELECT team_name, player1, player2, pool, logo_key
		FROM teams
		WHERE team_name = $1`

	team := &models.Team{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&team.Name,
		&team.Player1,
		&team.Player2,
		&team.Pool,
		&team.LogoKey,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to scan team %q: %w", name, err)
	}
	return team, nil
}

func (r *postgresTeamRepository) List(ctx context.Context) ([]*models.Team, error) {
	query := `
		SELECT team_name, player1, player2, pool, logo_key
		FROM teams
		ORDER BY team_name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	teams := make([]*models.Team, 0)
	for rows.Next() {
		var team models.Team
		if scanErr := rows.Scan(
			&team.Name,
			&team.Player1,
			&team.Player2,
			&team.Pool,
			&team.LogoKey,
		); scanErr != nil {
			return nil, fmt.Errorf("failed to scan team row: %w", scanErr)
		}
		teams = append(teams, &team)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during team rows iteration: %w", err)
	}
	return teams, nil
}

func (r *postgresTeamRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM teams`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count teams: %w", err)
	}
	return count, nil
}

func (r *postgresTeamRepository) UpdateLogoKey(ctx context.Context, name string, logoKey *string) error {
	query := `UPDATE teams SET logo_key = $1 WHERE team_name = $2`
	result, err := r.db.ExecContext(ctx, query, logoKey, name)
	if err != nil {
		return fmt.Errorf("failed to update logo key for team %q: %w", name, err)
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) Delete(ctx context.Context, name string) error {
	query := `DELETE FROM teams WHERE team_name = $1`
	result, err := r.db.ExecContext(ctx, query, name)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) DeleteAll(ctx context.Context, exec SQLExecutor) error {
	if _, err := exec.ExecContext(ctx, `DELETE FROM teams`); err != nil {
		return fmt.Errorf("failed to delete all teams: %w", err)
	}
	return nil
}

func (r *postgresTeamRepository) handleTeamError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		// "23505": unique_violation
		if pqErr.Constraint == "teams_team_name_key" {
			return ErrTeamNameConflict
		}
	}
	return err
}
