package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kijvolley/tournament-tracker/live"
	"github.com/kijvolley/tournament-tracker/repositories"
)

// Tx is the slice of *sql.Tx the reset needs: statement execution inside the
// transaction plus commit/rollback.
type Tx interface {
	repositories.SQLExecutor
	Commit() error
	Rollback() error
}

// TxBeginner opens transactions for the reset flow.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (Tx, error)
}

type sqlTxBeginner struct {
	db *sql.DB
}

func NewSQLTxBeginner(db *sql.DB) TxBeginner {
	return sqlTxBeginner{db: db}
}

func (b sqlTxBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (Tx, error) {
	return b.db.BeginTx(ctx, opts)
}

type AdminService interface {
	// ResetTournament wipes every team and game in one transaction and
	// broadcasts the empty state. Irreversible.
	ResetTournament(ctx context.Context) error
}

type adminService struct {
	beginner TxBeginner
	teamRepo repositories.TeamRepository
	gameRepo repositories.GameRepository
	hub      Broadcaster
}

func NewAdminService(
	beginner TxBeginner,
	teamRepo repositories.TeamRepository,
	gameRepo repositories.GameRepository,
	hub Broadcaster,
) AdminService {
	return &adminService{
		beginner: beginner,
		teamRepo: teamRepo,
		gameRepo: gameRepo,
		hub:      hub,
	}
}

func (s *adminService) ResetTournament(ctx context.Context) error {
	tx, err := s.beginner.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin reset transaction: %w", err)
	}
	defer tx.Rollback()

	// Games first: game rows reference teams.
	if err := s.gameRepo.DeleteAll(ctx, tx); err != nil {
		return err
	}
	if err := s.teamRepo.DeleteAll(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reset transaction: %w", err)
	}

	s.hub.BroadcastEvent(live.SnapshotEvent{
		Type:  live.EventTournamentReset,
		Teams: live.TeamCollection{},
		Games: live.GameCollection{},
	})
	return nil
}
