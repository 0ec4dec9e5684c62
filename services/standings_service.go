package services

import (
	"context"
	"fmt"

	"github.com/kijvolley/tournament-tracker/models"
	"github.com/kijvolley/tournament-tracker/repositories"
	"github.com/kijvolley/tournament-tracker/standings"
	"golang.org/x/sync/errgroup"
)

type StandingsService interface {
	GetStandings(ctx context.Context) ([]*models.Standing, error)
}

type standingsService struct {
	teamRepo repositories.TeamRepository
	gameRepo repositories.GameRepository
}

func NewStandingsService(teamRepo repositories.TeamRepository, gameRepo repositories.GameRepository) StandingsService {
	return &standingsService{
		teamRepo: teamRepo,
		gameRepo: gameRepo,
	}
}

func (s *standingsService) GetStandings(ctx context.Context) ([]*models.Standing, error) {
	var (
		teams []*models.Team
		games []*models.Game
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		teams, err = s.teamRepo.List(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		games, err = s.gameRepo.List(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load standings inputs: %w", err)
	}

	return standings.Compute(teams, games), nil
}
