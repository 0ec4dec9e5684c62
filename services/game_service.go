package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/kijvolley/tournament-tracker/live"
	"github.com/kijvolley/tournament-tracker/models"
	"github.com/kijvolley/tournament-tracker/repositories"
)

type StartGameInput struct {
	Team1 string `json:"team1"`
	Team2 string `json:"team2"`
}

type AdjustScoreInput struct {
	GameKey string `json:"game_key"`
	SetKey  string `json:"set_key"`
	Team    string `json:"team"`
	Delta   int    `json:"delta"`
}

type GameService interface {
	StartGame(ctx context.Context, input StartGameInput) (*models.Game, error)
	AdjustScore(ctx context.Context, input AdjustScoreInput) (*models.Game, error)
	CompleteGame(ctx context.Context, gameKey string) (*models.Game, error)
	ListGames(ctx context.Context) (live.GameCollection, error)
}

type gameService struct {
	gameRepo repositories.GameRepository
	teamRepo repositories.TeamRepository
	hub      Broadcaster
	logger   *slog.Logger

	// Serializes every game read-modify-write cycle so concurrent score
	// mutations of the same record cannot interleave.
	mu sync.Mutex
}

func NewGameService(
	gameRepo repositories.GameRepository,
	teamRepo repositories.TeamRepository,
	hub Broadcaster,
	logger *slog.Logger,
) GameService {
	return &gameService{
		gameRepo: gameRepo,
		teamRepo: teamRepo,
		hub:      hub,
		logger:   logger,
	}
}

func (s *gameService) StartGame(ctx context.Context, input StartGameInput) (*models.Game, error) {
	if input.Team1 == "" || input.Team2 == "" {
		return nil, fmt.Errorf("%w: team1 and team2 are required", ErrValidationFailed)
	}
	if input.Team1 == input.Team2 {
		return nil, ErrSameTeamGame
	}

	for _, name := range []string{input.Team1, input.Team2} {
		if _, err := s.teamRepo.GetByName(ctx, name); err != nil {
			if errors.Is(err, repositories.ErrTeamNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, name)
			}
			return nil, fmt.Errorf("failed to load team %q: %w", name, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.gameRepo.FindActiveByPair(ctx, input.Team1, input.Team2)
	if err == nil {
		return nil, ErrDuplicateActiveGame
	}
	if !errors.Is(err, repositories.ErrGameNotFound) {
		return nil, fmt.Errorf("failed to check for active game: %w", err)
	}

	now := time.Now()
	key := fmt.Sprintf("%s_vs_%s_%s", input.Team1, input.Team2, now.Format("20060102_150405"))
	game := models.NewGame(key, input.Team1, input.Team2, now)

	if err := s.gameRepo.Save(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to persist new game: %w", err)
	}

	s.broadcastGames(ctx, live.EventGamesUpdated, "")
	return game, nil
}

func (s *gameService) AdjustScore(ctx context.Context, input AdjustScoreInput) (*models.Game, error) {
	if !models.ValidSetKey(input.SetKey) {
		return nil, ErrInvalidSetKey
	}
	if !models.ValidTeamSlot(input.Team) {
		return nil, ErrInvalidTeamSlot
	}
	if input.Delta != 1 && input.Delta != -1 {
		return nil, ErrInvalidScoreDelta
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.loadMutableGame(ctx, input.GameKey)
	if err != nil {
		return nil, err
	}

	set := game.Sets[input.SetKey]
	if input.Team == models.TeamSlot1 {
		set.Team1Score = clampScore(set.Team1Score + input.Delta)
	} else {
		set.Team2Score = clampScore(set.Team2Score + input.Delta)
	}
	game.Sets[input.SetKey] = set

	if err := s.gameRepo.Save(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to persist score for game %q: %w", game.Key, err)
	}

	s.broadcastGames(ctx, live.EventScoreUpdated, game.Key)
	return game, nil
}

func (s *gameService) CompleteGame(ctx context.Context, gameKey string) (*models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.loadMutableGame(ctx, gameKey)
	if err != nil {
		return nil, err
	}

	winner := determineWinner(game)
	now := time.Now()
	game.Completed = true
	game.Winner = &winner
	game.EndTime = &now

	if err := s.gameRepo.Save(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to persist completion of game %q: %w", game.Key, err)
	}

	s.broadcastGames(ctx, live.EventGameCompleted, "")
	return game, nil
}

func (s *gameService) ListGames(ctx context.Context) (live.GameCollection, error) {
	games, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return gameCollection(games), nil
}

// loadMutableGame fetches a game that may still be mutated. Callers must hold s.mu.
func (s *gameService) loadMutableGame(ctx context.Context, key string) (*models.Game, error) {
	game, err := s.gameRepo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to load game %q: %w", key, err)
	}
	if game.Completed {
		return nil, ErrGameAlreadyCompleted
	}
	return game, nil
}

// determineWinner compares sets won by each team. A set with the strictly
// higher score is won; an equal set is won by neither. When the sets split,
// the cumulative point differential across both sets decides; a dead-even
// game falls to team1.
func determineWinner(game *models.Game) string {
	team1Sets, team2Sets := 0, 0
	team1Points, team2Points := 0, 0

	for _, setKey := range models.SetKeys() {
		set := game.Sets[setKey]
		team1Points += set.Team1Score
		team2Points += set.Team2Score
		switch {
		case set.Team1Score > set.Team2Score:
			team1Sets++
		case set.Team2Score > set.Team1Score:
			team2Sets++
		}
	}

	switch {
	case team1Sets > team2Sets:
		return game.Team1
	case team2Sets > team1Sets:
		return game.Team2
	case team2Points > team1Points:
		return game.Team2
	default:
		return game.Team1
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	return score
}

func (s *gameService) broadcastGames(ctx context.Context, eventType, gameKey string) {
	games, err := s.ListGames(ctx)
	if err != nil {
		s.logger.Error("failed to load games for broadcast", slog.Any("error", err))
		return
	}
	s.hub.BroadcastEvent(live.GamesEvent{Type: eventType, GameKey: gameKey, Games: games})
}
