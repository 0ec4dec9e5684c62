package services

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/kijvolley/tournament-tracker/models"
	"github.com/kijvolley/tournament-tracker/repositories"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeHub struct {
	mu     sync.Mutex
	events []interface{}
}

func (h *fakeHub) BroadcastEvent(event interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event)
}

func (h *fakeHub) lastEvent() interface{} {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.events) == 0 {
		return nil
	}
	return h.events[len(h.events)-1]
}

type fakeTeamRepo struct {
	teams map[string]*models.Team
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: make(map[string]*models.Team)}
}

func (r *fakeTeamRepo) Create(_ context.Context, team *models.Team) error {
	if _, exists := r.teams[team.Name]; exists {
		return repositories.ErrTeamNameConflict
	}
	clone := *team
	r.teams[team.Name] = &clone
	return nil
}

func (r *fakeTeamRepo) GetByName(_ context.Context, name string) (*models.Team, error) {
	team, ok := r.teams[name]
	if !ok {
		return nil, repositories.ErrTeamNotFound
	}
	clone := *team
	return &clone, nil
}

func (r *fakeTeamRepo) List(_ context.Context) ([]*models.Team, error) {
	names := make([]string, 0, len(r.teams))
	for name := range r.teams {
		names = append(names, name)
	}
	sort.Strings(names)

	teams := make([]*models.Team, 0, len(names))
	for _, name := range names {
		clone := *r.teams[name]
		teams = append(teams, &clone)
	}
	return teams, nil
}

func (r *fakeTeamRepo) Count(_ context.Context) (int, error) {
	return len(r.teams), nil
}

func (r *fakeTeamRepo) UpdateLogoKey(_ context.Context, name string, logoKey *string) error {
	team, ok := r.teams[name]
	if !ok {
		return repositories.ErrTeamNotFound
	}
	team.LogoKey = logoKey
	return nil
}

func (r *fakeTeamRepo) Delete(_ context.Context, name string) error {
	if _, ok := r.teams[name]; !ok {
		return repositories.ErrTeamNotFound
	}
	delete(r.teams, name)
	return nil
}

func (r *fakeTeamRepo) DeleteAll(_ context.Context, _ repositories.SQLExecutor) error {
	r.teams = make(map[string]*models.Team)
	return nil
}

type fakeGameRepo struct {
	games map[string]*models.Game
	order []string
}

func newFakeGameRepo() *fakeGameRepo {
	return &fakeGameRepo{games: make(map[string]*models.Game)}
}

func cloneGame(game *models.Game) *models.Game {
	clone := *game
	clone.Sets = make(map[string]models.SetScore, len(game.Sets))
	for key, set := range game.Sets {
		clone.Sets[key] = set
	}
	if game.Winner != nil {
		winner := *game.Winner
		clone.Winner = &winner
	}
	if game.EndTime != nil {
		end := *game.EndTime
		clone.EndTime = &end
	}
	return &clone
}

func (r *fakeGameRepo) Save(_ context.Context, game *models.Game) error {
	if _, exists := r.games[game.Key]; !exists {
		r.order = append(r.order, game.Key)
	}
	r.games[game.Key] = cloneGame(game)
	return nil
}

func (r *fakeGameRepo) GetByKey(_ context.Context, key string) (*models.Game, error) {
	game, ok := r.games[key]
	if !ok {
		return nil, repositories.ErrGameNotFound
	}
	return cloneGame(game), nil
}

func (r *fakeGameRepo) List(_ context.Context) ([]*models.Game, error) {
	games := make([]*models.Game, 0, len(r.order))
	for _, key := range r.order {
		games = append(games, cloneGame(r.games[key]))
	}
	return games, nil
}

func (r *fakeGameRepo) FindActiveByPair(_ context.Context, teamA, teamB string) (*models.Game, error) {
	for _, game := range r.games {
		if game.Completed {
			continue
		}
		if (game.Team1 == teamA && game.Team2 == teamB) || (game.Team1 == teamB && game.Team2 == teamA) {
			return cloneGame(game), nil
		}
	}
	return nil, repositories.ErrGameNotFound
}

func (r *fakeGameRepo) CountActiveByTeam(_ context.Context, teamName string) (int, error) {
	count := 0
	for _, game := range r.games {
		if !game.Completed && game.Involves(teamName) {
			count++
		}
	}
	return count, nil
}

func (r *fakeGameRepo) DeleteAll(_ context.Context, _ repositories.SQLExecutor) error {
	r.games = make(map[string]*models.Game)
	r.order = nil
	return nil
}
