package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/kijvolley/tournament-tracker/live"
	"github.com/kijvolley/tournament-tracker/models"
	"github.com/kijvolley/tournament-tracker/repositories"
	"github.com/kijvolley/tournament-tracker/storage"
)

// MaxTeams caps tournament registration.
const MaxTeams = 15

type RegisterTeamInput struct {
	Name    string          `json:"team_name"`
	Player1 string          `json:"player1"`
	Player2 string          `json:"player2"`
	Pool    models.TeamPool `json:"pool"`
}

type TeamService interface {
	RegisterTeam(ctx context.Context, input RegisterTeamInput) (*models.Team, error)
	DeleteTeam(ctx context.Context, name string) error
	ListTeams(ctx context.Context) (live.TeamCollection, error)
	UploadLogo(ctx context.Context, name string, contentType string, reader io.Reader) (*models.Team, error)
}

type teamService struct {
	teamRepo repositories.TeamRepository
	gameRepo repositories.GameRepository
	uploader storage.FileUploader
	hub      Broadcaster
	logger   *slog.Logger
}

func NewTeamService(
	teamRepo repositories.TeamRepository,
	gameRepo repositories.GameRepository,
	uploader storage.FileUploader,
	hub Broadcaster,
	logger *slog.Logger,
) TeamService {
	return &teamService{
		teamRepo: teamRepo,
		gameRepo: gameRepo,
		uploader: uploader,
		hub:      hub,
		logger:   logger,
	}
}

func (s *teamService) RegisterTeam(ctx context.Context, input RegisterTeamInput) (*models.Team, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, ErrTeamNameRequired
	}
	if input.Pool == "" {
		input.Pool = models.PoolA
	}
	if !input.Pool.Valid() {
		return nil, ErrTeamPoolInvalid
	}

	count, err := s.teamRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count registered teams: %w", err)
	}
	if count >= MaxTeams {
		return nil, ErrTeamLimitExceeded
	}

	team := &models.Team{
		Name:    input.Name,
		Player1: input.Player1,
		Player2: input.Player2,
		Pool:    input.Pool,
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		if errors.Is(err, repositories.ErrTeamNameConflict) {
			return nil, ErrTeamNameConflict
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	s.broadcastTeams(ctx)
	return team, nil
}

func (s *teamService) DeleteTeam(ctx context.Context, name string) error {
	team, err := s.teamRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("failed to load team %q: %w", name, err)
	}

	active, err := s.gameRepo.CountActiveByTeam(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to check active games for team %q: %w", name, err)
	}
	if active > 0 {
		return ErrTeamHasActiveGames
	}

	if err := s.teamRepo.Delete(ctx, name); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("failed to delete team %q: %w", name, err)
	}

	// Best effort: a dangling logo object is not worth failing the delete.
	if team.LogoKey != nil && s.uploader != nil {
		if err := s.uploader.Delete(ctx, *team.LogoKey); err != nil {
			s.logger.Warn("failed to delete team logo", slog.String("team", name), slog.Any("error", err))
		}
	}

	s.broadcastTeams(ctx)
	return nil
}

func (s *teamService) ListTeams(ctx context.Context) (live.TeamCollection, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teamCollection(teams, s.uploader), nil
}

func (s *teamService) UploadLogo(ctx context.Context, name string, contentType string, reader io.Reader) (*models.Team, error) {
	if s.uploader == nil {
		return nil, ErrLogoStorageUnavailable
	}

	ext, ok := logoExtension(contentType)
	if !ok {
		return nil, ErrLogoContentInvalid
	}

	team, err := s.teamRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team %q: %w", name, err)
	}

	key := fmt.Sprintf("team-logos/%s%s", logoSlug(team.Name), ext)
	result, err := s.uploader.Upload(ctx, key, contentType, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to upload logo for team %q: %w", name, err)
	}

	if err := s.teamRepo.UpdateLogoKey(ctx, team.Name, &result.Key); err != nil {
		return nil, fmt.Errorf("failed to store logo key for team %q: %w", name, err)
	}
	team.LogoKey = &result.Key
	populateTeamLogoURL(team, s.uploader)

	s.broadcastTeams(ctx)
	return team, nil
}

func (s *teamService) broadcastTeams(ctx context.Context) {
	teams, err := s.ListTeams(ctx)
	if err != nil {
		s.logger.Error("failed to load teams for broadcast", slog.Any("error", err))
		return
	}
	s.hub.BroadcastEvent(live.TeamsEvent{Type: live.EventTeamsUpdated, Teams: teams})
}

func logoExtension(contentType string) (string, bool) {
	switch contentType {
	case "image/png":
		return ".png", true
	case "image/jpeg", "image/jpg":
		return ".jpg", true
	}
	return "", false
}

func logoSlug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, slug)
	return strings.Trim(slug, "-")
}
