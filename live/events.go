package live

import "github.com/kijvolley/tournament-tracker/models"

// Event types pushed to connected viewers. Every event carries the full
// updated collection(s); viewers never need to patch state incrementally.
const (
	EventInit            = "init"
	EventTeamsUpdated    = "teams_updated"
	EventGamesUpdated    = "games_updated"
	EventScoreUpdated    = "score_updated"
	EventGameCompleted   = "game_completed"
	EventTournamentReset = "tournament_reset"
	EventPong            = "pong"
)

// TeamCollection and GameCollection mirror the wire shape: objects keyed by
// team name and game key respectively.
type (
	TeamCollection map[string]*models.Team
	GameCollection map[string]*models.Game
)

type TeamsEvent struct {
	Type  string         `json:"type"`
	Teams TeamCollection `json:"teams"`
}

type GamesEvent struct {
	Type string `json:"type"`
	// GameKey identifies the mutated game on score_updated events.
	GameKey string         `json:"game_key,omitempty"`
	Games   GameCollection `json:"games"`
}

// SnapshotEvent carries the complete tournament state. Sent as "init" on
// connect and as "tournament_reset" (with empty collections) after a wipe.
type SnapshotEvent struct {
	Type  string         `json:"type"`
	Teams TeamCollection `json:"teams"`
	Games GameCollection `json:"games"`
}

type PongEvent struct {
	Type string `json:"type"`
}
