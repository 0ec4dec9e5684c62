package models

import "time"

const (
	SetsPerGame = 2

	SetKey1 = "set1"
	SetKey2 = "set2"

	TeamSlot1 = "team1"
	TeamSlot2 = "team2"
)

type SetScore struct {
	Team1Score int `json:"team1_score"`
	Team2Score int `json:"team2_score"`
}

type Game struct {
	Key       string              `json:"game_key"`
	Team1     string              `json:"team1"`
	Team2     string              `json:"team2"`
	Sets      map[string]SetScore `json:"sets"`
	Completed bool                `json:"completed"`
	Winner    *string             `json:"winner,omitempty"`
	StartTime time.Time           `json:"start_time"`
	EndTime   *time.Time          `json:"end_time,omitempty"`
}

// SetKeys returns the two set identifiers in play order.
func SetKeys() []string {
	return []string{SetKey1, SetKey2}
}

func ValidSetKey(key string) bool {
	return key == SetKey1 || key == SetKey2
}

func ValidTeamSlot(slot string) bool {
	return slot == TeamSlot1 || slot == TeamSlot2
}

// NewGame returns a freshly started game with both sets at 0-0.
func NewGame(key, team1, team2 string, start time.Time) *Game {
	return &Game{
		Key:       key,
		Team1:     team1,
		Team2:     team2,
		Sets:      map[string]SetScore{SetKey1: {}, SetKey2: {}},
		Completed: false,
		StartTime: start,
	}
}

// Involves reports whether the named team plays in this game.
func (g *Game) Involves(teamName string) bool {
	return g.Team1 == teamName || g.Team2 == teamName
}
