package models

// Standing is the aggregated record of one team over all its completed games.
// It is derived on demand and never stored.
type Standing struct {
	Team              string   `json:"team"`
	Pool              TeamPool `json:"pool"`
	GamesPlayed       int      `json:"games_played"`
	SetWins           int      `json:"set_wins"`
	SetLosses         int      `json:"set_losses"`
	PointsFor         int      `json:"points_for"`
	PointsAgainst     int      `json:"points_against"`
	PointDifferential int      `json:"point_differential"`
}
