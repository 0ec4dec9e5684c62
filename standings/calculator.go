// Package standings derives the tournament table from completed games.
// Compute is a pure function: identical input always produces the same
// ordered result, regardless of game order.
package standings

import (
	"sort"

	"github.com/kijvolley/tournament-tracker/models"
)

// Compute aggregates every completed game into one Standing per registered
// team and returns them ranked by set wins, then point differential, then
// team name for a deterministic total order.
//
// A set with an equal score counts as neither a set win nor a set loss for
// either team, but its points still enter the differential.
func Compute(teams []*models.Team, games []*models.Game) []*models.Standing {
	byTeam := make(map[string]*models.Standing, len(teams))
	result := make([]*models.Standing, 0, len(teams))

	for _, team := range teams {
		s := &models.Standing{Team: team.Name, Pool: team.Pool}
		byTeam[team.Name] = s
		result = append(result, s)
	}

	for _, game := range games {
		if !game.Completed {
			continue
		}
		s1, ok1 := byTeam[game.Team1]
		s2, ok2 := byTeam[game.Team2]
		if !ok1 || !ok2 {
			// Game references a team that is no longer registered.
			continue
		}

		s1.GamesPlayed++
		s2.GamesPlayed++

		for _, setKey := range models.SetKeys() {
			set := game.Sets[setKey]

			s1.PointsFor += set.Team1Score
			s1.PointsAgainst += set.Team2Score
			s2.PointsFor += set.Team2Score
			s2.PointsAgainst += set.Team1Score

			switch {
			case set.Team1Score > set.Team2Score:
				s1.SetWins++
				s2.SetLosses++
			case set.Team2Score > set.Team1Score:
				s2.SetWins++
				s1.SetLosses++
			}
		}
	}

	for _, s := range result {
		s.PointDifferential = s.PointsFor - s.PointsAgainst
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.SetWins != b.SetWins {
			return a.SetWins > b.SetWins
		}
		if a.PointDifferential != b.PointDifferential {
			return a.PointDifferential > b.PointDifferential
		}
		return a.Team < b.Team
	})

	return result
}
