package standings

import (
	"testing"
	"time"

	"github.com/kijvolley/tournament-tracker/models"
)

func team(name string, pool models.TeamPool) *models.Team {
	return &models.Team{Name: name, Pool: pool}
}

func completedGame(team1, team2 string, set1, set2 models.SetScore) *models.Game {
	g := models.NewGame(team1+"_vs_"+team2+"_t", team1, team2, time.Now())
	g.Sets[models.SetKey1] = set1
	g.Sets[models.SetKey2] = set2
	g.Completed = true
	return g
}

func TestCompute_SplitSetsDifferentialTieBreak(t *testing.T) {
	teams := []*models.Team{team("Alpha", models.PoolA), team("Beta", models.PoolA)}
	games := []*models.Game{
		completedGame("Alpha", "Beta",
			models.SetScore{Team1Score: 21, Team2Score: 15},
			models.SetScore{Team1Score: 18, Team2Score: 21},
		),
	}

	result := Compute(teams, games)
	if len(result) != 2 {
		t.Fatalf("got %d standings, want 2", len(result))
	}

	alpha, beta := result[0], result[1]
	if alpha.Team != "Alpha" {
		t.Fatalf("first place = %s, want Alpha", alpha.Team)
	}
	if alpha.SetWins != 1 || beta.SetWins != 1 {
		t.Errorf("set wins = %d/%d, want 1/1", alpha.SetWins, beta.SetWins)
	}
	if alpha.PointDifferential != 3 || beta.PointDifferential != -3 {
		t.Errorf("differentials = %d/%d, want 3/-3", alpha.PointDifferential, beta.PointDifferential)
	}
	if alpha.GamesPlayed != 1 || beta.GamesPlayed != 1 {
		t.Errorf("games played = %d/%d, want 1/1", alpha.GamesPlayed, beta.GamesPlayed)
	}
}

func TestCompute_OrderIndependentAndIdempotent(t *testing.T) {
	teams := []*models.Team{
		team("Alpha", models.PoolA),
		team("Beta", models.PoolB),
		team("Gamma", models.PoolC),
	}
	g1 := completedGame("Alpha", "Beta",
		models.SetScore{Team1Score: 21, Team2Score: 10},
		models.SetScore{Team1Score: 21, Team2Score: 12},
	)
	g2 := completedGame("Beta", "Gamma",
		models.SetScore{Team1Score: 21, Team2Score: 19},
		models.SetScore{Team1Score: 17, Team2Score: 21},
	)

	first := Compute(teams, []*models.Game{g1, g2})
	reversed := Compute(teams, []*models.Game{g2, g1})
	again := Compute(teams, []*models.Game{g1, g2})

	for i := range first {
		if *first[i] != *reversed[i] {
			t.Errorf("rank %d differs with reordered games: %+v vs %+v", i, first[i], reversed[i])
		}
		if *first[i] != *again[i] {
			t.Errorf("rank %d differs on recompute: %+v vs %+v", i, first[i], again[i])
		}
	}
}

func TestCompute_IgnoresUnfinishedAndOrphanGames(t *testing.T) {
	teams := []*models.Team{team("Alpha", models.PoolA), team("Beta", models.PoolA)}

	inProgress := models.NewGame("Alpha_vs_Beta_t", "Alpha", "Beta", time.Now())
	inProgress.Sets[models.SetKey1] = models.SetScore{Team1Score: 11, Team2Score: 7}

	orphan := completedGame("Alpha", "Deleted",
		models.SetScore{Team1Score: 21, Team2Score: 0},
		models.SetScore{Team1Score: 21, Team2Score: 0},
	)

	result := Compute(teams, []*models.Game{inProgress, orphan})
	for _, s := range result {
		if s.GamesPlayed != 0 || s.SetWins != 0 || s.PointsFor != 0 {
			t.Errorf("standing for %s accumulated stats from ignored games: %+v", s.Team, s)
		}
	}
}

func TestCompute_TiedSetCountsForNeither(t *testing.T) {
	teams := []*models.Team{team("Alpha", models.PoolA), team("Beta", models.PoolA)}
	games := []*models.Game{
		completedGame("Alpha", "Beta",
			models.SetScore{Team1Score: 20, Team2Score: 20},
			models.SetScore{Team1Score: 21, Team2Score: 18},
		),
	}

	result := Compute(teams, games)
	alpha := result[0]
	if alpha.Team != "Alpha" {
		t.Fatalf("first place = %s, want Alpha", alpha.Team)
	}
	if alpha.SetWins != 1 || alpha.SetLosses != 0 {
		t.Errorf("Alpha sets = %d-%d, want 1-0", alpha.SetWins, alpha.SetLosses)
	}
	beta := result[1]
	if beta.SetWins != 0 || beta.SetLosses != 1 {
		t.Errorf("Beta sets = %d-%d, want 0-1", beta.SetWins, beta.SetLosses)
	}
	// Tied set points still count toward the differential.
	if alpha.PointsFor != 41 || alpha.PointsAgainst != 38 {
		t.Errorf("Alpha points = %d/%d, want 41/38", alpha.PointsFor, alpha.PointsAgainst)
	}
}

func TestCompute_NameTieBreak(t *testing.T) {
	teams := []*models.Team{team("Zulu", models.PoolA), team("Alpha", models.PoolB)}

	result := Compute(teams, nil)
	if result[0].Team != "Alpha" || result[1].Team != "Zulu" {
		t.Errorf("all-even order = [%s, %s], want alphabetical [Alpha, Zulu]", result[0].Team, result[1].Team)
	}
}
