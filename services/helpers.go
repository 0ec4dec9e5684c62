package services

import (
	"github.com/kijvolley/tournament-tracker/live"
	"github.com/kijvolley/tournament-tracker/models"
	"github.com/kijvolley/tournament-tracker/storage"
)

// Broadcaster is the slice of the live hub the services need. Satisfied by
// *live.Hub; tests substitute a recording fake.
type Broadcaster interface {
	BroadcastEvent(event interface{})
}

func teamCollection(teams []*models.Team, uploader storage.FileUploader) live.TeamCollection {
	collection := make(live.TeamCollection, len(teams))
	for _, team := range teams {
		populateTeamLogoURL(team, uploader)
		collection[team.Name] = team
	}
	return collection
}

func gameCollection(games []*models.Game) live.GameCollection {
	collection := make(live.GameCollection, len(games))
	for _, game := range games {
		collection[game.Key] = game
	}
	return collection
}

func populateTeamLogoURL(team *models.Team, uploader storage.FileUploader) {
	if team.LogoKey == nil || uploader == nil {
		return
	}
	url := uploader.GetPublicURL(*team.LogoKey)
	if url != "" {
		team.LogoURL = &url
	}
}
