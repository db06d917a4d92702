package testutil

import (
	"github.com/preston-bernstein/nba-stats-service/internal/domain/games"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/stadiums"
)

// SamplePlayer returns a complete player fixture with the provided id.
func SamplePlayer(id int) players.Player {
	return players.Player{
		ID:        id,
		Name:      "Sample Player",
		Team:      "Sample Team",
		Position:  "Guard",
		Height:    "6 ft 3 in",
		Weight:    "190 lbs",
		BirthDate: "1995-05-05",
		Stats:     &players.Stats{PointsPerGame: 20.1, AssistsPerGame: 5.2, ReboundsPerGame: 4.3},
	}
}

// SamplePlayers returns n sequentially numbered player fixtures.
func SamplePlayers(n int) []players.Player {
	items := make([]players.Player, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, SamplePlayer(i))
	}
	return items
}

// SampleGame returns a minimal game fixture with the provided id.
func SampleGame(id string) games.Game {
	return games.Game{
		ID:           id,
		HomeTeamName: "Home Team",
		AwayTeamName: "Away Team",
		FinalResult:  "100 - 99",
		Date:         "2024-01-01",
	}
}

// SampleStadium returns a valid stadium fixture with the provided id and image.
func SampleStadium(id int, imageURL string) stadiums.Stadium {
	return stadiums.Stadium{
		ID:       id,
		Name:     "Sample Arena",
		Team:     "Sample Team",
		Location: "Springfield",
		Capacity: 18000,
		Opened:   2001,
		ImageURL: imageURL,
	}
}
