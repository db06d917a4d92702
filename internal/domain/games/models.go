package games

import (
	"encoding/json"
	"slices"
	"strings"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/teams"
)

// Game is a final score as it appears in the bundled scores dataset.
// JSON keys follow the dataset so records are served verbatim.
type Game struct {
	ID           string `json:"id"`
	HomeTeamName string `json:"event_home_team"`
	HomeTeamLogo string `json:"event_home_team_logo"`
	AwayTeamName string `json:"event_away_team"`
	AwayTeamLogo string `json:"event_away_team_logo"`
	FinalResult  string `json:"event_final_result"`
	Date         string `json:"event_date"`

	// Extra holds dataset keys not modelled above; they are written back unchanged.
	Extra map[string]json.RawMessage `json:"-"`
}

var modelledKeys = []string{
	"id",
	"event_home_team",
	"event_home_team_logo",
	"event_away_team",
	"event_away_team_logo",
	"event_final_result",
	"event_date",
}

// UnmarshalJSON decodes the modelled fields and keeps every other key in Extra.
func (g *Game) UnmarshalJSON(data []byte) error {
	type plain Game
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for key := range all {
		if isModelled(key) {
			delete(all, key)
		}
	}
	if len(all) == 0 {
		all = nil
	}
	*g = Game(p)
	g.Extra = all
	return nil
}

// MarshalJSON writes the modelled fields merged over Extra.
func (g Game) MarshalJSON() ([]byte, error) {
	type plain Game
	known, err := json.Marshal(plain(g))
	if err != nil || len(g.Extra) == 0 {
		return known, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(known, &fields); err != nil {
		return nil, err
	}
	merged := make(map[string]json.RawMessage, len(g.Extra)+len(fields))
	for k, v := range g.Extra {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return json.Marshal(merged)
}

// Clone returns a copy that shares no memory with g.
func (g Game) Clone() Game {
	if g.Extra == nil {
		return g
	}
	extra := make(map[string]json.RawMessage, len(g.Extra))
	for k, v := range g.Extra {
		extra[k] = slices.Clone(v)
	}
	g.Extra = extra
	return g
}

// encoding/json matches struct keys case-insensitively, so Extra must too.
func isModelled(key string) bool {
	return slices.ContainsFunc(modelledKeys, func(k string) bool {
		return strings.EqualFold(k, key)
	})
}

// HomeTeam returns the home team reference.
func (g Game) HomeTeam() teams.Ref {
	return teams.Ref{Name: g.HomeTeamName, LogoURL: g.HomeTeamLogo}
}

// AwayTeam returns the away team reference.
func (g Game) AwayTeam() teams.Ref {
	return teams.Ref{Name: g.AwayTeamName, LogoURL: g.AwayTeamLogo}
}

// ScoresResponse is the payload returned by /games.
type ScoresResponse struct {
	Result []Game `json:"result"`
}

// NewScoresResponse builds a ScoresResponse payload; a nil slice is served as an empty list.
func NewScoresResponse(items []Game) ScoresResponse {
	if items == nil {
		items = []Game{}
	}
	return ScoresResponse{Result: items}
}
