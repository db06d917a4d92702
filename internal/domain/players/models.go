package players

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/nba-stats-service/internal/domain"
)

// Defaults applied to players created through the API.
const (
	DefaultHeight = "6 ft 0 in"
	DefaultWeight = "180 lbs"
)

// Player is the full record held in the players collection.
type Player struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Team      string `json:"team"`
	Position  string `json:"position"`
	Height    string `json:"height"`
	Weight    string `json:"weight"`
	BirthDate string `json:"birthDate,omitempty"`
	Stats     *Stats `json:"stats,omitempty"`
}

// Stats holds per-game averages.
type Stats struct {
	PointsPerGame   float64 `json:"pointsPerGame"`
	AssistsPerGame  float64 `json:"assistsPerGame"`
	ReboundsPerGame float64 `json:"reboundsPerGame"`
}

// Summary is the public projection of a Player served by GET /players.
type Summary struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Team     string `json:"team"`
	Position string `json:"position"`
	Height   string `json:"height"`
	Weight   string `json:"weight"`
}

// Summary projects the player onto its public fields.
func (p Player) Summary() Summary {
	return Summary{
		ID:       p.ID,
		Name:     p.Name,
		Team:     p.Team,
		Position: p.Position,
		Height:   p.Height,
		Weight:   p.Weight,
	}
}

// Clone returns a copy that shares no pointers with p.
func (p Player) Clone() Player {
	if p.Stats != nil {
		stats := *p.Stats
		p.Stats = &stats
	}
	return p
}

// NewPlayer is the input accepted by the create operation.
type NewPlayer struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Team     string `json:"team"`
}

// Validate reports ErrValidationFailed when a required field is empty or blank.
func (n NewPlayer) Validate() error {
	var missing []string
	if strings.TrimSpace(n.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(n.Position) == "" {
		missing = append(missing, "position")
	}
	if strings.TrimSpace(n.Team) == "" {
		missing = append(missing, "team")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", domain.ErrValidationFailed, strings.Join(missing, ", "))
	}
	return nil
}

// Created is the result of a successful create: the new record plus the updated collection.
type Created struct {
	Message string   `json:"message"`
	Player  Player   `json:"player"`
	Players []Player `json:"players"`
}
