package stadiums

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/nba-stats-service/internal/domain"
)

// CollectionField is the top-level key holding the stadium list in the dataset and the response.
const CollectionField = "stadiums"

// Stadium describes an arena and the team that plays in it.
type Stadium struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Team     string `json:"team"`
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
	Opened   int    `json:"opened"`
	ImageURL string `json:"imageUrl"`
}

// Validate checks the record-level invariants a served stadium must hold.
func (s Stadium) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: stadium %d has no name", domain.ErrInvalidFormat, s.ID)
	}
	if s.Capacity <= 0 {
		return fmt.Errorf("%w: stadium %d has non-positive capacity %d", domain.ErrInvalidFormat, s.ID, s.Capacity)
	}
	return nil
}

// Response is the payload returned by /stadiums.
type Response struct {
	Stadiums []Stadium `json:"stadiums"`
}

// NewResponse builds a Response; a nil slice is served as an empty list.
func NewResponse(items []Stadium) Response {
	if items == nil {
		items = []Stadium{}
	}
	return Response{Stadiums: items}
}
