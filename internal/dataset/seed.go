package dataset

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
)

// LoadPlayers decodes the seed players dataset used to initialise the player collection.
func LoadPlayers(ctx context.Context, src Source) ([]players.Player, error) {
	raw, err := src.Read(ctx, Players)
	if err != nil {
		return nil, fmt.Errorf("read players seed: %w", err)
	}
	var items []players.Player
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode players seed: %w", err)
	}
	for i, p := range items {
		if p.ID != i+1 {
			return nil, fmt.Errorf("players seed: entry %d has id %d, want %d", i, p.ID, i+1)
		}
	}
	return items, nil
}
