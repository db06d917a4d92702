package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/preston-bernstein/nba-stats-service/internal/client"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
)

const defaultBaseURL = "http://localhost:4000"

// Command names accepted as the first positional argument.
const (
	cmdPlayers   = "players"
	cmdStadiums  = "stadiums"
	cmdScores    = "scores"
	cmdAddPlayer = "add-player"
	cmdOptimize  = "optimize"
)

// Config holds CLI configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Command string
	Player  players.NewPlayer
}

// EnvLookup returns the value for a key when present.
type EnvLookup func(string) (string, bool)

// ParseConfig parses flags and the command name into a Config.
func ParseConfig(fs *flag.FlagSet, args []string, lookup EnvLookup) (Config, error) {
	cfg := Config{BaseURL: defaultBaseURL}
	if lookup != nil {
		if v, ok := lookup("PUBLIC_BASE_URL"); ok && v != "" {
			cfg.BaseURL = v
		}
	}

	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "stats service base URL")
	fs.DurationVar(&cfg.Timeout, "timeout", 10*time.Second, "request timeout")
	fs.StringVar(&cfg.Player.Name, "name", "", "player name (add-player)")
	fs.StringVar(&cfg.Player.Position, "position", "", "player position (add-player)")
	fs.StringVar(&cfg.Player.Team, "team", "", "player team (add-player)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return Config{}, errors.New("usage: nbastats [flags] players|stadiums|scores|add-player|optimize")
	}
	cfg.Command = rest[0]
	if len(rest) > 1 {
		if err := fs.Parse(rest[1:]); err != nil {
			return Config{}, err
		}
	}
	switch cfg.Command {
	case cmdPlayers, cmdStadiums, cmdScores, cmdAddPlayer, cmdOptimize:
	default:
		return Config{}, fmt.Errorf("unknown command %q", cfg.Command)
	}
	return cfg, nil
}

// Run executes the configured command and renders the result to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	c := client.New(client.Config{BaseURL: cfg.BaseURL})

	switch cfg.Command {
	case cmdPlayers:
		items, err := c.Players(ctx)
		if err != nil {
			return err
		}
		return renderPlayers(out, items)
	case cmdStadiums:
		items, err := c.Stadiums(ctx)
		if err != nil {
			return err
		}
		return renderStadiums(out, items)
	case cmdScores:
		items, err := c.Games(ctx)
		if err != nil {
			return err
		}
		return renderScores(out, items)
	case cmdAddPlayer:
		created, err := c.CreatePlayer(ctx, cfg.Player)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: #%d %s (%s, %s)\n", created.Message, created.Player.ID, created.Player.Name, created.Player.Position, created.Player.Team)
		return nil
	case cmdOptimize:
		seconds, err := c.Optimize(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "sorted in %.4fs\n", seconds)
		return nil
	default:
		return fmt.Errorf("unknown command %q", cfg.Command)
	}
}
