package players

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/preston-bernstein/nba-stats-service/internal/domain"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-service/internal/logging"
	"github.com/preston-bernstein/nba-stats-service/internal/metrics"
	"github.com/preston-bernstein/nba-stats-service/internal/timeutil"
	"github.com/preston-bernstein/nba-stats-service/internal/tracing"
)

// CreatedMessage is returned alongside every accepted create.
const CreatedMessage = "Player created successfully"

// Store defines the contract for reading and appending players.
type Store interface {
	ListPlayers() []players.Player
	AppendPlayer(build func(id int) players.Player) (players.Player, []players.Player)
}

// Service coordinates player operations using a Store.
type Service struct {
	store   Store
	metrics *metrics.Recorder
	logger  *slog.Logger
	now     func() time.Time
}

// NewService constructs a Service with the provided Store.
func NewService(store Store, recorder *metrics.Recorder, logger *slog.Logger) *Service {
	return &Service{
		store:   store,
		metrics: recorder,
		logger:  logger,
		now:     time.Now,
	}
}

// List returns the public projection of every player in insertion order.
func (s *Service) List(ctx context.Context) ([]players.Summary, error) {
	_, span := tracing.Tracer().Start(ctx, "players.List")
	defer span.End()

	items := s.store.ListPlayers()
	span.SetAttributes(attribute.Int(logging.FieldCount, len(items)))
	if len(items) == 0 {
		return nil, fmt.Errorf("list players: %w", domain.ErrNoData)
	}

	result := make([]players.Summary, 0, len(items))
	for _, p := range items {
		result = append(result, p.Summary())
	}
	return result, nil
}

// Create validates input and appends a player with defaulted physical
// attributes, zeroed stats and today's birth date.
func (s *Service) Create(ctx context.Context, input players.NewPlayer) (players.Created, error) {
	ctx, span := tracing.Tracer().Start(ctx, "players.Create")
	defer span.End()

	if err := input.Validate(); err != nil {
		return players.Created{}, err
	}

	birthDate := timeutil.FormatDate(s.now().UTC())
	created, all := s.store.AppendPlayer(func(id int) players.Player {
		return players.Player{
			ID:        id,
			Name:      strings.TrimSpace(input.Name),
			Team:      strings.TrimSpace(input.Team),
			Position:  strings.TrimSpace(input.Position),
			Height:    players.DefaultHeight,
			Weight:    players.DefaultWeight,
			BirthDate: birthDate,
			Stats:     &players.Stats{},
		}
	})
	span.SetAttributes(attribute.Int(logging.FieldPlayerID, created.ID))
	s.metrics.RecordPlayerCreated()

	logger := logging.FromContext(ctx, s.logger)
	logging.Info(logger, "player created",
		logging.FieldPlayerID, created.ID,
		logging.FieldCount, len(all),
	)

	return players.Created{
		Message: CreatedMessage,
		Player:  created,
		Players: all,
	}, nil
}
