package games

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/preston-bernstein/nba-stats-service/internal/dataset"
	"github.com/preston-bernstein/nba-stats-service/internal/domain"
	domaingames "github.com/preston-bernstein/nba-stats-service/internal/domain/games"
	"github.com/preston-bernstein/nba-stats-service/internal/logging"
	"github.com/preston-bernstein/nba-stats-service/internal/metrics"
	"github.com/preston-bernstein/nba-stats-service/internal/tracing"
)

// Service serves the bundled scores dataset.
type Service struct {
	source  dataset.Source
	metrics *metrics.Recorder
}

// NewService constructs a Service reading from source.
func NewService(source dataset.Source, recorder *metrics.Recorder) *Service {
	return &Service{source: source, metrics: recorder}
}

// List returns the scores dataset as stored.
func (s *Service) List(ctx context.Context) (items []domaingames.Game, err error) {
	ctx, span := tracing.Tracer().Start(ctx, "games.List")
	start := time.Now()
	defer func() {
		s.metrics.RecordDatasetRead(string(dataset.Games), time.Since(start), err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	raw, err := s.source.Read(ctx, dataset.Games)
	if err != nil {
		return nil, fmt.Errorf("%w: read games: %w", domain.ErrFetchFailed, err)
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: decode games: %w", domain.ErrFetchFailed, err)
	}
	if items == nil {
		items = []domaingames.Game{}
	}

	span.SetAttributes(attribute.Int(logging.FieldCount, len(items)))
	return items, nil
}
