package stadiums

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/preston-bernstein/nba-stats-service/internal/dataset"
	"github.com/preston-bernstein/nba-stats-service/internal/domain"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/stadiums"
	"github.com/preston-bernstein/nba-stats-service/internal/logging"
	"github.com/preston-bernstein/nba-stats-service/internal/metrics"
	"github.com/preston-bernstein/nba-stats-service/internal/tracing"
	"github.com/preston-bernstein/nba-stats-service/internal/validate"
)

// Service serves the stadiums dataset after validating its shape and
// repairing image URLs that fall outside the allowed prefix.
type Service struct {
	source  dataset.Source
	images  validate.ImagePolicy
	metrics *metrics.Recorder
	logger  *slog.Logger
}

// NewService constructs a Service reading from source.
func NewService(source dataset.Source, images validate.ImagePolicy, recorder *metrics.Recorder, logger *slog.Logger) *Service {
	return &Service{
		source:  source,
		images:  images,
		metrics: recorder,
		logger:  logger,
	}
}

// List returns every stadium, or no data at all when any part of the
// collection is malformed.
func (s *Service) List(ctx context.Context) (items []stadiums.Stadium, err error) {
	ctx, span := tracing.Tracer().Start(ctx, "stadiums.List")
	start := time.Now()
	defer func() {
		s.metrics.RecordDatasetRead(string(dataset.Stadiums), time.Since(start), err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	raw, err := s.source.Read(ctx, dataset.Stadiums)
	if err != nil {
		return nil, fmt.Errorf("%w: read stadiums: %w", domain.ErrFetchFailed, err)
	}

	collection, err := validate.CollectionShape(raw, stadiums.CollectionField)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidationFailed, err)
	}

	var decoded []stadiums.Stadium
	if err := json.Unmarshal([]byte(collection.Raw), &decoded); err != nil {
		return nil, fmt.Errorf("%w: %w: decode stadiums: %v", domain.ErrValidationFailed, domain.ErrInvalidFormat, err)
	}

	items = make([]stadiums.Stadium, 0, len(decoded))
	repaired := 0
	for _, stadium := range decoded {
		if err := stadium.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrValidationFailed, err)
		}
		var changed bool
		stadium.ImageURL, changed = s.images.Apply(stadium.ImageURL)
		if changed {
			repaired++
		}
		items = append(items, stadium)
	}

	span.SetAttributes(
		attribute.Int(logging.FieldCount, len(items)),
		attribute.Int(logging.FieldRepaired, repaired),
	)
	if repaired > 0 {
		s.metrics.RecordImageRepairs(string(dataset.Stadiums), repaired)
		logging.Debug(logging.FromContext(ctx, s.logger), "replaced stadium image urls",
			logging.FieldDataset, string(dataset.Stadiums),
			logging.FieldRepaired, repaired,
		)
	}
	return items, nil
}
