// Package optimize times an in-process sort so the latency of a CPU-bound
// request can be observed end to end.
package optimize

import (
	"context"
	"math/rand/v2"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/preston-bernstein/nba-stats-service/internal/tracing"
)

// DefaultSize is the number of values sorted when no size is configured.
const DefaultSize = 100000

// Service sorts a fresh slice of pseudo-random values per run.
type Service struct {
	size  int
	now   func() time.Time
	value func() int
}

// NewService constructs a Service sorting size values; non-positive sizes use DefaultSize.
func NewService(size int) *Service {
	if size <= 0 {
		size = DefaultSize
	}
	return &Service{
		size:  size,
		now:   time.Now,
		value: func() int { return rand.IntN(size) },
	}
}

// Run fills, sorts and times the slice, returning elapsed seconds.
func (s *Service) Run(ctx context.Context) float64 {
	_, span := tracing.Tracer().Start(ctx, "optimize.Run")
	defer span.End()

	start := s.now()
	values := make([]int, s.size)
	for i := range values {
		values[i] = s.value()
	}
	slices.Sort(values)
	elapsed := s.now().Sub(start).Seconds()

	span.SetAttributes(
		attribute.Int("size", s.size),
		attribute.Float64("elapsed_seconds", elapsed),
	)
	return elapsed
}

// Size reports how many values each run sorts.
func (s *Service) Size() int {
	return s.size
}
