package metrics

import (
	"sync"
	"time"
)

type datasetStats struct {
	reads           int
	failures        int
	repairs         int
	lastReadLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about dataset reads and
// forwards them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu             sync.Mutex
	stats          map[string]*datasetStats
	playersCreated int
	otel           *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*datasetStats),
		otel:  otel,
	}
}

// RecordDatasetRead counts a read of the named dataset and stores its latency.
func (r *Recorder) RecordDatasetRead(dataset string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(dataset)
	stats.reads++
	stats.lastReadLatency = duration
	if err != nil {
		stats.failures++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordDatasetRead(dataset, duration, err)
	}
}

// RecordImageRepairs counts records whose image URL was replaced by the fallback.
func (r *Recorder) RecordImageRepairs(dataset string, n int) {
	if r == nil || n <= 0 {
		return
	}

	r.mu.Lock()
	r.ensureStatsLocked(dataset).repairs += n
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordImageRepairs(dataset, n)
	}
}

// RecordPlayerCreated counts an accepted create-player call.
func (r *Recorder) RecordPlayerCreated() {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.playersCreated++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPlayerCreated()
	}
}

// PlayersCreated returns the number of accepted create-player calls.
func (r *Recorder) PlayersCreated() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.playersCreated
}

// Snapshot is a copy of the current stats for a dataset.
type Snapshot struct {
	Reads           int
	Failures        int
	Repairs         int
	LastReadLatency time.Duration
}

// Snapshot returns a copy of the current stats for the dataset.
func (r *Recorder) Snapshot(dataset string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[dataset]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Reads:           stats.reads,
		Failures:        stats.failures,
		Repairs:         stats.repairs,
		LastReadLatency: stats.lastReadLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

func (r *Recorder) ensureStatsLocked(dataset string) *datasetStats {
	stats, ok := r.stats[dataset]
	if !ok {
		stats = &datasetStats{}
		r.stats[dataset] = stats
	}
	return stats
}
