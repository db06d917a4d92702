package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksDatasetReadsAndFailures(t *testing.T) {
	rec := NewRecorder()
	rec.RecordDatasetRead("stadiums", 10*time.Millisecond, nil)
	rec.RecordDatasetRead("stadiums", 15*time.Millisecond, errors.New("boom"))

	snap := rec.Snapshot("stadiums")
	if snap.Reads != 2 {
		t.Fatalf("expected 2 reads, got %d", snap.Reads)
	}
	if snap.Failures != 1 {
		t.Fatalf("expected 1 failure, got %d", snap.Failures)
	}
	if snap.LastReadLatency != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", snap.LastReadLatency)
	}

	if other := rec.Snapshot("games"); other != (Snapshot{}) {
		t.Fatalf("expected untouched dataset to be empty, got %+v", other)
	}
}

func TestRecorderTracksImageRepairs(t *testing.T) {
	rec := NewRecorder()
	rec.RecordImageRepairs("stadiums", 2)
	rec.RecordImageRepairs("stadiums", 0)
	rec.RecordImageRepairs("stadiums", 1)

	if got := rec.Snapshot("stadiums").Repairs; got != 3 {
		t.Fatalf("expected 3 repairs, got %d", got)
	}
}

func TestRecorderTracksPlayersCreated(t *testing.T) {
	rec := NewRecorder()
	rec.RecordPlayerCreated()
	rec.RecordPlayerCreated()

	if got := rec.PlayersCreated(); got != 2 {
		t.Fatalf("expected 2 created players, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordDatasetRead("games", time.Millisecond, nil)
	rec.RecordImageRepairs("stadiums", 1)
	rec.RecordPlayerCreated()
	rec.RecordHTTPRequest("GET", "/games", 200, time.Millisecond)

	if rec.Snapshot("games") != (Snapshot{}) || rec.PlayersCreated() != 0 {
		t.Fatalf("expected zero values from nil recorder")
	}
}
