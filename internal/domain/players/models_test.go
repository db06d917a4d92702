package players

import (
	"errors"
	"reflect"
	"testing"

	"github.com/preston-bernstein/nba-stats-service/internal/domain"
)

func TestPlayerJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	playerType := reflect.TypeOf(Player{})
	fields := []fieldCheck{
		{"ID", "id"},
		{"Name", "name"},
		{"Team", "team"},
		{"Position", "position"},
		{"Height", "height"},
		{"Weight", "weight"},
		{"BirthDate", "birthDate,omitempty"},
		{"Stats", "stats,omitempty"},
	}
	for _, fc := range fields {
		f, ok := playerType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestSummaryDropsInternalFields(t *testing.T) {
	p := Player{
		ID: 7, Name: "A", Team: "X", Position: "G", Height: "6 ft 3 in", Weight: "190 lbs",
		BirthDate: "1990-01-01", Stats: &Stats{PointsPerGame: 20},
	}
	want := Summary{ID: 7, Name: "A", Team: "X", Position: "G", Height: "6 ft 3 in", Weight: "190 lbs"}
	if got := p.Summary(); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if reflect.TypeOf(Summary{}).NumField() != 6 {
		t.Fatalf("expected summary to expose exactly six fields")
	}
}

func TestCloneDoesNotShareStats(t *testing.T) {
	p := Player{ID: 1, Stats: &Stats{PointsPerGame: 10}}
	c := p.Clone()
	c.Stats.PointsPerGame = 99
	if p.Stats.PointsPerGame != 10 {
		t.Fatalf("expected original stats untouched, got %v", p.Stats.PointsPerGame)
	}

	if (Player{}).Clone().Stats != nil {
		t.Fatalf("expected nil stats to stay nil")
	}
}

func TestNewPlayerValidate(t *testing.T) {
	cases := []struct {
		name  string
		input NewPlayer
		ok    bool
	}{
		{"complete", NewPlayer{Name: "A", Position: "G", Team: "X"}, true},
		{"missing name", NewPlayer{Position: "G", Team: "X"}, false},
		{"missing position", NewPlayer{Name: "A", Team: "X"}, false},
		{"missing team", NewPlayer{Name: "A", Position: "G"}, false},
		{"blank name", NewPlayer{Name: "   ", Position: "G", Team: "X"}, false},
		{"empty", NewPlayer{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.input.Validate()
			if tc.ok && err != nil {
				t.Fatalf("expected valid input, got %v", err)
			}
			if !tc.ok && !errors.Is(err, domain.ErrValidationFailed) {
				t.Fatalf("expected ErrValidationFailed, got %v", err)
			}
		})
	}
}
