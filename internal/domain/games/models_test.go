package games

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestGameJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}

	gameType := reflect.TypeOf(Game{})
	fields := []fieldCheck{
		{"ID", "id"},
		{"HomeTeamName", "event_home_team"},
		{"HomeTeamLogo", "event_home_team_logo"},
		{"AwayTeamName", "event_away_team"},
		{"AwayTeamLogo", "event_away_team_logo"},
		{"FinalResult", "event_final_result"},
		{"Date", "event_date"},
	}

	for _, fc := range fields {
		field, ok := gameType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if jsonTag := field.Tag.Get("json"); jsonTag != fc.tag {
			t.Fatalf("field %s expected json tag %s, got %s", fc.name, fc.tag, jsonTag)
		}
	}
}

func TestGameTeamRefs(t *testing.T) {
	g := Game{
		HomeTeamName: "Boston Celtics",
		HomeTeamLogo: "https://example.com/bos.png",
		AwayTeamName: "Miami Heat",
	}
	if home := g.HomeTeam(); home.Name != "Boston Celtics" || home.LogoURL != "https://example.com/bos.png" {
		t.Fatalf("unexpected home team %+v", home)
	}
	if away := g.AwayTeam(); away.Name != "Miami Heat" || away.LogoURL != "" {
		t.Fatalf("unexpected away team %+v", away)
	}
}

func TestNewScoresResponseNeverNull(t *testing.T) {
	body, err := json.Marshal(NewScoresResponse(nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(body) != `{"result":[]}` {
		t.Fatalf("expected empty result list, got %s", body)
	}
}

func TestGameKeepsUnmodelledKeys(t *testing.T) {
	raw := `{"id":"g1","event_date":"2025-03-10","event_status":"Finished","venue":{"city":"Boston"}}`

	var g Game
	if err := json.Unmarshal([]byte(raw), &g); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if g.ID != "g1" || g.Date != "2025-03-10" {
		t.Fatalf("unexpected modelled fields %+v", g)
	}
	if len(g.Extra) != 2 || string(g.Extra["event_status"]) != `"Finished"` {
		t.Fatalf("expected unmodelled keys kept, got %v", g.Extra)
	}

	out, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if got["event_status"] != "Finished" || got["id"] != "g1" {
		t.Fatalf("expected extra and modelled keys in output, got %v", got)
	}
	venue, ok := got["venue"].(map[string]any)
	if !ok || venue["city"] != "Boston" {
		t.Fatalf("expected nested extra preserved, got %v", got["venue"])
	}
}

func TestGameModelledFieldsWinOverExtra(t *testing.T) {
	var g Game
	if err := json.Unmarshal([]byte(`{"ID":"g1","note":"x"}`), &g); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := g.Extra["ID"]; ok {
		t.Fatalf("expected case-folded modelled key to stay out of Extra")
	}
	g.FinalResult = "100 - 99"

	out, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if got["event_final_result"] != "100 - 99" || got["note"] != "x" || got["id"] != "g1" {
		t.Fatalf("unexpected output %v", got)
	}
}

func TestGameCloneCopiesExtra(t *testing.T) {
	g := Game{ID: "g1", Extra: map[string]json.RawMessage{"note": json.RawMessage(`"x"`)}}
	c := g.Clone()
	c.Extra["note"][1] = 'y'
	c.Extra["other"] = json.RawMessage(`1`)

	if string(g.Extra["note"]) != `"x"` || len(g.Extra) != 1 {
		t.Fatalf("expected original extra untouched, got %v", g.Extra)
	}
}
