package core

import "testing"

func TestPickerFilterAndCursor(t *testing.T) {
	p := NewPicker("scenes", []PickerItem{
		{ID: "1", Label: "INT. WAREHOUSE - NIGHT"},
		{ID: "2", Label: "EXT. ROOFTOP - DAY"},
	})
	_ = p.HandleKey("r")
	_ = p.HandleKey("o")
	_ = p.HandleKey("o")
	items := p.Items()
	if len(items) == 0 {
		t.Fatalf("filter dropped everything")
	}
	if items[0].ID != "2" {
		t.Fatalf("best match = %s, want rooftop", items[0].ID)
	}
	res := p.HandleKey("enter")
	if res.Action != PickerActionSelected || res.Item.ID != "2" {
		t.Fatalf("result = %+v", res)
	}
}

func TestPickerEscCancels(t *testing.T) {
	p := NewPicker("x", []PickerItem{{ID: "1", Label: "One"}})
	if res := p.HandleKey("esc"); res.Action != PickerActionCancelled {
		t.Fatalf("action = %v, want cancelled", res.Action)
	}
}

func TestPickerBackspaceRestoresItems(t *testing.T) {
	p := NewPicker("x", []PickerItem{{ID: "1", Label: "One"}, {ID: "2", Label: "Two"}})
	_ = p.HandleKey("z")
	if len(p.Items()) != 0 {
		t.Fatalf("expected no matches for z")
	}
	_ = p.HandleKey("backspace")
	if len(p.Items()) != 2 {
		t.Fatalf("expected all items restored, got %d", len(p.Items()))
	}
}

func TestFuzzyMatchScorePrefersPrefixAndRuns(t *testing.T) {
	okPrefix, prefix := fuzzyMatchScore("schedule", "sch")
	okScattered, scattered := fuzzyMatchScore("storyboard sketch", "sch")
	if !okPrefix || !okScattered {
		t.Fatalf("both should match")
	}
	if prefix <= scattered {
		t.Fatalf("prefix score %d should beat scattered %d", prefix, scattered)
	}
}
