package service

import (
	"testing"

	"slate/internal/database/repository"
)

func TestSimilarity(t *testing.T) {
	cases := []struct {
		a, b string
		min  float64
	}{
		{"warehouse", "INT. WAREHOUSE - NIGHT", 0.8},
		{"kitchen", "kitchen", 1},
		{"kitchn", "kitchen", 0.7},
	}
	for _, c := range cases {
		if got := Similarity(c.a, c.b); got < c.min {
			t.Errorf("Similarity(%q, %q) = %v, want >= %v", c.a, c.b, got, c.min)
		}
	}
	if got := Similarity("rooftop", "basement"); got >= searchThreshold {
		t.Errorf("Similarity(rooftop, basement) = %v, want below threshold", got)
	}
	if got := Similarity("", "anything"); got != 0 {
		t.Errorf("empty query similarity = %v, want 0", got)
	}
}

func TestFilterScenes(t *testing.T) {
	synopsis := "A tense standoff over the stolen ledger."
	scenes := []repository.Scene{
		{ID: "1", Number: "1", Slugline: "INT. WAREHOUSE - NIGHT"},
		{ID: "2", Number: "2", Slugline: "EXT. ROOFTOP - DAY", Synopsis: &synopsis},
		{ID: "3", Number: "3", Slugline: "INT. DINER - DAY"},
	}

	got := FilterScenes(scenes, "warehouse")
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("FilterScenes(warehouse) = %v, want scene 1", got)
	}

	got = FilterScenes(scenes, "ledger")
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("FilterScenes(ledger) = %v, want scene 2 via synopsis", got)
	}

	if got := FilterScenes(scenes, ""); len(got) != 3 {
		t.Errorf("empty query returned %d scenes, want all 3", len(got))
	}
}

func TestFilterScenesRanksExactFirst(t *testing.T) {
	scenes := []repository.Scene{
		{ID: "fuzzy", Number: "10", Slugline: "INT. DINERS CLUB - DAY"},
		{ID: "exact", Number: "11", Slugline: "diner"},
	}
	got := FilterScenes(scenes, "diner")
	if len(got) < 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
	if got[0].ID != "exact" {
		t.Errorf("first result = %s, want exact", got[0].ID)
	}
}

func TestFilterElements(t *testing.T) {
	elements := []repository.Element{
		{ID: "1", Name: "Revolver"},
		{ID: "2", Name: "Leather Jacket"},
	}
	got := FilterElements(elements, "revolvr")
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("FilterElements(revolvr) = %v, want Revolver", got)
	}
}
