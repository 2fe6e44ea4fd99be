package llm

import "testing"

func TestDecodeJSONStripsFences(t *testing.T) {
	text := "```json\n{\"elements\":[{\"name\":\"Revolver\",\"category\":\"Props\",\"quantity\":1}],\"confidence\":0.9}\n```"
	var out BreakdownResponse
	if err := decodeJSON(text, &out); err != nil {
		t.Fatalf("decodeJSON: %v", err)
	}
	if len(out.Elements) != 1 || out.Elements[0].Name != "Revolver" {
		t.Fatalf("elements = %+v, want one Revolver", out.Elements)
	}
	if out.Confidence != 0.9 {
		t.Errorf("confidence = %v, want 0.9", out.Confidence)
	}
}

func TestDecodeJSONPlain(t *testing.T) {
	var out SynopsisResponse
	if err := decodeJSON(`{"synopsis":"Night chase across the rooftop."}`, &out); err != nil {
		t.Fatalf("decodeJSON: %v", err)
	}
	if out.Synopsis == "" {
		t.Fatal("synopsis empty")
	}
}

func TestClamp01(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{-0.5, 0},
		{0.3, 0.3},
		{1.7, 1},
	}
	for _, c := range cases {
		if got := clamp01(c.in); got != c.want {
			t.Errorf("clamp01(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
