package segment

import "testing"

func TestSimple_SplitsOnTerminalPunctuation(t *testing.T) {
	got := Simple{}.Segment("Member States shall act. Operators must report! Is it binding? Yes")
	want := []string{
		"Member States shall act.",
		"Operators must report!",
		"Is it binding?",
		"Yes",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d sentences, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sentence[%d]: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSimple_NoBreakWithoutSpace(t *testing.T) {
	got := Simple{}.Segment("See point 1.2 of Annex I.")
	if len(got) != 1 {
		t.Fatalf("expected 1 sentence, got %q", got)
	}
}

func TestSimple_EmptyInput(t *testing.T) {
	if got := (Simple{}).Segment("   "); len(got) != 0 {
		t.Errorf("expected no sentences, got %q", got)
	}
}

func TestPunkt_Segments(t *testing.T) {
	p, err := NewPunkt()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := "The Commission shall publish the list. Member States must notify it without delay."
	got := p.Segment(text)
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %q", len(got), got)
	}
	if got[1] != "Member States must notify it without delay." {
		t.Errorf("unexpected second sentence %q", got[1])
	}

	again := p.Segment(text)
	for i := range got {
		if got[i] != again[i] {
			t.Errorf("segmentation not deterministic at %d: %q vs %q", i, got[i], again[i])
		}
	}
}

func TestByName(t *testing.T) {
	if _, err := ByName("simple"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := ByName("spacy"); err == nil {
		t.Error("expected error for unknown segmenter")
	}
}
