package knowledge_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"porter-saathi/internal/knowledge"
)

func TestDefault(t *testing.T) {
	kb := knowledge.Default()

	tests := []struct {
		guide string
		steps int
		first string
	}{
		{knowledge.GuideContestChallan, 7, "Visit the traffic police website"},
		{knowledge.GuideDigilockerUpload, 7, "Open DigiLocker app or website"},
		{knowledge.GuideApplyInsurance, 6, "Contact your insurance provider"},
	}
	for _, tt := range tests {
		t.Run(tt.guide, func(t *testing.T) {
			steps, ok := kb.Guide(tt.guide)
			if !ok {
				t.Fatalf("guide %s missing", tt.guide)
			}
			if len(steps) != tt.steps {
				t.Errorf("expected %d steps, got %d", tt.steps, len(steps))
			}
			if steps[0] != tt.first {
				t.Errorf("unexpected first step %q", steps[0])
			}
		})
	}

	if kb.Phrase(knowledge.PhraseGreeting) == "" {
		t.Errorf("greeting phrase missing")
	}
	if len(kb.Commands()) != 6 {
		t.Errorf("expected 6 commands, got %d", len(kb.Commands()))
	}
	if _, ok := kb.Guide("nope"); ok {
		t.Errorf("unknown guide should not be found")
	}
}

func TestGuideReturnsCopy(t *testing.T) {
	kb := knowledge.Default()
	steps, _ := kb.Guide(knowledge.GuideApplyInsurance)
	steps[0] = "mutated"

	again, _ := kb.Guide(knowledge.GuideApplyInsurance)
	if again[0] == "mutated" {
		t.Errorf("Guide leaked internal slice")
	}
}

func TestParse(t *testing.T) {
	t.Run("overlay", func(t *testing.T) {
		kb, err := knowledge.Parse([]byte(`
phrases:
  greeting: "Ram Ram!"
guides:
  apply_insurance:
    - "Call the agent"
    - "Pay"
`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if kb.Phrase(knowledge.PhraseGreeting) != "Ram Ram!" {
			t.Errorf("greeting not overridden")
		}
		if kb.Phrase(knowledge.PhraseThanks) == "" {
			t.Errorf("thanks should keep default")
		}
		steps, _ := kb.Guide(knowledge.GuideApplyInsurance)
		if len(steps) != 2 || steps[1] != "Pay" {
			t.Errorf("unexpected steps %v", steps)
		}
		challan, _ := kb.Guide(knowledge.GuideContestChallan)
		if len(challan) != 7 {
			t.Errorf("challan guide should keep default")
		}
	})

	t.Run("empty guide rejected", func(t *testing.T) {
		_, err := knowledge.Parse([]byte("guides:\n  contest_challan: []\n"))
		if !errors.Is(err, knowledge.ErrEmptyGuide) {
			t.Errorf("expected ErrEmptyGuide, got %v", err)
		}
	})

	t.Run("bad yaml", func(t *testing.T) {
		if _, err := knowledge.Parse([]byte("guides: [")); err == nil {
			t.Errorf("expected parse error")
		}
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.yaml")
	if err := os.WriteFile(path, []byte("commands:\n  - \"Aaj kitna kamaya?\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	kb, err := knowledge.LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := kb.Commands(); len(got) != 1 || got[0] != "Aaj kitna kamaya?" {
		t.Errorf("unexpected commands %v", got)
	}

	if _, err := knowledge.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected error for missing file")
	}
}
