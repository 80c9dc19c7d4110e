package analytics

import "testing"

func TestClassifyConfidence(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
		want ConfidenceLevel
	}{
		{"check symbol", "Done ✅ and shipped", ConfidenceHigh},
		{"high keyword case-insensitive", "We have HIGH CONFIDENCE here", ConfidenceHigh},
		{"question symbol", "Still unclear ❓", ConfidenceLow},
		{"low keyword", "low confidence in the migration", ConfidenceLow},
		{"warning symbol", "⚠️ needs review", ConfidenceMedium},
		{"medium keyword", "Medium Confidence overall", ConfidenceMedium},
		{"no markers", "nothing to see", ConfidenceUnknown},
		{"empty body", "", ConfidenceUnknown},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ClassifyConfidence(tc.body); got != tc.want {
				t.Fatalf("ClassifyConfidence(%q)=%q, want %q", tc.body, got, tc.want)
			}
		})
	}
}

func TestClassifyConfidence_PrecedenceHighBeatsLow(t *testing.T) {
	t.Parallel()

	// Rule order is a contract: the high rule runs first, so a body carrying
	// both markers classifies as high.
	if got := ClassifyConfidence("✅ done but ❓ unclear"); got != ConfidenceHigh {
		t.Fatalf("got %q, want high", got)
	}
	if got := ClassifyConfidence("high confidence, low confidence"); got != ConfidenceHigh {
		t.Fatalf("got %q, want high", got)
	}
	// Low beats medium for the same reason.
	if got := ClassifyConfidence("❓ and ⚠️ both present"); got != ConfidenceLow {
		t.Fatalf("got %q, want low", got)
	}
}

func TestExtractConfidenceLevels_LabelsEverySection(t *testing.T) {
	t.Parallel()

	sections := NewSectionMap()
	sections.Set("A", "✅ fine")
	sections.Set("B", "plain text")

	levels := ExtractConfidenceLevels(sections)
	if len(levels) != 2 {
		t.Fatalf("len=%d, want 2", len(levels))
	}
	if levels["A"] != ConfidenceHigh || levels["B"] != ConfidenceUnknown {
		t.Fatalf("levels=%v", levels)
	}
}
