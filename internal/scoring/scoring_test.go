package scoring

import (
	"strings"
	"testing"
)

func TestLevelForThresholds(t *testing.T) {
	cases := []struct {
		score int
		want  Tier
	}{
		{-3, TierBeginner},
		{0, TierBeginner},
		{4, TierBeginner},
		{5, TierIntermediate},
		{8, TierIntermediate},
		{9, TierExpert},
		{12, TierExpert},
		{100, TierExpert},
	}
	for _, tc := range cases {
		if got := LevelFor(tc.score); got != tc.want {
			t.Errorf("LevelFor(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestSummaryForUsesFirstNameOnly(t *testing.T) {
	got := SummaryFor("Tonttu Torvinen", TierExpert, 10)
	if !strings.Contains(got, "Tonttu") {
		t.Errorf("summary %q missing first name", got)
	}
	if strings.Contains(got, "Torvinen") {
		t.Errorf("summary %q should not contain last name", got)
	}
}

func TestSummaryForEmptyName(t *testing.T) {
	got := SummaryFor("", TierExpert, 10)
	if got == "" {
		t.Fatal("expected a non-empty summary for empty name")
	}
}

func TestSummaryForTierTemplates(t *testing.T) {
	expert := SummaryFor("Maija", TierExpert, 9)
	mid := SummaryFor("Maija", TierIntermediate, 6)
	beginner := SummaryFor("Maija", TierBeginner, 2)
	if expert == mid || mid == beginner || expert == beginner {
		t.Errorf("tier templates should differ: %q / %q / %q", expert, mid, beginner)
	}
	for _, s := range []string{expert, mid, beginner} {
		if !strings.HasPrefix(s, "Yhteenveto: ") {
			t.Errorf("summary %q missing prefix", s)
		}
	}
}

func TestFirstName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Tonttu Torvinen", "Tonttu"},
		{"Tonttu", "Tonttu"},
		{"  Tonttu   Torvinen ", "Tonttu"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := FirstName(tc.in); got != tc.want {
			t.Errorf("FirstName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
