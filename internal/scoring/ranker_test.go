package scoring

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/gomecano/cv-matcher/internal/candidate"
)

func testProfiles() *candidate.Profiles {
	return &candidate.Profiles{Items: []*candidate.Profile{
		{
			Name:            "Lea Martin",
			City:            "Paris",
			Skills:          []string{"tires"},
			ExperienceYears: 1,
			SourceFile:      "lea.txt",
		},
		{
			Name:            "Jean Dupont",
			City:            "Marseille",
			Skills:          []string{"engine", "utility-fleet"},
			ExperienceYears: 6,
			SourceFile:      "jean.pdf",
		},
		{
			Name:            "Marc Petit",
			City:            "Aubagne",
			Skills:          []string{"engine"},
			ExperienceYears: 4,
			SourceFile:      "marc.docx",
		},
	}}
}

func TestRank(t *testing.T) {
	ranking := New(nil).Rank(testProfiles(), testRequest())

	if ranking.Len() != 3 {
		t.Fatalf("Len = %d, want 3", ranking.Len())
	}

	wantOrder := []string{"Jean Dupont", "Marc Petit", "Lea Martin"}
	for i, want := range wantOrder {
		if got := ranking.Items[i].Name; got != want {
			t.Fatalf("rank #%d = %q, want %q", i+1, got, want)
		}
	}

	for i := 0; i < ranking.Len()-1; i++ {
		if ranking.Items[i].Score < ranking.Items[i+1].Score {
			t.Fatalf("ranking not descending at position %d: %g < %g",
				i, ranking.Items[i].Score, ranking.Items[i+1].Score)
		}
	}

	top := ranking.Top()
	if top == nil {
		t.Fatal("expected a top candidate")
	}
	if top.Score != 110 {
		t.Fatalf("top score = %g, want 110", top.Score)
	}
	if top.Verdict != VerdictRecommended {
		t.Fatalf("top verdict = %q, want %q", top.Verdict, VerdictRecommended)
	}
}

func TestRankStableOnEqualScores(t *testing.T) {
	twin := func(name, source string) *candidate.Profile {
		return &candidate.Profile{
			Name:            name,
			City:            "Marseille",
			Skills:          []string{"engine"},
			ExperienceYears: 5,
			SourceFile:      source,
		}
	}

	profiles := &candidate.Profiles{Items: []*candidate.Profile{
		twin("First Twin", "a.txt"),
		twin("Second Twin", "b.txt"),
		twin("Third Twin", "c.txt"),
	}}

	ranking := New(nil).Rank(profiles, testRequest())

	wantOrder := []string{"First Twin", "Second Twin", "Third Twin"}
	for i, want := range wantOrder {
		if got := ranking.Items[i].Name; got != want {
			t.Fatalf("equal scores must keep input order: rank #%d = %q, want %q", i+1, got, want)
		}
	}
}

func TestRankEmpty(t *testing.T) {
	ranking := New(nil).Rank(&candidate.Profiles{}, testRequest())

	if ranking.Len() != 0 {
		t.Fatalf("Len = %d, want 0", ranking.Len())
	}
	if ranking.Top() != nil {
		t.Fatal("Top on an empty ranking must be nil")
	}
}

func TestRankingReportByCity(t *testing.T) {
	ranking := New(nil).Rank(testProfiles(), testRequest())

	report := ranking.ReportByCity()
	if len(report) != 3 {
		t.Fatalf("report has %d cities, want 3", len(report))
	}

	marseille, ok := report["Marseille"]
	if !ok {
		t.Fatal("expected a Marseille group in the report")
	}
	if len(marseille) != 1 {
		t.Fatalf("Marseille group has %d entries, want 1", len(marseille))
	}
	if got := marseille[0]["name"]; got != "Jean Dupont" {
		t.Fatalf("name = %q, want %q", got, "Jean Dupont")
	}
	if got := marseille[0]["experience"]; got != "6 years" {
		t.Fatalf("experience = %q, want %q", got, "6 years")
	}
}

func TestRankingDumpToTmpFile(t *testing.T) {
	ranking := New(nil).Rank(testProfiles(), testRequest())

	filename, err := ranking.DumpToTmpFile()
	if err != nil {
		t.Fatalf("DumpToTmpFile: %s", err)
	}
	defer os.Remove(filename)

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("reading dump: %s", err)
	}

	var decoded Ranking
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decoding dump: %s", err)
	}
	if decoded.Len() != ranking.Len() {
		t.Fatalf("dump has %d candidates, want %d", decoded.Len(), ranking.Len())
	}
}
