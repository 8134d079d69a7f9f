package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gomecano/cv-matcher/internal/candidate"
)

func TestSaveAndLoadProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records", "jean.json")

	saved := &candidate.Profile{
		Name:            "Jean Dupont",
		City:            "Marseille",
		Skills:          []string{"engine", "utility-fleet"},
		ExperienceYears: 8,
		SourceFile:      "jean.pdf",
		SourceExcerpt:   "jean dupont automotive mechanic",
	}

	if err := SaveProfile(saved, path); err != nil {
		t.Fatalf("SaveProfile: %s", err)
	}

	loaded, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile: %s", err)
	}

	if !reflect.DeepEqual(loaded, saved) {
		t.Fatalf("loaded profile %+v, want %+v", loaded, saved)
	}
}

func TestLoadProfiles(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"Jean Dupont", "Marc Petit"} {
		profile := &candidate.Profile{Name: name, City: "Marseille"}
		path := filepath.Join(dir, name+".json")
		if err := SaveProfile(profile, path); err != nil {
			t.Fatalf("SaveProfile: %s", err)
		}
	}

	// Non-record files in the directory are skipped.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644); err != nil {
		t.Fatal(err)
	}

	profiles, err := LoadProfiles(dir)
	if err != nil {
		t.Fatalf("LoadProfiles: %s", err)
	}

	if profiles.Len() != 2 {
		t.Fatalf("Len = %d, want 2", profiles.Len())
	}
	if found := profiles.FindByName("Marc Petit"); found == nil {
		t.Fatal("expected Marc Petit among the loaded profiles")
	}
}

func TestLoadProfilesBadRecord(t *testing.T) {
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadProfiles(dir); err == nil {
		t.Fatal("expected an error for a malformed record")
	}
}

func TestLoadRequestDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "request.json")

	record := `{
  "mission_id": "M-42",
  "target_city": "Marseille",
  "required_skill": "engine"
}`
	if err := os.WriteFile(path, []byte(record), 0o644); err != nil {
		t.Fatal(err)
	}

	request, err := LoadRequest(path)
	if err != nil {
		t.Fatalf("LoadRequest: %s", err)
	}

	if request.MissionID != "M-42" {
		t.Fatalf("MissionID = %q, want %q", request.MissionID, "M-42")
	}
	if request.MinExperienceYears != candidate.DefaultMinExperienceYears {
		t.Fatalf("MinExperienceYears = %d, want the default %d",
			request.MinExperienceYears, candidate.DefaultMinExperienceYears)
	}
	if request.WeightCity != candidate.DefaultWeightCity {
		t.Fatalf("WeightCity = %g, want the default %g", request.WeightCity, float64(candidate.DefaultWeightCity))
	}
	if request.WeightSkill != candidate.DefaultWeightSkill {
		t.Fatalf("WeightSkill = %g, want the default %g", request.WeightSkill, float64(candidate.DefaultWeightSkill))
	}
	if request.WeightExperience != candidate.DefaultWeightExperience {
		t.Fatalf("WeightExperience = %g, want the default %g",
			request.WeightExperience, float64(candidate.DefaultWeightExperience))
	}
}

// An explicit zero in the record is a deliberate choice and must survive the
// per-key defaulting.
func TestLoadRequestExplicitZeroKept(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "request.json")

	record := `{
  "mission_id": "M-43",
  "target_city": "Aubagne",
  "required_skill": "braking",
  "weight_city": 0,
  "weight_skill": 60,
  "min_experience_years": 0
}`
	if err := os.WriteFile(path, []byte(record), 0o644); err != nil {
		t.Fatal(err)
	}

	request, err := LoadRequest(path)
	if err != nil {
		t.Fatalf("LoadRequest: %s", err)
	}

	if request.WeightCity != 0 {
		t.Fatalf("WeightCity = %g, want the explicit 0", request.WeightCity)
	}
	if request.WeightSkill != 60 {
		t.Fatalf("WeightSkill = %g, want 60", request.WeightSkill)
	}
	if request.MinExperienceYears != 0 {
		t.Fatalf("MinExperienceYears = %d, want the explicit 0", request.MinExperienceYears)
	}
	if request.WeightExperience != candidate.DefaultWeightExperience {
		t.Fatalf("WeightExperience = %g, want the default %g",
			request.WeightExperience, float64(candidate.DefaultWeightExperience))
	}
}

func TestLoadExcludeList(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "empty file means nothing excluded",
			content: "",
			want:    nil,
		},
		{
			name:    "json list",
			content: `["jean.pdf", "lea.txt"]`,
			want:    []string{"jean.pdf", "lea.txt"},
		},
		{
			name:    "empty json list",
			content: `[]`,
			want:    []string{},
		},
	}

	for i, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(dir, "exclude"+string(rune('a'+i))+".json")
			if err := os.WriteFile(path, []byte(c.content), 0o644); err != nil {
				t.Fatal(err)
			}

			got, err := LoadExcludeList(path)
			if err != nil {
				t.Fatalf("LoadExcludeList: %s", err)
			}
			if !reflect.DeepEqual(got, c.want) {
				t.Fatalf("LoadExcludeList = %#v, want %#v", got, c.want)
			}
		})
	}
}

func TestLoadExcludeListMissingFile(t *testing.T) {
	if _, err := LoadExcludeList(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected an error for a missing exclude file")
	}
}
