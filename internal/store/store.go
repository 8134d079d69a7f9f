// Package store persists candidate profiles and staffing requests as plain
// JSON records. Records are decoded through their json field tags, so any
// self-describing document written by another tool round-trips as long as
// the field names match.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/gomecano/cv-matcher/internal/candidate"
)

// SaveProfile writes a profile as an indented JSON record, creating the
// parent directory when needed.
func SaveProfile(profile *candidate.Profile, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(profile); err != nil {
		return err
	}

	return nil
}

// LoadProfiles reads every *.json profile record in dir, in directory order.
func LoadProfiles(dir string) (*candidate.Profiles, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	profiles := &candidate.Profiles{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".json") {
			continue
		}

		profile, err := LoadProfile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		profiles.Items = append(profiles.Items, profile)
	}

	return profiles, nil
}

// LoadProfile reads a single profile record.
func LoadProfile(path string) (*candidate.Profile, error) {
	record, err := readRecord(path)
	if err != nil {
		return nil, err
	}

	var profile candidate.Profile
	if err := decode(record, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// LoadRequest reads a staffing request record, applying the standard default
// for every absent key. An explicit zero in the record is kept as-is.
func LoadRequest(path string) (*candidate.Request, error) {
	record, err := readRecord(path)
	if err != nil {
		return nil, err
	}

	var request candidate.Request
	if err := decode(record, &request); err != nil {
		return nil, err
	}

	if _, ok := record["min_experience_years"]; !ok {
		request.MinExperienceYears = candidate.DefaultMinExperienceYears
	}
	if _, ok := record["weight_city"]; !ok {
		request.WeightCity = candidate.DefaultWeightCity
	}
	if _, ok := record["weight_skill"]; !ok {
		request.WeightSkill = candidate.DefaultWeightSkill
	}
	if _, ok := record["weight_experience"]; !ok {
		request.WeightExperience = candidate.DefaultWeightExperience
	}

	return &request, nil
}

// LoadExcludeList reads the JSON list of source files to exclude from
// ranking. An empty file yields an empty list.
func LoadExcludeList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if stat.Size() == 0 {
		return nil, nil
	}

	var excluded []string
	if err := json.NewDecoder(file).Decode(&excluded); err != nil {
		return nil, err
	}

	return excluded, nil
}

func readRecord(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}

	return record, nil
}

// decode maps a generic JSON record onto a struct through its json tags.
func decode(record map[string]any, target any) error {
	cfg := &mapstructure.DecoderConfig{
		Metadata: nil,
		Result:   target,
		TagName:  "json",
	}

	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}

	return decoder.Decode(record)
}
