package importer

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CatalogFile is the top-level YAML structure for catalog definition
// files: courses, prerequisite rules, and specialization tracks in one
// document.
type CatalogFile struct {
	Courses []CourseImport `yaml:"catalog"`
	Prereqs []PrereqImport `yaml:"prerequisites,omitempty"`
	Tracks  []TrackImport  `yaml:"tracks,omitempty"`
}

// CourseImport defines one catalog entry in the definition file.
type CourseImport struct {
	ID       string   `yaml:"id"`
	Title    string   `yaml:"title"`
	Credits  int      `yaml:"credits"`
	Level    int      `yaml:"level"`
	Capstone bool     `yaml:"capstone,omitempty"`
	Seasons  []string `yaml:"seasons"`
}

// PrereqImport defines one prerequisite rule. Terms is the uniform
// nested expression: every inner list is one term, and a multi-course
// term requires all of its members.
type PrereqImport struct {
	Course   string     `yaml:"course"`
	Kind     string     `yaml:"kind"`
	Terms    [][]string `yaml:"terms"`
	MinGrade string     `yaml:"min_grade,omitempty"`
}

// TrackImport defines one specialization track.
type TrackImport struct {
	ID     string        `yaml:"id"`
	Name   string        `yaml:"name"`
	Groups []GroupImport `yaml:"groups"`
}

// GroupImport defines one requirement group of a track.
type GroupImport struct {
	Key      string         `yaml:"key"`
	Kind     string         `yaml:"kind"`
	Need     int            `yaml:"need"`
	MinGrade string         `yaml:"min_grade,omitempty"`
	Options  []OptionImport `yaml:"options"`
}

// OptionImport is one requirement option: exactly one of Course (a
// single-course option) or Pair (two linked courses filling one slot)
// must be set.
type OptionImport struct {
	Course string   `yaml:"course,omitempty"`
	Pair   []string `yaml:"pair,omitempty,flow"`
}

// LoadCatalogFile reads and parses a catalog definition file.
func LoadCatalogFile(path string) (*CatalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	var f CatalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	return &f, nil
}

// TranscriptFile is the top-level JSON structure for transcript import:
// the materialized output of the upstream transcript-ingestion pipeline.
type TranscriptFile struct {
	Student     StudentImport      `json:"student"`
	TrackID     string             `json:"track_id,omitempty"`
	Completed   []CompletedImport  `json:"completed"`
	InProgress  []string           `json:"in_progress,omitempty"`
	Constraints *ConstraintsImport `json:"constraints,omitempty"`
}

// StudentImport identifies the student a transcript belongs to. An empty
// ID means a new student.
type StudentImport struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// CompletedImport is one transcript row.
type CompletedImport struct {
	CourseID string `json:"course_id"`
	Grade    string `json:"grade"`
	Term     string `json:"term"`
}

// ConstraintsImport carries the student's planning constraints; absent
// fields fall back to defaults during conversion.
type ConstraintsImport struct {
	StartTerm             string `json:"start_term"`
	MaxCreditsPerSemester int    `json:"max_credits_per_semester"`
	MaxSemesters          int    `json:"max_semesters"`
	SummerAllowed         bool   `json:"summer_allowed"`
}

// LoadTranscript reads and parses a transcript import file.
func LoadTranscript(path string) (*TranscriptFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading transcript file: %w", err)
	}
	var f TranscriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing transcript file: %w", err)
	}
	return &f, nil
}
