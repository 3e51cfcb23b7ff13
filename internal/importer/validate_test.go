package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCatalogFile() *CatalogFile {
	return &CatalogFile{
		Courses: []CourseImport{
			{ID: "CS18000", Title: "Intro", Credits: 4, Level: 100, Seasons: []string{"fall", "spring"}},
			{ID: "CS18200", Title: "Foundations", Credits: 3, Level: 100, Seasons: []string{"spring"}},
		},
		Prereqs: []PrereqImport{
			{Course: "CS18200", Kind: "allof", Terms: [][]string{{"CS18000"}}},
		},
		Tracks: []TrackImport{
			{ID: "mi", Name: "Machine Intelligence", Groups: []GroupImport{
				{Key: "core", Kind: "required", Need: 1, Options: []OptionImport{{Course: "CS18000"}}},
			}},
		},
	}
}

func TestValidateCatalogFile_Valid(t *testing.T) {
	errs := ValidateCatalogFile(validCatalogFile())
	assert.Empty(t, errs)
}

func TestValidateCatalogFile_CollectsAllErrors(t *testing.T) {
	f := validCatalogFile()
	f.Courses[0].Title = ""
	f.Courses[1].Credits = 0
	f.Prereqs[0].Kind = "anyof"

	errs := ValidateCatalogFile(f)
	require.Len(t, errs, 3)
	assert.Contains(t, errs[0].Error(), "title is required")
	assert.Contains(t, errs[1].Error(), "credits must be positive")
	assert.Contains(t, errs[2].Error(), "invalid kind")
}

func TestValidateCatalogFile_CourseErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CatalogFile)
		wantMsg string
	}{
		{"bad id", func(f *CatalogFile) { f.Courses[0].ID = "18000" }, "invalid course id"},
		{"duplicate id", func(f *CatalogFile) { f.Courses[1].ID = "CS18000" }, "duplicate course id"},
		{"bad level", func(f *CatalogFile) { f.Courses[0].Level = 150 }, "multiple of 100"},
		{"no seasons", func(f *CatalogFile) { f.Courses[0].Seasons = nil }, "at least one season"},
		{"bad season", func(f *CatalogFile) { f.Courses[0].Seasons = []string{"winter"} }, "invalid season"},
		{"empty catalog", func(f *CatalogFile) { f.Courses = nil }, "at least one course"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validCatalogFile()
			tt.mutate(f)
			errs := ValidateCatalogFile(f)
			require.NotEmpty(t, errs)
			assert.Contains(t, errs[0].Error(), tt.wantMsg)
		})
	}
}

func TestValidateCatalogFile_GroupErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GroupImport)
		wantMsg string
	}{
		{"zero need", func(g *GroupImport) { g.Need = 0 }, "need must be at least 1"},
		{"no options", func(g *GroupImport) { g.Options = nil }, "at least one option"},
		{"need exceeds options", func(g *GroupImport) { g.Need = 5 }, "exceeds"},
		{"bad kind", func(g *GroupImport) { g.Kind = "optional" }, "invalid kind"},
		{"bad min grade", func(g *GroupImport) { g.MinGrade = "E" }, "unknown grade"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validCatalogFile()
			tt.mutate(&f.Tracks[0].Groups[0])
			errs := ValidateCatalogFile(f)
			require.NotEmpty(t, errs)
			assert.Contains(t, errs[0].Error(), tt.wantMsg)
		})
	}
}

func TestValidateCatalogFile_OptionErrors(t *testing.T) {
	tests := []struct {
		name    string
		opt     OptionImport
		wantMsg string
	}{
		{"empty option", OptionImport{}, "either course or pair"},
		{"both set", OptionImport{Course: "CS18000", Pair: []string{"CS18000", "CS18200"}}, "mutually exclusive"},
		{"short pair", OptionImport{Pair: []string{"CS18000"}}, "exactly two"},
		{"same member twice", OptionImport{Pair: []string{"CS18000", "CS18000"}}, "distinct"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validCatalogFile()
			f.Tracks[0].Groups[0].Options = []OptionImport{tt.opt}
			f.Tracks[0].Groups[0].Need = 1
			errs := ValidateCatalogFile(f)
			require.NotEmpty(t, errs)
			assert.Contains(t, errs[0].Error(), tt.wantMsg)
		})
	}
}

func validTranscript() *TranscriptFile {
	return &TranscriptFile{
		Student: StudentImport{Name: "Ada Lovelace"},
		TrackID: "mi",
		Completed: []CompletedImport{
			{CourseID: "CS18000", Grade: "A", Term: "fall-2025"},
		},
		InProgress: []string{"CS18200"},
		Constraints: &ConstraintsImport{
			StartTerm:             "fall-2026",
			MaxCreditsPerSemester: 15,
			MaxSemesters:          8,
		},
	}
}

func TestValidateTranscript_Valid(t *testing.T) {
	assert.Empty(t, ValidateTranscript(validTranscript()))
}

func TestValidateTranscript_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TranscriptFile)
		wantMsg string
	}{
		{"missing name", func(f *TranscriptFile) { f.Student.Name = "" }, "student.name is required"},
		{"bad course id", func(f *TranscriptFile) { f.Completed[0].CourseID = "nope" }, "invalid course id"},
		{"bad grade", func(f *TranscriptFile) { f.Completed[0].Grade = "Z" }, "unknown grade"},
		{"planned grade rejected", func(f *TranscriptFile) { f.Completed[0].Grade = "PLANNED" }, "unknown grade"},
		{"bad term", func(f *TranscriptFile) { f.Completed[0].Term = "autumn-2025" }, "invalid"},
		{"duplicate in progress", func(f *TranscriptFile) { f.InProgress = []string{"CS18200", "CS18200"} }, "duplicate"},
		{"bad start term", func(f *TranscriptFile) { f.Constraints.StartTerm = "2026" }, "invalid term"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validTranscript()
			tt.mutate(f)
			errs := ValidateTranscript(f)
			require.NotEmpty(t, errs)
			assert.Contains(t, errs[0].Error(), tt.wantMsg)
		})
	}
}
