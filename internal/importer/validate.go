package importer

import (
	"fmt"

	"github.com/degreekit/advisor/internal/domain"
)

var (
	validRuleKinds  = map[string]bool{"allof": true, "oneof": true}
	validGroupKinds = map[string]bool{"required": true, "elective": true}
)

// ValidateCatalogFile checks a catalog definition for structural errors
// before conversion and returns every error found. Referential checks
// (unknown course ids, prerequisite cycles) are the planner's job; this
// pass only guards shape.
func ValidateCatalogFile(f *CatalogFile) []error {
	var errs []error

	if len(f.Courses) == 0 {
		errs = append(errs, fmt.Errorf("catalog: at least one course is required"))
	}

	courseIDs := make(map[string]bool, len(f.Courses))
	for i, c := range f.Courses {
		prefix := fmt.Sprintf("catalog[%d]", i)
		if !domain.ValidCourseID(c.ID) {
			errs = append(errs, fmt.Errorf("%s: invalid course id %q", prefix, c.ID))
		} else if courseIDs[c.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate course id %s", prefix, c.ID))
		} else {
			courseIDs[c.ID] = true
		}
		if c.Title == "" {
			errs = append(errs, fmt.Errorf("%s: title is required", prefix))
		}
		if c.Credits <= 0 {
			errs = append(errs, fmt.Errorf("%s: credits must be positive, got %d", prefix, c.Credits))
		}
		if c.Level <= 0 || c.Level%100 != 0 {
			errs = append(errs, fmt.Errorf("%s: level must be a positive multiple of 100, got %d", prefix, c.Level))
		}
		if len(c.Seasons) == 0 {
			errs = append(errs, fmt.Errorf("%s: at least one season is required", prefix))
		}
		for _, s := range c.Seasons {
			if !domain.Season(s).Valid() {
				errs = append(errs, fmt.Errorf("%s: invalid season %q", prefix, s))
			}
		}
	}

	ruleDsts := make(map[string]bool, len(f.Prereqs))
	for i, p := range f.Prereqs {
		prefix := fmt.Sprintf("prerequisites[%d]", i)
		if !domain.ValidCourseID(p.Course) {
			errs = append(errs, fmt.Errorf("%s: invalid course id %q", prefix, p.Course))
		} else if ruleDsts[p.Course] {
			errs = append(errs, fmt.Errorf("%s: duplicate rule for %s", prefix, p.Course))
		} else {
			ruleDsts[p.Course] = true
		}
		if !validRuleKinds[p.Kind] {
			errs = append(errs, fmt.Errorf("%s: invalid kind %q (want allof or oneof)", prefix, p.Kind))
		}
		if len(p.Terms) == 0 {
			errs = append(errs, fmt.Errorf("%s: terms must not be empty", prefix))
		}
		for ti, term := range p.Terms {
			if len(term) == 0 {
				errs = append(errs, fmt.Errorf("%s.terms[%d]: term must not be empty", prefix, ti))
			}
			for _, id := range term {
				if !domain.ValidCourseID(id) {
					errs = append(errs, fmt.Errorf("%s.terms[%d]: invalid course id %q", prefix, ti, id))
				}
			}
		}
		if p.MinGrade != "" {
			if _, err := domain.ParseGrade(p.MinGrade); err != nil {
				errs = append(errs, fmt.Errorf("%s: %v", prefix, err))
			}
		}
	}

	trackIDs := make(map[string]bool, len(f.Tracks))
	for i, tr := range f.Tracks {
		prefix := fmt.Sprintf("tracks[%d]", i)
		if tr.ID == "" {
			errs = append(errs, fmt.Errorf("%s: id is required", prefix))
		} else if trackIDs[tr.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate track id %s", prefix, tr.ID))
		} else {
			trackIDs[tr.ID] = true
		}
		if tr.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", prefix))
		}
		if len(tr.Groups) == 0 {
			errs = append(errs, fmt.Errorf("%s: at least one group is required", prefix))
		}
		groupKeys := make(map[string]bool, len(tr.Groups))
		for gi, g := range tr.Groups {
			gp := fmt.Sprintf("%s.groups[%d]", prefix, gi)
			if g.Key == "" {
				errs = append(errs, fmt.Errorf("%s: key is required", gp))
			} else if groupKeys[g.Key] {
				errs = append(errs, fmt.Errorf("%s: duplicate group key %s", gp, g.Key))
			} else {
				groupKeys[g.Key] = true
			}
			if !validGroupKinds[g.Kind] {
				errs = append(errs, fmt.Errorf("%s: invalid kind %q (want required or elective)", gp, g.Kind))
			}
			if g.Need < 1 {
				errs = append(errs, fmt.Errorf("%s: need must be at least 1, got %d", gp, g.Need))
			}
			if len(g.Options) == 0 {
				errs = append(errs, fmt.Errorf("%s: at least one option is required", gp))
			}
			if g.Need > len(g.Options) {
				errs = append(errs, fmt.Errorf("%s: need %d exceeds %d available options", gp, g.Need, len(g.Options)))
			}
			if g.MinGrade != "" {
				if _, err := domain.ParseGrade(g.MinGrade); err != nil {
					errs = append(errs, fmt.Errorf("%s: %v", gp, err))
				}
			}
			for oi, opt := range g.Options {
				errs = append(errs, validateOption(fmt.Sprintf("%s.options[%d]", gp, oi), opt)...)
			}
		}
	}

	return errs
}

func validateOption(prefix string, opt OptionImport) []error {
	var errs []error
	switch {
	case opt.Course != "" && len(opt.Pair) > 0:
		errs = append(errs, fmt.Errorf("%s: course and pair are mutually exclusive", prefix))
	case opt.Course != "":
		if !domain.ValidCourseID(opt.Course) {
			errs = append(errs, fmt.Errorf("%s: invalid course id %q", prefix, opt.Course))
		}
	case len(opt.Pair) > 0:
		if len(opt.Pair) != 2 {
			errs = append(errs, fmt.Errorf("%s: pair must list exactly two courses, got %d", prefix, len(opt.Pair)))
			break
		}
		for _, id := range opt.Pair {
			if !domain.ValidCourseID(id) {
				errs = append(errs, fmt.Errorf("%s: invalid course id %q", prefix, id))
			}
		}
		if opt.Pair[0] == opt.Pair[1] {
			errs = append(errs, fmt.Errorf("%s: pair members must be distinct", prefix))
		}
	default:
		errs = append(errs, fmt.Errorf("%s: either course or pair is required", prefix))
	}
	return errs
}

// ValidateTranscript checks a transcript import for errors before
// conversion and returns every error found. The synthetic planned grade
// is rejected: transcripts carry real letter grades only.
func ValidateTranscript(f *TranscriptFile) []error {
	var errs []error

	if f.Student.Name == "" {
		errs = append(errs, fmt.Errorf("student.name is required"))
	}

	for i, c := range f.Completed {
		prefix := fmt.Sprintf("completed[%d]", i)
		if !domain.ValidCourseID(c.CourseID) {
			errs = append(errs, fmt.Errorf("%s: invalid course id %q", prefix, c.CourseID))
		}
		if _, err := domain.ParseGrade(c.Grade); err != nil {
			errs = append(errs, fmt.Errorf("%s: %v", prefix, err))
		}
		if _, err := domain.ParseTerm(c.Term); err != nil {
			errs = append(errs, fmt.Errorf("%s: %v", prefix, err))
		}
	}

	seen := make(map[string]bool, len(f.InProgress))
	for i, id := range f.InProgress {
		prefix := fmt.Sprintf("in_progress[%d]", i)
		if !domain.ValidCourseID(id) {
			errs = append(errs, fmt.Errorf("%s: invalid course id %q", prefix, id))
		}
		if seen[id] {
			errs = append(errs, fmt.Errorf("%s: duplicate course %s", prefix, id))
		}
		seen[id] = true
	}

	if c := f.Constraints; c != nil {
		if c.StartTerm != "" {
			if _, err := domain.ParseTerm(c.StartTerm); err != nil {
				errs = append(errs, fmt.Errorf("constraints: %v", err))
			}
		}
		if c.MaxCreditsPerSemester < 0 {
			errs = append(errs, fmt.Errorf("constraints: max_credits_per_semester must not be negative"))
		}
		if c.MaxSemesters < 0 {
			errs = append(errs, fmt.Errorf("constraints: max_semesters must not be negative"))
		}
	}

	return errs
}
