package app

import (
	"time"

	"github.com/degreekit/advisor/internal/domain"
)

// PlanRequest drives one engine run. Overrides are what-if inputs: they
// apply to the run only and never mutate the stored profile.
type PlanRequest struct {
	StudentID     string
	TrackOverride string
	MaxCredits    *int
	MaxSemesters  *int
	Summer        *bool
	StartTerm     *domain.Term
	Save          bool
}

func NewPlanRequest(studentID string) PlanRequest {
	return PlanRequest{StudentID: studentID}
}

type AdvisoryCode string

const (
	AdvisoryTrackNotDeclared    AdvisoryCode = "TRACK_NOT_DECLARED"
	AdvisoryNoTrackDeclared     AdvisoryCode = "NO_TRACK_DECLARED"
	AdvisoryEmptyTerm           AdvisoryCode = "EMPTY_TERM"
	AdvisoryMaxSemestersReached AdvisoryCode = "MAX_SEMESTERS_REACHED"
)

// Advisory is a human-facing note attached to a Plan. Advisories explain
// outcomes; they are never errors.
type Advisory struct {
	Code    AdvisoryCode `json:"code"`
	Message string       `json:"message"`
}

// Selection is one course placed into a semester, with the requirement
// group it serves and the score that won it the slot.
type Selection struct {
	CourseID     string  `json:"course_id"`
	Title        string  `json:"title"`
	Credits      int     `json:"credits"`
	Reason       string  `json:"reason"`
	Score        float64 `json:"score"`
	CriticalPath bool    `json:"critical_path"`
}

// SemesterPlan is one packed semester. It is immutable once emitted; an
// empty Selections list is a legitimate semester (nothing offered or
// eligible that term).
type SemesterPlan struct {
	Index        int         `json:"index"`
	Term         domain.Term `json:"term"`
	Label        string      `json:"label"`
	Selections   []Selection `json:"selections"`
	TotalCredits int         `json:"total_credits"`
}

// UnmetGroup reports one requirement group that still has open slots when
// planning stops.
type UnmetGroup struct {
	Key       string   `json:"key"`
	Kind      string   `json:"kind"`
	Need      int      `json:"need"`
	Satisfied int      `json:"satisfied"`
	Missing   int      `json:"missing"`
	Options   []string `json:"options"`
}

// Bottleneck flags an uncompleted course that many others depend on.
type Bottleneck struct {
	CourseID         string `json:"course_id"`
	DownstreamDegree int    `json:"downstream_degree"`
}

// Plan is the final artifact of a run. Blocked and capped outcomes are
// normal plans with IsValid=false, never errors.
type Plan struct {
	TrackID           string            `json:"track_id,omitempty"`
	Status            domain.PlanStatus `json:"status"`
	IsValid           bool              `json:"is_valid"`
	Semesters         []SemesterPlan    `json:"semesters"`
	UnmetRequirements []string          `json:"unmet_requirements"`
	UnmetTrackGroups  []UnmetGroup      `json:"unmet_track_groups"`
	Advisories        []Advisory        `json:"advisories"`
	Bottlenecks       []Bottleneck      `json:"bottlenecks"`
}

// TotalCredits sums the credits of every packed semester.
func (p *Plan) TotalCredits() int {
	total := 0
	for _, s := range p.Semesters {
		total += s.TotalCredits
	}
	return total
}

// CourseIDs returns every selected course id in plan order.
func (p *Plan) CourseIDs() []string {
	var ids []string
	for _, s := range p.Semesters {
		for _, sel := range s.Selections {
			ids = append(ids, sel.CourseID)
		}
	}
	return ids
}

// PlanRun is a persisted engine run: the artifact plus the identifying
// metadata the engine itself deliberately excludes for determinism.
type PlanRun struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"student_id"`
	TrackID     string    `json:"track_id,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
	Plan        *Plan     `json:"plan"`
}

type PlanErrorCode string

const (
	PlanErrStudentNotFound PlanErrorCode = "STUDENT_NOT_FOUND"
	PlanErrTrackNotFound   PlanErrorCode = "TRACK_NOT_FOUND"
	PlanErrCourseNotFound  PlanErrorCode = "COURSE_NOT_FOUND"
	PlanErrRunNotFound     PlanErrorCode = "RUN_NOT_FOUND"
	PlanErrEmptyCatalog    PlanErrorCode = "EMPTY_CATALOG"
	PlanErrConfiguration   PlanErrorCode = "CONFIGURATION"
	PlanErrDataIntegrity   PlanErrorCode = "DATA_INTEGRITY"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}
