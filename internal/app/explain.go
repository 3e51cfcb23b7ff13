package app

// TermExplain shows one prerequisite term (an AllOf member set or a OneOf
// alternative) with the members the student still lacks.
type TermExplain struct {
	Members   []string
	Missing   []string
	Satisfied bool
}

// ExplainReport is the eligibility detail for one course and one student:
// why the course is or is not plannable right now.
type ExplainReport struct {
	CourseID         string
	Title            string
	Credits          int
	Level            int
	Capstone         bool
	Seasons          []string
	Completed        bool
	Grade            string
	InProgress       bool
	RuleKind         string
	MinGrade         string
	Terms            []TermExplain
	PrereqsMet       bool
	DownstreamDegree int
	Bottleneck       bool
	Groups           []string
}
