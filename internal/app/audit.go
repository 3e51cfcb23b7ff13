package app

// GroupAudit is the requirement tracker's view of one group for display.
type GroupAudit struct {
	Key       string
	Kind      string
	Need      int
	Satisfied int
	Missing   int
	Options   []string
}

// AuditReport summarizes a student's standing against their declared
// track: transcript totals plus per-group requirement progress.
type AuditReport struct {
	StudentID        string
	StudentName      string
	TrackID          string
	TrackName        string
	GPA              float64
	CreditsEarned    int
	CoursesCompleted int
	InProgress       []string
	Groups           []GroupAudit
	OutstandingSlots int
	Complete         bool
}
