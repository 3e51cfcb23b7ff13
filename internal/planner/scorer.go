package planner

import "github.com/degreekit/advisor/internal/domain"

// Thresholds for the critical-path flag.
const (
	criticalDownstreamDegree = 3
	criticalCoverageCount    = 2
)

// ScoringWeights are the factor weights of the five-component score.
// The exact values are a compatibility contract: downstream behavior and
// fixtures depend on them, so they are not tuning knobs.
type ScoringWeights struct {
	Downstream       float64
	Coverage         float64
	Rarity           float64
	LevelProgression float64
	CohortOrder      float64
}

func DefaultWeights() ScoringWeights {
	return ScoringWeights{
		Downstream:       0.30,
		Coverage:         0.25,
		Rarity:           0.15,
		LevelProgression: 0.15,
		CohortOrder:      0.15,
	}
}

// ScoringInput carries one candidate plus the per-semester normalizers
// the components need. All fields are plain values so scoring stays a
// pure function.
type ScoringInput struct {
	Course               domain.Course
	GroupKey             string
	SemesterIndex        int
	DownstreamDegree     int
	MaxDownstreamDegree  int
	CoverageCount        int
	MaxCoverageCount     int
	AvgSeasonalFrequency float64
	Weights              ScoringWeights
}

// ComponentScores are the five factor values before weighting. Rarity is
// deliberately negative and not renormalized.
type ComponentScores struct {
	Downstream       float64
	Coverage         float64
	Rarity           float64
	LevelProgression float64
	CohortOrder      float64
}

// ScoredCourse is one candidate with its score breakdown and
// critical-path flag. Ephemeral: discarded once the semester is packed.
type ScoredCourse struct {
	Course       domain.Course
	GroupKey     string
	Components   ComponentScores
	Total        float64
	CriticalPath bool
}

// ScoreCourse computes the five-factor deterministic score. Identical
// inputs always yield bit-identical output.
func ScoreCourse(input ScoringInput) ScoredCourse {
	comp := ComponentScores{
		Downstream:       scoreDownstream(input),
		Coverage:         scoreCoverage(input),
		Rarity:           scoreRarity(input),
		LevelProgression: scoreLevelProgression(input),
		CohortOrder:      scoreCohortOrder(input),
	}
	total := input.Weights.Downstream*comp.Downstream +
		input.Weights.Coverage*comp.Coverage +
		input.Weights.Rarity*comp.Rarity +
		input.Weights.LevelProgression*comp.LevelProgression +
		input.Weights.CohortOrder*comp.CohortOrder

	critical := input.DownstreamDegree >= criticalDownstreamDegree ||
		input.CoverageCount >= criticalCoverageCount ||
		input.Course.Capstone

	return ScoredCourse{
		Course:       input.Course,
		GroupKey:     input.GroupKey,
		Components:   comp,
		Total:        total,
		CriticalPath: critical,
	}
}

func scoreDownstream(input ScoringInput) float64 {
	if input.MaxDownstreamDegree == 0 {
		return 0
	}
	return float64(input.DownstreamDegree) / float64(input.MaxDownstreamDegree)
}

func scoreCoverage(input ScoringInput) float64 {
	if input.MaxCoverageCount == 0 {
		return 0
	}
	return float64(input.CoverageCount) / float64(input.MaxCoverageCount)
}

// scoreRarity pulls rarely-offered courses earlier. The +1 denominator
// shift floors the penalty at -1.0 for a course with no observed
// offerings.
func scoreRarity(input ScoringInput) float64 {
	return -1 / (input.AvgSeasonalFrequency + 1)
}

// scoreLevelProgression rewards courses near the expected level for the
// semester, which rises 75 points per semester from a 100-level start.
func scoreLevelProgression(input ScoringInput) float64 {
	target := targetLevel(input.SemesterIndex)
	diff := float64(input.Course.Level - target)
	if diff < 0 {
		diff = -diff
	}
	v := 1 - diff/200
	if v < 0 {
		return 0
	}
	return v
}

func targetLevel(semesterIndex int) int {
	return 100 + 75*semesterIndex
}

// scoreCohortOrder encodes conventional 100/200/300/400-level sequencing
// as a fixed banding bonus: two semesters per band, clamped at the
// 400 band.
func scoreCohortOrder(input ScoringInput) float64 {
	band := input.Course.Level / 100
	if band < 1 {
		band = 1
	}
	if band > 4 {
		band = 4
	}
	expected := input.SemesterIndex/2 + 1
	if expected > 4 {
		expected = 4
	}
	dist := band - expected
	if dist < 0 {
		dist = -dist
	}
	switch dist {
	case 0:
		return 1.0
	case 1:
		return 0.5
	default:
		return 0.3
	}
}
