package codec

// Grade labels derived from a record's score.
const (
	GradeExcellent    = "Excellent (80+)"
	GradeAdequate     = "Adequate (60-79)"
	GradeNeedsWork    = "Needs improvement (40-59)"
	GradeInsufficient = "Insufficient (<40)"
)

// ClassifyScore maps a score to its grade label. Thresholds are fixed and
// evaluated top-down, first match wins; boundary values belong to the higher
// tier. The grade is always recomputed from the score at save time, never
// taken from client input.
func ClassifyScore(score float64) string {
	switch {
	case score >= 80:
		return GradeExcellent
	case score >= 60:
		return GradeAdequate
	case score >= 40:
		return GradeNeedsWork
	default:
		return GradeInsufficient
	}
}
