package hermes

const (
	SubjectCalculationRejected = "ranker.calculation.rejected"
	SubjectWeightsNormalized   = "ranker.weights.normalized"

	StreamName     = "RANKER_EVENTS"
	StreamSubjects = "ranker.>"
	StreamMaxAge   = "168h" // 7 days
)

func SubjectCalculationCompleted(calculationID string) string {
	return "ranker.calculation." + calculationID + ".completed"
}
