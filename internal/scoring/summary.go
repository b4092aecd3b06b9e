package scoring

import "math"

// Readiness reports whether a draft input is ready to be ranked.
type Readiness struct {
	WeightSum            float64 `json:"weight_sum"`
	WeightsReady         bool    `json:"weights_ready"`
	CompleteAlternatives int     `json:"complete_alternatives"`
	TotalAlternatives    int     `json:"total_alternatives"`
}

// Ready is true when Rank would not reject the input for weights or values.
func (r Readiness) Ready() bool {
	return r.WeightsReady && r.CompleteAlternatives == r.TotalAlternatives
}

// CheckReadiness counts how much of the input is already valid. Unlike Rank
// it never fails, so callers can show progress on a partially filled form.
func CheckReadiness(criteria []Criterion, alternatives []Alternative) Readiness {
	sum := WeightSum(criteria)
	r := Readiness{
		WeightSum:         sum,
		WeightsReady:      len(criteria) > 0 && math.Abs(sum-1.0) <= WeightTolerance,
		TotalAlternatives: len(alternatives),
	}
	for _, alt := range alternatives {
		complete := true
		for _, c := range criteria {
			v, ok := alt.Values[c.ID]
			if !ok || !positive(v) {
				complete = false
				break
			}
		}
		if complete {
			r.CompleteAlternatives++
		}
	}
	return r
}

// Summary is the headline of a ranking.
type Summary struct {
	BestID       string  `json:"best_id,omitempty"`
	BestName     string  `json:"best_name,omitempty"`
	BestScore    float64 `json:"best_score"`
	AverageScore float64 `json:"average_score"`
	Count        int     `json:"count"`
}

// Summarize expects results in rank order, as returned by Rank.
func Summarize(results []RankedResult) Summary {
	if len(results) == 0 {
		return Summary{}
	}
	var total float64
	for _, r := range results {
		total += r.FinalScore
	}
	return Summary{
		BestID:       results[0].ID,
		BestName:     results[0].Name,
		BestScore:    results[0].FinalScore,
		AverageScore: total / float64(len(results)),
		Count:        len(results),
	}
}
