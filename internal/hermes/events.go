package hermes

import "time"

type CalculationCompletedEvent struct {
	CalculationID string    `json:"calculation_id"`
	BestID        string    `json:"best_id"`
	BestName      string    `json:"best_name"`
	BestScore     float64   `json:"best_score"`
	Alternatives  int       `json:"alternatives"`
	Frontier      []string  `json:"pareto_frontier,omitempty"`
	CompletedAt   time.Time `json:"completed_at"`
}

type CalculationRejectedEvent struct {
	Kind         string `json:"kind"`
	Error        string `json:"error"`
	Alternatives int    `json:"alternatives"`
}

type WeightsNormalizedEvent struct {
	PreviousSum float64            `json:"previous_sum"`
	Weights     map[string]float64 `json:"weights"`
}
