package scoring

import (
	"cmp"
	"fmt"
	"maps"
	"math"
	"slices"
)

// NormalizedAlternative is an alternative together with its normalized
// ratings. Every rating is in (0, 1] when the raw values are positive.
type NormalizedAlternative struct {
	Alternative
	Normalized map[CriterionID]float64 `json:"normalized_values"`
}

// RankedResult is a normalized alternative with its weighted score and
// 1-based position.
type RankedResult struct {
	NormalizedAlternative
	FinalScore float64 `json:"final_score"`
	Rank       int     `json:"rank"`
}

// Bounds holds the column extrema used for normalization.
type Bounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Evaluation is the full output of one SAW run.
type Evaluation struct {
	Bounds     map[CriterionID]Bounds  `json:"bounds"`
	Normalized []NormalizedAlternative `json:"normalized"`
	Results    []RankedResult          `json:"results"`
}

// Rank scores alternatives with Simple Additive Weighting and returns them
// best first. Ties keep their input order.
func Rank(criteria []Criterion, alternatives []Alternative) ([]RankedResult, error) {
	ev, err := Evaluate(criteria, alternatives)
	if err != nil {
		return nil, err
	}
	return ev.Results, nil
}

// Evaluate runs the same computation as Rank and also returns the
// normalized matrix, in input order, and the per-criterion bounds.
//
//	cost:    r_ij = min_j / x_ij
//	benefit: r_ij = x_ij / max_j
//	V_i = Σ w_j * r_ij
func Evaluate(criteria []Criterion, alternatives []Alternative) (*Evaluation, error) {
	if err := validate(criteria, alternatives); err != nil {
		return nil, err
	}

	bounds := make(map[CriterionID]Bounds, len(criteria))
	if len(alternatives) == 0 {
		return &Evaluation{Bounds: bounds, Normalized: []NormalizedAlternative{}, Results: []RankedResult{}}, nil
	}
	for _, c := range criteria {
		b := Bounds{Min: math.Inf(1), Max: math.Inf(-1)}
		for _, alt := range alternatives {
			v := alt.Values[c.ID]
			b.Min = math.Min(b.Min, v)
			b.Max = math.Max(b.Max, v)
		}
		bounds[c.ID] = b
	}

	normalized := make([]NormalizedAlternative, len(alternatives))
	results := make([]RankedResult, len(alternatives))
	for i, alt := range alternatives {
		values := make(map[CriterionID]float64, len(criteria))
		ratings := make(map[CriterionID]float64, len(criteria))
		var total float64
		for _, c := range criteria {
			v := alt.Values[c.ID]
			values[c.ID] = v

			var r float64
			if c.Direction == Cost {
				r = bounds[c.ID].Min / v
			} else {
				r = v / bounds[c.ID].Max
			}
			ratings[c.ID] = r
			total += c.Weight * r
		}

		na := NormalizedAlternative{
			Alternative: Alternative{ID: alt.ID, Name: alt.Name, Values: values},
			Normalized:  ratings,
		}
		normalized[i] = na
		results[i] = RankedResult{NormalizedAlternative: cloneNormalized(na), FinalScore: total}
	}

	slices.SortStableFunc(results, func(a, b RankedResult) int {
		return cmp.Compare(b.FinalScore, a.FinalScore)
	})
	for i := range results {
		results[i].Rank = i + 1
	}

	return &Evaluation{Bounds: bounds, Normalized: normalized, Results: results}, nil
}

// validate checks structure first, then weights, then values, so a missing
// key is reported as a schema problem rather than as a zero value.
func validate(criteria []Criterion, alternatives []Alternative) error {
	if len(criteria) == 0 {
		return fmt.Errorf("%w: no criteria", ErrSchemaMismatch)
	}
	seen := make(map[CriterionID]bool, len(criteria))
	for _, c := range criteria {
		if !c.ID.Valid() {
			return fmt.Errorf("%w: unknown criterion %q", ErrSchemaMismatch, c.ID)
		}
		if seen[c.ID] {
			return fmt.Errorf("%w: duplicate criterion %q", ErrSchemaMismatch, c.ID)
		}
		if !c.Direction.Valid() {
			return fmt.Errorf("%w: criterion %q has unknown direction %q", ErrSchemaMismatch, c.ID, c.Direction)
		}
		seen[c.ID] = true
	}
	for _, alt := range alternatives {
		if len(alt.Values) != len(seen) {
			return fmt.Errorf("%w: alternative %s has %d values, want %d", ErrSchemaMismatch, alt.ID, len(alt.Values), len(seen))
		}
		for id := range alt.Values {
			if !seen[id] {
				return fmt.Errorf("%w: alternative %s has unexpected criterion %q", ErrSchemaMismatch, alt.ID, id)
			}
		}
	}

	if err := validateWeights(criteria); err != nil {
		return err
	}

	for _, alt := range alternatives {
		for _, c := range criteria {
			if !positive(alt.Values[c.ID]) {
				return fmt.Errorf("%w: alternative %s has %s=%v", ErrIncompleteData, alt.ID, c.ID, alt.Values[c.ID])
			}
		}
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func cloneNormalized(na NormalizedAlternative) NormalizedAlternative {
	out := na
	out.Values = maps.Clone(na.Values)
	out.Normalized = maps.Clone(na.Normalized)
	return out
}
