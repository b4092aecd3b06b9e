package scoring

import (
	"fmt"
	"math"
)

// WeightTolerance is how far the weight sum may drift from 1.0.
const WeightTolerance = 0.01

// WeightSet defines the relative importance of each venue criterion.
// Weights must sum to 1.0 (±WeightTolerance) before ranking.
type WeightSet struct {
	Price      float64
	Distance   float64
	Lighting   float64
	Facilities float64
	Comfort    float64
}

// DefaultWeights returns the stock weight distribution.
func DefaultWeights() WeightSet {
	return WeightSet{
		Price:      0.30,
		Distance:   0.20,
		Lighting:   0.20,
		Facilities: 0.15,
		Comfort:    0.15,
	}
}

// Sum returns the total of all weights.
func (w WeightSet) Sum() float64 {
	return w.Price + w.Distance + w.Lighting + w.Facilities + w.Comfort
}

// Validate checks that weights sum to 1.0 and none are negative.
func (w WeightSet) Validate() error {
	return validateWeights(w.Criteria())
}

// Criteria expands the set into engine criteria with catalog directions.
func (w WeightSet) Criteria() []Criterion {
	return []Criterion{
		{ID: CriterionPrice, Direction: Cost, Weight: w.Price},
		{ID: CriterionDistance, Direction: Cost, Weight: w.Distance},
		{ID: CriterionLighting, Direction: Benefit, Weight: w.Lighting},
		{ID: CriterionFacilities, Direction: Benefit, Weight: w.Facilities},
		{ID: CriterionComfort, Direction: Benefit, Weight: w.Comfort},
	}
}

// Normalize rescales the set so it sums to exactly 1.0.
func (w WeightSet) Normalize() (WeightSet, error) {
	c, err := NormalizeWeights(w.Criteria())
	if err != nil {
		return WeightSet{}, err
	}
	return WeightSet{
		Price:      c[0].Weight,
		Distance:   c[1].Weight,
		Lighting:   c[2].Weight,
		Facilities: c[3].Weight,
		Comfort:    c[4].Weight,
	}, nil
}

// NormalizeWeights returns a copy of criteria with each weight divided by the
// total, so the result sums to 1.0.
func NormalizeWeights(criteria []Criterion) ([]Criterion, error) {
	var total float64
	for _, c := range criteria {
		if c.Weight < 0 || math.IsNaN(c.Weight) || math.IsInf(c.Weight, 0) {
			return nil, fmt.Errorf("%w: %s=%v", ErrNegativeWeight, c.ID, c.Weight)
		}
		total += c.Weight
	}
	if total == 0 {
		return nil, ErrZeroTotalWeight
	}

	out := make([]Criterion, len(criteria))
	for i, c := range criteria {
		c.Weight /= total
		out[i] = c
	}
	return out, nil
}

// WeightSum returns the total weight of criteria.
func WeightSum(criteria []Criterion) float64 {
	var sum float64
	for _, c := range criteria {
		sum += c.Weight
	}
	return sum
}

func validateWeights(criteria []Criterion) error {
	for _, c := range criteria {
		if c.Weight < 0 || math.IsNaN(c.Weight) || math.IsInf(c.Weight, 0) {
			return fmt.Errorf("%w: invalid weight %v for %s", ErrUnnormalizedWeights, c.Weight, c.ID)
		}
	}
	if sum := WeightSum(criteria); math.Abs(sum-1.0) > WeightTolerance {
		return fmt.Errorf("%w: weights sum to %.4f", ErrUnnormalizedWeights, sum)
	}
	return nil
}
