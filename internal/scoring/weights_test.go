package scoring

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultWeightsSumToOne(t *testing.T) {
	w := DefaultWeights()
	if err := w.Validate(); err != nil {
		t.Errorf("default weights invalid: %v", err)
	}
	if math.Abs(w.Sum()-1.0) > 0.001 {
		t.Errorf("default weights sum to %f, expected 1.0", w.Sum())
	}
}

func TestWeightSetCriteriaDirections(t *testing.T) {
	for _, c := range DefaultWeights().Criteria() {
		if c.Direction != c.ID.DefaultDirection() {
			t.Errorf("%s: expected direction %s, got %s", c.ID, c.ID.DefaultDirection(), c.Direction)
		}
	}
}

func TestNormalizeWeights(t *testing.T) {
	in := []Criterion{
		{ID: CriterionPrice, Direction: Cost, Weight: 3},
		{ID: CriterionDistance, Direction: Cost, Weight: 2},
		{ID: CriterionLighting, Direction: Benefit, Weight: 2},
		{ID: CriterionFacilities, Direction: Benefit, Weight: 1.5},
		{ID: CriterionComfort, Direction: Benefit, Weight: 1.5},
	}
	out, err := NormalizeWeights(in)
	if err != nil {
		t.Fatalf("NormalizeWeights failed: %v", err)
	}

	want := []float64{0.3, 0.2, 0.2, 0.15, 0.15}
	for i, c := range out {
		if !approx(c.Weight, want[i]) {
			t.Errorf("%s: expected %f, got %f", c.ID, want[i], c.Weight)
		}
		if c.ID != in[i].ID || c.Direction != in[i].Direction {
			t.Errorf("position %d: criterion identity changed", i)
		}
	}
	if math.Abs(WeightSum(out)-1.0) > 1e-9 {
		t.Errorf("normalized weights sum to %f", WeightSum(out))
	}
	if in[0].Weight != 3 {
		t.Error("NormalizeWeights mutated its input")
	}

	if _, err := Rank(out, scenarioAlternatives()); err != nil {
		t.Errorf("normalized weights rejected by Rank: %v", err)
	}
}

func TestNormalizeWeightsErrors(t *testing.T) {
	t.Run("all zero", func(t *testing.T) {
		_, err := NormalizeWeights(WeightSet{}.Criteria())
		if !errors.Is(err, ErrZeroTotalWeight) {
			t.Errorf("expected ErrZeroTotalWeight, got %v", err)
		}
	})

	t.Run("empty", func(t *testing.T) {
		_, err := NormalizeWeights(nil)
		if !errors.Is(err, ErrZeroTotalWeight) {
			t.Errorf("expected ErrZeroTotalWeight, got %v", err)
		}
	})

	t.Run("negative", func(t *testing.T) {
		w := DefaultWeights()
		w.Lighting = -0.2
		_, err := NormalizeWeights(w.Criteria())
		if !errors.Is(err, ErrNegativeWeight) {
			t.Errorf("expected ErrNegativeWeight, got %v", err)
		}
	})
}

func TestWeightSetNormalize(t *testing.T) {
	w := WeightSet{Price: 1, Distance: 1, Lighting: 1, Facilities: 1, Comfort: 1}
	n, err := w.Normalize()
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if !approx(n.Price, 0.2) || !approx(n.Comfort, 0.2) {
		t.Errorf("expected 0.2 each, got %+v", n)
	}
	if err := n.Validate(); err != nil {
		t.Errorf("normalized set invalid: %v", err)
	}

	if _, err := (WeightSet{}).Normalize(); !errors.Is(err, ErrZeroTotalWeight) {
		t.Errorf("expected ErrZeroTotalWeight, got %v", err)
	}
}

func TestWeightSetValidate(t *testing.T) {
	w := DefaultWeights()
	w.Price = 0.25 // sum = 0.95
	if err := w.Validate(); !errors.Is(err, ErrUnnormalizedWeights) {
		t.Errorf("expected ErrUnnormalizedWeights, got %v", err)
	}
}
