package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckReadiness(t *testing.T) {
	alts := scenarioAlternatives()
	alts = append(alts, NewAlternative("C", "Rajawali", ValueSet{Price: 45000, Distance: 0, Lighting: 7, Facilities: 7, Comfort: 7}))

	r := CheckReadiness(DefaultWeights().Criteria(), alts)
	assert.InDelta(t, 1.0, r.WeightSum, 1e-9)
	assert.True(t, r.WeightsReady)
	assert.Equal(t, 2, r.CompleteAlternatives)
	assert.Equal(t, 3, r.TotalAlternatives)
	assert.False(t, r.Ready())

	r = CheckReadiness(DefaultWeights().Criteria(), scenarioAlternatives())
	assert.True(t, r.Ready())
}

func TestCheckReadinessUnnormalized(t *testing.T) {
	w := WeightSet{Price: 0.5, Distance: 0.5, Lighting: 0.5}
	r := CheckReadiness(w.Criteria(), nil)
	assert.InDelta(t, 1.5, r.WeightSum, 1e-9)
	assert.False(t, r.WeightsReady)
	assert.False(t, r.Ready())

	r = CheckReadiness(nil, nil)
	assert.False(t, r.WeightsReady, "empty criteria can never be ready")
}

func TestCheckReadinessMissingKey(t *testing.T) {
	alts := scenarioAlternatives()
	delete(alts[0].Values, CriterionComfort)
	r := CheckReadiness(DefaultWeights().Criteria(), alts)
	assert.Equal(t, 1, r.CompleteAlternatives)
}

func TestSummarize(t *testing.T) {
	results, err := Rank(DefaultWeights().Criteria(), scenarioAlternatives())
	require.NoError(t, err)

	s := Summarize(results)
	assert.Equal(t, "A", s.BestID)
	assert.Equal(t, "Dewisri", s.BestName)
	assert.InDelta(t, results[0].FinalScore, s.BestScore, 1e-12)
	assert.InDelta(t, (results[0].FinalScore+results[1].FinalScore)/2, s.AverageScore, 1e-12)
	assert.Equal(t, 2, s.Count)

	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestComputeFrontier(t *testing.T) {
	alts := []Alternative{
		NewAlternative("A", "a", ValueSet{Price: 50000, Distance: 2, Lighting: 8, Facilities: 7, Comfort: 9}),
		NewAlternative("B", "b", ValueSet{Price: 40000, Distance: 3, Lighting: 6, Facilities: 9, Comfort: 8}),
		// Dominated by A on every criterion.
		NewAlternative("C", "c", ValueSet{Price: 60000, Distance: 4, Lighting: 5, Facilities: 6, Comfort: 7}),
	}
	ev, err := Evaluate(DefaultWeights().Criteria(), alts)
	require.NoError(t, err)

	frontier := ComputeFrontier(ev.Normalized)
	assert.Equal(t, []string{"A", "B"}, FrontierIDs(frontier))
}

func TestComputeFrontierIdentical(t *testing.T) {
	v := ValueSet{Price: 50000, Distance: 2, Lighting: 8, Facilities: 7, Comfort: 9}
	ev, err := Evaluate(DefaultWeights().Criteria(), []Alternative{
		NewAlternative("X", "x", v),
		NewAlternative("Y", "y", v),
	})
	require.NoError(t, err)

	// Equal rows do not dominate each other.
	assert.Len(t, ComputeFrontier(ev.Normalized), 2)
	assert.Len(t, ComputeFrontier(ev.Normalized[:1]), 1)
}

func TestCatalogCoversAllCriteria(t *testing.T) {
	catalog := Catalog()
	require.Len(t, catalog, len(AllCriteria()))
	for i, id := range AllCriteria() {
		assert.Equal(t, id, catalog[i].ID)
		assert.Equal(t, id.DefaultDirection(), catalog[i].Direction)
		assert.True(t, id.Valid())
	}
	assert.False(t, CriterionID("parkir").Valid())
}
