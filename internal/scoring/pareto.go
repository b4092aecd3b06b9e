package scoring

// ComputeFrontier returns the Pareto-optimal alternatives from a normalized
// matrix, in input order. After normalization every rating is
// higher-is-better, so an alternative is dominated if another one is >= on
// every criterion and strictly better on at least one.
// O(n^2) dominance check; venue lists are a handful of rows.
func ComputeFrontier(normalized []NormalizedAlternative) []NormalizedAlternative {
	if len(normalized) <= 1 {
		return normalized
	}

	var frontier []NormalizedAlternative
	for i := range normalized {
		dominated := false
		for j := range normalized {
			if i == j {
				continue
			}
			if dominates(normalized[j], normalized[i]) {
				dominated = true
				break
			}
		}
		if !dominated {
			frontier = append(frontier, normalized[i])
		}
	}
	return frontier
}

// dominates returns true if a dominates b over b's criteria.
func dominates(a, b NormalizedAlternative) bool {
	strictly := false
	for id, rb := range b.Normalized {
		ra := a.Normalized[id]
		if ra < rb {
			return false
		}
		if ra > rb {
			strictly = true
		}
	}
	return strictly
}

// FrontierIDs returns the alternative IDs of a frontier.
func FrontierIDs(frontier []NormalizedAlternative) []string {
	ids := make([]string, len(frontier))
	for i, na := range frontier {
		ids[i] = na.ID
	}
	return ids
}
