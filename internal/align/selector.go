package align

// DefaultMinFloor is the minimum candidate score required for an alignment.
// A source field whose best candidate scores strictly below the floor is
// reported as unmatched instead of being force-aligned.
const DefaultMinFloor = 0.3

// Select picks the maximum-score candidate, preferring the earlier target
// on ties so selection is stable and deterministic.
//
// Returns ok=false when no candidate reaches minFloor. A zero score is
// never selectable regardless of the floor: it means the scorer found no
// signal at all.
func Select(candidates []CandidateMatch, minFloor float64) (CandidateMatch, bool) {
	var best CandidateMatch
	found := false
	for _, c := range candidates {
		if c.Score > best.Score {
			best = c
			found = true
		}
	}

	if !found || best.Score == 0 || best.Score < minFloor {
		return CandidateMatch{}, false
	}
	return best, true
}
