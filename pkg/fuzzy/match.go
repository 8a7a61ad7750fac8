package fuzzy

// Candidate is one entry a query can be matched against. Text must already be
// normalized.
type Candidate[K comparable] struct {
	Key  K
	Text string
}

// Match is the winning candidate of BestOf.
type Match[K comparable] struct {
	Key   K
	Text  string
	Score float64
}

// BestOf normalizes query once and scores it against every candidate. The
// candidate with the strictly highest score wins, so on ties the first one in
// iteration order is kept. ok is false when there are no candidates or the best
// score is below threshold.
func BestOf[K comparable](candidates []Candidate[K], query string, threshold float64) (best Match[K], ok bool) {
	q := Normalize(query)

	found := false
	for _, c := range candidates {
		score := Similarity(q, c.Text)
		if !found || score > best.Score {
			best = Match[K]{Key: c.Key, Text: c.Text, Score: score}
			found = true
		}
	}

	if !found || best.Score < threshold {
		return Match[K]{}, false
	}
	return best, true
}
