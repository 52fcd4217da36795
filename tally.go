package charfreq

// countRange tallies the folded characters of one segment into a fresh
// partial map. The partial is exclusively owned by the worker until it
// is handed back, so no locking is involved anywhere in the count.
func countRange(text []rune, seg segment, fold foldFunc) (FrequencyMap, error) {
	freq := make(FrequencyMap)
	for _, r := range text[seg.lo:seg.hi] {
		key, err := fold(r)
		if err != nil {
			return nil, err
		}
		freq[key]++
	}
	return freq, nil
}

// mergeFrequencies sums per-worker partial maps into one map. Addition
// is commutative and associative, so the order of the partials never
// affects the result.
func mergeFrequencies(partials []FrequencyMap) FrequencyMap {
	merged := make(FrequencyMap)
	for _, partial := range partials {
		for key, count := range partial {
			merged[key] += count
		}
	}
	return merged
}
