package kasiski

import "sort"

const trigram = 3

// Analyzer estimates candidate key lengths from the distances between
// repeated trigrams in cleaned ciphertext. Identical plaintext fragments
// encrypted at the same key phase repeat in the ciphertext, so those
// distances tend to be multiples of the key length.
type Analyzer struct {
	maxKeyLength  int
	topCandidates int
}

// New creates an analyzer bounded by maxKeyLength (minimum 2) that reports at
// most topCandidates lengths. Out-of-range arguments fall back to the
// defaults 15 and 3.
func New(maxKeyLength, topCandidates int) *Analyzer {
	if maxKeyLength < 2 {
		maxKeyLength = 15
	}
	if topCandidates < 1 {
		topCandidates = 3
	}
	return &Analyzer{maxKeyLength: maxKeyLength, topCandidates: topCandidates}
}

// Candidates returns the most likely key lengths, most voted first. Every
// divisor in [2, maxKeyLength] of every pairwise distance between repeats of
// the same trigram gets one vote per distance. Ties keep the divisor that was
// discovered first during the scan. Text without repeated trigrams yields an
// empty list.
func (a *Analyzer) Candidates(cleaned string) []int {
	positions := make(map[string][]int)
	var order []string
	for i := 0; i+trigram <= len(cleaned); i++ {
		seq := cleaned[i : i+trigram]
		if _, ok := positions[seq]; !ok {
			order = append(order, seq)
		}
		positions[seq] = append(positions[seq], i)
	}

	// All pairwise forward distances, not just consecutive occurrences.
	// Map iteration order is randomized, so walk trigrams in discovery order
	// to keep the tie-break deterministic.
	var distances []int
	for _, seq := range order {
		pos := positions[seq]
		for i := 0; i < len(pos); i++ {
			for j := i + 1; j < len(pos); j++ {
				distances = append(distances, pos[j]-pos[i])
			}
		}
	}

	votes := make(map[int]int)
	var seen []int
	for _, d := range distances {
		for f := 2; f <= a.maxKeyLength; f++ {
			if d%f != 0 {
				continue
			}
			if votes[f] == 0 {
				seen = append(seen, f)
			}
			votes[f]++
		}
	}

	sort.SliceStable(seen, func(i, j int) bool {
		return votes[seen[i]] > votes[seen[j]]
	})
	if len(seen) > a.topCandidates {
		seen = seen[:a.topCandidates]
	}
	return seen
}
