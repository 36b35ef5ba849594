package freq

// ranking lists the 26 letters from most to least frequent in English text.
var ranking = [26]byte{
	'e', 't', 'a', 'o', 'i', 'n', 's', 'h', 'r', 'd', 'l', 'c', 'u',
	'm', 'w', 'f', 'g', 'y', 'p', 'b', 'v', 'k', 'j', 'x', 'q', 'z',
}

// Model weights letters by their frequency rank in a reference language:
// the most frequent letter scores 26, the least frequent 1.
type Model struct {
	weight [26]int
}

// NewEnglishModel returns a model built from the English letter ranking.
func NewEnglishModel() *Model {
	m := &Model{}
	for rank, c := range ranking {
		m.weight[c-'a'] = 26 - rank
	}
	return m
}

// Weight returns the score contribution of a lowercase letter.
func (m *Model) Weight(letter byte) int {
	return m.weight[letter-'a']
}

// BestShift tries all 26 Caesar shifts against one coset and returns the one
// whose implied plaintext letters score highest under the model. The scan uses
// a strict comparison, so equal scores keep the earlier (smaller) shift.
// An empty coset carries no evidence and yields shift 0.
func (m *Model) BestShift(coset string) int {
	var counts [26]int
	for i := 0; i < len(coset); i++ {
		counts[coset[i]-'a']++
	}
	best := 0
	bestScore := -1
	for shift := 0; shift < 26; shift++ {
		score := 0
		for c := 0; c < 26; c++ {
			if counts[c] == 0 {
				continue
			}
			plain := (c - shift + 26) % 26
			score += counts[c] * m.weight[plain]
		}
		if score > bestScore {
			bestScore = score
			best = shift
		}
	}
	return best
}
